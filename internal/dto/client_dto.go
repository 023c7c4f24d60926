package dto

type ClientResponse struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Image    string `json:"image,omitempty"`
}

type ClientCountResponse struct {
	Total int `json:"total"`
}
