package dto

type LogListQuery struct {
	Level  string `query:"level" validate:"omitempty,oneof=debug info warn error"`
	Module string `query:"module"`
	Page   int    `query:"page" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0,lte=500"`
}

type LogListResponse struct {
	Id        string                 `json:"id"`
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Module    string                 `json:"module"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
}
