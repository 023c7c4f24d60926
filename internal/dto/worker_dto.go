package dto

type CreateWorkerRequest struct {
	Id           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"max=100"`
	LastName     string   `json:"lastName" validate:"max=100"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Work         string   `json:"work" validate:"max=100"`
	FcmToken     string   `json:"fcmToken"`
	IsAvailable  *bool    `json:"isAvailable"`
	IsOnline     *bool    `json:"isOnline"`
	Image        string   `json:"image"`
	Phone        string   `json:"phone"`
	Description  string   `json:"description"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	TotalRatings *int64   `json:"totalRatings" validate:"omitempty,gte=0"`
	PricePerHour float64  `json:"pricePerHour" validate:"gte=0"`
	Experience   string   `json:"experience"`
}

// ToMap returns only the fields the caller sent; defaults are applied by the
// service.
func (r *CreateWorkerRequest) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":           r.Id,
		"latitude":     r.Latitude,
		"longitude":    r.Longitude,
		"pricePerHour": r.PricePerHour,
	}
	putString(m, "name", r.Name)
	putString(m, "lastName", r.LastName)
	putString(m, "email", r.Email)
	putString(m, "work", r.Work)
	putString(m, "fcmToken", r.FcmToken)
	putString(m, "image", r.Image)
	putString(m, "phone", r.Phone)
	putString(m, "description", r.Description)
	putString(m, "experience", r.Experience)
	if r.IsAvailable != nil {
		m["isAvailable"] = *r.IsAvailable
	}
	if r.IsOnline != nil {
		m["isOnline"] = *r.IsOnline
	}
	if r.Rating != nil {
		m["rating"] = *r.Rating
	}
	if r.TotalRatings != nil {
		m["totalRatings"] = *r.TotalRatings
	}
	return m
}

// UpdateWorkerRequest is a partial update: nil fields are left untouched.
type UpdateWorkerRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=100"`
	LastName     *string  `json:"lastName" validate:"omitempty,max=100"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Work         *string  `json:"work" validate:"omitempty,max=100"`
	IsAvailable  *bool    `json:"isAvailable"`
	IsOnline     *bool    `json:"isOnline"`
	Image        *string  `json:"image"`
	Phone        *string  `json:"phone"`
	Description  *string  `json:"description"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	PricePerHour *float64 `json:"pricePerHour" validate:"omitempty,gte=0"`
	Experience   *string  `json:"experience"`
}

func (r *UpdateWorkerRequest) ToMap() map[string]interface{} {
	m := map[string]interface{}{}
	putPtr(m, "name", r.Name)
	putPtr(m, "lastName", r.LastName)
	putPtr(m, "email", r.Email)
	putPtr(m, "work", r.Work)
	putPtr(m, "isAvailable", r.IsAvailable)
	putPtr(m, "isOnline", r.IsOnline)
	putPtr(m, "image", r.Image)
	putPtr(m, "phone", r.Phone)
	putPtr(m, "description", r.Description)
	putPtr(m, "latitude", r.Latitude)
	putPtr(m, "longitude", r.Longitude)
	putPtr(m, "pricePerHour", r.PricePerHour)
	putPtr(m, "experience", r.Experience)
	return m
}

type WorkerAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}

type WorkerOnlineStatusRequest struct {
	IsOnline *bool `json:"isOnline" validate:"required"`
}

type WorkerLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type WorkerRatingRequest struct {
	Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
}

type WorkerVerificationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=documents_submitted approved rejected"`
}

type WorkerListQuery struct {
	Search    string `query:"search"`
	Category  string `query:"category"`
	Available string `query:"available"`
	Online    string `query:"online"`
}

type WorkerRatingResponse struct {
	Rating       float64 `json:"rating"`
	TotalRatings int64   `json:"totalRatings"`
}

type WorkerStatisticsResponse struct {
	Total      int            `json:"total"`
	Available  int            `json:"available"`
	Online     int            `json:"online"`
	Verified   int            `json:"verified"`
	ByCategory map[string]int `json:"by_category"`
}

func putString(m map[string]interface{}, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func putPtr[T any](m map[string]interface{}, key string, value *T) {
	if value != nil {
		m[key] = *value
	}
}
