package dto

// MaxDocumentFileSize is the largest accepted upload, in bytes.
const MaxDocumentFileSize = 10 * 1024 * 1024

type CreateDocumentRequest struct {
	Id              string `json:"id" validate:"required"`
	WorkerId        string `json:"workerId" validate:"required"`
	DocumentType    string `json:"documentType" validate:"required"`
	Category        string `json:"category" validate:"required"`
	Subcategory     string `json:"subcategory"`
	FileName        string `json:"fileName" validate:"required"`
	FileUrl         string `json:"fileUrl" validate:"required"`
	FileType        string `json:"fileType" validate:"required,oneof=application/pdf image/jpeg image/jpg image/png"`
	FileSize        int64  `json:"fileSize" validate:"gte=0,max=10485760"`
	Description     string `json:"description"`
	Orden           int64  `json:"orden"`
	VerificationUrl string `json:"verificationUrl"`
}

// ToMap is the document as written to the store, before lifecycle stamps.
func (r *CreateDocumentRequest) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":           r.Id,
		"workerId":     r.WorkerId,
		"documentType": r.DocumentType,
		"category":     r.Category,
		"fileName":     r.FileName,
		"fileUrl":      r.FileUrl,
		"fileType":     r.FileType,
		"fileSize":     r.FileSize,
		"orden":        r.Orden,
	}
	if r.Subcategory != "" {
		m["subcategory"] = r.Subcategory
	}
	if r.Description != "" {
		m["description"] = r.Description
	}
	if r.VerificationUrl != "" {
		m["verificationUrl"] = r.VerificationUrl
	}
	return m
}

// DocumentRefRequest addresses one document. DocumentId is ignored for the
// singleton categories.
type DocumentRefRequest struct {
	WorkerId    string `json:"workerId" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Subcategory string `json:"subcategory"`
	DocumentId  string `json:"documentId"`
}

// ApproveDocumentRequest falls back to the token's user for an empty ReviewerId.
type ApproveDocumentRequest struct {
	DocumentRefRequest
	ReviewerId string `json:"reviewerId"`
}

type RejectDocumentRequest struct {
	DocumentRefRequest
	ReviewerId string `json:"reviewerId"`
	Reason     string `json:"reason" validate:"required"`
}

type FileURLRequest struct {
	WorkerId    string `query:"workerId" json:"workerId" validate:"required"`
	Category    string `query:"category" json:"category" validate:"required"`
	Subcategory string `query:"subcategory" json:"subcategory"`
	Filename    string `query:"filename" json:"filename" validate:"required"`
}

type FileURLResponse struct {
	Url       string `json:"url"`
	ExpiresAt int64  `json:"expiresAt"`
}

type PendingDocumentResponse struct {
	Id           string `json:"id"`
	WorkerId     string `json:"workerId"`
	DocumentType string `json:"documentType"`
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory,omitempty"`
	DocumentId   string `json:"documentId"`
	FileName     string `json:"fileName"`
	FileUrl      string `json:"fileUrl,omitempty"`
	Status       string `json:"status"`
	UploadedAt   int64  `json:"uploadedAt"`
	ReviewedAt   int64  `json:"reviewedAt"`
}

type PendingDocumentsResponse struct {
	Count     int                       `json:"count"`
	Documents []PendingDocumentResponse `json:"documents"`
}

type RequirementCheckResponse struct {
	WorkerId         string `json:"workerId"`
	HasHojaVida      bool   `json:"hasHojaVida"`
	HasAntecedentes  bool   `json:"hasAntecedentes"`
	HasTitulo        bool   `json:"hasTitulo"`
	CartasCount      int    `json:"cartasCount"`
	HasMinimumCartas bool   `json:"hasMinimumCartas"`
	IsComplete       bool   `json:"isComplete"`
	Policy           string `json:"policy"`
}

type VerificationLogResponse struct {
	Id           string                 `json:"id"`
	WorkerId     string                 `json:"workerId"`
	DocumentType string                 `json:"documentType"`
	DocumentId   string                 `json:"documentId,omitempty"`
	Action       string                 `json:"action"`
	ReviewerId   string                 `json:"reviewerId,omitempty"`
	Reason       *string                `json:"reason,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    int64                  `json:"createdAt"`
}
