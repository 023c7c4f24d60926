package entity

import "strings"

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// Reviewed reports whether the status is terminal.
func (s DocumentStatus) Reviewed() bool {
	return s == DocumentStatusApproved || s == DocumentStatusRejected
}

// Store roots
const (
	DocumentsRoot = "WorkerDocuments"
	WorkersRoot   = "User/Trabajadores"
	ClientsRoot   = "User/Clientes"
	StorageRoot   = "worker_documents"
)

// Categories and subcategories of the per-worker document tree
const (
	CategoryHojaDeVida      = "hojaDeVida"
	CategoryAntecedentes    = "antecedentesJudiciales"
	CategoryCertificaciones = "certificaciones"

	SubcategoryTitulos = "titulos"
	SubcategoryCartas  = "cartasRecomendacion"
)

// Document type codes written by the mobile app in "documentType"
const (
	DocumentTypeHojaDeVida    = "hoja_de_vida"
	DocumentTypeAntecedentes  = "antecedentes_judiciales"
	DocumentTypeTitulo        = "titulo"
	DocumentTypeCartaRecomend = "carta_recomendacion"
)

// MinimumCartas is the number of reference letters a complete file needs.
const MinimumCartas = 3

// Document is the typed view of a document leaf.
type Document struct {
	Id              string
	WorkerId        string
	DocumentType    string
	Category        string
	Subcategory     string
	FileName        string
	FileURL         string
	FileType        string
	FileSize        int64
	Status          DocumentStatus
	UploadedAt      Timestamp
	ReviewedAt      Timestamp
	ReviewedBy      string
	RejectionReason *string
	Description     string
	Orden           int64
	VerificationURL string

	// Raw keeps every field as stored so callers can echo it back untouched.
	Raw map[string]interface{}
}

// IsSingletonCategory reports whether the category holds one document stored
// directly at the category path.
func IsSingletonCategory(category string) bool {
	return category == CategoryHojaDeVida || category == CategoryAntecedentes
}

// IsCollectionSubcategory reports whether sub is a collection under certificaciones.
func IsCollectionSubcategory(sub string) bool {
	return sub == SubcategoryTitulos || sub == SubcategoryCartas
}

// DocumentRef addresses one document in the store.
type DocumentRef struct {
	WorkerId    string
	Category    string
	Subcategory string
	DocumentId  string
}

// Path resolves the ref under root. With a subcategory the document lives at
// root/worker/category/subcategory/documentId, otherwise the category node is
// itself the document.
func (r DocumentRef) Path(root string) string {
	if r.Subcategory != "" {
		return strings.Join([]string{root, r.WorkerId, r.Category, r.Subcategory, r.DocumentId}, "/")
	}
	return strings.Join([]string{root, r.WorkerId, r.Category}, "/")
}

// StoragePath is where the file for filename lives in the blob store.
func (r DocumentRef) StoragePath(filename string) string {
	parts := []string{StorageRoot, r.WorkerId, r.Category}
	if r.Subcategory != "" {
		parts = append(parts, r.Subcategory)
	}
	parts = append(parts, filename)
	return strings.Join(parts, "/")
}

// TypeLabel names the kind of document for audit and stats.
func (r DocumentRef) TypeLabel() string {
	if r.Subcategory != "" {
		return r.Subcategory
	}
	return r.Category
}

// Validate checks the ref can be resolved consistently by every operation.
func (r DocumentRef) Validate() error {
	if strings.TrimSpace(r.WorkerId) == "" {
		return NewValidationError("workerId", "is required")
	}
	if strings.TrimSpace(r.Category) == "" {
		return NewValidationError("category", "is required")
	}
	switch {
	case IsSingletonCategory(r.Category):
		if r.Subcategory != "" {
			return NewValidationError("subcategory", "must be empty for "+r.Category)
		}
	case r.Category == CategoryCertificaciones:
		if !IsCollectionSubcategory(r.Subcategory) {
			return NewValidationError("subcategory", "must be titulos or cartasRecomendacion")
		}
		if strings.TrimSpace(r.DocumentId) == "" {
			return NewValidationError("documentId", "is required")
		}
	default:
		return NewValidationError("category", "unknown category "+r.Category)
	}
	return nil
}

// PendingDocument is a document awaiting review, tagged with its location.
type PendingDocument struct {
	Ref      DocumentRef
	Document *Document
}

// RequirementSnapshot is the completion status of a worker's document file.
type RequirementSnapshot struct {
	HasHojaVida      bool
	HasAntecedentes  bool
	HasTitulo        bool
	CartasCount      int
	HasMinimumCartas bool
	IsComplete       bool
}
