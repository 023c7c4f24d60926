package specification

import "gorm.io/gorm"

// Specification narrows an audit log query. Implementations compose in the
// order they are applied.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
