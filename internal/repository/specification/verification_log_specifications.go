package specification

import "gorm.io/gorm"

// ByWorkerId filters audit rows by worker
type ByWorkerId struct {
	WorkerId string
}

func (s ByWorkerId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("worker_id = ?", s.WorkerId)
}
