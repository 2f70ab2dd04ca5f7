package hrevent

import (
	"time"

	"github.com/Pavan812100/jml-hybrid/internal/employee"
)

// HrEvent adalah audit log append-only: dibuat sekali saat ingestion,
// tidak pernah di-update, hanya hilang lewat cascade delete parent-nya.
type HrEvent struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Ts          time.Time `gorm:"not null"`
	EventType   string    `gorm:"not null"`
	EmployeeID  string    `gorm:"not null;index"`
	PayloadJSON string    `gorm:"column:payload_json;type:text;not null"`

	Employee employee.Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE"`
}
