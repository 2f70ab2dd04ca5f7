package employee

import (
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee adalah satu row per employee_id. Identity key berasal dari sistem
// HR eksternal, bukan surrogate key internal.
type Employee struct {
	EmployeeID string `gorm:"primaryKey;column:employee_id"`
	GivenName  string `gorm:"not null;default:''"`
	FamilyName string `gorm:"not null;default:''"`
	Role       string `gorm:"not null;default:''"`
	Manager    string `gorm:"not null;default:''"`
	Status     string `gorm:"not null;default:'active'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
