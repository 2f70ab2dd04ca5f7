package employee

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	// Upsert inserts the employee or overwrites all mutable fields of the
	// existing row (full overwrite, not a partial patch).
	Upsert(ctx context.Context, emp *Employee) error
	// SetStatus updates only status and updated_at. Zero rows affected is
	// not an error; existence is not enforced here.
	SetStatus(ctx context.Context, id, status string) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, emp *Employee) error {
	// created_at sengaja tidak ikut di-update saat conflict
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"given_name", "family_name", "role", "manager", "status", "updated_at",
			}),
		}).
		Create(emp).Error
}

func (r *repository) SetStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", id).
		Update("status", status).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		First(&emp, "employee_id = ?", id).Error
	return &emp, err
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Order("employee_id ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	// hr_events ikut terhapus lewat ON DELETE CASCADE
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "employee_id = ?", id).Error
}
