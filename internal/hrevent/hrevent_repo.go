package hrevent

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=hrevent_repo.go -destination=mock/hrevent_repo_mock.go -package=mock
type Repository interface {
	// Append inserts one audit row. Fails when employee_id does not
	// reference an existing employee (FK enforcement).
	Append(ctx context.Context, evt *HrEvent) error
	// FindRecent returns events ordered by id DESC, truncated to limit.
	FindRecent(ctx context.Context, limit int) ([]HrEvent, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, evt *HrEvent) error {
	if evt.Ts.IsZero() {
		evt.Ts = time.Now().UTC()
	}
	// Omit association agar Create tidak ikut menulis row employee
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(evt).Error
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]HrEvent, error) {
	var evts []HrEvent
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&evts).Error
	return evts, err
}
