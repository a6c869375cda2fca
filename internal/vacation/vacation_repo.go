package vacation

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=vacation_repo.go -destination=mock/vacation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, vr *VacationRequest) error
	FindByID(ctx context.Context, id string) (*VacationRequest, error)
	FindAll(ctx context.Context) ([]VacationRequest, error)
	FindByStatus(ctx context.Context, status string) ([]VacationRequest, error)
	FindByAuthor(ctx context.Context, authorID string) ([]VacationRequest, error)
	FindByAuthorAndStatus(ctx context.Context, authorID, status string) ([]VacationRequest, error)
	FindActiveByAuthor(ctx context.Context, authorID string) ([]VacationRequest, error)
	FindByResolver(ctx context.Context, resolverID string) ([]VacationRequest, error)
	Update(ctx context.Context, vr *VacationRequest) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds all repository operations to the caller's transaction
// so the request write and the balance debit commit as one unit.
// Swapping the session's ConnPool is how gorm binds its own Begin,
// and it cannot fail, so there is no fallback path that could escape
// the transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	txdb := r.db.Session(&gorm.Session{NewDB: true})
	txdb.Statement.ConnPool = tx
	return &repository{db: txdb}
}

func (r *repository) Create(ctx context.Context, vr *VacationRequest) error {
	return r.db.WithContext(ctx).Create(vr).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*VacationRequest, error) {
	var vr VacationRequest
	err := r.db.WithContext(ctx).
		First(&vr, "id = ?", id).Error
	return &vr, err
}

func (r *repository) FindAll(ctx context.Context) ([]VacationRequest, error) {
	var vrs []VacationRequest
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&vrs).Error
	return vrs, err
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]VacationRequest, error) {
	var vrs []VacationRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("start_date DESC").
		Find(&vrs).Error
	return vrs, err
}

func (r *repository) FindByAuthor(ctx context.Context, authorID string) ([]VacationRequest, error) {
	var vrs []VacationRequest
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("start_date DESC").
		Find(&vrs).Error
	return vrs, err
}

func (r *repository) FindByAuthorAndStatus(ctx context.Context, authorID, status string) ([]VacationRequest, error) {
	var vrs []VacationRequest
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Where("status = ?", status).
		Order("start_date DESC").
		Find(&vrs).Error
	return vrs, err
}

// FindActiveByAuthor returns the author's requests that still occupy
// calendar days: pending and approved ones. Rejected requests free
// the calendar and are excluded.
func (r *repository) FindActiveByAuthor(ctx context.Context, authorID string) ([]VacationRequest, error) {
	var vrs []VacationRequest
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Order("start_date ASC").
		Find(&vrs).Error
	return vrs, err
}

func (r *repository) FindByResolver(ctx context.Context, resolverID string) ([]VacationRequest, error) {
	var vrs []VacationRequest
	err := r.db.WithContext(ctx).
		Where("resolved_by_id = ?", resolverID).
		Order("start_date DESC").
		Find(&vrs).Error
	return vrs, err
}

func (r *repository) Update(ctx context.Context, vr *VacationRequest) error {
	return r.db.WithContext(ctx).Save(vr).Error
}
