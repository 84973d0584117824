package meeting

import (
	"context"

	"go-attend/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=meeting_repo.go -destination=mock/meeting_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, m *Meeting) error
	FindByID(ctx context.Context, id string) (*Meeting, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Meeting, error)
	FindAllByOrganization(ctx context.Context, organizationID string) ([]Meeting, error)
	Update(ctx context.Context, m *Meeting) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Meeting) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Meeting, error) {
	var m Meeting
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Meeting, error) {
	var m Meeting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]Meeting, error) {
	var rows []Meeting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("start_datetime DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, m *Meeting) error {
	return r.db.WithContext(ctx).Save(m).Error
}
