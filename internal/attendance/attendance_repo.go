package attendance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	ExistsByMeetingAndFingerprint(ctx context.Context, meetingID, fingerprint string) (bool, error)
	FindByIDAndMeeting(ctx context.Context, meetingID, id string) (*Attendance, error)
	FindAllByMeeting(ctx context.Context, meetingID string) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
	UpdateDisplayAddress(ctx context.Context, id, displayAddress string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx runs the returned repository's statements on tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) ExistsByMeetingAndFingerprint(ctx context.Context, meetingID, fingerprint string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("meeting_id = ?", meetingID).
		Where("device_fingerprint = ?", fingerprint).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByIDAndMeeting(ctx context.Context, meetingID, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindAllByMeeting(ctx context.Context, meetingID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("check_in_time ASC NULLS LAST, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) UpdateDisplayAddress(ctx context.Context, id, displayAddress string) error {
	return r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("id = ?", id).
		Update("display_address", displayAddress).Error
}
