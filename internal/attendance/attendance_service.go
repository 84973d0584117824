package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	attendanceerrors "go-attend/internal/attendance/errors"
	"go-attend/internal/checkin"
	"go-attend/internal/events"
	"go-attend/internal/geo"
	"go-attend/internal/meeting"
	"go-attend/internal/messaging/kafka"
	"go-attend/internal/shared/apperror"
	"go-attend/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const CheckinLockKeyPrefix = "checkin:lock:"

func GetCheckinLockKey(meetingID, fingerprint string) string {
	return CheckinLockKeyPrefix + meetingID + ":" + fingerprint
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, meetingID string, actor Actor, req CheckinRequest) (CheckinResponse, error)
	UndoCheckin(ctx context.Context, organizationID, meetingID, attendanceID string) (AttendanceResponse, error)
	GetAllByMeeting(ctx context.Context, organizationID, meetingID string) ([]AttendanceResponse, error)
}

// Options tunes the check-in write path. Zero values fall back to defaults.
type Options struct {
	LockTTL time.Duration
	Now     func() time.Time
	Metrics *Metrics
}

type service struct {
	db        *sql.DB
	repo      Repository
	meetings  meeting.Service
	validator *checkin.Validator
	guard     *checkin.DuplicateGuard
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	lockTTL   time.Duration
	now       func() time.Time
	metrics   *Metrics
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	meetings meeting.Service,
	validator *checkin.Validator,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = 30 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if validator == nil {
		validator = checkin.NewValidator(nil)
	}
	return &service{
		db:        db,
		repo:      repo,
		meetings:  meetings,
		validator: validator,
		guard:     checkin.NewDuplicateGuard(repo),
		outbox:    outboxRepo,
		rdb:       rdb,
		lockTTL:   opts.LockTTL,
		now:       opts.Now,
		metrics:   opts.Metrics,
		logger:    l,
	}
}

func (s *service) CheckIn(ctx context.Context, meetingID string, actor Actor, req CheckinRequest) (CheckinResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.ExtractMetadata(ctx).RequestID

	m, err := s.meetings.Resolve(ctx, meetingID)
	if err != nil {
		log.Warn("check-in meeting lookup failed", zap.String("meeting_id", meetingID), zap.Error(err))
		return CheckinResponse{}, err
	}

	now := s.now().UTC()
	attempt := checkin.Attempt{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Location:          req.Location,
		DeviceFingerprint: req.DeviceFingerprint,
	}
	verdict := s.validator.Validate(m, attempt, now)
	if !verdict.IsValid {
		s.metrics.observe(outcomeRejected)
		log.Info("check-in rejected",
			zap.String("meeting_id", meetingID),
			zap.Strings("errors", verdict.Errors),
		)
		return CheckinResponse{}, apperror.WithDetails(attendanceerrors.ErrCheckinRejected, RejectionDetails{
			Errors:   verdict.Errors,
			Warnings: verdict.Warnings,
		})
	}

	fingerprint := strings.TrimSpace(req.DeviceFingerprint)
	if fingerprint != "" {
		release, acquired := s.acquireLock(ctx, meetingID, fingerprint)
		if !acquired {
			s.metrics.observe(outcomeDuplicate)
			return CheckinResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}
		defer release()
	}

	exists, err := s.guard.HasCheckedIn(ctx, meetingID, fingerprint)
	if err != nil {
		s.metrics.observe(outcomeError)
		log.Error("check-in duplicate lookup failed", zap.String("meeting_id", meetingID), zap.Error(err))
		return CheckinResponse{}, err
	}
	if exists {
		s.metrics.observe(outcomeDuplicate)
		log.Info("check-in duplicate device", zap.String("meeting_id", meetingID))
		return CheckinResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}

	row := newAttendance(m, actor, req, fingerprint, now)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.metrics.observe(outcomeError)
		log.Error("check-in begin tx failed", zap.Error(err))
		return CheckinResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, attendanceerrors.ErrAlreadyCheckedIn) {
			s.metrics.observe(outcomeDuplicate)
			log.Info("check-in duplicate on insert", zap.String("meeting_id", meetingID))
		} else {
			s.metrics.observe(outcomeError)
			log.Error("check-in persist failed", zap.String("meeting_id", meetingID), zap.Error(err))
		}
		return CheckinResponse{}, mapped
	}

	if s.outbox != nil {
		if err := s.queueCheckedIn(ctx, tx, rid, row, actor); err != nil {
			s.metrics.observe(outcomeError)
			log.Error("check-in outbox persist failed",
				zap.String("attendance_id", row.ID.String()),
				zap.Error(err),
			)
			return CheckinResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.metrics.observe(outcomeError)
		log.Error("check-in commit failed", zap.Error(err))
		return CheckinResponse{}, err
	}

	s.metrics.observe(outcomeAccepted)
	s.metrics.observeWarnings(len(verdict.Warnings))
	log.Info("check-in success",
		zap.String("meeting_id", meetingID),
		zap.String("attendance_id", row.ID.String()),
		zap.String("status", row.Status),
		zap.Int("warnings", len(verdict.Warnings)),
	)

	return CheckinResponse{
		Attendance: mapToResponse(*row),
		Warnings:   verdict.Warnings,
	}, nil
}

// acquireLock takes the per-device lock. Redis failures do not block the
// check-in; the unique index still rejects a second row.
func (s *service) acquireLock(ctx context.Context, meetingID, fingerprint string) (func(), bool) {
	noop := func() {}
	if s.rdb == nil {
		return noop, true
	}

	key := GetCheckinLockKey(meetingID, fingerprint)
	ok, err := s.rdb.SetNX(ctx, key, "processing", s.lockTTL).Result()
	if err != nil {
		s.logger.Warn("check-in lock unavailable", zap.String("key", key), zap.Error(err))
		return noop, true
	}
	if !ok {
		return noop, false
	}

	return func() {
		if err := s.rdb.Del(context.WithoutCancel(ctx), key).Err(); err != nil {
			s.logger.Warn("check-in lock release failed", zap.String("key", key), zap.Error(err))
		}
	}, true
}

func (s *service) queueCheckedIn(ctx context.Context, tx *sql.Tx, rid string, row *Attendance, actor Actor) error {
	event := events.AttendanceCheckedInEvent{
		EventType:    events.AttendanceCheckedInType,
		RequestID:    rid,
		AttendanceID: row.ID.String(),
		MeetingID:    row.MeetingID.String(),
		MemberID:     actor.MemberID,
		Latitude:     row.Latitude,
		Longitude:    row.Longitude,
		IPAddress:    actor.IPAddress,
		OccurredAt:   *row.CheckInTime,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "attendance",
		AggregateID:   row.ID.String(),
		EventType:     event.EventType,
		Topic:         events.AttendanceCheckedInTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) UndoCheckin(ctx context.Context, organizationID, meetingID, attendanceID string) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := s.meetings.GetByID(ctx, organizationID, meetingID); err != nil {
		return AttendanceResponse{}, err
	}
	if _, err := uuid.Parse(attendanceID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}

	row, err := s.repo.FindByIDAndMeeting(ctx, meetingID, attendanceID)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if row.Status == StatusUndone {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyUndone
	}

	row.Status = StatusUndone
	row.CheckInTime = nil
	row.DeviceFingerprint = nil
	row.Latitude = nil
	row.Longitude = nil
	row.DistanceMeters = nil

	if err := s.repo.Update(ctx, row); err != nil {
		log.Error("undo check-in persist failed", zap.String("attendance_id", attendanceID), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	log.Info("undo check-in success",
		zap.String("meeting_id", meetingID),
		zap.String("attendance_id", attendanceID),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAllByMeeting(ctx context.Context, organizationID, meetingID string) ([]AttendanceResponse, error) {
	if _, err := s.meetings.GetByID(ctx, organizationID, meetingID); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAllByMeeting(ctx, meetingID)
	if err != nil {
		s.logger.Error("get attendances failed", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func newAttendance(m meeting.Meeting, actor Actor, req CheckinRequest, fingerprint string, now time.Time) *Attendance {
	status := StatusPresent
	if now.After(m.StartDatetime) {
		status = StatusLate
	}

	row := &Attendance{
		ID:          uuid.New(),
		MeetingID:   m.ID,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.TrimSpace(req.Email),
		CheckInTime: &now,
		Status:      status,
	}
	if memberID, err := uuid.Parse(actor.MemberID); err == nil {
		row.MemberID = &memberID
	}
	if fingerprint != "" {
		row.DeviceFingerprint = &fingerprint
	}
	if actor.IPAddress != "" {
		ip := actor.IPAddress
		row.IPAddress = &ip
	}
	if loc := req.Location; loc != nil && loc.Latitude != nil && loc.Longitude != nil {
		row.Latitude = loc.Latitude
		row.Longitude = loc.Longitude
		if mLat, mLon, ok := m.Coordinates(); ok {
			d := geo.DistanceMeters(mLat, mLon, *loc.Latitude, *loc.Longitude)
			row.DistanceMeters = &d
		}
	}
	return row
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		MeetingID:      a.MeetingID.String(),
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Email:          a.Email,
		Status:         a.Status,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		DistanceMeters: a.DistanceMeters,
		DisplayAddress: a.DisplayAddress,
	}
	if a.MemberID != nil {
		v := a.MemberID.String()
		resp.MemberID = &v
	}
	if a.CheckInTime != nil {
		v := a.CheckInTime.UTC().Format(time.RFC3339)
		resp.CheckInTime = &v
	}
	return resp
}
