package attendance_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"go-attend/internal/attendance"
	attendanceerrors "go-attend/internal/attendance/errors"
	attendanceMock "go-attend/internal/attendance/mock"
	"go-attend/internal/checkin"
	"go-attend/internal/events"
	"go-attend/internal/meeting"
	meetingerrors "go-attend/internal/meeting/errors"
	meetingMock "go-attend/internal/meeting/mock"
	"go-attend/internal/messaging/kafka"
	kafkaMock "go-attend/internal/messaging/kafka/mock"
	"go-attend/internal/shared/apperror"
	"go-attend/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

const lockTTL = 30 * time.Second

var fixedNow = time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)

type serviceDeps struct {
	service   attendance.Service
	sqlMock   sqlmock.Sqlmock
	repo      *attendanceMock.MockRepository
	meetings  *meetingMock.MockService
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
	registry  *prometheus.Registry
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := attendanceMock.NewMockRepository(ctrl)
	meetings := meetingMock.NewMockService(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	reg := prometheus.NewRegistry()

	svc := attendance.NewService(
		db,
		repo,
		meetings,
		checkin.NewValidator(checkin.NewTimingPolicy(time.UTC)),
		outbox,
		rdb,
		attendance.Options{
			LockTTL: lockTTL,
			Now:     func() time.Time { return fixedNow },
			Metrics: attendance.NewMetrics(reg),
		},
	)

	return &serviceDeps{
		service:   svc,
		sqlMock:   sqlMock,
		repo:      repo,
		meetings:  meetings,
		outbox:    outbox,
		redismock: redisMock,
		registry:  reg,
	}
}

func floatPtr(v float64) *float64 { return &v }

func openMeeting(start time.Time) meeting.Meeting {
	return meeting.Meeting{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Title:          "Quarterly review",
		StartDatetime:  start,
		EndDatetime:    start.Add(time.Hour),
		Latitude:       floatPtr(51.5007),
		Longitude:      floatPtr(-0.1246),
		Settings:       datatypes.NewJSONType(meeting.Settings{}),
	}
}

func validRequest(fingerprint string) attendance.CheckinRequest {
	return attendance.CheckinRequest{
		FirstName:         "Ada",
		LastName:          "Lovelace",
		Email:             "ada@example.com",
		Location:          &checkin.Location{Latitude: floatPtr(51.5007), Longitude: floatPtr(-0.1246)},
		DeviceFingerprint: fingerprint,
	}
}

func expectOutcomes(t *testing.T, reg *prometheus.Registry, lines ...string) {
	t.Helper()
	expected := "# HELP attendance_checkins_total Total number of check-in attempts by outcome.\n" +
		"# TYPE attendance_checkins_total counter\n" +
		strings.Join(lines, "\n") + "\n"
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "attendance_checkins_total"))
}

func TestAttendanceService_CheckIn(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	actor := attendance.Actor{IPAddress: "203.0.113.7"}

	t.Run("success records late check-in and queues event", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := openMeeting(fixedNow.Add(-5 * time.Minute))
		lockKey := attendance.GetCheckinLockKey(m.ID.String(), "device-1")

		deps.meetings.EXPECT().Resolve(ctx, m.ID.String()).Return(m, nil)
		deps.redismock.ExpectSetNX(lockKey, "processing", lockTTL).SetVal(true)
		deps.repo.EXPECT().ExistsByMeetingAndFingerprint(ctx, m.ID.String(), "device-1").Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *attendance.Attendance) error {
				assert.Equal(t, m.ID, a.MeetingID)
				assert.Equal(t, attendance.StatusLate, a.Status)
				require.NotNil(t, a.CheckInTime)
				assert.Equal(t, fixedNow, *a.CheckInTime)
				require.NotNil(t, a.DeviceFingerprint)
				assert.Equal(t, "device-1", *a.DeviceFingerprint)
				require.NotNil(t, a.DistanceMeters)
				assert.InDelta(t, 0, *a.DistanceMeters, 0.001)
				assert.Nil(t, a.MemberID)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.AttendanceCheckedInTopic, e.Topic)
				assert.Equal(t, events.AttendanceCheckedInType, e.EventType)
				assert.Equal(t, kafka.OutboxStatusPending, e.Status)
				assert.Contains(t, string(e.Payload), "203.0.113.7")
				assert.Equal(t, "req-1", e.RequestID)
				return nil
			})
		deps.sqlMock.ExpectCommit()
		deps.redismock.ExpectDel(lockKey).SetVal(1)

		resp, err := deps.service.CheckIn(ctx, m.ID.String(), actor, validRequest("device-1"))
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusLate, resp.Attendance.Status)
		assert.Equal(t, "2026-03-10T09:05:00Z", *resp.Attendance.CheckInTime)
		assert.Empty(t, resp.Warnings)
		assert.NotNil(t, resp.Warnings)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
		expectOutcomes(t, deps.registry, `attendance_checkins_total{outcome="accepted"} 1`)
	})

	t.Run("member before start is present", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := openMeeting(fixedNow.Add(10 * time.Minute))
		memberID := uuid.New()
		req := validRequest("")
		req.Location = nil

		deps.meetings.EXPECT().Resolve(ctx, m.ID.String()).Return(m, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *attendance.Attendance) error {
				assert.Equal(t, attendance.StatusPresent, a.Status)
				require.NotNil(t, a.MemberID)
				assert.Equal(t, memberID, *a.MemberID)
				assert.Nil(t, a.DeviceFingerprint)
				assert.Nil(t, a.Latitude)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.CheckIn(ctx, m.ID.String(), attendance.Actor{MemberID: memberID.String()}, req)
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusPresent, resp.Attendance.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("second attempt from same device is a duplicate", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := openMeeting(fixedNow.Add(-5 * time.Minute))
		lockKey := attendance.GetCheckinLockKey(m.ID.String(), "device-1")

		deps.meetings.EXPECT().Resolve(ctx, m.ID.String()).Return(m, nil)
		deps.redismock.ExpectSetNX(lockKey, "processing", lockTTL).SetVal(true)
		deps.repo.EXPECT().ExistsByMeetingAndFingerprint(ctx, m.ID.String(), "device-1").Return(true, nil)
		deps.redismock.ExpectDel(lockKey).SetVal(1)

		_, err := deps.service.CheckIn(ctx, m.ID.String(), actor, validRequest("device-1"))
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
		assert.Equal(t, http.StatusConflict, apperror.ToHTTP(err).Status)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
		expectOutcomes(t, deps.registry, `attendance_checkins_total{outcome="duplicate"} 1`)
	})

	t.Run("concurrent attempt holding the lock is a duplicate", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := openMeeting(fixedNow.Add(-5 * time.Minute))
		lockKey := attendance.GetCheckinLockKey(m.ID.String(), "device-1")

		deps.meetings.EXPECT().Resolve(ctx, m.ID.String()).Return(m, nil)
		deps.redismock.ExpectSetNX(lockKey, "processing", lockTTL).SetVal(false)

		_, err := deps.service.CheckIn(ctx, m.ID.String(), actor, validRequest("device-1"))
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("unique violation on insert is a duplicate", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := openMeeting(fixedNow.Add(-5 * time.Minute))
		lockKey := attendance.GetCheckinLockKey(m.ID.String(), "device-1")

		deps.meetings.EXPECT().Resolve(ctx, m.ID.String()).Return(m, nil)
		deps.redismock.ExpectSetNX(lockKey, "processing", lockTTL).SetErr(errors.New("redis down"))
		deps.repo.EXPECT().ExistsByMeetingAndFingerprint(ctx, m.ID.String(), "device-1").Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_attendance_meeting_fingerprint",
		})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.CheckIn(ctx, m.ID.String(), actor, validRequest("device-1"))
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid verdict is rejected with details", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := openMeeting(fixedNow.Add(-5 * time.Minute))
		req := validRequest("device-1")
		req.FirstName = ""
		req.Email = "not-an-email"

		deps.meetings.EXPECT().Resolve(ctx, m.ID.String()).Return(m, nil)

		_, err := deps.service.CheckIn(ctx, m.ID.String(), actor, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, attendanceerrors.ErrCheckinRejected)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
		details, ok := httpErr.Details.(attendance.RejectionDetails)
		require.True(t, ok)
		assert.Equal(t, []string{"First name is required.", "Please enter a valid email address."}, details.Errors)
		expectOutcomes(t, deps.registry, `attendance_checkins_total{outcome="rejected"} 1`)
	})

	t.Run("meeting without coordinates is accepted with a warning", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := openMeeting(fixedNow.Add(-5 * time.Minute))
		m.Latitude, m.Longitude = nil, nil
		m.Settings = datatypes.NewJSONType(meeting.Settings{RequireLocationVerification: true})
		req := validRequest("")

		deps.meetings.EXPECT().Resolve(ctx, m.ID.String()).Return(m, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *attendance.Attendance) error {
				assert.NotNil(t, a.Latitude)
				assert.Nil(t, a.DistanceMeters)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.CheckIn(ctx, m.ID.String(), actor, req)
		require.NoError(t, err)
		assert.Equal(t, []string{"Meeting location is not available, so your location could not be verified."}, resp.Warnings)
	})

	t.Run("outside required geofence is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := openMeeting(fixedNow.Add(-5 * time.Minute))
		m.Settings = datatypes.NewJSONType(meeting.Settings{RequireLocationVerification: true})
		req := validRequest("")
		req.Location = &checkin.Location{Latitude: floatPtr(51.5107), Longitude: floatPtr(-0.1246)}

		deps.meetings.EXPECT().Resolve(ctx, m.ID.String()).Return(m, nil)

		_, err := deps.service.CheckIn(ctx, m.ID.String(), actor, req)
		details, ok := apperror.ToHTTP(err).Details.(attendance.RejectionDetails)
		require.True(t, ok)
		require.Len(t, details.Errors, 1)
		assert.Contains(t, details.Errors[0], "You must be within 100m")
	})

	t.Run("store failure surfaces generic error", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := openMeeting(fixedNow.Add(-5 * time.Minute))
		lockKey := attendance.GetCheckinLockKey(m.ID.String(), "device-1")

		deps.meetings.EXPECT().Resolve(ctx, m.ID.String()).Return(m, nil)
		deps.redismock.ExpectSetNX(lockKey, "processing", lockTTL).SetVal(true)
		deps.repo.EXPECT().
			ExistsByMeetingAndFingerprint(ctx, m.ID.String(), "device-1").
			Return(false, errors.New("connection refused"))
		deps.redismock.ExpectDel(lockKey).SetVal(1)

		_, err := deps.service.CheckIn(ctx, m.ID.String(), actor, validRequest("device-1"))
		require.Error(t, err)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Something went wrong. Please try again.", httpErr.Message)
		expectOutcomes(t, deps.registry, `attendance_checkins_total{outcome="error"} 1`)
	})

	t.Run("unknown meeting", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New().String()

		deps.meetings.EXPECT().Resolve(ctx, id).Return(meeting.Meeting{}, meetingerrors.ErrMeetingNotFound)

		_, err := deps.service.CheckIn(ctx, id, actor, validRequest("device-1"))
		assert.ErrorIs(t, err, meetingerrors.ErrMeetingNotFound)
	})
}

func TestAttendanceService_UndoCheckin(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	t.Run("clears check-in fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		meetingID := uuid.New().String()
		checkedIn := fixedNow
		fp := "device-1"
		row := &attendance.Attendance{
			ID:                uuid.New(),
			MeetingID:         uuid.MustParse(meetingID),
			FirstName:         "Ada",
			LastName:          "Lovelace",
			Email:             "ada@example.com",
			CheckInTime:       &checkedIn,
			DeviceFingerprint: &fp,
			Latitude:          floatPtr(1),
			Longitude:         floatPtr(2),
			DistanceMeters:    floatPtr(3),
			Status:            attendance.StatusPresent,
		}

		deps.meetings.EXPECT().GetByID(ctx, orgID, meetingID).Return(meeting.MeetingResponse{ID: meetingID}, nil)
		deps.repo.EXPECT().FindByIDAndMeeting(ctx, meetingID, row.ID.String()).Return(row, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *attendance.Attendance) error {
				assert.Equal(t, attendance.StatusUndone, a.Status)
				assert.Nil(t, a.CheckInTime)
				assert.Nil(t, a.DeviceFingerprint)
				assert.Nil(t, a.Latitude)
				assert.Nil(t, a.Longitude)
				assert.Nil(t, a.DistanceMeters)
				assert.Equal(t, "Ada", a.FirstName)
				return nil
			})

		resp, err := deps.service.UndoCheckin(ctx, orgID, meetingID, row.ID.String())
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusUndone, resp.Status)
		assert.Nil(t, resp.CheckInTime)
	})

	t.Run("already undone", func(t *testing.T) {
		deps := setupServiceTest(t)
		meetingID := uuid.New().String()
		row := &attendance.Attendance{ID: uuid.New(), Status: attendance.StatusUndone}

		deps.meetings.EXPECT().GetByID(ctx, orgID, meetingID).Return(meeting.MeetingResponse{}, nil)
		deps.repo.EXPECT().FindByIDAndMeeting(ctx, meetingID, row.ID.String()).Return(row, nil)

		_, err := deps.service.UndoCheckin(ctx, orgID, meetingID, row.ID.String())
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyUndone)
	})

	t.Run("meeting of another organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		meetingID := uuid.New().String()

		deps.meetings.EXPECT().GetByID(ctx, orgID, meetingID).Return(meeting.MeetingResponse{}, meetingerrors.ErrMeetingNotFound)

		_, err := deps.service.UndoCheckin(ctx, orgID, meetingID, uuid.New().String())
		assert.ErrorIs(t, err, meetingerrors.ErrMeetingNotFound)
	})

	t.Run("malformed attendance id", func(t *testing.T) {
		deps := setupServiceTest(t)
		meetingID := uuid.New().String()

		deps.meetings.EXPECT().GetByID(ctx, orgID, meetingID).Return(meeting.MeetingResponse{}, nil)

		_, err := deps.service.UndoCheckin(ctx, orgID, meetingID, "abc")
		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}

func TestAttendanceService_GetAllByMeeting(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	orgID := uuid.New().String()
	meetingID := uuid.New().String()
	checkedIn := fixedNow

	deps.meetings.EXPECT().GetByID(ctx, orgID, meetingID).Return(meeting.MeetingResponse{ID: meetingID}, nil)
	deps.repo.EXPECT().FindAllByMeeting(ctx, meetingID).Return([]attendance.Attendance{
		{ID: uuid.New(), MeetingID: uuid.MustParse(meetingID), FirstName: "Ada", CheckInTime: &checkedIn, Status: attendance.StatusPresent},
		{ID: uuid.New(), MeetingID: uuid.MustParse(meetingID), FirstName: "Alan", Status: attendance.StatusUndone},
	}, nil)

	resp, err := deps.service.GetAllByMeeting(ctx, orgID, meetingID)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "2026-03-10T09:05:00Z", *resp[0].CheckInTime)
	assert.Nil(t, resp[1].CheckInTime)
}
