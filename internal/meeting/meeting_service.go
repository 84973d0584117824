package meeting

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	meetingerrors "go-attend/internal/meeting/errors"
	"go-attend/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
)

const MeetingDetailKeyPrefix = "meetings:detail:"

func GetMeetingDetailKey(id string) string {
	return MeetingDetailKeyPrefix + id
}

//go:generate mockgen -source=meeting_service.go -destination=mock/meeting_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID string, req CreateMeetingRequest) (MeetingResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]MeetingResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (MeetingResponse, error)
	UpdateSettings(ctx context.Context, organizationID, id string, req UpdateSettingsRequest) (MeetingResponse, error)
	// Resolve loads a meeting for check-in evaluation, without organization scope.
	Resolve(ctx context.Context, id string) (Meeting, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("meeting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("meeting.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Minute
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		cacheTTL: cacheTTL,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, organizationID string, req CreateMeetingRequest) (MeetingResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return MeetingResponse{}, meetingerrors.ErrInvalidOrganizationID
	}

	start, end, err := parseWindow(req.StartDatetime, req.EndDatetime)
	if err != nil {
		log.Warn("create meeting invalid window",
			zap.String("start_datetime", req.StartDatetime),
			zap.String("end_datetime", req.EndDatetime),
			zap.Error(err),
		)
		return MeetingResponse{}, err
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return MeetingResponse{}, meetingerrors.ErrIncompleteCoordinates
	}

	m := &Meeting{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Title:          req.Title,
		StartDatetime:  start,
		EndDatetime:    end,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Settings:       datatypes.NewJSONType(req.Settings.toSettings()),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		log.Error("create meeting persist failed", zap.Error(err))
		return MeetingResponse{}, mapRepositoryError(err)
	}

	log.Info("create meeting success",
		zap.String("meeting_id", m.ID.String()),
		zap.String("organization_id", organizationID),
	)
	return mapToResponse(*m), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]MeetingResponse, error) {
	rows, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		s.logger.Error("get all meetings failed", zap.String("organization_id", organizationID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]MeetingResponse, len(rows))
	for i, m := range rows {
		res[i] = mapToResponse(m)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (MeetingResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MeetingResponse{}, meetingerrors.ErrMeetingNotFound
	}

	m, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return MeetingResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*m), nil
}

func (s *service) UpdateSettings(ctx context.Context, organizationID, id string, req UpdateSettingsRequest) (MeetingResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return MeetingResponse{}, meetingerrors.ErrMeetingNotFound
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return MeetingResponse{}, meetingerrors.ErrIncompleteCoordinates
	}

	m, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return MeetingResponse{}, mapRepositoryError(err)
	}

	m.Settings = datatypes.NewJSONType(req.Settings.toSettings())
	if req.Latitude != nil {
		m.Latitude = req.Latitude
		m.Longitude = req.Longitude
	}

	if err := s.repo.Update(ctx, m); err != nil {
		log.Error("update meeting settings persist failed", zap.String("meeting_id", id), zap.Error(err))
		return MeetingResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, id)
	log.Info("update meeting settings success", zap.String("meeting_id", id))
	return mapToResponse(*m), nil
}

func (s *service) Resolve(ctx context.Context, id string) (Meeting, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Meeting{}, meetingerrors.ErrMeetingNotFound
	}
	cacheKey := GetMeetingDetailKey(id)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var m Meeting
			if json.Unmarshal([]byte(cached), &m) == nil {
				return m, nil
			}
		}
	}

	// Concurrent check-ins for the same meeting share one database read.
	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		m, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		if s.rdb != nil {
			if data, err := json.Marshal(m); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("cache meeting failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return *m, nil
	})
	if err != nil {
		return Meeting{}, err
	}
	return v.(Meeting), nil
}

func (s *service) invalidate(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetMeetingDetailKey(id)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate meeting cache",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func parseWindow(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, meetingerrors.ErrInvalidDatetime
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, meetingerrors.ErrInvalidDatetime
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, meetingerrors.ErrInvalidMeetingWindow
	}
	return start.UTC(), end.UTC(), nil
}

func mapToResponse(m Meeting) MeetingResponse {
	return MeetingResponse{
		ID:             m.ID.String(),
		OrganizationID: m.OrganizationID.String(),
		Title:          m.Title,
		StartDatetime:  m.StartDatetime.UTC().Format(time.RFC3339),
		EndDatetime:    m.EndDatetime.UTC().Format(time.RFC3339),
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		Settings:       m.CheckinSettings(),
		CheckinPath:    fmt.Sprintf("/api/v1/meetings/%s/checkins", m.ID),
	}
}
