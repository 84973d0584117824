package meeting

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultCheckinRadiusMeters applies when location verification is required
// but no radius was configured.
const DefaultCheckinRadiusMeters = 100

type Meeting struct {
	ID             uuid.UUID                    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID                    `gorm:"column:organization_id;type:uuid;not null;index"`
	Title          string                       `gorm:"column:title;type:varchar(200);not null"`
	StartDatetime  time.Time                    `gorm:"column:start_datetime;type:timestamptz;not null"`
	EndDatetime    time.Time                    `gorm:"column:end_datetime;type:timestamptz;not null"`
	Latitude       *float64                     `gorm:"column:latitude"`
	Longitude      *float64                     `gorm:"column:longitude"`
	Settings       datatypes.JSONType[Settings] `gorm:"column:settings;type:jsonb;not null"`
	CreatedAt      time.Time                    `gorm:"column:created_at"`
	UpdatedAt      time.Time                    `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt               `gorm:"column:deleted_at;index"`
}

func (Meeting) TableName() string {
	return "meetings"
}

// Settings holds the check-in rules of a meeting. A nil CheckinWindowSeconds
// means check-in is not time restricted; a nil LateCheckinSeconds means no
// check-in is accepted after the meeting ends.
type Settings struct {
	CheckinWindowSeconds        *int `json:"checkin_window_seconds"`
	LateCheckinSeconds          *int `json:"late_checkin_seconds"`
	RequireLocationVerification bool `json:"require_location_verification"`
	CheckinRadiusMeters         *int `json:"checkin_radius_meters"`
}

func (m Meeting) CheckinSettings() Settings {
	return m.Settings.Data()
}

// Coordinates reports the meeting location when both latitude and longitude are set.
func (m Meeting) Coordinates() (lat, lon float64, ok bool) {
	if m.Latitude == nil || m.Longitude == nil {
		return 0, 0, false
	}
	return *m.Latitude, *m.Longitude, true
}

// RadiusMeters returns the configured geofence radius or the default.
func (s Settings) RadiusMeters() int {
	if s.CheckinRadiusMeters == nil {
		return DefaultCheckinRadiusMeters
	}
	return *s.CheckinRadiusMeters
}
