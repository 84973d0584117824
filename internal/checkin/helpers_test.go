package checkin_test

import (
	"time"

	"go-attend/internal/meeting"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var baseTime = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// metersNorth returns the latitude offset that lies d meters north of the equator.
func metersNorth(d float64) float64 {
	return d / 111194.92664455873
}

func newMeeting(start time.Time, duration time.Duration, settings meeting.Settings) meeting.Meeting {
	return meeting.Meeting{
		ID:            uuid.New(),
		Title:         "Weekly sync",
		StartDatetime: start,
		EndDatetime:   start.Add(duration),
		Settings:      datatypes.NewJSONType(settings),
	}
}

func withCoordinates(m meeting.Meeting, lat, lon float64) meeting.Meeting {
	m.Latitude = floatPtr(lat)
	m.Longitude = floatPtr(lon)
	return m
}
