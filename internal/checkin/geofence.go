package checkin

import (
	"fmt"
	"math"

	"go-attend/internal/geo"
	"go-attend/internal/meeting"
)

const (
	msgCoordinatesUnavailable = "Meeting location is not available, so your location could not be verified."
	msgLocationRequired       = "Location is required to check in to this meeting. Please enable location services and try again."
)

// Location is the attendee position reported by the client. Either field may
// be missing when the device could not resolve it.
type Location struct {
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
}

type GeofenceResult struct {
	IsWithinRadius       bool     `json:"is_within_radius"`
	DistanceMeters       *float64 `json:"distance_meters,omitempty"`
	RequiredRadiusMeters *int     `json:"required_radius_meters,omitempty"`
	Message              *string  `json:"message,omitempty"`
}

// EvaluateGeofence decides whether loc satisfies the meeting geofence.
// A meeting without coordinates passes with an advisory message.
func EvaluateGeofence(m meeting.Meeting, loc *Location) GeofenceResult {
	settings := m.CheckinSettings()
	if !settings.RequireLocationVerification {
		return GeofenceResult{IsWithinRadius: true}
	}

	meetingLat, meetingLon, ok := m.Coordinates()
	if !ok {
		msg := msgCoordinatesUnavailable
		return GeofenceResult{IsWithinRadius: true, Message: &msg}
	}

	if loc == nil || loc.Latitude == nil || loc.Longitude == nil {
		msg := msgLocationRequired
		return GeofenceResult{IsWithinRadius: false, Message: &msg}
	}

	distance := geo.DistanceMeters(meetingLat, meetingLon, *loc.Latitude, *loc.Longitude)
	radius := settings.RadiusMeters()
	res := GeofenceResult{
		IsWithinRadius:       distance <= float64(radius),
		DistanceMeters:       &distance,
		RequiredRadiusMeters: &radius,
	}
	if !res.IsWithinRadius {
		msg := fmt.Sprintf(
			"You are %dm away from the meeting location. You must be within %dm to check in.",
			int64(math.Round(distance)), radius,
		)
		res.Message = &msg
	}
	return res
}
