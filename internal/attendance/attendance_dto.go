package attendance

import "go-attend/internal/checkin"

type CheckinRequest struct {
	FirstName         string            `json:"first_name" binding:"max=100"`
	LastName          string            `json:"last_name" binding:"max=100"`
	Email             string            `json:"email" binding:"max=255"`
	Location          *checkin.Location `json:"location"`
	DeviceFingerprint string            `json:"device_fingerprint" binding:"max=255"`
}

// Actor identifies who submitted a check-in. MemberID is empty for guests.
type Actor struct {
	MemberID  string
	IPAddress string
}

type CheckinResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	Warnings   []string           `json:"warnings"`
}

// RejectionDetails is returned to the client when a verdict is not valid.
type RejectionDetails struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type AttendanceResponse struct {
	ID             string   `json:"id"`
	MeetingID      string   `json:"meeting_id"`
	MemberID       *string  `json:"member_id,omitempty"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	CheckInTime    *string  `json:"check_in_time"`
	Status         string   `json:"status"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	DisplayAddress *string  `json:"display_address,omitempty"`
}
