package events

import "time"

const AttendanceCheckedInTopic = "attend.attendance.checked_in.v1"

const AttendanceCheckedInType = "attendance_checked_in"

// AttendanceCheckedInEvent is published after a check-in is committed. The
// consumer uses the coordinates and IP address to resolve a display address.
type AttendanceCheckedInEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	AttendanceID string    `json:"attendance_id"`
	MeetingID    string    `json:"meeting_id"`
	MemberID     string    `json:"member_id,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	IPAddress    string    `json:"ip_address,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
