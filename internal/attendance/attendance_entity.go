package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusUndone  = "UNDONE"
)

// Attendance is a persisted check-in. A row whose check-in was undone keeps
// the attendee's name and email but loses its time, device and location.
type Attendance struct {
	ID                uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	MeetingID         uuid.UUID      `gorm:"column:meeting_id;type:uuid;not null;uniqueIndex:uq_attendance_meeting_fingerprint,priority:1"`
	MemberID          *uuid.UUID     `gorm:"column:member_id;type:uuid;index"`
	FirstName         string         `gorm:"column:first_name;type:varchar(100);not null"`
	LastName          string         `gorm:"column:last_name;type:varchar(100);not null"`
	Email             string         `gorm:"column:email;type:varchar(255);not null"`
	CheckInTime       *time.Time     `gorm:"column:check_in_time;type:timestamptz"`
	DeviceFingerprint *string        `gorm:"column:device_fingerprint;type:varchar(255);uniqueIndex:uq_attendance_meeting_fingerprint,priority:2"`
	Latitude          *float64       `gorm:"column:latitude"`
	Longitude         *float64       `gorm:"column:longitude"`
	DistanceMeters    *float64       `gorm:"column:distance_meters"`
	Status            string         `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	IPAddress         *string        `gorm:"column:ip_address;type:varchar(64)"`
	DisplayAddress    *string        `gorm:"column:display_address;type:text"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}

