package meeting

type SettingsRequest struct {
	CheckinWindowSeconds        *int `json:"checkin_window_seconds" binding:"omitempty,min=0"`
	LateCheckinSeconds          *int `json:"late_checkin_seconds" binding:"omitempty,min=0"`
	RequireLocationVerification bool `json:"require_location_verification"`
	CheckinRadiusMeters         *int `json:"checkin_radius_meters" binding:"omitempty,min=1"`
}

type CreateMeetingRequest struct {
	Title         string          `json:"title" binding:"required,max=200"`
	StartDatetime string          `json:"start_datetime" binding:"required"`
	EndDatetime   string          `json:"end_datetime" binding:"required"`
	Latitude      *float64        `json:"latitude" binding:"omitempty,latitude"`
	Longitude     *float64        `json:"longitude" binding:"omitempty,longitude"`
	Settings      SettingsRequest `json:"settings"`
}

type UpdateSettingsRequest struct {
	Latitude  *float64        `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64        `json:"longitude" binding:"omitempty,longitude"`
	Settings  SettingsRequest `json:"settings"`
}

type MeetingResponse struct {
	ID             string   `json:"id"`
	OrganizationID string   `json:"organization_id"`
	Title          string   `json:"title"`
	StartDatetime  string   `json:"start_datetime"`
	EndDatetime    string   `json:"end_datetime"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Settings       Settings `json:"settings"`
	CheckinPath    string   `json:"checkin_path"`
}

func (r SettingsRequest) toSettings() Settings {
	return Settings{
		CheckinWindowSeconds:        r.CheckinWindowSeconds,
		LateCheckinSeconds:          r.LateCheckinSeconds,
		RequireLocationVerification: r.RequireLocationVerification,
		CheckinRadiusMeters:         r.CheckinRadiusMeters,
	}
}
