package checkin

import (
	"regexp"
	"strings"
	"time"

	"go-attend/internal/meeting"
)

const (
	msgFirstNameRequired = "First name is required."
	msgLastNameRequired  = "Last name is required."
	msgEmailRequired     = "Email is required."
	msgEmailInvalid      = "Please enter a valid email address."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Attempt is a single check-in submission. It is never persisted unless the
// verdict for it is valid.
type Attempt struct {
	FirstName         string
	LastName          string
	Email             string
	Location          *Location
	DeviceFingerprint string
}

// Verdict is the outcome of validating an attempt. Errors block the check-in,
// warnings do not.
type Verdict struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type Validator struct {
	timing *TimingPolicy
}

func NewValidator(timing *TimingPolicy) *Validator {
	if timing == nil {
		timing = NewTimingPolicy(time.UTC)
	}
	return &Validator{timing: timing}
}

// Validate evaluates fields, timing and geofence rules for an attempt at now.
// It has no side effects.
func (v *Validator) Validate(m meeting.Meeting, a Attempt, now time.Time) Verdict {
	errs := validateFields(a)
	warnings := make([]string, 0)

	if t := v.timing.Evaluate(m, now); !t.CanCheckin && t.Message != nil {
		errs = append(errs, *t.Message)
	}

	// The geofence only runs for attempts that carry a location.
	settings := m.CheckinSettings()
	if a.Location != nil {
		g := EvaluateGeofence(m, a.Location)
		switch {
		case !g.IsWithinRadius && g.Message != nil:
			if settings.RequireLocationVerification {
				errs = append(errs, *g.Message)
			} else {
				warnings = append(warnings, *g.Message)
			}
		case g.Message != nil:
			// fail-open advisory, e.g. the meeting has no coordinates
			warnings = append(warnings, *g.Message)
		}
	}

	return Verdict{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

func validateFields(a Attempt) []string {
	errs := make([]string, 0, 3)
	if strings.TrimSpace(a.FirstName) == "" {
		errs = append(errs, msgFirstNameRequired)
	}
	if strings.TrimSpace(a.LastName) == "" {
		errs = append(errs, msgLastNameRequired)
	}

	email := strings.TrimSpace(a.Email)
	switch {
	case email == "":
		errs = append(errs, msgEmailRequired)
	case !emailPattern.MatchString(email):
		errs = append(errs, msgEmailInvalid)
	}
	return errs
}
