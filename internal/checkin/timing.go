package checkin

import (
	"fmt"
	"math"
	"time"

	"go-attend/internal/meeting"
)

const displayTimeLayout = "Mon, 02 Jan 2006 15:04 MST"

const msgMeetingEndedNoLate = "This meeting has ended and late check-in is not permitted."

type TimingResult struct {
	CanCheckin bool    `json:"can_checkin"`
	IsEarly    bool    `json:"is_early"`
	IsLate     bool    `json:"is_late"`
	Message    *string `json:"message,omitempty"`
}

// TimingPolicy classifies a point in time against a meeting's check-in window.
// Times in messages are rendered in the policy's location.
type TimingPolicy struct {
	loc *time.Location
}

func NewTimingPolicy(loc *time.Location) *TimingPolicy {
	if loc == nil {
		loc = time.UTC
	}
	return &TimingPolicy{loc: loc}
}

func (p *TimingPolicy) Evaluate(m meeting.Meeting, now time.Time) TimingResult {
	settings := m.CheckinSettings()
	if settings.CheckinWindowSeconds == nil {
		return TimingResult{CanCheckin: true}
	}

	opensAt := m.StartDatetime.Add(-seconds(*settings.CheckinWindowSeconds))
	if now.Before(opensAt) {
		minutes := int(math.Ceil(opensAt.Sub(now).Minutes()))
		msg := fmt.Sprintf(
			"Check-in opens in %d %s. The meeting starts at %s.",
			minutes, pluralize(minutes, "minute"), p.format(m.StartDatetime),
		)
		return TimingResult{IsEarly: true, Message: &msg}
	}

	if settings.LateCheckinSeconds != nil {
		closesAt := m.EndDatetime.Add(seconds(*settings.LateCheckinSeconds))
		if now.After(closesAt) {
			msg := fmt.Sprintf("Check-in closed at %s. Late check-in is no longer accepted.", p.format(closesAt))
			return TimingResult{IsLate: true, Message: &msg}
		}
	} else if now.After(m.EndDatetime) {
		msg := msgMeetingEndedNoLate
		return TimingResult{IsLate: true, Message: &msg}
	}

	return TimingResult{CanCheckin: true}
}

func (p *TimingPolicy) format(t time.Time) string {
	return t.In(p.loc).Format(displayTimeLayout)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
