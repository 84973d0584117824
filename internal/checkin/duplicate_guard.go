package checkin

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=duplicate_guard.go -destination=mock/record_store_mock.go -package=mock

// RecordStore is the attendance lookup the guard consults.
type RecordStore interface {
	ExistsByMeetingAndFingerprint(ctx context.Context, meetingID, fingerprint string) (bool, error)
}

// DuplicateGuard reports whether a device already checked in to a meeting.
// Store errors are returned as-is wrapped; they are never mapped to a verdict.
type DuplicateGuard struct {
	store RecordStore
}

func NewDuplicateGuard(store RecordStore) *DuplicateGuard {
	return &DuplicateGuard{store: store}
}

func (g *DuplicateGuard) HasCheckedIn(ctx context.Context, meetingID, fingerprint string) (bool, error) {
	fingerprint = strings.TrimSpace(fingerprint)
	if fingerprint == "" {
		return false, nil
	}

	exists, err := g.store.ExistsByMeetingAndFingerprint(ctx, meetingID, fingerprint)
	if err != nil {
		return false, fmt.Errorf("duplicate guard lookup: %w", err)
	}
	return exists, nil
}
