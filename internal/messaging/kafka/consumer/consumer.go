package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-attend/internal/enrichment"
	"go-attend/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const storeAttempts = 3

var storeRetryBackoff = 200 * time.Millisecond

// DisplayAddressStore persists the resolved address of a check-in.
type DisplayAddressStore interface {
	UpdateDisplayAddress(ctx context.Context, id, displayAddress string) error
}

// ConsumeAttendanceCheckedIn resolves a display address for every committed
// check-in. Enrichment is best effort: an unresolved address is committed and
// skipped. A failing store write is retried with backoff; once the attempts
// are used up the message is committed anyway and the address stays empty.
func ConsumeAttendanceCheckedIn(
	ctx context.Context,
	reader *kafkago.Reader,
	resolver enrichment.Resolver,
	store DisplayAddressStore,
	timeout time.Duration,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_checked_in")
	log.Info("attendance checked-in consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance checked-in consumer stopped")
				return
			}
			log.Error("fetch attendance checked-in message failed", zap.Error(err))
			continue
		}

		if err := HandleAttendanceCheckedIn(ctx, msg.Value, resolver, store, timeout, log); err != nil {
			if ctx.Err() != nil {
				log.Info("attendance checked-in consumer stopped")
				return
			}
			log.Error("enrich attendance failed, dropping",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance checked-in message failed", zap.Error(err))
		}
	}
}

// HandleAttendanceCheckedIn processes one event payload. It returns an error
// only when the store write still fails after storeAttempts tries.
func HandleAttendanceCheckedIn(
	ctx context.Context,
	payload []byte,
	resolver enrichment.Resolver,
	store DisplayAddressStore,
	timeout time.Duration,
	log *zap.Logger,
) error {
	var event events.AttendanceCheckedInEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		log.Error("decode attendance_checked_in event failed", zap.Error(err))
		return nil
	}

	lookupCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	address := enrichment.DisplayAddress(lookupCtx, resolver, event.Latitude, event.Longitude, event.IPAddress)
	if address == "" {
		log.Info("attendance location unresolved",
			zap.String("attendance_id", event.AttendanceID),
			zap.String("request_id", event.RequestID),
		)
		return nil
	}

	if err := storeDisplayAddress(ctx, store, event.AttendanceID, address, log); err != nil {
		return err
	}

	log.Info("attendance display address stored",
		zap.String("attendance_id", event.AttendanceID),
		zap.String("meeting_id", event.MeetingID),
		zap.String("request_id", event.RequestID),
	)
	return nil
}

func storeDisplayAddress(ctx context.Context, store DisplayAddressStore, id, address string, log *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= storeAttempts; attempt++ {
		if err = store.UpdateDisplayAddress(ctx, id, address); err == nil {
			return nil
		}
		if attempt == storeAttempts {
			break
		}
		log.Warn("store display address failed, retrying",
			zap.String("attendance_id", id),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * storeRetryBackoff):
		}
	}
	return err
}
