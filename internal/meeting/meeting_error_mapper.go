package meeting

import (
	"errors"

	meetingerrors "go-attend/internal/meeting/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return meetingerrors.ErrMeetingNotFound
	}
	return err
}
