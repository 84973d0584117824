package attendance

import (
	"errors"
	"fmt"
	"testing"

	attendanceerrors "go-attend/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	other := errors.New("boom")
	pkey := &pgconn.PgError{Code: "23505", ConstraintName: "attendances_pkey"}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "not found", in: gorm.ErrRecordNotFound, want: attendanceerrors.ErrAttendanceNotFound},
		{
			name: "unique meeting fingerprint",
			in:   &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_meeting_fingerprint"},
			want: attendanceerrors.ErrAlreadyCheckedIn,
		},
		{
			name: "wrapped unique violation",
			in:   fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_meeting_fingerprint"}),
			want: attendanceerrors.ErrAlreadyCheckedIn,
		},
		{
			name: "driver text",
			in:   errors.New(`ERROR: duplicate key value violates unique constraint "uq_attendance_meeting_fingerprint"`),
			want: attendanceerrors.ErrAlreadyCheckedIn,
		},
		{name: "other unique constraint", in: pkey, want: pkey},
		{name: "unknown", in: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapRepositoryError(tt.in))
		})
	}
}
