package attendance_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-attend/internal/attendance"
	attendanceerrors "go-attend/internal/attendance/errors"
	attendanceMock "go-attend/internal/attendance/mock"
	"go-attend/internal/middleware"
	"go-attend/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(h *attendance.Handler, claims map[string]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		for k, v := range claims {
			c.Set(k, v)
		}
		c.Next()
	})
	r.POST("/meetings/:id/checkins", h.CheckIn)
	r.GET("/meetings/:id/checkins", h.GetAll)
	r.DELETE("/meetings/:id/checkins/:attendanceId", h.Undo)
	return r
}

type errorBody struct {
	Ok    bool `json:"ok"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details struct {
			Errors   []string `json:"errors"`
			Warnings []string `json:"warnings"`
		} `json:"details"`
	} `json:"error"`
}

func postCheckin(r *gin.Engine, meetingID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/meetings/"+meetingID+"/checkins", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "198.51.100.4:5555"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAttendanceHandler_CheckIn(t *testing.T) {
	meetingID := uuid.New().String()
	body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","device_fingerprint":"fp-1","location":{"latitude":51.5,"longitude":-0.12}}`

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendanceMock.NewMockService(ctrl)
		memberID := uuid.New().String()

		svc.EXPECT().
			CheckIn(gomock.Any(), meetingID, attendance.Actor{MemberID: memberID, IPAddress: "198.51.100.4"}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ attendance.Actor, req attendance.CheckinRequest) (attendance.CheckinResponse, error) {
				assert.Equal(t, "fp-1", req.DeviceFingerprint)
				require.NotNil(t, req.Location)
				assert.Equal(t, 51.5, *req.Location.Latitude)
				return attendance.CheckinResponse{
					Attendance: attendance.AttendanceResponse{ID: uuid.New().String(), Status: attendance.StatusPresent},
					Warnings:   []string{},
				}, nil
			})

		r := setupRouter(attendance.NewHandler(svc), map[string]string{middleware.ContextUserID: memberID})
		w := postCheckin(r, meetingID, body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"warnings":[]`)
	})

	t.Run("rejected verdict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendanceMock.NewMockService(ctrl)

		svc.EXPECT().
			CheckIn(gomock.Any(), meetingID, gomock.Any(), gomock.Any()).
			Return(attendance.CheckinResponse{}, apperror.WithDetails(attendanceerrors.ErrCheckinRejected, attendance.RejectionDetails{
				Errors:   []string{"This meeting has ended and late check-in is not permitted."},
				Warnings: []string{},
			}))

		r := setupRouter(attendance.NewHandler(svc), nil)
		w := postCheckin(r, meetingID, body)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var env errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeValidationFailed, env.Error.Code)
		assert.Equal(t, []string{"This meeting has ended and late check-in is not permitted."}, env.Error.Details.Errors)
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendanceMock.NewMockService(ctrl)
		svc.EXPECT().
			CheckIn(gomock.Any(), meetingID, gomock.Any(), gomock.Any()).
			Return(attendance.CheckinResponse{}, attendanceerrors.ErrAlreadyCheckedIn)

		r := setupRouter(attendance.NewHandler(svc), nil)
		w := postCheckin(r, meetingID, body)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("store failure hides internals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendanceMock.NewMockService(ctrl)
		svc.EXPECT().
			CheckIn(gomock.Any(), meetingID, gomock.Any(), gomock.Any()).
			Return(attendance.CheckinResponse{}, errors.New("dial tcp 10.0.0.3:5432: connection refused"))

		r := setupRouter(attendance.NewHandler(svc), nil)
		w := postCheckin(r, meetingID, body)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Something went wrong. Please try again.")
		assert.NotContains(t, w.Body.String(), "10.0.0.3")
	})

	t.Run("latitude out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendanceMock.NewMockService(ctrl)

		r := setupRouter(attendance.NewHandler(svc), nil)
		w := postCheckin(r, meetingID, `{"first_name":"Ada","last_name":"L","email":"a@b.co","location":{"latitude":123,"longitude":0}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "out of range")
	})
}

func TestAttendanceHandler_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := attendanceMock.NewMockService(ctrl)
	orgID := uuid.New().String()
	meetingID := uuid.New().String()

	rows := make([]attendance.AttendanceResponse, 3)
	for i := range rows {
		rows[i] = attendance.AttendanceResponse{ID: uuid.New().String()}
	}
	svc.EXPECT().GetAllByMeeting(gomock.Any(), orgID, meetingID).Return(rows, nil)

	r := setupRouter(attendance.NewHandler(svc), map[string]string{middleware.ContextOrganizationID: orgID})
	req := httptest.NewRequest(http.MethodGet, "/meetings/"+meetingID+"/checkins?page=2&page_size=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []attendance.AttendanceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, rows[2].ID, env.Data[0].ID)
}

func TestAttendanceHandler_Undo(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := attendanceMock.NewMockService(ctrl)
	orgID := uuid.New().String()
	meetingID := uuid.New().String()
	attendanceID := uuid.New().String()

	svc.EXPECT().
		UndoCheckin(gomock.Any(), orgID, meetingID, attendanceID).
		Return(attendance.AttendanceResponse{ID: attendanceID, Status: attendance.StatusUndone}, nil)

	r := setupRouter(attendance.NewHandler(svc), map[string]string{middleware.ContextOrganizationID: orgID})
	req := httptest.NewRequest(http.MethodDelete, "/meetings/"+meetingID+"/checkins/"+attendanceID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), attendance.StatusUndone)
}
