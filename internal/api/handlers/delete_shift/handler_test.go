package delete_shift

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/shifts"
)

type fakeService struct {
	staffID int64
	date    time.Time
	err     error
}

func (f *fakeService) DeleteShift(ctx context.Context, staffID int64, date time.Time) error {
	f.staffID, f.date = staffID, date
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func del(h *Handler, staffID, date string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/staff/"+staffID+"/shifts/"+date, nil)
	req = mux.SetURLVars(req, map[string]string{"staffId": staffID, "date": date})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := del(NewHandler(svc, nopLogger{}), "3", "2025-03-10")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(3), svc.staffID)
	assert.Equal(t, "2025-03-10", svc.date.Format("2006-01-02"))
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		staffID string
		date    string
		err     error
		status  int
	}{
		{name: "bad staff", staffID: "-1", date: "2025-03-10", status: http.StatusBadRequest},
		{name: "bad date", staffID: "3", date: "tomorrow", status: http.StatusBadRequest},
		{name: "staff not found", staffID: "3", date: "2025-03-10", err: shifts.ErrStaffNotFound, status: http.StatusNotFound},
		{name: "shift not found", staffID: "3", date: "2025-03-10", err: shifts.ErrShiftNotFound, status: http.StatusNotFound},
		{name: "internal", staffID: "3", date: "2025-03-10", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := del(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.staffID, tt.date)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
