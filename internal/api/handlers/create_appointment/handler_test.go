package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduler/internal/scheduling"
	createAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	req  *createAppointment.Request
	resp *createAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.req = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const validBody = `{"clientId":5,"staffId":1,"cabinId":2,"serviceId":3,"startsAt":"2025-03-10T10:00:00+03:00"}`

func serve(h *Handler, body string, withUser bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if withUser {
		req = req.WithContext(middleware.WithUserID(req.Context(), 77))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	startsAt := time.Date(2025, 3, 10, 10, 0, 0, 0, time.FixedZone("MSK", 3*60*60))
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:              11,
		ClientID:        5,
		StaffID:         1,
		CabinID:         2,
		ServiceID:       3,
		StartsAt:        startsAt,
		EndsAt:          startsAt.Add(time.Hour),
		DurationMinutes: 60,
		Status:          "pending",
	}}
	rec := serve(NewHandler(uc, nopLogger{}), validBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(77), uc.req.UserID)
	assert.True(t, uc.req.StartsAt.Equal(startsAt))

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(11), body.ID)
	assert.Equal(t, "2025-03-10T11:00:00+03:00", body.EndsAt)
}

func TestHandle_Rejection(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("wrapped: %w", &createAppointment.RejectionError{
		Reason:       scheduling.ReasonOverlap,
		Message:      "сотрудник занят 10:30-11:30",
		ConflictWith: 9,
	})}
	rec := serve(NewHandler(uc, nopLogger{}), validBody, true)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body RejectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "overlap_detected", body.Reason)
	require.NotNil(t, body.ConflictWith)
	assert.Equal(t, int64(9), *body.ConflictWith)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		withUser bool
		err      error
		status   int
	}{
		{name: "no user", body: validBody, withUser: false, status: http.StatusUnauthorized},
		{name: "malformed body", body: `{`, withUser: true, status: http.StatusBadRequest},
		{name: "no offset", body: `{"startsAt":"2025-03-10T10:00:00"}`, withUser: true, status: http.StatusBadRequest},
		{name: "invalid input", body: validBody, withUser: true, err: createAppointment.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "in past", body: validBody, withUser: true, err: createAppointment.ErrInPast, status: http.StatusBadRequest},
		{name: "service", body: validBody, withUser: true, err: createAppointment.ErrServiceNotFound, status: http.StatusNotFound},
		{name: "staff", body: validBody, withUser: true, err: createAppointment.ErrStaffNotFound, status: http.StatusNotFound},
		{name: "cabin", body: validBody, withUser: true, err: createAppointment.ErrCabinNotFound, status: http.StatusNotFound},
		{name: "client", body: validBody, withUser: true, err: createAppointment.ErrClientNotFound, status: http.StatusNotFound},
		{name: "blocked", body: validBody, withUser: true, err: createAppointment.ErrClientBlocked, status: http.StatusForbidden},
		{name: "slot taken", body: validBody, withUser: true, err: createAppointment.ErrSlotTaken, status: http.StatusConflict},
		{name: "internal", body: validBody, withUser: true, err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.body, tt.withUser)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
