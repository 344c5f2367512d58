package get_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/appointments"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/appointments/models"
)

type fakeService struct {
	resp *models.AppointmentResponse
	err  error
}

func (f *fakeService) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func get(h *Handler, id string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+id, nil),
		map[string]string{"appointmentId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := get(NewHandler(&fakeService{resp: &models.AppointmentResponse{ID: 4, Status: "pending"}}, nopLogger{}), "4")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(4), body.ID)
	assert.Equal(t, "pending", body.Status)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(NewHandler(&fakeService{}, nopLogger{}), "x").Code)
	assert.Equal(t, http.StatusNotFound,
		get(NewHandler(&fakeService{err: appointments.ErrAppointmentNotFound}, nopLogger{}), "4").Code)
	assert.Equal(t, http.StatusInternalServerError,
		get(NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{}), "4").Code)
}
