package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/scheduling"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInPast возвращается при попытке записи на прошедшее время
	ErrInPast = errors.New("create_appointment: appointment starts in the past")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден или неактивен
	ErrStaffNotFound = errors.New("create_appointment: staff not found")

	// ErrCabinNotFound возвращается, когда кабинет не найден или неактивен
	ErrCabinNotFound = errors.New("create_appointment: cabin not found")

	// ErrClientNotFound возвращается, когда клиент не найден в справочнике
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrClientBlocked возвращается, когда клиенту запрещена запись
	ErrClientBlocked = errors.New("create_appointment: client is blocked")

	// ErrRejected возвращается, когда запись нарушает график или пересекается с другой записью
	ErrRejected = errors.New("create_appointment: appointment rejected")

	// ErrSlotTaken возвращается, когда слот занял параллельный запрос
	ErrSlotTaken = errors.New("create_appointment: slot was taken concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// RejectionError отказ в записи с причиной, пригодной для показа пользователю
type RejectionError struct {
	Reason       scheduling.RejectionReason
	Message      string
	ConflictWith int64
}

func newRejectionError(res scheduling.Result) *RejectionError {
	return &RejectionError{Reason: res.Reason, Message: res.Message, ConflictWith: res.ConflictWith}
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrRejected, e.Reason, e.Message)
}

func (e *RejectionError) Unwrap() error {
	return ErrRejected
}
