package find_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("find_slots: service not found")

	// ErrStaffNotFound возвращается, когда указанный сотрудник не найден или неактивен
	ErrStaffNotFound = errors.New("find_slots: staff not found")

	// ErrCabinNotFound возвращается, когда указанный кабинет не найден или неактивен
	ErrCabinNotFound = errors.New("find_slots: cabin not found")

	// ErrInvalidDate возвращается, когда дата начала поиска в прошлом
	ErrInvalidDate = errors.New("find_slots: start date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_slots: internal error")
)
