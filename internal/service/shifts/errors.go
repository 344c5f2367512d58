package shifts

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("shifts: staff not found")

	// ErrShiftNotFound возвращается, когда на дату нет смены
	ErrShiftNotFound = errors.New("shifts: shift not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("shifts: invalid input data")

	// ErrInvalidWeek возвращается, когда недели копирования не выровнены или совпадают
	ErrInvalidWeek = errors.New("shifts: source and target weeks must differ by a whole number of weeks")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("shifts: internal error")
)
