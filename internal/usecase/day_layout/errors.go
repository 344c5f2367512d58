package day_layout

import "errors"

var (
	// ErrCabinNotFound возвращается, когда кабинет не найден
	ErrCabinNotFound = errors.New("day_layout: cabin not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("day_layout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("day_layout: internal error")
)
