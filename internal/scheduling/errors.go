package scheduling

import (
	"errors"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

var (
	// ErrInvalidInterval возвращается для кандидата с start >= end
	ErrInvalidInterval = domain.ErrInvalidInterval

	// ErrInvalidStaff возвращается, когда кандидат не привязан к сотруднику
	ErrInvalidStaff = errors.New("scheduling: staff id must be positive")

	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("scheduling: service duration must be positive")

	// ErrInvalidHorizon возвращается при неположительном горизонте поиска
	ErrInvalidHorizon = errors.New("scheduling: search horizon must be positive")

	// ErrInvalidStep возвращается при неположительном шаге генерации слотов
	ErrInvalidStep = errors.New("scheduling: slot step must be positive")

	// ErrInvalidWorkingHours возвращается, когда часы работы салона пусты или перевёрнуты
	ErrInvalidWorkingHours = errors.New("scheduling: opening time must be before closing time")
)
