package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval возвращается для интервалов с start >= end
var ErrInvalidInterval = errors.New("domain: interval start must be before end")

// TimeInterval half-open time range [Start, End)
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval validates and builds an interval
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	interval := TimeInterval{Start: start, End: end}
	if err := interval.Validate(); err != nil {
		return TimeInterval{}, err
	}
	return interval, nil
}

// Validate rejects zero and negative length intervals
func (i TimeInterval) Validate() error {
	if i.Start.IsZero() || i.End.IsZero() || !i.Start.Before(i.End) {
		return fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval,
			i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
	}
	return nil
}

// Duration returns End - Start
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether the two half-open intervals intersect.
// Touching endpoints do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}
