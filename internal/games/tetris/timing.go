package tetris

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Speed factor bounds offered by the speed control.
const (
	MinSpeedFactor  = 0.2
	MaxSpeedFactor  = 2.0
	SpeedFactorStep = 0.1
)

// ErrInvalidSpeedFactor is returned for speed factors that are not finite and positive.
var ErrInvalidSpeedFactor = errors.New("tetris: speed factor must be a finite positive number")

// Timing is the gravity curve: each level shortens the drop interval by
// Decrement until it reaches Min.
type Timing struct {
	Base      time.Duration
	Decrement time.Duration
	Min       time.Duration
}

// DefaultTiming returns the 800ms/50ms/100ms curve.
func DefaultTiming() Timing {
	return Timing{
		Base:      800 * time.Millisecond,
		Decrement: 50 * time.Millisecond,
		Min:       100 * time.Millisecond,
	}
}

// Interval returns the drop interval for level scaled by speedFactor:
//
//	max(Base - (level-1)*Decrement, Min) / speedFactor
//
// The result saturates to [1ns, math.MaxInt64] so it is always positive.
func (t Timing) Interval(level int, speedFactor float64) time.Duration {
	if level < 1 {
		level = 1
	}
	d := t.Base - time.Duration(level-1)*t.Decrement
	if d < t.Min {
		d = t.Min
	}
	return scaleDuration(d, speedFactor)
}

func scaleDuration(d time.Duration, f float64) time.Duration {
	v := float64(d) / f
	switch {
	case math.IsNaN(v) || v < 1:
		return 1
	case v >= float64(math.MaxInt64):
		return math.MaxInt64
	}
	return time.Duration(v)
}

// CheckSpeedFactor validates f and also rejects factors that would push
// any level's interval outside the time.Duration range.
func (t Timing) CheckSpeedFactor(f float64) error {
	if err := ValidateSpeedFactor(f); err != nil {
		return err
	}
	if float64(t.Min)/f < 1 || float64(t.Base)/f >= float64(math.MaxInt64) {
		return fmt.Errorf("%w: %v is out of range for a %v..%v curve", ErrInvalidSpeedFactor, f, t.Min, t.Base)
	}
	return nil
}

// ValidateSpeedFactor rejects zero, negative, NaN and infinite factors.
func ValidateSpeedFactor(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidSpeedFactor, f)
	}
	return nil
}

// ClampSpeedFactor bounds f to the range offered by the speed control and
// rounds it to the control's step.
func ClampSpeedFactor(f float64) float64 {
	if math.IsNaN(f) {
		return 1
	}
	f = math.Round(f/SpeedFactorStep) * SpeedFactorStep
	return math.Max(MinSpeedFactor, math.Min(MaxSpeedFactor, f))
}
