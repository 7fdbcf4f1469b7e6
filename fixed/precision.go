package fixed

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
)

const (
	// DefaultShift is the precision used if Init was never called: 10 bits, or 1/1024.
	DefaultShift = 10
	// MinShift and MaxShift limit the supported precision.
	MinShift = 1
	MaxShift = 30

	// EnvPrefix is the prefix for environment variables read by ConfigFromEnv.
	EnvPrefix = "FXMATH_"
	// EnvShift holds the number of fractional bits.
	EnvShift = EnvPrefix + "SHIFT"
)

// Config holds the process-wide fixed-point precision.
type Config struct {
	// Shift is the number of fractional bits. Values are stored as real*2^Shift.
	Shift uint
}

// DefaultConfig returns a config with DefaultShift.
func DefaultConfig() Config {
	return Config{Shift: DefaultShift}
}

// ConfigFromEnv returns the default config, overridden by the FXMATH_SHIFT variable, if it's set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	s, ok := os.LookupEnv(EnvShift)
	if !ok || s == "" {
		return cfg, nil
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return cfg, fmt.Errorf("parsing %s=%q: %w", EnvShift, s, ErrInvalidShift)
	}
	cfg.Shift = uint(v)
	return cfg, cfg.Validate()
}

// Validate checks that the shift is in [MinShift, MaxShift].
func (c Config) Validate() error {
	if c.Shift < MinShift || c.Shift > MaxShift {
		return fmt.Errorf("shift %d not in [%d, %d]: %w", c.Shift, MinShift, MaxShift, ErrInvalidShift)
	}
	return nil
}

// Multiplier returns 2^Shift.
func (c Config) Multiplier() int64 {
	return 1 << c.Shift
}

var (
	initMu sync.Mutex
	frozen atomic.Bool

	// shift and multiplier are written only under initMu before frozen is set,
	// and are read-only afterwards.
	shift      uint  = DefaultShift
	multiplier int64 = 1 << DefaultShift
)

// Init sets the process-wide precision. It must be called at program start,
// before any value is constructed or used in arithmetic.
// Values don't carry their precision, so it cannot be changed later:
// once the precision is frozen, either by Init or by the first operation
// that needs it, calling Init with a different shift returns ErrPrecisionFrozen.
// Calling Init again with the same shift is a no-op.
func Init(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	initMu.Lock()
	defer initMu.Unlock()
	if frozen.Load() {
		if cfg.Shift == shift {
			return nil
		}
		return fmt.Errorf("cannot set shift %d, already using %d: %w", cfg.Shift, shift, ErrPrecisionFrozen)
	}
	shift, multiplier = cfg.Shift, cfg.Multiplier()
	frozen.Store(true)
	Logger().Info().Uint("shift", shift).Int64("multiplier", multiplier).Msg("fixed-point precision configured")
	return nil
}

// Shift returns the number of fractional bits. Freezes the precision.
func Shift() uint {
	return bitShift()
}

// Multiplier returns 2^Shift(). Freezes the precision.
func Multiplier() int64 {
	if !frozen.Load() {
		freeze()
	}
	return multiplier
}

// Frozen returns true, if the precision can no longer be changed.
func Frozen() bool {
	return frozen.Load()
}

func bitShift() uint {
	if !frozen.Load() {
		freeze()
	}
	return shift
}

func freeze() {
	initMu.Lock()
	defer initMu.Unlock()
	if frozen.Load() {
		return
	}
	frozen.Store(true)
	Logger().Debug().Uint("shift", shift).Msg("fixed-point precision frozen at default")
}
