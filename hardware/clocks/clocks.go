package clocks

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ClockRate is a frequency in Hz. It implements the flag.Value interface and
// accepts values such as "500", "500Hz" or "1KHz"
type ClockRate int64

const (
	Hz  ClockRate = 1
	KHz ClockRate = 1000 * Hz
	MHz ClockRate = 1000 * KHz
)

// Sentinel errors returned by Set()
var (
	NotPositive   = errors.New("clock rate must be positive")
	UnknownSuffix = errors.New("unknown clock rate suffix")
)

func (c ClockRate) String() string {
	switch {
	case c >= MHz && c%MHz == 0:
		return fmt.Sprintf("%dMHz", c/MHz)
	case c >= KHz && c%KHz == 0:
		return fmt.Sprintf("%dKHz", c/KHz)
	}
	return fmt.Sprintf("%dHz", int64(c))
}

// Set parses the string and sets the clock rate
func (c *ClockRate) Set(s string) error {
	var rate int64
	var suffix string

	n, err := fmt.Sscanf(strings.TrimSpace(s), "%d%s", &rate, &suffix)
	if err != nil && !(n == 1 && errors.Is(err, io.EOF)) {
		return fmt.Errorf("clock rate: %w", err)
	}
	if rate <= 0 {
		return NotPositive
	}

	switch strings.ToLower(suffix) {
	case "mhz":
		rate *= int64(MHz)
	case "khz":
		rate *= int64(KHz)
	case "hz", "":
	default:
		return fmt.Errorf("%w: %s", UnknownSuffix, suffix)
	}

	*c = ClockRate(rate)
	return nil
}

// Duration is the period of one clock tick
func (c ClockRate) Duration() time.Duration {
	if c <= 0 {
		return 0
	}
	return time.Second / time.Duration(c)
}
