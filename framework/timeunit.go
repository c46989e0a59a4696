package framework

import (
	"fmt"
	"strings"
	"time"
)

// TimeUnit selects how durations are formatted in reports.
type TimeUnit int

const (
	Microseconds TimeUnit = iota
	Milliseconds
	Seconds
)

func (u TimeUnit) String() string {
	switch u {
	case Microseconds:
		return "μs"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	default:
		return fmt.Sprintf("TimeUnit(%d)", int(u))
	}
}

// ParseTimeUnit accepts "us", "μs", "micro", "ms", "milli", "s" and "sec", case-insensitively.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "us", "μs", "micro", "microseconds":
		return Microseconds, nil
	case "ms", "milli", "milliseconds":
		return Milliseconds, nil
	case "s", "sec", "seconds":
		return Seconds, nil
	}
	return Microseconds, fmt.Errorf("unknown time unit %q", s)
}

// Format renders d in unit u with two decimal places.
func (u TimeUnit) Format(d time.Duration) string {
	ns := float64(d.Nanoseconds())
	switch u {
	case Milliseconds:
		return fmt.Sprintf("%.2f ms", ns/1e6)
	case Seconds:
		return fmt.Sprintf("%.2f s", ns/1e9)
	default:
		return fmt.Sprintf("%.2f μs", ns/1e3)
	}
}
