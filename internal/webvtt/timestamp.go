package webvtt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// point in time since track start
type Timestamp time.Duration

// parses a `:`-separated timestamp such as "01:02:03.500" or "02:03.5".
// the last component is a decimal number of seconds; every component
// before it is a whole number weighted by ascending powers of 60
func ParseTimestamp(s string) (Timestamp, error) {
	parts := strings.Split(s, ":")

	last := parts[len(parts)-1]
	secs, err := strconv.ParseFloat(last, 64)
	// ParseFloat also takes hex floats and digit separators; the grammar
	// wants plain decimal only
	if err != nil || strings.ContainsAny(last, "xX_") ||
		math.IsNaN(secs) || math.IsInf(secs, 0) || secs < 0 {
		return 0, &ParseError{Expected: "a decimal number", Found: last}
	}
	nanos := math.Round(secs * float64(time.Second))
	if nanos >= float64(math.MaxInt64) {
		return 0, &ParseError{Expected: "a decimal number", Found: last}
	}
	d := time.Duration(nanos)

	unit := time.Minute
	for i := len(parts) - 2; i >= 0; i-- {
		v, err := strconv.ParseUint(parts[i], 10, 64)
		if err != nil {
			return 0, &ParseError{Expected: "a number", Found: parts[i]}
		}
		if v != 0 {
			// a zero unit marks weights already past the duration range
			if unit == 0 || v > uint64(math.MaxInt64/unit) ||
				time.Duration(v)*unit > math.MaxInt64-d {
				return 0, &ParseError{Expected: "a number", Found: parts[i]}
			}
			d += time.Duration(v) * unit
		}
		if unit > math.MaxInt64/60 {
			unit = 0
		} else {
			unit *= 60
		}
	}

	return Timestamp(d), nil
}

func (t Timestamp) Duration() time.Duration {
	return time.Duration(t)
}

// renders as HH:MM:SS.mmm; hours grow past two digits, sub-millisecond
// precision is dropped
func (t Timestamp) String() string {
	d := time.Duration(t)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
