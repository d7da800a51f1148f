package jobspec

import (
	"math"
	"strconv"
	"strings"

	"github.com/garrettbslone/flux-core/pkg/errors"
)

// ParseDuration parses a standard duration string: a non-negative floating
// point number with an optional s, m, h, or d suffix (e.g. "90", "30m",
// "1.5h", "2d"). A bare number means seconds. The result is the duration
// in seconds.
func ParseDuration(fsd string) (float64, error) {
	s := strings.TrimSpace(fsd)
	if s == "" {
		return 0, errors.NewInvalidRequestField("time-limit", "empty duration")
	}

	multiplier := 1.0
	switch s[len(s)-1] {
	case 's':
		s = s[:len(s)-1]
	case 'm':
		multiplier = 60
		s = s[:len(s)-1]
	case 'h':
		multiplier = 3600
		s = s[:len(s)-1]
	case 'd':
		multiplier = 86400
		s = s[:len(s)-1]
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.NewInvalidRequestField("time-limit", "invalid duration %q", fsd)
	}
	if value < 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, errors.NewInvalidRequestField("time-limit", "invalid duration %q", fsd)
	}

	return value * multiplier, nil
}
