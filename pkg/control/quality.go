package control

import (
	"fmt"
	"strings"
)

// Quality is the render resolution relative to the output size.
type Quality int

const (
	QualityFull Quality = iota
	QualityHalf
	QualityQuarter
	QualityEighth
)

var qualityNames = [...]string{"full", "half", "quarter", "eighth"}

// Scale returns the resolution multiplier.
func (q Quality) Scale() float32 {
	switch q {
	case QualityHalf:
		return 0.5
	case QualityQuarter:
		return 0.25
	case QualityEighth:
		return 0.125
	default:
		return 1
	}
}

// Size returns the render resolution for an output of width x height.
// Each dimension is at least 1.
func (q Quality) Size(width, height int) (int, int) {
	s := q.Scale()
	return max(int(float32(width)*s), 1), max(int(float32(height)*s), 1)
}

func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return fmt.Sprintf("Quality(%d)", int(q))
	}
	return qualityNames[q]
}

// ParseQuality parses a quality name such as "half".
func ParseQuality(s string) (Quality, error) {
	for i, name := range qualityNames {
		if strings.EqualFold(s, name) {
			return Quality(i), nil
		}
	}
	return 0, fmt.Errorf("unknown quality %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (q Quality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quality) UnmarshalText(b []byte) error {
	v, err := ParseQuality(string(b))
	if err != nil {
		return err
	}
	*q = v
	return nil
}
