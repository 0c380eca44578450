package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func Ptr[T any](v T) *T {
	return &v
}

func Val[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}

// ParseDecimal reads a money/size value stored as a decimal string.
// Empty input is treated as zero.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	return f, nil
}

// FormatTicketNumber renders MT-<year>-<seq> with seq zero-padded.
func FormatTicketNumber(year, seq int) string {
	return fmt.Sprintf("%s-%d-%0*d", TicketNumberPrefix, year, TicketSeqWidth, seq)
}
