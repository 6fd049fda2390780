package math

import (
	"strconv"
	"sync/atomic"
)

// DefaultPrecision is the number of decimals FormatNumber prints.
const DefaultPrecision = 3

// Formatter prints numbers with a fixed number of decimals.
type Formatter struct {
	Precision int
}

// Format renders v with f.Precision decimals. Negative zero after rounding is
// printed without its sign.
func (f Formatter) Format(v float64) string {
	p := f.Precision
	if p < 0 {
		p = DefaultPrecision
	}
	s := strconv.FormatFloat(v, 'f', p, 64)
	if s[0] == '-' {
		if z, err := strconv.ParseFloat(s, 64); err == nil && z == 0 {
			return s[1:]
		}
	}
	return s
}

var defaultFormatter atomic.Pointer[Formatter]

func init() {
	defaultFormatter.Store(&Formatter{Precision: DefaultPrecision})
}

// SetPrecision changes the precision used by FormatNumber. It is safe to call
// while other goroutines format numbers.
func SetPrecision(p int) {
	defaultFormatter.Store(&Formatter{Precision: p})
}

// FormatNumber formats v for display.
func FormatNumber(v float64) string {
	return defaultFormatter.Load().Format(v)
}
