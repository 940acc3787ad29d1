package job

import (
	"strconv"

	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

// EquityMin and EquityMax bound the equity share a posting may offer.
const (
	EquityMin = 0.0
	EquityMax = 1.0
)

var ErrEquityIsNotConstructed = errs.NewValueIsRequiredError(
	"Equity must be created via NewEquity",
)

// Equity is the equity share offered by a posting, kept as the original
// decimal string. The string representation is what gets stored and returned;
// it is never converted to a binary float on the way to or from the database,
// so no precision is lost.
type Equity struct {
	value string

	guard guard.ConstructorGuard
}

// NewEquity validates that value is a decimal string within [0, 1] and wraps
// it. The parsed number is used only for the range check.
func NewEquity(value string) (Equity, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Equity{}, errs.NewValueIsInvalidErrorWithCause("equity", err)
	}
	if parsed < EquityMin || parsed > EquityMax {
		return Equity{}, errs.NewValueIsOutOfRangeError("equity", value, EquityMin, EquityMax)
	}

	return Equity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the equity was created through the constructor.
func (e Equity) Validate() error {
	return e.guard.Validate(ErrEquityIsNotConstructed)
}

// String returns the original decimal representation.
func (e Equity) String() string {
	return e.value
}
