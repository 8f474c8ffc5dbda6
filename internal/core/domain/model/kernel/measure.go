package kernel

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"packexpress/internal/pkg/errs"
)

var (
	// ErrMeasureIsInvalid is wrapped by every ParseMeasure failure.
	ErrMeasureIsInvalid = errors.New("measure must be a non-negative finite number")

	decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// ParseMeasure converts one line of user input into a package measure
// (a weight or a single dimension).
//
// Surrounding whitespace is ignored. The remaining text must be a plain
// decimal number with an optional sign, fraction and exponent ("12",
// "2.5", ".5", "1e2"). Hex floats, digit separators, NaN and infinities are
// rejected, as are negative values. Negative zero is returned as 0.
//
// Parameters:
//   - paramName: the measure being read ("weight", "width", ...), used in the error
//   - input: raw text as typed by the user
//
// Returns:
//   - float64: the parsed value
//   - error: *errs.ValueIsInvalidError wrapping ErrMeasureIsInvalid on failure
//
// Example:
//
//	weight, err := kernel.ParseMeasure("weight", line)
//	if errors.Is(err, kernel.ErrMeasureIsInvalid) {
//	    // ask again
//	}
func ParseMeasure(paramName string, input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, invalidMeasure(paramName, errors.New("empty input"))
	}

	if !decimalPattern.MatchString(trimmed) {
		return 0, invalidMeasure(paramName, fmt.Errorf("%q is not a decimal number", trimmed))
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, invalidMeasure(paramName, fmt.Errorf("%q is not a number", trimmed))
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, invalidMeasure(paramName, fmt.Errorf("%q is not finite", trimmed))
	}

	if value < 0 {
		return 0, invalidMeasure(paramName, fmt.Errorf("%q is negative", trimmed))
	}

	if value == 0 {
		return 0, nil
	}

	return value, nil
}

func invalidMeasure(paramName string, cause error) error {
	return errs.NewValueIsInvalidErrorWithCause(paramName, errors.Join(ErrMeasureIsInvalid, cause))
}
