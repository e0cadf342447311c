package service

import (
	"errors"
	"math"
	"strings"

	"github.com/Ihsas01/SR-SHOPPING/pkg/errs"
	"github.com/spf13/cast"
)

var errNotANumber = errors.New("not a number")

// parseNumber reads a form value that may be a JSON number or a string.
// A nil or whitespace-only value reports blank.
func parseNumber(v interface{}) (n float64, blank bool, err error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, false, errNotANumber
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true, nil
	}

	n, err = cast.ToFloat64E(s)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false, errNotANumber
	}

	return n, false, nil
}

func isBlank(v interface{}) bool {
	s, err := cast.ToStringE(v)
	return err == nil && strings.TrimSpace(s) == ""
}

func parsePrice(v interface{}) (price float64, blank bool, err error) {
	price, blank, err = parseNumber(v)
	if err != nil || price < 0 {
		return 0, false, errs.ErrInvalidPrice
	}
	return price, blank, nil
}

func parseQuantity(v interface{}) (quantity int, blank bool, err error) {
	n, blank, err := parseNumber(v)
	if err != nil || n < 0 || n != math.Trunc(n) || n > math.MaxInt32 {
		return 0, false, errs.ErrInvalidQuantity
	}
	return int(n), blank, nil
}

// parsePercent reads a discount answer. Blank means 0, which removes the
// discount, and 0x/0o/0b integer literals are accepted.
func parsePercent(v string) (float64, error) {
	s := strings.TrimSpace(v)

	var n float64
	var err error
	if isPrefixedInteger(s) {
		var i int64
		i, err = cast.ToInt64E(s)
		n = float64(i)
	} else {
		n, _, err = parseNumber(s)
	}
	if err != nil || n < 0 || n > 100 {
		return 0, errs.ErrInvalidDiscount
	}
	return n, nil
}

func isPrefixedInteger(s string) bool {
	if len(s) < 3 || s[0] != '0' || strings.Contains(s, "_") {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}
