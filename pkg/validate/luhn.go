package validate

import (
	"errors"

	"github.com/ShiraazMoollatjie/goluhn"
)

var ErrNotNumeric = errors.New("luhn: number must contain digits only")

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// LuhnCheckDigit returns the digit that makes base+digit pass the Luhn check.
func LuhnCheckDigit(base string) (string, error) {
	for d := '0'; d <= '9'; d++ {
		if IsLuhn(base + string(d)) {
			return string(d), nil
		}
	}
	return "", ErrNotNumeric
}
