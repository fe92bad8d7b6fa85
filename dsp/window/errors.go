package window

import (
	"errors"
	"fmt"
)

var errMismatchedLength = errors.New("samples and coefficients must have same length")

func validateParams(size int, attenDB float64) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}

	if attenDB <= 0 {
		return fmt.Errorf("window attenuation must be > 0 dB: %f", attenDB)
	}

	return nil
}
