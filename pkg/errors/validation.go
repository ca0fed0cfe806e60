package errors

import (
	"math"
)

// ValidateSpaces validates the configured top and bottom viewport insets.
// Spaces must be finite and non-negative. A space pair that exceeds the
// viewport height is legal — the engine treats the resulting negative band
// as a zero usable band — so no upper bound is enforced here.
func ValidateSpaces(top, bottom float64) error {
	if err := validateFinite("space_top", top); err != nil {
		return err
	}
	if err := validateFinite("space_bottom", bottom); err != nil {
		return err
	}
	if top < 0 {
		return New(ErrCodeInvalidSpaces, "space_top must be >= 0, got %v", top)
	}
	if bottom < 0 {
		return New(ErrCodeInvalidSpaces, "space_bottom must be >= 0, got %v", bottom)
	}
	return nil
}

// ValidateLength validates a single named length input from an external
// surface (scenario file, HTTP request). Lengths must be finite and
// non-negative; zero is valid degenerate geometry, not an error.
func ValidateLength(name string, v float64) error {
	if err := validateFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidGeometry, "%s must be >= 0, got %v", name, v)
	}
	return nil
}

// ValidateCoordinate validates a named coordinate input. Coordinates may be
// negative (content above or left of the document origin) but must be
// finite.
func ValidateCoordinate(name string, v float64) error {
	return validateFinite(name, v)
}

func validateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidGeometry, "%s must be a finite number, got %v", name, v)
	}
	return nil
}
