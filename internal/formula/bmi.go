package formula

import "fmt"

// BMI returns the body mass index, weight divided by height squared.
// It fails with ErrDivisionByZero when heightM is not strictly positive.
func BMI(weightKg, heightM float64) (float64, error) {
	if heightM <= 0 {
		return 0, fmt.Errorf("bmi: height %g m: %w", heightM, ErrDivisionByZero)
	}
	return weightKg / (heightM * heightM), nil
}
