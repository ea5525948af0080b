// Package formula implements the closed-form calculations behind each
// calculator page: unit and temperature conversion, BMI, per-unit power
// system parameters, and the ZIP load model with its voltage sweep.
//
// Every function is pure: no state survives a call, and the same inputs
// always produce the same outputs.
package formula

import "errors"

// ErrDivisionByZero reports a computation whose denominator is zero or
// otherwise out of domain: a non-positive height in BMI, or a zero MVA
// base in the per-unit calculation.
var ErrDivisionByZero = errors.New("division by zero")
