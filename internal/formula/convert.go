package formula

// UnitKind selects the fixed-scale conversion applied by ConvertUnit.
type UnitKind int

const (
	// UnitLength converts meters to kilometers.
	UnitLength UnitKind = iota
	// UnitMass converts kilograms to grams.
	UnitMass
)

// TempDirection selects the direction of a temperature conversion.
type TempDirection int

const (
	CelsiusToFahrenheit TempDirection = iota
	FahrenheitToCelsius
)

// ConvertUnit scales value by the fixed factor for kind: meters to
// kilometers divides by 1000, kilograms to grams multiplies by 1000.
// Any finite input is accepted.
func ConvertUnit(value float64, kind UnitKind) float64 {
	if kind == UnitMass {
		return value * 1000
	}
	return value / 1000
}

// ConvertTemperature converts between Celsius and Fahrenheit.
func ConvertTemperature(value float64, dir TempDirection) float64 {
	if dir == FahrenheitToCelsius {
		return (value - 32) * 5 / 9
	}
	return value*9/5 + 32
}
