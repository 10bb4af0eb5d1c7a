// Package meteo implements the temperature conversions and the Magnus dew
// point approximation used by the dewpoint CLI.
package meteo

import "math"

// Unit is a temperature scale.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

// String returns the scale's English name.
func (u Unit) String() string {
	if u == Fahrenheit {
		return "Fahrenheit"
	}
	return "Celsius"
}

// Magnus coefficients from equation 8 of Mark G. Lawrence, "The Relationship
// Between Relative Humidity and the Dewpoint Temperature in Moist Air,"
// Bulletin of the American Meteorological Society 86(2) (February 2005),
// 225-234, https://doi.org/10.1175/BAMS-86-2-225.
const (
	magnusA = 17.625
	magnusB = 243.04 // °C
)

// DewPoint approximates the dew point in Celsius of air at the given Celsius
// temperature and relative humidity percentage. The humidity must be
// positive for the logarithm to be defined; callers validate that upstream.
func DewPoint(celsius, humidity float64) float64 {
	x := math.Log(humidity/100) + magnusA*celsius/(magnusB+celsius)
	return magnusB * x / (magnusA - x)
}

// DewPointFahrenheit is DewPoint for a Fahrenheit temperature, returning the
// dew point in Fahrenheit. Celsius is the computation's native scale.
func DewPointFahrenheit(fahrenheit, humidity float64) float64 {
	return CelsiusToFahrenheit(DewPoint(FahrenheitToCelsius(fahrenheit), humidity))
}

// FahrenheitToCelsius converts a Fahrenheit temperature to Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// CelsiusToFahrenheit converts a Celsius temperature to Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}
