// Package locale infers the default temperature scale from the process's
// measurement locale.
package locale

import "strings"

// Measurement resolves the active measurement locale from the environment,
// following POSIX category precedence: LC_ALL overrides LC_MEASUREMENT,
// which overrides LANG. When none is set the locale is "C".
func Measurement(getenv func(string) string) string {
	for _, name := range []string{"LC_ALL", "LC_MEASUREMENT", "LANG"} {
		if value := getenv(name); value != "" {
			return value
		}
	}
	return "C"
}

// Territories whose customary temperature scale is Fahrenheit.
var fahrenheitTerritories = map[string]struct{}{
	"US": {}, // United States
	"LR": {}, // Liberia
	"FM": {}, // Micronesia
	"KY": {}, // Cayman Islands
	"MH": {}, // Marshall Islands
	"PW": {}, // Palau
}

// UsesFahrenheit reports whether the locale identifier names a territory
// that measures temperature in Fahrenheit. The territory is the substring
// between the first underscore and the first dot, as in "en_US.UTF-8".
// Identifiers missing either delimiter, or with the dot at or before the
// underscore, default to Celsius.
func UsesFahrenheit(locale string) bool {
	underscore := strings.Index(locale, "_")
	dot := strings.Index(locale, ".")
	if underscore < 0 || dot < 0 || dot <= underscore {
		return false
	}
	_, ok := fahrenheitTerritories[locale[underscore+1:dot]]
	return ok
}
