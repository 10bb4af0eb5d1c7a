// Package cli interprets the dewpoint command line into a validated
// invocation.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bbaren/dewpoint/internal/meteo"
)

// ShortUsage is the one-line invocation synopsis.
const ShortUsage = "Usage: dewpoint TEMPERATURE HUMIDITY\n"

// Help describes the recognized options.
const Help = `Compute the dew point from a given temperature and humidity. Temperatures are
interpreted by default according to the current locale; humidity is interpreted
as a percentage.

Options:
      -c, --celsius, --centigrade
                              use the Celsius temperature scale
      -f, --fahrenheit        use the Fahrenheit temperature scale
      --help                  display this help and exit
      --version               display version information and exit
`

// AskForHelp points the user at --help after a failed invocation.
const AskForHelp = "Try 'dewpoint --help' for more information\n"

// Invocation is the fully resolved result of command-line processing.
type Invocation struct {
	Unit        meteo.Unit
	Temperature float64
	Humidity    float64
	ShowHelp    bool
	ShowVersion bool
}

// UsageError reports a malformed command line: an unrecognized option, or
// the wrong number of positional arguments when Option is empty.
type UsageError struct {
	Option string
}

func (e *UsageError) Error() string {
	if e.Option == "" {
		return "expected exactly two arguments"
	}
	return fmt.Sprintf("unrecognized option %q", e.Option)
}

// ValueError reports a positional argument that is not a usable number.
type ValueError struct {
	Field string // "temperature" or "humidity"
	Text  string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Text)
}

// Parse folds the argument sequence into an Invocation. Options are
// processed in order and later unit flags override earlier ones; "--" ends
// option processing so negative temperatures can follow; short options
// bundle ("-cf"). --help and --version short-circuit before positional
// validation, matching getopt's sequential handling.
func Parse(args []string, defaultUnit meteo.Unit) (Invocation, error) {
	inv := Invocation{Unit: defaultUnit}

	positional := make([]string, 0, 2)
	optionsDone := false
	for _, arg := range args {
		if optionsDone || arg == "-" || !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
			continue
		}

		switch {
		case arg == "--":
			optionsDone = true
		case arg == "--help":
			inv.ShowHelp = true
			return inv, nil
		case arg == "--version":
			inv.ShowVersion = true
			return inv, nil
		case arg == "--celsius" || arg == "--centigrade":
			inv.Unit = meteo.Celsius
		case arg == "--fahrenheit":
			inv.Unit = meteo.Fahrenheit
		case strings.HasPrefix(arg, "--"):
			return Invocation{}, &UsageError{Option: arg}
		default:
			for _, short := range arg[1:] {
				switch short {
				case 'c':
					inv.Unit = meteo.Celsius
				case 'f':
					inv.Unit = meteo.Fahrenheit
				default:
					return Invocation{}, &UsageError{Option: "-" + string(short)}
				}
			}
		}
	}

	if len(positional) != 2 {
		return Invocation{}, &UsageError{}
	}

	temperature, err := strconv.ParseFloat(positional[0], 64)
	if err != nil {
		return Invocation{}, &ValueError{Field: "temperature", Text: positional[0]}
	}

	humidity, err := strconv.ParseFloat(positional[1], 64)
	if err != nil || humidity <= 0 {
		return Invocation{}, &ValueError{Field: "humidity", Text: positional[1]}
	}

	inv.Temperature = temperature
	inv.Humidity = humidity
	return inv, nil
}
