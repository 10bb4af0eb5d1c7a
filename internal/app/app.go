// Package app wires locale inference, argument parsing, and the dew point
// computation into the dewpoint CLI.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/bbaren/dewpoint/internal/cli"
	"github.com/bbaren/dewpoint/internal/locale"
	"github.com/bbaren/dewpoint/internal/logging"
	"github.com/bbaren/dewpoint/internal/meteo"
	"github.com/bbaren/dewpoint/internal/version"
)

// Runner holds the process surfaces the CLI touches, injectable for tests.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Logger *slog.Logger
}

// Execute runs the CLI against the real process environment.
func Execute(args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr, Getenv: os.Getenv}
	return r.Execute(args)
}

// Execute interprets args and returns the process exit code: 0 on success,
// help, or version; 1 on any usage or validation error.
func (r Runner) Execute(args []string) int {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	logger := r.Logger
	if logger == nil {
		logger = logging.New(r.Stderr, getenv)
	}

	// Read the measurement locale once at startup and thread it through as
	// a value; it is never re-read.
	measurement := locale.Measurement(getenv)
	defaultUnit := meteo.Celsius
	if locale.UsesFahrenheit(measurement) {
		defaultUnit = meteo.Fahrenheit
	}
	logger.Debug("measurement locale resolved",
		"locale", measurement,
		"default_unit", defaultUnit.String(),
	)

	inv, err := cli.Parse(args, defaultUnit)
	if err != nil {
		return r.fail(err)
	}

	if inv.ShowHelp {
		fmt.Fprint(r.Stdout, cli.ShortUsage)
		fmt.Fprint(r.Stdout, cli.Help)
		fmt.Fprintf(r.Stdout, "\nYour current measurement locale is %s, which uses %s by\ndefault.\n",
			measurement, defaultUnit)
		return 0
	}
	if inv.ShowVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	var dewPoint float64
	if inv.Unit == meteo.Fahrenheit {
		dewPoint = meteo.DewPointFahrenheit(inv.Temperature, inv.Humidity)
	} else {
		dewPoint = meteo.DewPoint(inv.Temperature, inv.Humidity)
	}
	logger.Debug("dew point computed",
		"temperature", inv.Temperature,
		"humidity", inv.Humidity,
		"unit", inv.Unit.String(),
		"dew_point", dewPoint,
	)

	fmt.Fprintf(r.Stdout, "%d\n", int(math.RoundToEven(dewPoint)))
	return 0
}

// fail renders a parse error on stderr. Unrecognized options get the help
// hint alone; a wrong argument count also gets the usage synopsis; bad
// values get a named diagnostic quoting the offending text.
func (r Runner) fail(err error) int {
	var usageErr *cli.UsageError
	var valueErr *cli.ValueError
	switch {
	case errors.As(err, &usageErr):
		if usageErr.Option == "" {
			fmt.Fprint(r.Stderr, cli.ShortUsage)
		}
		fmt.Fprint(r.Stderr, cli.AskForHelp)
	case errors.As(err, &valueErr):
		fmt.Fprintf(r.Stderr, "dewpoint: %s\n", valueErr)
		fmt.Fprint(r.Stderr, cli.AskForHelp)
	default:
		fmt.Fprintln(r.Stderr, "dewpoint: internal error; please report")
	}
	return 1
}
