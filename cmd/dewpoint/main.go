// Package main provides the dewpoint CLI process entrypoint.
package main

import (
	"os"

	"github.com/bbaren/dewpoint/internal/app"
)

func main() {
	os.Exit(app.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
