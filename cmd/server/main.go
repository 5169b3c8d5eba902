package main

import (
	"errors"
	"os"

	"github.com/spf13/pflag"

	"pdf-chat/internal/app"
	"pdf-chat/internal/config"
)

// @title        PDF Chat API
// @version      1.0
// @description  Ask questions about an uploaded PDF. State lives in the caller's browser session.
// @BasePath     /api
func main() {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	os.Exit(app.Run(flags))
}
