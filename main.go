package main

import (
	"os"

	"github.com/GoPowerDNS-Admin/toolbox/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
