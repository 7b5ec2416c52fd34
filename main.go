package main

import (
	"os"

	"github.com/omghumre/ui-generator-agent/cmd"
	_ "github.com/omghumre/ui-generator-agent/version" // Import for version info
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
