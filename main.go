package main

import (
	"os"

	"github.com/sqltrail/sqltrail/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
