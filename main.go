// Habitta - a habit and task tracker with streaks.

package main

import (
	"os"

	"github.com/habitta-app/habitta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
