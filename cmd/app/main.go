package main

import (
	"os"

	"github.com/drone-project-m2gla/project-repository/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
