package main

import (
	"os"

	"github.com/LekoArts/changesets-changelog-github-local/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
