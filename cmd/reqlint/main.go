package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/pthm/reqlint/internal/cmd"
	"github.com/pthm/reqlint/internal/version"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.RootCmd, fang.WithVersion(version.Short())); err != nil {
		os.Exit(1)
	}
}
