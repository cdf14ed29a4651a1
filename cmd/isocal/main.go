package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/fang"
)

// version is set via -ldflags.
var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(time.Now),
		fang.WithVersion(version),
	); err != nil {
		os.Exit(1)
	}
}
