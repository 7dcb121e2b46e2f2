package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"snapcal/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	imagesDir := flag.String("images", "", "directory browsed when adding a photo (optional)")
	dataDir := flag.String("data", "", "override food log directory (optional)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		ImagesDir:  *imagesDir,
		DataDir:    *dataDir,
		Verbose:    *verbose,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "snapcal: %v\n", err)
		return 1
	}
	return 0
}
