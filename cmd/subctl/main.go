// Command subctl drives a running rhsm-sync agent over its REST API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/rhsm-sync/internal/adapter"
	"github.com/MKhiriev/rhsm-sync/internal/config"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
)

func main() {
	log := logger.NewClientLogger("subctl")
	cfg, err := config.GetCtlConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	api, err := adapter.NewHTTPAPIClient(*cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	code := run(ctx, api, *cfg, flag.Args(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
