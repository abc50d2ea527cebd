package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ManuGH/lookupbot/internal/config"
	"github.com/ManuGH/lookupbot/internal/platform/httpx"
)

func runHealthcheckCLI(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", "live", "healthcheck mode: live (default) or ready")
	host := fs.String("host", "localhost", "daemon host")
	port := fs.Int("port", defaultHealthPort(), "daemon port")
	timeout := fs.Duration("timeout", 5*time.Second, "check timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := "/healthz"
	if *mode == "ready" {
		path = "/readyz"
	}
	url := "http://" + net.JoinHostPort(*host, strconv.Itoa(*port)) + path

	resp, err := httpx.NewClient(*timeout).Get(url)
	if err != nil {
		fmt.Fprintf(stderr, "Healthcheck failed (network): %v\n", err)
		return 1
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(stderr, "Healthcheck failed (status): %s\n", resp.Status)
		return 1
	}
	fmt.Fprintf(stdout, "Healthcheck successful (%s)\n", *mode)
	return 0
}

// defaultHealthPort follows PORT like the daemon does.
func defaultHealthPort() int {
	if p, err := strconv.Atoi(config.ParseString(config.EnvPort, "")); err == nil && p > 0 {
		return p
	}
	return 8443
}
