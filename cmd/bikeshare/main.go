package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/internal"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/session"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	mode := flag.String("mode", "interactive", "interactive|oneshot")
	configPath := flag.String("config", envOr("BIKESHARE_CONFIG", "config.yml"), "path to config.yml")
	city := flag.String("city", "", "city name from config.cities[] (oneshot)")
	month := flag.String("month", trips.All, "all|january..june (oneshot)")
	day := flag.String("day", trips.All, "all|monday..sunday (oneshot)")
	format := flag.String("format", "text", "text|json (oneshot)")
	verbose := flag.Bool("v", false, "log diagnostics to stderr")
	flag.Parse()

	internal.InitLogging(*verbose)

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		fail(err)
	}
	config.ApplyEnv(&cfg)
	loader := trips.NewLoaderFromConfig(cfg)

	switch *mode {
	case "interactive":
		err = session.New(cfg, loader, os.Stdin, os.Stdout).Run()
	case "oneshot":
		err = oneshot(os.Stdout, loader, trips.NewSelection(*city, *month, *day), *format)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		fail(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fail(err error) {
	reportError(os.Stderr, err)
	os.Exit(1)
}

// reportError writes err once to w. It does not go through log, which
// shares stderr under -v.
func reportError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "bikeshare: %v\n", err)
}

