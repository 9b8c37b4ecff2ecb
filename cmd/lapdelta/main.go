package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/adriadam10/lapdelta"
	"github.com/adriadam10/lapdelta/internal/f1"
)

var (
	configPath  string
	year        int
	event       string
	sessionType string
	driver1     string
	driver2     string
	lapNumber   int
	debug       bool
)

func init() {
	flag.StringVar(&configPath, "c", "./config.yml", "config path")
	flag.IntVar(&year, "year", 2021, "season year")
	flag.StringVar(&event, "event", "abu dhabi", "grand prix name")
	flag.StringVar(&sessionType, "session", "Q", "session type code (FP1, FP2, FP3, Q, SQ, S, R)")
	flag.StringVar(&driver1, "d1", "VER", "first driver code")
	flag.StringVar(&driver2, "d2", "HAM", "second driver code")
	flag.IntVar(&lapNumber, "lap", 0, "lap number to compare (0 = fastest lap)")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := godotenv.Load(); err == nil {
		logrus.Debug("Loaded environment overrides from .env")
	}

	config, err := lapdelta.LoadConfig(configPath)

	if err != nil {
		logrus.WithError(err).Fatalf("Could not read config at %s", configPath)
	}

	if baseURL := os.Getenv("LAPDELTA_API_URL"); baseURL != "" {
		config.APIBaseURL = baseURL
	}

	cache, err := f1.OpenCache(config.CachePath)

	if err != nil {
		logrus.WithError(err).Fatalf("Could not open cache at %s", config.CachePath)
	}

	defer cache.Close()

	client := f1.NewClient(config.APIBaseURL, cache)

	comparison := lapdelta.NewComparison(client, config)

	result, err := comparison.Run(context.Background(), lapdelta.Request{
		Year:        year,
		Event:       event,
		SessionType: sessionType,
		Driver1:     driver1,
		Driver2:     driver2,
		Lap:         lapNumber,
	})

	if err != nil {
		logrus.WithError(err).Fatal("Comparison failed")
	}

	result.WriteSummary(os.Stdout)
}
