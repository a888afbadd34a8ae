package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	mmmratp "github.com/NomadArchitect/mmm-ratp"
	"github.com/NomadArchitect/mmm-ratp/config"
	"github.com/NomadArchitect/mmm-ratp/ratp"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	call := flag.String("call", "all", "timetables|traffic|all (oneshot mode)")
	configPath := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()

	mmmratp.InitLogging()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := ratp.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutMS)*time.Millisecond)

	switch *mode {
	case "oneshot":
		runOneshot(cfg, client, *call)
	case "serve":
		runServe(cfg, client)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func runOneshot(cfg config.AppConfig, client *ratp.Client, call string) {
	fetcher := mmmratp.NewFetcher(client, mmmratp.NopDispatcher{})
	ctx := context.Background()
	switch call {
	case "timetables":
		timetables, err := fetcher.FetchTimetables(ctx, cfg.Timetables)
		if err != nil {
			log.Fatalf("timetables: %v", err)
		}
		printJSON(timetables)
	case "traffic":
		traffic, err := fetcher.FetchTraffic(ctx, cfg.Traffic)
		if err != nil {
			log.Fatalf("traffic: %v", err)
		}
		printJSON(traffic)
	case "all":
		payload := mmmratp.FetchAllPayload{Timetables: cfg.Timetables, Traffic: cfg.Traffic}
		if err := fetcher.FetchAll(ctx, payload); err != nil {
			log.Fatalf("fetch all: %v", err)
		}
		printJSON(fetcher.Store().Current())
	default:
		log.Fatalf("unknown call %q", call)
	}
}

func runServe(cfg config.AppConfig, client *ratp.Client) {
	fetcher := mmmratp.NewFetcher(client, mmmratp.NopDispatcher{})
	server := mmmratp.NewServer(fetcher.Store(), cfg.Server.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runCycle(ctx, "timetables", time.Duration(cfg.Updates.TimetablesIntervalMS)*time.Millisecond, func(ctx context.Context) error {
		_, err := fetcher.FetchTimetables(ctx, cfg.Timetables)
		return err
	})
	go runCycle(ctx, "traffic", time.Duration(cfg.Updates.TrafficIntervalMS)*time.Millisecond, func(ctx context.Context) error {
		_, err := fetcher.FetchTraffic(ctx, cfg.Traffic)
		return err
	})

	server.Start()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// runCycle fetches once immediately, then on every tick until ctx is done.
// A failed cycle is logged and the loop keeps going; the display keeps
// whatever it last received.
func runCycle(ctx context.Context, name string, interval time.Duration, fetch func(context.Context) error) {
	if err := fetch(ctx); err != nil {
		log.Printf("%s cycle: %v", name, err)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := fetch(ctx); err != nil {
				log.Printf("%s cycle: %v", name, err)
			}
		}
	}
}

func printJSON(v any) {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Println(string(buf))
}
