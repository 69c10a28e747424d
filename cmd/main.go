package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"homescout/internal/config"
	"homescout/internal/database"
	"homescout/internal/geo"
	"homescout/internal/store"
)

const (
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorReset = "\033[0m"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: "15:04:05",
	})))

	// Load GIS layers first so they're available for scoring and rendering.
	layers := geo.LoadLayers(cfg.GISDir)

	datasetStart := time.Now()
	s, err := loadStore(cfg)
	if err != nil {
		slog.Error("failed to load housing dataset", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Dataset loaded in %v (%d sales)\n", time.Since(datasetStart).Truncate(time.Millisecond), s.Len())

	a := &app{cfg: cfg, store: s, layers: layers}

	// A command on the command line runs once and exits.
	if len(os.Args) > 1 {
		a.dispatch(strings.Join(os.Args[1:], " "))
		return
	}

	// Interactive loop for multiple queries.
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Command (stats, corr, zips, clients, rank <client>, id <id>, shortlist; blank to quit): ")
		input, _ := reader.ReadString('\n')
		cmd := strings.TrimSpace(input)
		if cmd == "" {
			break
		}
		a.dispatch(cmd)
	}
}

// app bundles the loaded dataset with its collaborators so command handlers
// don't pass four arguments around.
type app struct {
	cfg    config.Config
	store  *store.Store
	layers *geo.Layers
}

func (a *app) dispatch(cmd string) {
	fields := strings.Fields(cmd)
	switch strings.ToLower(fields[0]) {
	case "stats":
		a.showStats()
	case "corr":
		a.showCorrelations()
	case "zips":
		a.showZipcodes()
	case "clients":
		a.listProfiles()
	case "rank":
		if len(fields) < 2 {
			fmt.Println("Usage: rank <client>  (see 'clients' for profiles)")
			return
		}
		a.rankForClient(strings.ToLower(fields[1]))
	case "id":
		if len(fields) < 2 {
			fmt.Println("Usage: id <record id>")
			return
		}
		rec, ok := a.store.ByID(fields[1])
		if !ok {
			fmt.Printf("No sale found for id: %s\n", fields[1])
			return
		}
		a.renderRecord(rec)
	case "shortlist":
		a.showShortlist()
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
	}
}

// loadStore builds the record table from whichever source is configured.
func loadStore(cfg config.Config) (*store.Store, error) {
	if cfg.Source == "oracle" {
		db, err := database.New(cfg)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		records, err := db.QueryHousingRecords(context.Background())
		if err != nil {
			return nil, err
		}
		return store.LoadRecords(records)
	}

	f, err := os.Open(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return store.Load(f)
}
