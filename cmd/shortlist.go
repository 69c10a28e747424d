package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"homescout/internal/types"
)

// ---------------- Client shortlists ----------------

// A shortlist entry records a sale a client liked. Entries live in a small
// CSV next to the data files so they survive across program invocations.
type shortlistEntry struct {
	EntryID  string // uuid assigned at save time
	RecordID string
	Client   string
	SavedAt  time.Time
}

// loadShortlist returns every saved entry. A missing file is an empty
// shortlist, not an error.
func (a *app) loadShortlist() ([]shortlistEntry, error) {
	f, err := os.Open(a.cfg.ShortlistPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // nothing saved yet
		}
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var entries []shortlistEntry
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		savedAt, _ := time.Parse(time.RFC3339, row[3])
		entries = append(entries, shortlistEntry{
			EntryID:  row[0],
			RecordID: row[1],
			Client:   row[2],
			SavedAt:  savedAt,
		})
	}
	return entries, nil
}

// saveToShortlist appends the sale for the given client unless that pair is
// already present.
func (a *app) saveToShortlist(rec types.HousingRecord, client string) error {
	return a.saveShortlistEntry(rec.ID, client)
}

func (a *app) saveShortlistEntry(recordID, client string) error {
	existing, err := a.loadShortlist()
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.RecordID == recordID && strings.EqualFold(e.Client, client) {
			// Already present – nothing to do.
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(a.cfg.ShortlistPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(a.cfg.ShortlistPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{uuid.NewString(), recordID, client, time.Now().Format(time.RFC3339)}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// showShortlist lists saved entries in the interactive browser.
func (a *app) showShortlist() {
	entries, err := a.loadShortlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load shortlist: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No shortlist entries yet. Use 'rank <client>' and save candidates from the detail view.")
		return
	}

	var ids []string
	var lines []string
	for _, e := range entries {
		price := ""
		if rec, ok := a.store.ByID(e.RecordID); ok {
			price = fmt.Sprintf("$%.0f", rec.Price)
		}
		line := fmt.Sprintf("%-12s | %-10s | %-10s | saved %s", e.RecordID, e.Client, price, e.SavedAt.Format("2006-01-02"))
		lines = append(lines, line)
		ids = append(ids, e.RecordID)
		fmt.Println(line)
	}

	fmt.Println("Use ↑/↓ and Enter for details, Esc to exit.")
	a.interactiveSelect(ids, lines, "")
}

func trimLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
