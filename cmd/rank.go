package main

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ---------------- Client candidate ranking ----------------

// rankForClient scores the table against a named profile and opens the
// results in the interactive browser.
func (a *app) rankForClient(client string) {
	profiles := a.clientProfiles()
	criteria, ok := profiles[client]
	if !ok {
		fmt.Printf("Unknown client %q. Available profiles:\n", client)
		a.listProfiles()
		return
	}

	start := time.Now()
	results := a.store.RankCandidates(criteria)
	fmt.Printf("\nFound %d candidates for %s (%v)\n", len(results), client, time.Since(start).Truncate(time.Millisecond))
	if len(results) == 0 {
		fmt.Println("Nothing within budget. Adjust the profile and retry.")
		return
	}

	var ids []string
	var lines []string
	for i, r := range results {
		line := fmt.Sprintf("%2d. id %-12s | $%9.0f | %db/%.1fba %5.0f sqft | score %.2f (%s)",
			i+1, r.ID, r.Price, r.Bedrooms, r.Bathrooms, r.SqftLiving, r.Score, componentSummary(r.Components))
		lines = append(lines, line)
		ids = append(ids, r.ID)
		fmt.Println(line)
	}

	fmt.Println("Use ↑/↓ and Enter for details, Esc to exit.")
	a.interactiveSelect(ids, lines, client)
}

// componentSummary renders the non-zero score components in descending
// contribution order, e.g. "value 0.8, school 0.4".
func componentSummary(components map[string]float64) string {
	type comp struct {
		name  string
		value float64
	}
	comps := make([]comp, 0, len(components))
	for name, v := range components {
		if v > 0 {
			comps = append(comps, comp{name: name, value: v})
		}
	}
	sort.Slice(comps, func(i, j int) bool {
		if comps[i].value == comps[j].value {
			return comps[i].name < comps[j].name
		}
		return comps[i].value > comps[j].value
	})
	parts := make([]string, 0, len(comps))
	for _, c := range comps {
		parts = append(parts, fmt.Sprintf("%s %.1f", c.name, c.value))
	}
	if len(parts) == 0 {
		return "no bonuses"
	}
	return strings.Join(parts, ", ")
}
