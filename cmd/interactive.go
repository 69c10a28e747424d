package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"
)

// interactiveSelect presents a paginated list (20 per page) of results and
// lets the user inspect individual sales. ↑/↓ navigate within a page, ←/→
// change pages, Enter shows details, Esc exits. When client is non-empty the
// detail view offers saving the sale to that client's shortlist. It expects
// len(ids)==len(lines).
func (a *app) interactiveSelect(ids []string, lines []string, client string) {
	const pageSize = 20

	if len(ids) == 0 {
		return
	}

	if runtime.GOOS == "windows" {
		enableVT()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Println("(interactive selection not supported on this terminal)")
		return
	}
	defer term.Restore(fd, oldState)

	reader := bufio.NewReader(os.Stdin)
	page := 0
	selected := 0
	totalPages := (len(ids) + pageSize - 1) / pageSize

	pageLen := func() int {
		n := pageSize
		if page*pageSize+n > len(ids) {
			n = len(ids) - page*pageSize
		}
		return n
	}

	redraw := func() {
		// Clear screen (ANSI reset to top + clear screen)
		fmt.Print("\033[H\033[2J")
		start := page * pageSize
		for i := start; i < start+pageLen(); i++ {
			prefix := "  "
			if i-start == selected {
				prefix = "> "
			}
			fmt.Println(prefix + lines[i])
		}
		if totalPages > 1 {
			fmt.Printf("(↑/↓ navigate, ←/→ page, Enter details, Esc quit)  Page %d/%d\n", page+1, totalPages)
		} else {
			fmt.Println("(↑/↓ to navigate, Enter to view details, Esc to quit)")
		}
	}

	showDetails := func() error {
		idx := page*pageSize + selected
		if idx >= len(ids) {
			return nil
		}
		term.Restore(fd, oldState) // restore cooked mode before rendering details
		fmt.Println()
		a.inspect(ids[idx], client)

		// Wait for user acknowledgement before returning to list
		fmt.Print("\n(press Enter to return)")
		_, _ = bufio.NewReader(os.Stdin).ReadBytes('\n')

		oldState, err = term.MakeRaw(fd)
		if err != nil {
			fmt.Println("(interactive selection not supported on this terminal)")
			return err
		}
		if runtime.GOOS == "windows" {
			enableVT()
		}
		reader = bufio.NewReader(os.Stdin)
		redraw()
		return nil
	}

	redraw()

	for {
		b1, err := reader.ReadByte()
		if err != nil {
			return
		}
		// Handle Windows console arrow sequences (0 or 224, then code)
		if b1 == 0 || b1 == 224 {
			b2, _ := reader.ReadByte()
			switch b2 {
			case 72: // up
				if selected > 0 {
					selected--
					redraw()
				}
			case 80: // down
				if selected < pageLen()-1 {
					selected++
					redraw()
				}
			case 75: // left
				if page > 0 {
					page--
					selected = 0
					redraw()
				}
			case 77: // right
				if page < totalPages-1 {
					page++
					selected = 0
					redraw()
				}
			case 13: // Enter
				if showDetails() != nil {
					return
				}
			}
			continue
		}

		switch b1 {
		case 27: // ESC or ANSI sequence
			if reader.Buffered() == 0 {
				// Bare ESC – exit
				fmt.Println()
				return
			}
			b2, _ := reader.ReadByte()
			if b2 != '[' {
				// Not a CSI sequence; ignore unknown combo
				continue
			}
			if reader.Buffered() == 0 {
				continue
			}
			b3, _ := reader.ReadByte()
			switch b3 {
			case 'A': // up
				if selected > 0 {
					selected--
					redraw()
				}
			case 'B': // down
				if selected < pageLen()-1 {
					selected++
					redraw()
				}
			case 'D': // left
				if page > 0 {
					page--
					selected = 0
					redraw()
				}
			case 'C': // right
				if page < totalPages-1 {
					page++
					selected = 0
					redraw()
				}
			}
		case '\r', '\n': // Enter
			if showDetails() != nil {
				return
			}
		case 3: // Ctrl-C
			fmt.Println()
			return
		default:
			// ignore other keys
		}
	}
}

// inspect renders a sale and, for client-driven views, offers to save it.
func (a *app) inspect(id, client string) {
	rec, ok := a.store.ByID(id)
	if !ok {
		fmt.Printf("No sale found for id: %s\n", id)
		return
	}
	a.renderRecord(rec)

	if client == "" {
		return
	}
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("Save to %s shortlist? (y/N): ", client)
	resp, _ := reader.ReadString('\n')
	resp = trimLower(resp)
	if resp == "y" || resp == "yes" {
		if err := a.saveToShortlist(rec, client); err != nil {
			fmt.Printf("Failed to save shortlist entry: %v\n", err)
		} else {
			fmt.Println("Saved.")
		}
	}
}
