package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const booksPerPage = 12

// handleBrowse is the home view: one server-driven page of the catalog at
// a time. The client holds only the current page number and the total the
// server reported.
func (a *App) handleBrowse() {
	currentPage := 1

	for {
		fmt.Println("Loading books...")
		page, err := a.api.ListBooks(context.Background(), currentPage, booksPerPage)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		currentPage = page.CurrentPage

		if len(page.Books) == 0 {
			fmt.Println("No books available yet. Be the first to add one!")
			return
		}

		fmt.Printf("\n%-26s %-28s %-22s %-14s %-8s %s\n", "ID", "Title", "Author", "Genre", "Rating", "Reviews")
		fmt.Println(strings.Repeat("-", 108))
		for _, b := range page.Books {
			fmt.Printf("%-26s %-28s %-22s %-14s %-8s %d\n",
				b.ID,
				truncateString(b.Title, 28),
				truncateString(b.Author, 22),
				truncateString(b.Genre, 14),
				ratingLabel(b.AverageRating),
				b.ReviewCount)
		}

		fmt.Printf("\n%s\n", paginationLine(page.CurrentPage, page.TotalPages))
		fmt.Println("Navigation: [n]ext | [p]revious | [g]oto page | [o]pen book | [q]uit")
		input, ok := a.promptLine("> ")
		if !ok {
			return
		}

		switch strings.ToLower(input) {
		case "n", "next":
			if currentPage < page.TotalPages {
				currentPage++
			} else {
				fmt.Println("You're already on the last page.")
			}
		case "p", "prev", "previous":
			if currentPage > 1 {
				currentPage--
			} else {
				fmt.Println("You're already on the first page.")
			}
		case "g", "goto":
			target, ok := a.promptLine(fmt.Sprintf("Enter page number (1-%d): ", page.TotalPages))
			if !ok {
				return
			}
			n, err := strconv.Atoi(target)
			if err != nil || n < 1 || n > page.TotalPages {
				fmt.Println("Invalid page number!")
				continue
			}
			currentPage = n
		case "o", "open":
			id, ok := a.promptLine("Book ID: ")
			if !ok {
				return
			}
			if id != "" {
				a.handleBookDetail(id)
			}
		case "q", "quit", "exit":
			return
		case "":
			continue
		default:
			fmt.Printf("Unknown command: %s\n", input)
		}
	}
}

// paginationLine marks the current page, e.g. "Pages: 1 [2] 3 4 5".
func paginationLine(current, total int) string {
	if total < 1 {
		total = 1
	}
	var sb strings.Builder
	sb.WriteString("Pages:")
	for p := 1; p <= total; p++ {
		if p == current {
			fmt.Fprintf(&sb, " [%d]", p)
		} else {
			fmt.Fprintf(&sb, " %d", p)
		}
	}
	return sb.String()
}
