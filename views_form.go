package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Nagendra14319/book1432/api"
)

// handleBookForm is one form for both adding and editing a book,
// distinguished by whether an ID was supplied. Editing pre-fills every
// field; Enter keeps the current value. Reports whether the book was
// actually created or updated, so callers only re-fetch after a change.
func (a *App) handleBookForm(editID string) bool {
	isEdit := editID != ""

	var draft api.BookDraft
	if isEdit {
		fmt.Println("Loading book...")
		b, err := a.api.GetBook(context.Background(), editID)
		if err != nil {
			if api.IsNotFound(err) {
				fmt.Println("Book not found")
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			return false
		}
		draft = api.BookDraft{
			Title:       b.Title,
			Author:      b.Author,
			Genre:       b.Genre,
			Year:        b.Year,
			Description: b.Description,
			ImageURL:    b.ImageURL,
		}
		fmt.Printf("Editing '%s'. Press Enter to keep the current value.\n", b.Title)
	} else {
		fmt.Println("Add a new book.")
	}

	var ok bool
	if isEdit {
		if draft.Title, ok = a.promptDefault("Title", draft.Title); !ok {
			return false
		}
		if draft.Author, ok = a.promptDefault("Author", draft.Author); !ok {
			return false
		}
		if draft.Genre, ok = a.promptDefault("Genre", draft.Genre); !ok {
			return false
		}
		if draft.Year, ok = a.promptYear(draft.Year); !ok {
			return false
		}
		if draft.ImageURL, ok = a.promptDefault("Cover image URL", draft.ImageURL); !ok {
			return false
		}
		if draft.Description, ok = a.promptDefault("Description", draft.Description); !ok {
			return false
		}
	} else {
		if draft.Title, ok = a.promptRequired("Title: "); !ok {
			return false
		}
		if draft.Author, ok = a.promptRequired("Author: "); !ok {
			return false
		}
		if draft.Genre, ok = a.promptRequired("Genre (e.g., Fiction, Mystery): "); !ok {
			return false
		}
		if draft.Year, ok = a.promptInt("Publication year: ", 1000, 2100); !ok {
			return false
		}
		// Optional; the server falls back to a default cover.
		if draft.ImageURL, ok = a.promptLine("Cover image URL (optional): "); !ok {
			return false
		}
		if draft.Description, ok = a.promptRequired("Description: "); !ok {
			return false
		}
	}

	token := a.store.Token()
	if isEdit {
		if _, err := a.api.UpdateBook(context.Background(), token, editID, draft); err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		fmt.Println("Book updated.")
		return true
	}

	b, err := a.api.CreateBook(context.Background(), token, draft)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return false
	}
	fmt.Printf("Added '%s' (ID %s).\n", b.Title, b.ID)
	return true
}

// promptRequired keeps asking until the field is non-empty.
func (a *App) promptRequired(label string) (string, bool) {
	for {
		v, ok := a.promptLine(label)
		if !ok {
			return "", false
		}
		if v != "" {
			return v, true
		}
		fmt.Println("This field is required.")
	}
}

// promptYear reads a publication year, keeping def on empty input.
func (a *App) promptYear(def int) (int, bool) {
	for {
		v, ok := a.promptLine(fmt.Sprintf("Year [%d]: ", def))
		if !ok {
			return 0, false
		}
		if v == "" {
			return def, true
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 1000 || n > 2100 {
			fmt.Println("Please enter a year between 1000 and 2100.")
			continue
		}
		return n, true
	}
}
