// Command import_books bulk-loads a catalog file into the BookReview
// service through the public API: it logs in once, then creates one book
// per entry, reporting per-item results.
//
// The input is a JSON array of book drafts:
//
//	[{"title": "1984", "author": "George Orwell", "genre": "Dystopia",
//	  "year": 1949, "description": "...", "imageUrl": ""}]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"golang.org/x/term"

	"github.com/Nagendra14319/book1432/api"
	"github.com/Nagendra14319/book1432/logger"
)

func main() {
	var (
		apiURL = flag.String("api", api.DefaultBaseURL, "base URL of the BookReview API")
		file   = flag.String("file", "books.json", "path to the JSON catalog file")
		email  = flag.String("email", "", "account email (required)")
		debug  = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Error: -email is required")
		os.Exit(1)
	}

	raw, err := os.ReadFile(filepath.Clean(*file))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog file: %v\n", err)
		os.Exit(1)
	}
	var drafts []api.BookDraft
	if err := json.Unmarshal(raw, &drafts); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing catalog file: %v\n", err)
		os.Exit(1)
	}

	password := os.Getenv("BOOK1432_PASSWORD")
	if password == "" {
		if password, err = readPassword(fmt.Sprintf("Password for %s: ", *email)); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			os.Exit(1)
		}
	}

	zlog := logger.Setup(*debug)
	client := api.NewClient(*apiURL, zlog)
	ctx := context.Background()

	creds, err := client.Login(ctx, *email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Logged in as %s.\n", creds.User.Username)

	fmt.Printf("Importing %d books from %s...\n", len(drafts), *file)
	successCount := 0
	errorCount := 0

	for _, draft := range drafts {
		fmt.Printf("Importing: %s by %s... ", draft.Title, draft.Author)
		book, err := client.CreateBook(ctx, creds.Token, draft)
		if err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}
		fmt.Printf("SUCCESS (ID %s)\n", book.ID)
		successCount++
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d books\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return string(bytePassword), nil
}
