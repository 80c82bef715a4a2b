package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Nagendra14319/book1432/api"
	"github.com/Nagendra14319/book1432/logger"
	"github.com/Nagendra14319/book1432/nav"
	"github.com/Nagendra14319/book1432/session"
)

const sessionDBFile = "session.db"

// App wires the views to the API client and the session store.
type App struct {
	api   *api.Client
	store *session.Store
	sc    *bufio.Scanner
	log   zerolog.Logger

	// who is the prompt label, kept in sync with the session.
	who string
}

func main() {
	var (
		apiURL   string
		stateDir string
		debug    bool
	)

	root := &cobra.Command{
		Use:           "book1432",
		Short:         "Browse and review books from your terminal",
		Long:          "book1432 is an interactive terminal client for the BookReview catalog:\nbrowse paginated books, read and write reviews, and manage your own books.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Environment overrides apply when the flag was left at its default.
			if !cmd.Flags().Changed("api") {
				if v := os.Getenv("BOOK1432_API_URL"); v != "" {
					apiURL = v
				}
			}
			if !cmd.Flags().Changed("state-dir") {
				if v := os.Getenv("BOOK1432_STATE_DIR"); v != "" {
					stateDir = v
				}
			}
			return run(apiURL, stateDir, debug)
		},
	}

	root.Flags().StringVar(&apiURL, "api", api.DefaultBaseURL, "base URL of the BookReview API")
	root.Flags().StringVar(&stateDir, "state-dir", defaultStateDir(), "directory for the saved session")
	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".book1432"
	}
	return filepath.Join(home, ".book1432")
}

func run(apiURL, stateDir string, debug bool) error {
	zlog := logger.Setup(debug)
	client := api.NewClient(apiURL, zlog)

	store, err := session.NewStore(client, filepath.Join(stateDir, sessionDBFile), zlog)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	// Adopt a saved session, if any. Failure to restore only means the
	// user starts logged out.
	if err := store.Restore(); err != nil {
		zlog.Warn().Err(err).Msg("restore session failed")
	}

	app := &App{
		api:   client,
		store: store,
		sc:    bufio.NewScanner(os.Stdin),
		log:   zlog,
		who:   "guest",
	}
	if cur := store.Current(); cur.Authenticated() {
		app.who = cur.User.Username
	}
	store.Subscribe(func(s session.Session) {
		if s.Authenticated() {
			app.who = s.User.Username
		} else {
			app.who = "guest"
		}
	})

	app.loop()
	return nil
}

func (a *App) loop() {
	fmt.Println("Welcome to BookReview!")
	if cur := a.store.Current(); cur.Authenticated() {
		fmt.Printf("Logged in as %s.\n", cur.User.Username)
	}
	printHelp()

	for {
		fmt.Printf("\n%s> ", a.who)
		if !a.sc.Scan() {
			break
		}
		cmd := strings.TrimSpace(a.sc.Text())

		switch cmd {
		case "books", "browse":
			a.visit(nav.Home, a.handleBrowse)
		case "book":
			id, ok := a.promptLine("Book ID: ")
			if !ok || id == "" {
				continue
			}
			a.visit(nav.BookDetail, func() { a.handleBookDetail(id) })
		case "add book":
			a.visit(nav.AddBook, func() { a.handleBookForm("") })
		case "edit book":
			id, ok := a.promptLine("Book ID: ")
			if !ok || id == "" {
				continue
			}
			a.visit(nav.EditBook, func() { a.handleBookForm(id) })
		case "profile":
			a.visit(nav.Profile, a.handleProfile)
		case "login":
			a.visit(nav.Login, a.handleLogin)
		case "signup":
			a.visit(nav.Signup, a.handleSignup)
		case "logout":
			a.handleLogout()
		case "whoami":
			a.handleWhoami()
		case "help":
			printHelp()
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "":
			continue
		default:
			fmt.Println("Unknown command. Type 'help' for the available commands.")
		}
	}
}

// visit re-runs the route guard on every navigation. A redirected
// navigation lands on the login view; the user re-issues the command
// afterwards, like a browser left on /login.
func (a *App) visit(route nav.Route, view func()) {
	if d := nav.Guard(route, a.store.Authenticated()); !d.Allowed {
		fmt.Println("You need to log in first.")
		a.handleLogin()
		return
	}
	view()
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  Catalog: books, book")
	fmt.Println("  My books: add book, edit book")
	fmt.Println("  Account: login, signup, logout, whoami, profile")
	fmt.Println("  System: help, exit")
	fmt.Println()
	fmt.Println("Tips:")
	fmt.Println("  • 'books' opens the paginated catalog; open a book from there to review it")
	fmt.Println("  • Editing or deleting a book happens from its detail view")
}
