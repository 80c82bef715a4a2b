package main

import (
	"context"
	"fmt"
)

// handleLogin is the login view: two fields, one request. A failure leaves
// any existing session in place.
func (a *App) handleLogin() {
	email, ok := a.promptLine("Email: ")
	if !ok || email == "" {
		return
	}
	password, err := readPassword("Password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}

	if err := a.store.Login(context.Background(), email, password); err != nil {
		fmt.Printf("Login failed: %v\n", err)
		return
	}
	fmt.Printf("Welcome back, %s!\n", a.store.Current().User.Username)
}

// handleSignup registers a new account and adopts its session immediately.
func (a *App) handleSignup() {
	username, ok := a.promptLine("Username: ")
	if !ok || username == "" {
		return
	}
	email, ok := a.promptLine("Email: ")
	if !ok || email == "" {
		return
	}
	password, err := readPassword("Password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}
	if password == "" {
		fmt.Println("Error: Password cannot be empty")
		return
	}

	if err := a.store.Signup(context.Background(), username, email, password); err != nil {
		fmt.Printf("Signup failed: %v\n", err)
		return
	}
	fmt.Printf("Account created. Welcome, %s!\n", a.store.Current().User.Username)
}

func (a *App) handleLogout() {
	if !a.store.Authenticated() {
		fmt.Println("You are not logged in.")
		return
	}
	if err := a.store.Logout(); err != nil {
		// The in-memory session is cleared either way.
		a.log.Warn().Err(err).Msg("clear saved session failed")
	}
	fmt.Println("Logged out.")
}

func (a *App) handleWhoami() {
	cur := a.store.Current()
	if !cur.Authenticated() {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("%s <%s>\n", cur.User.Username, cur.User.Email)
}
