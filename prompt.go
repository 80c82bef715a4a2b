package main

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// promptLine prints label and reads one trimmed line. ok is false when
// stdin is closed.
func (a *App) promptLine(label string) (value string, ok bool) {
	fmt.Print(label)
	if !a.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.sc.Text()), true
}

// promptDefault reads a line, falling back to def on empty input.
func (a *App) promptDefault(label, def string) (value string, ok bool) {
	v, ok := a.promptLine(fmt.Sprintf("%s [%s]: ", label, def))
	if !ok {
		return "", false
	}
	if v == "" {
		return def, true
	}
	return v, true
}

// promptInt keeps asking until it gets an integer in [min, max].
func (a *App) promptInt(label string, min, max int) (value int, ok bool) {
	for {
		v, ok := a.promptLine(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < min || n > max {
			fmt.Printf("Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, true
	}
}

// confirm asks a yes/no question; anything but y/yes declines.
func (a *App) confirm(label string) bool {
	v, ok := a.promptLine(label + " (y/N): ")
	if !ok {
		return false
	}
	v = strings.ToLower(v)
	return v == "y" || v == "yes"
}

// readPassword securely reads a password with masking.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println() // Add newline after password input
	return strings.TrimSpace(string(bytePassword)), nil
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}

// stars renders a 1–5 rating as filled and empty stars.
func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// ratingLabel shows an aggregate rating, or N/A before the first review.
func ratingLabel(avg float64) string {
	if avg > 0 {
		return fmt.Sprintf("%.1f", avg)
	}
	return "N/A"
}
