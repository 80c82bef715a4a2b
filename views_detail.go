package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Nagendra14319/book1432/api"
	"github.com/Nagendra14319/book1432/nav"
	"github.com/Nagendra14319/book1432/session"
)

// handleBookDetail is the detail view: full book, embedded reviews, and
// the review form. Every successful mutation re-fetches the book; a failed
// one leaves the rendered state alone.
func (a *App) handleBookDetail(id string) {
	form := newReviewForm()

	for {
		fmt.Println("Loading book...")
		b, err := a.api.GetBook(context.Background(), id)
		if err != nil {
			if api.IsNotFound(err) {
				fmt.Println("Book not found")
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		refresh := false
		for !refresh {
			cur := a.store.Current()
			aff := affordancesFor(b, cur)

			a.renderBook(b, cur)

			var opts []string
			if aff.canReview {
				opts = append(opts, "[w]rite review")
			}
			if aff.myReview != nil {
				opts = append(opts, "[e]dit my review", "[d]elete my review")
			}
			if aff.owner {
				opts = append(opts, "[e]dit book", "[d]elete book")
			}
			opts = append(opts, "[r]efresh", "[b]ack")
			fmt.Printf("\nActions: %s\n", strings.Join(opts, " | "))

			input, ok := a.promptLine("> ")
			if !ok {
				return
			}

			switch strings.ToLower(input) {
			case "w", "write":
				if !aff.canReview {
					fmt.Println("Unknown action.")
					continue
				}
				refresh = a.submitReviewForm(form, b.ID)
			case "e", "edit":
				switch {
				case aff.owner:
					a.visit(nav.EditBook, func() { refresh = a.handleBookForm(b.ID) })
				case aff.myReview != nil:
					form.startEdit(aff.myReview)
					refresh = a.submitReviewForm(form, b.ID)
				default:
					fmt.Println("Unknown action.")
				}
			case "d", "delete":
				switch {
				case aff.owner:
					if a.deleteBook(b.ID) {
						return // book is gone; back to the prompt
					}
				case aff.myReview != nil:
					refresh = a.deleteReview(aff.myReview.ID)
				default:
					fmt.Println("Unknown action.")
				}
			case "r", "refresh":
				refresh = true
			case "b", "back", "q", "quit":
				return
			case "":
				continue
			default:
				fmt.Println("Unknown action.")
			}
		}
	}
}

// affordances is what the detail view lets the current user do with a
// book. The write affordance is hidden, never disabled: the owner and a
// user who already reviewed simply don't get it.
type affordances struct {
	owner     bool
	myReview  *api.Review
	canReview bool
}

func affordancesFor(b *api.Book, cur session.Session) affordances {
	owner := cur.Authenticated() && cur.User.ID == b.UserID
	my := findReview(b.Reviews, cur)
	return affordances{
		owner:     owner,
		myReview:  my,
		canReview: cur.Authenticated() && !owner && my == nil,
	}
}

func findReview(reviews []api.Review, cur session.Session) *api.Review {
	if !cur.Authenticated() {
		return nil
	}
	for i := range reviews {
		if reviews[i].UserID == cur.User.ID {
			return &reviews[i]
		}
	}
	return nil
}

func (a *App) renderBook(b *api.Book, cur session.Session) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("%s\n", b.Title)
	fmt.Printf("by %s\n", b.Author)
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("Genre: %s | Year: %d | Rating: %s (%d reviews)\n",
		b.Genre, b.Year, ratingLabel(b.AverageRating), len(b.Reviews))
	if b.ImageURL != "" {
		fmt.Printf("Cover: %s\n", b.ImageURL)
	}
	fmt.Printf("\n%s\n", b.Description)
	fmt.Printf("\nAdded by %s\n", b.Username)

	fmt.Printf("\nReviews (%d)\n", len(b.Reviews))
	fmt.Println(strings.Repeat("-", 72))
	if len(b.Reviews) == 0 {
		fmt.Println("No reviews yet. Be the first to review this book!")
		return
	}
	for _, r := range b.Reviews {
		you := ""
		if cur.Authenticated() && r.UserID == cur.User.ID {
			you = " (you)"
		}
		fmt.Printf("%s%s  %s  %s\n", r.Username, you, stars(r.Rating), r.CreatedAt.Format("Jan 2, 2006"))
		fmt.Printf("  %s\n", r.Comment)
	}
}

// submitReviewForm runs the shared create/edit review form. It reports
// whether the view should re-fetch.
func (a *App) submitReviewForm(form *reviewForm, bookID string) bool {
	if form.editing() {
		fmt.Println("Editing your review. Leave the comment empty to cancel.")
	}

	rating, ok := a.promptRating(form.rating)
	if !ok {
		form.reset()
		return false
	}

	comment, ok := a.promptLine("Your review: ")
	if !ok {
		form.reset()
		return false
	}
	if comment == "" {
		if form.editing() {
			form.reset()
			fmt.Println("Cancelled.")
		} else {
			fmt.Println("A review needs a comment.")
		}
		return false
	}

	form.rating = rating
	form.comment = comment
	if err := form.submit(context.Background(), a.api, a.store.Token(), bookID); err != nil {
		fmt.Printf("Error: %v\n", err)
		return false
	}
	fmt.Println("Review submitted.")
	return true
}

// promptRating reads a 1–5 rating, keeping def on empty input.
func (a *App) promptRating(def int) (rating int, ok bool) {
	for {
		v, ok := a.promptLine(fmt.Sprintf("Rating (1-5) [%d]: ", def))
		if !ok {
			return 0, false
		}
		if v == "" {
			return def, true
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 5 {
			fmt.Println("Please enter a number between 1 and 5.")
			continue
		}
		return n, true
	}
}

// deleteReview removes the user's review. On failure the review list is
// NOT re-fetched; the message is simply shown.
func (a *App) deleteReview(reviewID string) bool {
	if !a.confirm("Delete this review?") {
		return false
	}
	if err := a.api.DeleteReview(context.Background(), a.store.Token(), reviewID); err != nil {
		fmt.Printf("Error: %v\n", err)
		return false
	}
	fmt.Println("Review deleted.")
	return true
}

// deleteBook removes an owned book with all its reviews. Reports whether
// the book is gone.
func (a *App) deleteBook(bookID string) bool {
	if !a.confirm("Delete this book and all its reviews?") {
		return false
	}
	if err := a.api.DeleteBook(context.Background(), a.store.Token(), bookID); err != nil {
		fmt.Printf("Error: %v\n", err)
		return false
	}
	fmt.Println("Book deleted.")
	return true
}
