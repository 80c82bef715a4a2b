package main

import (
	"context"

	"github.com/Nagendra14319/book1432/api"
)

// reviewAPI is the slice of the API the review form needs; *api.Client
// satisfies it.
type reviewAPI interface {
	CreateReview(ctx context.Context, token string, draft api.ReviewDraft) (*api.Review, error)
	UpdateReview(ctx context.Context, token, id string, rating int, comment string) (*api.Review, error)
}

const defaultRating = 5

// reviewForm is the one form the detail view reuses for both writing and
// editing a review. The mode is explicit: Editing iff reviewID is held.
type reviewForm struct {
	reviewID string // empty => creating
	rating   int
	comment  string
}

func newReviewForm() *reviewForm {
	return &reviewForm{rating: defaultRating}
}

func (f *reviewForm) editing() bool { return f.reviewID != "" }

// startEdit preloads the form with an existing review's fields.
func (f *reviewForm) startEdit(r *api.Review) {
	f.reviewID = r.ID
	f.rating = r.Rating
	f.comment = r.Comment
}

// reset returns the form to create mode with its defaults.
func (f *reviewForm) reset() {
	f.reviewID = ""
	f.rating = defaultRating
	f.comment = ""
}

// submit creates or updates depending on the mode, and resets the form
// only on success so a failed submit keeps the user's input.
func (f *reviewForm) submit(ctx context.Context, svc reviewAPI, token, bookID string) error {
	var err error
	if f.editing() {
		_, err = svc.UpdateReview(ctx, token, f.reviewID, f.rating, f.comment)
	} else {
		_, err = svc.CreateReview(ctx, token, api.ReviewDraft{BookID: bookID, Rating: f.rating, Comment: f.comment})
	}
	if err != nil {
		return err
	}
	f.reset()
	return nil
}
