package api

import "time"

// User is the identity attached to a session and to every book and review.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Credentials is the result of a successful login or signup.
type Credentials struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Review is a single rating + comment by one user on one book. The server
// enforces one review per (user, book) pair; the username is denormalized
// so lists render without extra lookups.
type Review struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`

	// Populated only on profile aggregates.
	BookID    string `json:"bookId,omitempty"`
	BookTitle string `json:"bookTitle,omitempty"`
}

// Book holds catalog metadata plus server-denormalized rating aggregates.
// List rows omit Description and Reviews; the detail endpoint embeds the
// full ordered review sequence.
type Book struct {
	ID            string   `json:"_id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Genre         string   `json:"genre"`
	Year          int      `json:"year"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	UserID        string   `json:"userId"`
	Username      string   `json:"username"`
	AverageRating float64  `json:"averageRating"`
	ReviewCount   int      `json:"reviewCount"`
	Reviews       []Review `json:"reviews"`
}

// BookPage is one server-paginated slice of the catalog.
type BookPage struct {
	Books       []Book `json:"books"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
}

// BookDraft is the mutable subset of a book sent on create and update.
type BookDraft struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ReviewDraft is the body of a review creation request.
type ReviewDraft struct {
	BookID  string `json:"bookId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Stats aggregates a user's activity for the profile view. Distribution
// keys are ratings 1..5.
type Stats struct {
	TotalBooks              int         `json:"totalBooks"`
	TotalReviewsGiven       int         `json:"totalReviewsGiven"`
	TotalReviewsReceived    int         `json:"totalReviewsReceived"`
	RatingDistribution      map[int]int `json:"ratingDistribution"`
	GivenRatingDistribution map[int]int `json:"givenRatingDistribution"`
}

// Profile is the aggregated view of everything owned by or aimed at the
// authenticated user.
type Profile struct {
	MyBooks         []Book   `json:"myBooks"`
	ReviewsGiven    []Review `json:"reviewsGiven"`
	ReviewsReceived []Review `json:"reviewsReceived"`
	Stats           Stats    `json:"stats"`
}
