package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nagendra14319/book1432/api"
)

// handleProfile renders the authenticated user's aggregated activity in
// one shot: stat cards, the two rating distributions, owned books, and
// reviews in both directions.
func (a *App) handleProfile() {
	fmt.Println("Loading profile...")
	p, err := a.api.GetProfile(context.Background(), a.store.Token())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	cur := a.store.Current()
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("My Profile — %s\n", cur.User.Username)
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("Books Added: %d | Reviews Given: %d | Reviews Received: %d\n",
		p.Stats.TotalBooks, p.Stats.TotalReviewsGiven, p.Stats.TotalReviewsReceived)

	renderDistribution("Ratings Received on My Books", p.Stats.RatingDistribution)
	renderDistribution("Ratings I've Given to Books", p.Stats.GivenRatingDistribution)

	fmt.Printf("\nMy Books (%d)\n", len(p.MyBooks))
	fmt.Println(strings.Repeat("-", 72))
	if len(p.MyBooks) == 0 {
		fmt.Println("You haven't added any books yet.")
	} else {
		fmt.Printf("%-26s %-28s %-8s %s\n", "ID", "Title", "Rating", "Reviews")
		for _, b := range p.MyBooks {
			fmt.Printf("%-26s %-28s %-8s %d\n",
				b.ID, truncateString(b.Title, 28), ratingLabel(b.AverageRating), b.ReviewCount)
		}
	}

	fmt.Printf("\nReviews I've Given (%d)\n", len(p.ReviewsGiven))
	fmt.Println(strings.Repeat("-", 72))
	if len(p.ReviewsGiven) == 0 {
		fmt.Println("No reviews given yet.")
	} else {
		for _, r := range p.ReviewsGiven {
			fmt.Printf("%s  %s\n", stars(r.Rating), reviewBookLabel(r))
			fmt.Printf("  %s\n", r.Comment)
		}
	}

	fmt.Printf("\nReviews on My Books (%d)\n", len(p.ReviewsReceived))
	fmt.Println(strings.Repeat("-", 72))
	if len(p.ReviewsReceived) == 0 {
		fmt.Println("No reviews received yet.")
	} else {
		for _, r := range p.ReviewsReceived {
			fmt.Printf("%s  %s by %s\n", stars(r.Rating), reviewBookLabel(r), r.Username)
			fmt.Printf("  %s\n", r.Comment)
		}
	}
}

func reviewBookLabel(r api.Review) string {
	if r.BookTitle != "" {
		return r.BookTitle
	}
	return r.BookID
}

const distributionBarWidth = 40

// renderDistribution prints one five-row bar chart, widest bar = most
// common rating.
func renderDistribution(title string, dist map[int]int) {
	fmt.Printf("\n%s\n", title)
	max := 1
	for _, c := range dist {
		if c > max {
			max = c
		}
	}
	for rating := 5; rating >= 1; rating-- {
		count := dist[rating]
		width := count * distributionBarWidth / max
		if count > 0 && width == 0 {
			width = 1
		}
		fmt.Printf("%d★ %s %d\n", rating, strings.Repeat("█", width), count)
	}
}
