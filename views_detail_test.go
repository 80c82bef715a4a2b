package main

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nagendra14319/book1432/api"
	"github.com/Nagendra14319/book1432/session"
)

func TestAffordancesFor(t *testing.T) {
	b := &api.Book{
		ID:     "b1",
		UserID: "owner",
		Reviews: []api.Review{
			{ID: "r1", UserID: "reviewer", Rating: 4},
		},
	}

	tests := []struct {
		name string
		cur  session.Session
		want affordances
	}{
		{
			name: "anonymous sees nothing",
			cur:  session.Session{},
			want: affordances{},
		},
		{
			name: "owner cannot review own book",
			cur:  session.Session{User: &api.User{ID: "owner"}, Token: "tok"},
			want: affordances{owner: true},
		},
		{
			name: "existing reviewer edits instead of writing",
			cur:  session.Session{User: &api.User{ID: "reviewer"}, Token: "tok"},
			want: affordances{myReview: &b.Reviews[0]},
		},
		{
			name: "other user may write",
			cur:  session.Session{User: &api.User{ID: "someone"}, Token: "tok"},
			want: affordances{canReview: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := affordancesFor(b, tt.cur)
			assert.Equal(t, tt.want.owner, got.owner)
			assert.Equal(t, tt.want.canReview, got.canReview)
			assert.Equal(t, tt.want.myReview, got.myReview)
		})
	}
}

// An edit form abandoned mid-prompt must not touch the server and must
// not ask the caller to re-fetch.
func TestAbandonedEditIsNotAMutation(t *testing.T) {
	var puts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			require.NoError(t, json.NewEncoder(w).Encode(api.Book{ID: "b1", Title: "Dune", Year: 1965}))
		case http.MethodPut:
			puts++
			require.NoError(t, json.NewEncoder(w).Encode(api.Book{ID: "b1"}))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	// Input ends after the first prompt, as if the user hit Ctrl-D.
	app := &App{
		api: api.NewClient(srv.URL, zerolog.Nop()),
		sc:  bufio.NewScanner(strings.NewReader("")),
	}

	assert.False(t, app.handleBookForm("b1"))
	assert.Zero(t, puts)
}
