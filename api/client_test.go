package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zerolog.Nop())
}

func TestLoginSuccess(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice@example.com", body["email"])
		require.Equal(t, "hunter2", body["password"])

		json.NewEncoder(w).Encode(Credentials{
			User:  &User{ID: "u1", Username: "alice", Email: "alice@example.com"},
			Token: "tok-123",
		})
	}))

	creds, err := c.Login(context.Background(), "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", creds.Token)
	assert.Equal(t, "alice", creds.User.Username)
}

func TestLoginServerMessage(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	}))

	_, err := c.Login(context.Background(), "alice@example.com", "wrong")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestLoginFallbackOnUnparseableBody(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))

	_, err := c.Login(context.Background(), "a@b.c", "x")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Login failed", apiErr.Message)
}

func TestBearerTokenAttachedVerbatim(t *testing.T) {
	var gotAuth string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Book{ID: "b1"})
	}))

	_, err := c.CreateBook(context.Background(), "tok-123", BookDraft{Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUnauthenticatedCallsOmitAuthHeader(t *testing.T) {
	var sawAuth bool
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode(BookPage{})
	}))

	_, err := c.ListBooks(context.Background(), 1, 12)
	require.NoError(t, err)
	assert.False(t, sawAuth)
}

func TestListBooksPagination(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/books", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "12", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(BookPage{
			Books:       []Book{{ID: "b13", Title: "Thirteenth"}},
			CurrentPage: 2,
			TotalPages:  5,
		})
	}))

	bp, err := c.ListBooks(context.Background(), 2, 12)
	require.NoError(t, err)
	assert.Equal(t, 2, bp.CurrentPage)
	assert.Equal(t, 5, bp.TotalPages)
	require.Len(t, bp.Books, 1)
	assert.Equal(t, "Thirteenth", bp.Books[0].Title)
}

func TestGetBookNotFound(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Book not found"})
	}))

	_, err := c.GetBook(context.Background(), "abc")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(context.Canceled))
}

func TestDeleteReviewNotAuthorized(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/reviews/r9", r.URL.Path)
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "Not authorized"})
	}))

	err := c.DeleteReview(context.Background(), "tok", "r9")
	require.EqualError(t, err, "Not authorized")
}

func TestGetProfileDecodesAggregates(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profile", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(Profile{
			MyBooks: []Book{{ID: "b1", Title: "Mine"}},
			Stats: Stats{
				TotalBooks:         1,
				RatingDistribution: map[int]int{5: 3, 4: 1},
			},
		})
	}))

	p, err := c.GetProfile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Stats.TotalBooks)
	assert.Equal(t, 3, p.Stats.RatingDistribution[5])
	require.Len(t, p.MyBooks, 1)
}
