// Package nav maps view names to routes and decides, on every navigation,
// whether the requested view may render. The check is advisory: the server
// authorizes every request on its own; the guard only keeps forms the user
// cannot submit off the screen.
package nav

// Route identifies a navigable view.
type Route string

const (
	Home       Route = "/"
	Login      Route = "/login"
	Signup     Route = "/signup"
	BookDetail Route = "/book/:id"
	AddBook    Route = "/add-book"
	EditBook   Route = "/edit-book/:id"
	Profile    Route = "/profile"
)

// Routes lists every navigable view.
var Routes = []Route{Home, Login, Signup, BookDetail, AddBook, EditBook, Profile}

var protected = map[Route]bool{
	AddBook:  true,
	EditBook: true,
	Profile:  true,
}

// Protected reports whether r requires an active session to render.
func Protected(r Route) bool { return protected[r] }

// Decision is the outcome of guarding one navigation.
type Decision struct {
	Allowed  bool
	Redirect Route // login target, set only when !Allowed
}

// Guard allows the navigation, or redirects to the login view when r is
// protected and no session is active. It holds no state of its own.
func Guard(r Route, authenticated bool) Decision {
	if protected[r] && !authenticated {
		return Decision{Redirect: Login}
	}
	return Decision{Allowed: true}
}
