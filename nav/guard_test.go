package nav

import "testing"

func TestGuardAllRoutes(t *testing.T) {
	for _, r := range Routes {
		for _, authed := range []bool{false, true} {
			d := Guard(r, authed)
			wantAllowed := authed || !Protected(r)
			if d.Allowed != wantAllowed {
				t.Errorf("Guard(%q, %v).Allowed = %v, want %v", r, authed, d.Allowed, wantAllowed)
			}
			if !d.Allowed && d.Redirect != Login {
				t.Errorf("Guard(%q, %v) redirect = %q, want %q", r, authed, d.Redirect, Login)
			}
			if d.Allowed && d.Redirect != "" {
				t.Errorf("Guard(%q, %v) allowed but redirect set", r, authed)
			}
		}
	}
}

func TestProtectedSet(t *testing.T) {
	want := map[Route]bool{
		Home: false, Login: false, Signup: false, BookDetail: false,
		AddBook: true, EditBook: true, Profile: true,
	}
	for r, p := range want {
		if Protected(r) != p {
			t.Errorf("Protected(%q) = %v, want %v", r, Protected(r), p)
		}
	}
}
