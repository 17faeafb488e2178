package identity

import "testing"

func TestStaticSignInSignOut(t *testing.T) {
	s := NewStatic()

	if s.Current() != nil {
		t.Fatal("Current() != nil on fresh provider")
	}

	var seen []*Identity
	s.OnChange(func(id *Identity) { seen = append(seen, id) })

	s.SignIn(Identity{UID: "uid-1", DisplayName: "Aline"})
	got := s.Current()
	if got == nil || got.UID != "uid-1" {
		t.Fatalf("Current() = %+v, want uid-1", got)
	}

	s.SignOut()
	if s.Current() != nil {
		t.Fatal("Current() != nil after SignOut")
	}

	if len(seen) != 2 || seen[0] == nil || seen[0].UID != "uid-1" || seen[1] != nil {
		t.Errorf("notifications = %v, want sign-in then nil", seen)
	}
}

func TestStaticSameUIDIsNoOp(t *testing.T) {
	s := NewStatic()
	calls := 0
	s.OnChange(func(*Identity) { calls++ })

	s.SignIn(Identity{UID: "uid-1"})
	s.SignIn(Identity{UID: "uid-1", DisplayName: "renamed"})

	if calls != 1 {
		t.Errorf("notifications = %d, want 1 (same UID is a no-op)", calls)
	}
}

func TestStaticSignOutWhenSignedOut(t *testing.T) {
	s := NewStatic()
	calls := 0
	s.OnChange(func(*Identity) { calls++ })

	s.SignOut()
	if calls != 0 {
		t.Errorf("notifications = %d, want 0", calls)
	}
}

func TestCurrentReturnsCopy(t *testing.T) {
	s := NewStatic()
	s.SignIn(Identity{UID: "uid-1", DisplayName: "Aline"})

	got := s.Current()
	got.DisplayName = "mutated"

	if s.Current().DisplayName != "Aline" {
		t.Error("mutating the returned identity leaked into the provider")
	}
}
