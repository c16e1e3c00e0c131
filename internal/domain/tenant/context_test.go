package tenant

import "testing"

func TestContextAllows(t *testing.T) {
	tc := ForCoach("coach-1", []string{"team-b", "team-a", "team-a", ""})

	if !tc.Allows("team-a") {
		t.Fatalf("expected team-a to be allowed")
	}
	if tc.Allows("team-z") {
		t.Fatalf("expected team-z to be denied")
	}
	if tc.Allows("") {
		t.Fatalf("expected empty team id to be denied")
	}
}

func TestContextDefaultTeamIDIsSorted(t *testing.T) {
	tc := ForOrganization("org-1", []string{"team-b", "team-a"})
	if got := tc.DefaultTeamID(); got != "team-a" {
		t.Fatalf("expected team-a, got %s", got)
	}
}

func TestContextEmpty(t *testing.T) {
	if !(Context{}).Empty() {
		t.Fatalf("zero context should be empty")
	}
	if !(Context{}).Unresolved() {
		t.Fatalf("zero context should be unresolved")
	}

	tc := ForCoach("coach-1", nil)
	if !tc.Empty() {
		t.Fatalf("coach with zero teams should still be empty")
	}
	if tc.Unresolved() {
		t.Fatalf("coach context is resolved even with zero teams")
	}
}
