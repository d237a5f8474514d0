package models

import "testing"

func TestCanTransitionApplication(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusApplied, StatusInterview, true},
		{StatusApplied, StatusRejected, true},
		{StatusApplied, StatusOffer, false},
		{StatusInterview, StatusOffer, true},
		{StatusInterview, StatusRejected, true},
		{StatusInterview, StatusApplied, false},
		{StatusOffer, StatusRejected, false},
		{StatusRejected, StatusApplied, false},
		{StatusOffer, StatusOffer, true},
		{StatusApplied, "ghosted", false},
	}
	for _, tc := range cases {
		if got := CanTransitionApplication(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransitionApplication(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleJobseeker) || !ValidRole(RoleJobprovider) {
		t.Fatal("known roles rejected")
	}
	if ValidRole("admin") || ValidRole("") {
		t.Fatal("unknown role accepted")
	}
}
