package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusSubmitted, StatusInReview, StatusApproved, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "submitted", "PENDING", "In review", "Done"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestDecided(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusSubmitted, false},
		{StatusInReview, false},
		{StatusApproved, true},
		{StatusRejected, true},
	}
	for _, tt := range tests {
		idea := Idea{Status: tt.status}
		if got := idea.Decided(); got != tt.want {
			t.Errorf("Decided() with status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}
