package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"idea-management-api/models"
)

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 14, 30, 0, 0, time.Local)
}

// Thursday 2026-03-12; its Monday is 2026-03-09.
var metricsNow = localDate(2026, time.March, 12)

func sampleIdeas() ([]models.Idea, map[int]models.User) {
	ideas := []models.Idea{
		{IdeaID: 1, Status: models.StatusSubmitted, UserID: 1, CreatedAt: localDate(2026, time.March, 12)},
		{IdeaID: 2, Status: models.StatusInReview, UserID: 1, CreatedAt: localDate(2026, time.March, 10)},
		{IdeaID: 3, Status: models.StatusApproved, UserID: 2, CreatedAt: localDate(2026, time.March, 6)},
		{IdeaID: 4, Status: models.StatusRejected, UserID: 2, CreatedAt: localDate(2026, time.March, 1)},
		{IdeaID: 5, Status: models.StatusSubmitted, UserID: 3, CreatedAt: localDate(2026, time.February, 10)},
	}
	users := map[int]models.User{
		1: {UserID: 1, Name: "Alice", Email: "alice@example.com"},
		2: {UserID: 2, Name: "Carol", Email: "carol@example.com"},
		3: {UserID: 3, Name: "Carol Mobile", Email: "Carol@Example.com"},
	}
	return ideas, users
}

func TestBuildSummaryCounts(t *testing.T) {
	ideas, users := sampleIdeas()
	s := buildSummary(ideas, users, metricsNow)

	if s.Total != 5 || s.Open != 2 || s.InProgress != 1 || s.Approved != 1 || s.Rejected != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.Completed != s.Approved+s.Rejected {
		t.Fatalf("completed = %d, want approved+rejected = %d", s.Completed, s.Approved+s.Rejected)
	}
	if s.Total != s.Open+s.InProgress+s.Approved+s.Rejected {
		t.Fatalf("total %d does not equal sum of status counts", s.Total)
	}
}

func TestBuildSummaryDailyHistogram(t *testing.T) {
	ideas, users := sampleIdeas()
	s := buildSummary(ideas, users, metricsNow)

	if len(s.Last7Days) != 7 {
		t.Fatalf("expected 7 day buckets, got %d", len(s.Last7Days))
	}
	for i := 1; i < len(s.Last7Days); i++ {
		if s.Last7Days[i].Key <= s.Last7Days[i-1].Key {
			t.Fatalf("day keys not strictly increasing: %v", s.Last7Days)
		}
	}
	if last := s.Last7Days[6].Key; last != "2026-03-12" {
		t.Fatalf("last bucket should be today, got %s", last)
	}

	counts := map[string]int{}
	sum := 0
	for _, b := range s.Last7Days {
		counts[b.Key] = b.Count
		sum += b.Count
	}
	if counts["2026-03-06"] != 1 || counts["2026-03-10"] != 1 || counts["2026-03-12"] != 1 {
		t.Fatalf("unexpected day counts: %v", counts)
	}
	if sum != 3 {
		t.Fatalf("window sum = %d, want 3 (ideas created within the last 7 days)", sum)
	}
}

func TestBuildSummaryWeeklyHistogram(t *testing.T) {
	ideas, users := sampleIdeas()
	s := buildSummary(ideas, users, metricsNow)

	if len(s.Last4Weeks) != 4 {
		t.Fatalf("expected 4 week buckets, got %d", len(s.Last4Weeks))
	}
	for i := 1; i < len(s.Last4Weeks); i++ {
		if s.Last4Weeks[i].Key <= s.Last4Weeks[i-1].Key {
			t.Fatalf("week keys not strictly increasing: %v", s.Last4Weeks)
		}
	}

	want := []Bucket{
		{Key: "2026-02-16", Count: 0},
		{Key: "2026-02-23", Count: 1}, // Sunday 2026-03-01 belongs to the week of Monday 02-23
		{Key: "2026-03-02", Count: 1},
		{Key: "2026-03-09", Count: 2},
	}
	for i, b := range s.Last4Weeks {
		if b != want[i] {
			t.Fatalf("week bucket %d = %+v, want %+v", i, b, want[i])
		}
	}

	// The last bucket is the current week: its start is <= today and within 7 days.
	last, err := time.ParseInLocation(dayKeyFormat, s.Last4Weeks[3].Key, time.Local)
	if err != nil {
		t.Fatalf("bad week key: %v", err)
	}
	if last.After(metricsNow) || metricsNow.Sub(last) >= 7*24*time.Hour {
		t.Fatalf("current week start %s out of range for now %s", last, metricsNow)
	}
}

func TestBuildSummaryOwnerRollup(t *testing.T) {
	ideas, users := sampleIdeas()
	s := buildSummary(ideas, users, metricsNow)

	if len(s.ByWhom) != 2 {
		t.Fatalf("expected 2 rollup groups (emails differ only by case), got %d: %+v", len(s.ByWhom), s.ByWhom)
	}

	carol := s.ByWhom[0]
	if carol.Total != 3 || carol.Open != 1 || carol.InProgress != 0 || carol.Completed != 2 {
		t.Fatalf("unexpected carol rollup: %+v", carol)
	}

	alice := s.ByWhom[1]
	if alice.OwnerEmail != "alice@example.com" || alice.Total != 2 || alice.Open != 1 || alice.InProgress != 1 {
		t.Fatalf("unexpected alice rollup: %+v", alice)
	}

	if s.ByWhom[0].Total < s.ByWhom[1].Total {
		t.Fatalf("rollups not sorted by total desc: %+v", s.ByWhom)
	}
}

func TestBuildSummaryEmptySnapshot(t *testing.T) {
	s := buildSummary(nil, nil, metricsNow)

	if s.Total != 0 || s.Completed != 0 {
		t.Fatalf("expected zero counts, got %+v", s)
	}
	if len(s.Last7Days) != 7 || len(s.Last4Weeks) != 4 {
		t.Fatalf("histograms must be zero-filled: %d days, %d weeks", len(s.Last7Days), len(s.Last4Weeks))
	}
	for _, b := range append(s.Last7Days, s.Last4Weeks...) {
		if b.Count != 0 {
			t.Fatalf("expected zero-filled buckets, got %+v", b)
		}
	}
	if len(s.ByWhom) != 0 {
		t.Fatalf("expected empty rollup, got %+v", s.ByWhom)
	}
}

func TestBuildSummaryDeterministic(t *testing.T) {
	ideas, users := sampleIdeas()
	a := buildSummary(ideas, users, metricsNow)
	b := buildSummary(ideas, users, metricsNow)

	if len(a.ByWhom) != len(b.ByWhom) {
		t.Fatalf("rollup lengths differ: %d vs %d", len(a.ByWhom), len(b.ByWhom))
	}
	for i := range a.ByWhom {
		if a.ByWhom[i] != b.ByWhom[i] {
			t.Fatalf("rollup order not deterministic at %d: %+v vs %+v", i, a.ByWhom[i], b.ByWhom[i])
		}
	}
}

func TestWeekStartIsMonday(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{localDate(2026, time.March, 9), "2026-03-09"},  // Monday maps to itself
		{localDate(2026, time.March, 12), "2026-03-09"}, // Thursday
		{localDate(2026, time.March, 1), "2026-02-23"},  // Sunday closes the prior week
	}
	for _, tt := range tests {
		if got := weekStart(tt.in).Format(dayKeyFormat); got != tt.want {
			t.Errorf("weekStart(%s) = %s, want %s", tt.in.Format(dayKeyFormat), got, tt.want)
		}
	}
}

func TestSummaryLoadsSnapshot(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMetricsService(db)
	svc.now = func() time.Time { return metricsNow }

	mock.ExpectQuery("SELECT (.+) FROM `ideas`").
		WillReturnRows(sqlmock.NewRows(ideaColumns).
			AddRow(1, "Reduce build time", "Cache modules in CI", models.StatusSubmitted, 2, localDate(2026, time.March, 12)))
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email"}).
			AddRow(2, "Alice", "alice@example.com"))

	s, err := svc.Summary()
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if s.Total != 1 || s.Open != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if len(s.ByWhom) != 1 || s.ByWhom[0].OwnerEmail != "alice@example.com" {
		t.Fatalf("unexpected rollup: %+v", s.ByWhom)
	}
	verifyExpectations(t, mock)
}
