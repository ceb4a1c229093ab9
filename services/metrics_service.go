package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"idea-management-api/models"
)

const dayKeyFormat = "2006-01-02"

// MetricsService derives dashboard counters from the current idea snapshot.
// The scan is a single pass over all ideas; output is deterministic for a
// fixed snapshot and a fixed clock.
type MetricsService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewMetricsService(db *gorm.DB) *MetricsService {
	return &MetricsService{db: db, now: time.Now}
}

// Bucket is one time-window entry of a histogram.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// OwnerRollup aggregates idea counts per owner, grouped by email.
type OwnerRollup struct {
	OwnerEmail string `json:"ownerEmail"`
	OwnerName  string `json:"ownerName"`
	Total      int    `json:"total"`
	Open       int    `json:"open"`
	InProgress int    `json:"inProgress"`
	Completed  int    `json:"completed"`
}

// MetricsSummary is the dashboard payload.
type MetricsSummary struct {
	Total      int           `json:"total"`
	Open       int           `json:"open"`
	InProgress int           `json:"inProgress"`
	Approved   int           `json:"approved"`
	Rejected   int           `json:"rejected"`
	Completed  int           `json:"completed"`
	Last7Days  []Bucket      `json:"last7Days"`
	Last4Weeks []Bucket      `json:"last4Weeks"`
	ByWhom     []OwnerRollup `json:"byWhom"`
}

// Summary loads the full idea set plus owners and aggregates them.
func (s *MetricsService) Summary() (*MetricsSummary, error) {
	var ideas []models.Idea
	if err := s.db.Find(&ideas).Error; err != nil {
		return nil, fmt.Errorf("load ideas: %w", err)
	}

	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	userMap := make(map[int]models.User, len(users))
	for _, u := range users {
		userMap[u.UserID] = u
	}

	return buildSummary(ideas, userMap, s.now()), nil
}

// buildSummary is the pure aggregation core.
func buildSummary(ideas []models.Idea, users map[int]models.User, now time.Time) *MetricsSummary {
	summary := &MetricsSummary{Total: len(ideas)}

	dayBuckets := make(map[string]int)
	weekBuckets := make(map[string]int)
	rollups := make(map[string]*OwnerRollup)

	for _, idea := range ideas {
		switch idea.Status {
		case models.StatusSubmitted:
			summary.Open++
		case models.StatusInReview:
			summary.InProgress++
		case models.StatusApproved:
			summary.Approved++
		case models.StatusRejected:
			summary.Rejected++
		}

		created := idea.CreatedAt
		if created.IsZero() {
			created = now
		}
		dayBuckets[created.Format(dayKeyFormat)]++
		weekBuckets[weekStart(created).Format(dayKeyFormat)]++

		ownerEmail, ownerName := "Unknown", ""
		if owner, ok := users[idea.UserID]; ok {
			ownerEmail = owner.Email
			ownerName = owner.Name
		}
		key := strings.ToLower(ownerEmail)
		entry := rollups[key]
		if entry == nil {
			entry = &OwnerRollup{OwnerEmail: ownerEmail, OwnerName: ownerName}
			rollups[key] = entry
		}
		entry.Total++
		switch idea.Status {
		case models.StatusSubmitted:
			entry.Open++
		case models.StatusInReview:
			entry.InProgress++
		case models.StatusApproved, models.StatusRejected:
			entry.Completed++
		}
	}
	summary.Completed = summary.Approved + summary.Rejected

	// Last 7 calendar days ending today, oldest first, zero-filled.
	summary.Last7Days = make([]Bucket, 0, 7)
	for i := 6; i >= 0; i-- {
		key := now.AddDate(0, 0, -i).Format(dayKeyFormat)
		summary.Last7Days = append(summary.Last7Days, Bucket{Key: key, Count: dayBuckets[key]})
	}

	// Last 4 Monday-aligned weeks ending with the current week.
	summary.Last4Weeks = make([]Bucket, 0, 4)
	for i := 3; i >= 0; i-- {
		key := weekStart(now.AddDate(0, 0, -7*i)).Format(dayKeyFormat)
		summary.Last4Weeks = append(summary.Last4Weeks, Bucket{Key: key, Count: weekBuckets[key]})
	}

	summary.ByWhom = make([]OwnerRollup, 0, len(rollups))
	for _, entry := range rollups {
		summary.ByWhom = append(summary.ByWhom, *entry)
	}
	sort.Slice(summary.ByWhom, func(i, j int) bool {
		if summary.ByWhom[i].Total != summary.ByWhom[j].Total {
			return summary.ByWhom[i].Total > summary.ByWhom[j].Total
		}
		return strings.ToLower(summary.ByWhom[i].OwnerEmail) < strings.ToLower(summary.ByWhom[j].OwnerEmail)
	})

	return summary
}

// weekStart truncates t to midnight of its Monday, server-local time.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}
