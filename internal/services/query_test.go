package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/rahulkure2004/rahul-portfolio/internal/domain"
	apperrors "github.com/rahulkure2004/rahul-portfolio/pkg/errors"
)

// seedInquiry inserts a row and then pins its created_at, since the create
// hook stamps the current time.
func seedInquiry(t *testing.T, db *gorm.DB, name, email, description, projectType string, createdAt time.Time) domain.Inquiry {
	t.Helper()

	inq := domain.Inquiry{
		FullName:    name,
		Email:       email,
		Description: description,
	}
	if projectType != "" {
		inq.ProjectType = &projectType
	}
	if err := db.Create(&inq).Error; err != nil {
		t.Fatalf("seed inquiry: %v", err)
	}
	if err := db.Model(&domain.Inquiry{}).Where("id = ?", inq.ID).
		UpdateColumn("created_at", createdAt).Error; err != nil {
		t.Fatalf("pin created_at: %v", err)
	}
	inq.CreatedAt = createdAt
	return inq
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestListOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := NewQueryService(db)

	seedInquiry(t, db, "Old", "old@x.com", "first", "", day(t, "2025-01-01"))
	seedInquiry(t, db, "Mid", "mid@x.com", "second", "", day(t, "2025-03-01"))
	seedInquiry(t, db, "New", "new@x.com", "third", "", day(t, "2025-06-01"))

	tests := []struct {
		name  string
		sort  string
		first string
		last  string
	}{
		{"default newest first", "", "New", "Old"},
		{"explicit desc", "desc", "New", "Old"},
		{"asc oldest first", "asc", "Old", "New"},
		{"garbage falls back to desc", "sideways", "New", "Old"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(context.Background(), tt.sort)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != 3 {
				t.Fatalf("len = %d, want 3", len(got))
			}
			if got[0].FullName != tt.first || got[2].FullName != tt.last {
				t.Errorf("order = [%s .. %s], want [%s .. %s]",
					got[0].FullName, got[2].FullName, tt.first, tt.last)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewQueryService(db)

	seedInquiry(t, db, "Alice from ACME", "alice@acme.com", "New storefront", "", day(t, "2025-01-10"))
	seedInquiry(t, db, "Bob", "bob@other.com", "Acme rebrand project", "", day(t, "2025-02-10"))
	seedInquiry(t, db, "Carol", "carol@x.com", "Landing page", "", day(t, "2025-03-10"))

	got, err := svc.Search(context.Background(), "acme")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (name and description matches)", len(got))
	}
	// Newest first.
	if got[0].FullName != "Bob" || got[1].FullName != "Alice from ACME" {
		t.Errorf("order = [%s, %s], want [Bob, Alice from ACME]", got[0].FullName, got[1].FullName)
	}

	none, err := svc.Search(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("len = %d, want 0 for non-matching keyword", len(none))
	}
}

func TestFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewQueryService(db)

	seedInquiry(t, db, "A", "a@x.com", "d", "Web Development", day(t, "2025-01-05"))
	seedInquiry(t, db, "B", "b@x.com", "d", "Web Development", day(t, "2025-02-15"))
	seedInquiry(t, db, "C", "c@x.com", "d", "Mobile App", day(t, "2025-02-20"))
	seedInquiry(t, db, "D", "d@x.com", "d", "", day(t, "2025-03-01"))

	tests := []struct {
		name        string
		projectType string
		from, to    string
		want        []string
	}{
		{"no criteria returns all", "", "", "", []string{"D", "C", "B", "A"}},
		{"All is a wildcard", "All", "", "", []string{"D", "C", "B", "A"}},
		{"by project type", "Web Development", "", "", []string{"B", "A"}},
		{"from date inclusive", "", "2025-02-15", "", []string{"D", "C", "B"}},
		{"to date inclusive", "", "", "2025-02-15", []string{"B", "A"}},
		{"window", "", "2025-02-01", "2025-02-28", []string{"C", "B"}},
		{"type and window conjunctive", "Web Development", "2025-02-01", "2025-02-28", []string{"B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Filter(context.Background(), tt.projectType, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Filter: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].FullName != name {
					t.Errorf("got[%d] = %s, want %s", i, got[i].FullName, name)
				}
			}
		})
	}
}

func TestFilterBadDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewQueryService(db)

	for _, bad := range []string{"15-02-2025", "not-a-date", "2025/02/15"} {
		if _, err := svc.Filter(context.Background(), "", bad, ""); !apperrors.IsValidation(err) {
			t.Errorf("Filter(from=%q) error = %v, want validation error", bad, err)
		}
		if _, err := svc.Filter(context.Background(), "", "", bad); !apperrors.IsValidation(err) {
			t.Errorf("Filter(to=%q) error = %v, want validation error", bad, err)
		}
	}
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewQueryService(db)

	now := time.Now().UTC()
	// One from a previous year, one at the start of this month, one today.
	seedInquiry(t, db, "Old", "old@x.com", "d", "Web Development", day(t, "2024-06-01"))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 6, 0, 0, 0, time.UTC)
	seedInquiry(t, db, "Month", "m@x.com", "d", "Web Development", startOfMonth)
	seedInquiry(t, db, "Today", "t@x.com", "d", "", now)

	// On the first of the month the month-start seed falls on today too.
	wantToday := int64(1)
	if now.Day() == 1 {
		wantToday = 2
	}

	inq := seedInquiry(t, db, "Contacted", "c@x.com", "d", "Mobile App", day(t, "2024-07-01"))
	if err := db.Model(&domain.Inquiry{}).Where("id = ?", inq.ID).
		UpdateColumn("status", domain.StatusContacted).Error; err != nil {
		t.Fatalf("set status: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalLeads != 4 {
		t.Errorf("TotalLeads = %d, want 4", stats.TotalLeads)
	}
	if stats.ThisMonthLeads != 2 {
		t.Errorf("ThisMonthLeads = %d, want 2", stats.ThisMonthLeads)
	}
	if stats.TodayLeads != wantToday {
		t.Errorf("TodayLeads = %d, want %d", stats.TodayLeads, wantToday)
	}

	typeCounts := map[string]int64{}
	for _, tc := range stats.TypeBreakdown {
		typeCounts[orNA(tc.ProjectType)] = tc.Count
	}
	if typeCounts["Web Development"] != 2 || typeCounts["Mobile App"] != 1 || typeCounts["N/A"] != 1 {
		t.Errorf("TypeBreakdown = %v", typeCounts)
	}

	statusCounts := map[string]int64{}
	for _, sc := range stats.StatusBreakdown {
		statusCounts[sc.Status] = sc.Count
	}
	if statusCounts[domain.StatusNew] != 3 || statusCounts[domain.StatusContacted] != 1 {
		t.Errorf("StatusBreakdown = %v", statusCounts)
	}
}
