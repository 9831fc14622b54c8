package catalog

import (
	"testing"
	"time"

	"flowpilot/internal/model"
)

func TestCatalogShape(t *testing.T) {
	cats := Categories()
	if len(cats) != 10 {
		t.Fatalf("categories: got %d, want 10", len(cats))
	}
	seen := map[string]bool{}
	for _, c := range cats {
		if len(c.Books) == 0 {
			t.Errorf("category %q has no books", c.ID)
		}
		for _, b := range c.Books {
			if seen[b.ID] {
				t.Errorf("duplicate book id %q", b.ID)
			}
			seen[b.ID] = true
		}
	}
	if len(All()) != 22 {
		t.Errorf("All: got %d books, want 22", len(All()))
	}
}

func TestByCategory(t *testing.T) {
	bs, ok := ByCategory("health")
	if !ok {
		t.Fatal("health should exist")
	}
	if len(bs) != 2 || bs[0].Title != "Atomic Habits" {
		t.Errorf("health books = %+v", bs)
	}
	if _, ok := ByCategory("cooking"); ok {
		t.Error("unknown category should report !ok")
	}
}

func TestSearch(t *testing.T) {
	if got := Search(""); got != nil {
		t.Errorf("empty query: got %d results, want none", len(got))
	}

	var bookIDs []string
	for _, r := range Search("habit") {
		if r.Book != nil {
			bookIDs = append(bookIDs, r.Book.ID)
		}
	}
	if len(bookIDs) != 1 || bookIDs[0] != "13" {
		t.Errorf("habit book hits = %v, want [13]", bookIDs)
	}

	// Case-insensitive both ways.
	if len(Search("ATOMIC")) != len(Search("atomic")) {
		t.Error("search should be case-insensitive")
	}

	// Author field is searched too.
	found := false
	for _, r := range Search("james clear") {
		if r.Book != nil && r.Book.ID == "13" {
			found = true
		}
	}
	if !found {
		t.Error("author search should hit Atomic Habits")
	}

	// Carousel items participate alongside books.
	topics := 0
	for _, r := range Search("ferriss") {
		if r.Topic != nil {
			topics++
		}
	}
	if topics != 1 {
		t.Errorf("ferriss topic hits = %d, want 1", topics)
	}
}

func TestEvaluateFreshStats(t *testing.T) {
	achs := Evaluate(FreshStats())
	if len(achs) != 5 {
		t.Fatalf("got %d achievements, want 5", len(achs))
	}
	for _, a := range achs {
		if a.Unlocked {
			t.Errorf("%s unlocked on fresh stats", a.Title)
		}
	}
	if achs[2].Progress == nil || *achs[2].Progress != 0 || *achs[2].MaxProgress != 50 {
		t.Errorf("Focus Master progress = %+v", achs[2])
	}
}

func TestEvaluateUnlocks(t *testing.T) {
	stats := model.UserStats{
		CurrentStreak:      12,
		BestStreak:         31,
		FocusTasks:         50,
		WellnessActivities: 29,
		EarlyPlanningDays:  5,
	}
	achs := Evaluate(stats)
	want := map[string]bool{
		"Early Bird":       true,
		"Consistency King": true,
		"Focus Master":     true,
		"Mindful Warrior":  false,
		"Streak Legend":    true,
	}
	for _, a := range achs {
		if a.Unlocked != want[a.Title] {
			t.Errorf("%s unlocked = %v, want %v", a.Title, a.Unlocked, want[a.Title])
		}
	}
	// Streak Legend progress tracks the current streak, not the best.
	if *achs[4].Progress != 12 {
		t.Errorf("Streak Legend progress = %d, want 12", *achs[4].Progress)
	}
}

func TestWeek(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	week := Week(now)
	if len(week) != 7 {
		t.Fatalf("got %d days", len(week))
	}
	if week[0].Day != "M" || week[0].Date != 2 {
		t.Errorf("week starts %s %d, want M 2", week[0].Day, week[0].Date)
	}
	for i, d := range week {
		wantToday := i == 2
		if d.Today != wantToday {
			t.Errorf("day %d today = %v", i, d.Today)
		}
		if d.Completed {
			t.Errorf("day %d completed on fresh start", i)
		}
	}
	if week[6].Day != "S" || week[6].Date != 8 {
		t.Errorf("week ends %s %d, want S 8", week[6].Day, week[6].Date)
	}

	// A Monday is its own week start.
	monday := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	if w := Week(monday); !w[0].Today || w[0].Date != 2 {
		t.Errorf("monday week = %+v", w[0])
	}
	// Sunday belongs to the week that began six days earlier.
	sunday := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	if w := Week(sunday); !w[6].Today || w[0].Date != 2 {
		t.Errorf("sunday week = %+v", w)
	}
}

func TestEncouragement(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{6, "Great start to your day!"},
		{9, "Great start to your day!"},
		{10, "Keep the momentum going!"},
		{11, "Keep the momentum going!"},
		{12, "You're doing amazing!"},
		{16, "You're doing amazing!"},
		{17, "Finish strong today!"},
		{23, "Finish strong today!"},
	}
	for _, tc := range cases {
		now := time.Date(2026, 3, 4, tc.hour, 0, 0, 0, time.UTC)
		if got := Encouragement(now); got != tc.want {
			t.Errorf("hour %d: got %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestReadSet(t *testing.T) {
	rs := ReadSet{}
	if rs.Read("13") {
		t.Error("fresh set should be empty")
	}
	rs.Mark("13")
	rs.Mark("13")
	if !rs.Read("13") || rs.Read("4") {
		t.Error("mark should affect only the marked id")
	}
}
