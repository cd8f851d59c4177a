package profile

import (
	"strings"
	"testing"
	"time"
)

// --- Mock clock ---

type mockClock struct {
	now time.Time
}

func (c *mockClock) Now() time.Time { return c.now }

// --- Tests ---

func TestApply_Text(t *testing.T) {
	var p Profile
	if err := p.Apply("name", "  Jane Doe  "); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.Name != "Jane Doe" {
		t.Errorf("Name = %q, want %q", p.Name, "Jane Doe")
	}
}

func TestApply_Age(t *testing.T) {
	var p Profile
	if err := p.Apply("age", "29"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.Age != 29 {
		t.Errorf("Age = %d, want 29", p.Age)
	}

	if err := p.Apply("age", "twenty"); err == nil {
		t.Error("Apply(age, twenty) should fail")
	}
}

func TestApply_Skills(t *testing.T) {
	var p Profile
	if err := p.Apply("skills", "python, go"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(p.Skills) != 2 || p.Skills[0] != "python" || p.Skills[1] != "go" {
		t.Errorf("Skills = %v, want [python go]", p.Skills)
	}
}

func TestApply_UnknownField(t *testing.T) {
	var p Profile
	if err := p.Apply("favorite_color", "blue"); err == nil {
		t.Error("Apply(unknown field) should fail")
	}
}

func TestComplete_StampsOnce(t *testing.T) {
	var p Profile
	clock := &mockClock{now: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}

	p.Complete(clock)
	first := p.CreatedAt
	if first == "" {
		t.Fatal("CreatedAt not set")
	}
	if _, err := time.Parse(time.RFC3339, first); err != nil {
		t.Errorf("CreatedAt %q is not RFC3339: %v", first, err)
	}

	clock.now = clock.now.Add(time.Hour)
	p.Complete(clock)
	if p.CreatedAt != first {
		t.Errorf("CreatedAt changed on second Complete: %q -> %q", first, p.CreatedAt)
	}
}

func TestSummary(t *testing.T) {
	p := Profile{
		Name:      "Jane Doe",
		Age:       29,
		Skills:    []string{"python", "go"},
		CreatedAt: "2026-08-30T12:00:00Z",
	}
	s := p.Summary()

	for _, want := range []string{"Name: Jane Doe", "Age: 29", "Skills: python, go"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "2026-08-30") {
		t.Errorf("summary should not include created_at:\n%s", s)
	}
}
