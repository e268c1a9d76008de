package reward

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		points int64
		want   int64
	}{
		{0, 1},
		{1, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{150, 2},
		{199, 2},
		{200, 3},
		{1000, 11},
		{-5, 1},
	}

	for _, tt := range tests {
		if got := Level(tt.points); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestBadge(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionFirstSale, "trader"},
		{ActionFirstExpense, "bookkeeper"},
		{ActionFirstTopic, "storyteller"},
		{ActionFirstTopicView, "explorer"},
		{ActionFirstTask, "planner"},
		{Action("unknown"), ""},
	}

	for _, tt := range tests {
		if got := Badge(tt.action); got != tt.want {
			t.Errorf("Badge(%q) = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestApplyFirstAction(t *testing.T) {
	out := Apply(0, false, ActionFirstSale)

	if !out.KnownAction {
		t.Fatal("expected a known action")
	}
	if out.Awarded != OneTimeBonus {
		t.Errorf("Awarded = %d, want %d", out.Awarded, OneTimeBonus)
	}
	if out.Points != 50 {
		t.Errorf("Points = %d, want 50", out.Points)
	}
	if !out.NewBadge || out.Badge != "trader" {
		t.Errorf("expected new trader badge, got NewBadge=%v Badge=%q", out.NewBadge, out.Badge)
	}
	if out.Level != 1 || out.LeveledUp {
		t.Errorf("expected to stay at level 1, got Level=%d LeveledUp=%v", out.Level, out.LeveledUp)
	}
}

func TestApplyRepeatAction(t *testing.T) {
	out := Apply(50, true, ActionFirstSale)

	if out.Awarded != RecurringBonus {
		t.Errorf("Awarded = %d, want %d", out.Awarded, RecurringBonus)
	}
	if out.Points != 60 {
		t.Errorf("Points = %d, want 60", out.Points)
	}
	if out.NewBadge {
		t.Error("repeat action must not grant the badge again")
	}
}

func TestApplyBadgeIdempotent(t *testing.T) {
	// A second application with the badge held must grant the small bonus
	// only, no matter how many times it is applied.
	first := Apply(0, false, ActionFirstTask)
	points := first.Points
	for i := 0; i < 10; i++ {
		out := Apply(points, true, ActionFirstTask)
		if out.NewBadge {
			t.Fatalf("application %d granted a duplicate badge", i+1)
		}
		if out.Awarded != RecurringBonus {
			t.Fatalf("application %d awarded %d, want %d", i+1, out.Awarded, RecurringBonus)
		}
		points = out.Points
	}
	if points != first.Points+10*RecurringBonus {
		t.Errorf("points = %d, want %d", points, first.Points+10*RecurringBonus)
	}
}

func TestApplyLevelUp(t *testing.T) {
	out := Apply(95, true, ActionFirstExpense)

	if out.Points != 105 {
		t.Fatalf("Points = %d, want 105", out.Points)
	}
	if out.Level != 2 || !out.LeveledUp {
		t.Errorf("expected level up to 2, got Level=%d LeveledUp=%v", out.Level, out.LeveledUp)
	}
}

func TestApplyUnknownAction(t *testing.T) {
	out := Apply(40, false, Action("watered_plants"))

	if out.KnownAction {
		t.Error("unknown action reported as known")
	}
	if out.Awarded != 0 || out.Points != 40 || out.NewBadge {
		t.Errorf("unknown action changed state: %+v", out)
	}
}
