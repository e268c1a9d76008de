// Package reward implements the points and badges state machine. Points
// only grow; the level is a pure function of points. The first qualifying
// action of a kind grants a badge plus a one-time bonus, repeat actions of
// the same kind grant a smaller recurring bonus.
package reward

// Action identifies a kind of qualifying user action
type Action string

const (
	ActionFirstSale      Action = "first_sale"
	ActionFirstExpense   Action = "first_expense"
	ActionFirstTopic     Action = "first_topic"
	ActionFirstTopicView Action = "first_topic_view"
	ActionFirstTask      Action = "first_task"
)

// Point bonuses and level step
const (
	OneTimeBonus   int64 = 50
	RecurringBonus int64 = 10
	PointsPerLevel int64 = 100
)

// badges maps each qualifying action to the badge its first occurrence grants
var badges = map[Action]string{
	ActionFirstSale:      "trader",
	ActionFirstExpense:   "bookkeeper",
	ActionFirstTopic:     "storyteller",
	ActionFirstTopicView: "explorer",
	ActionFirstTask:      "planner",
}

// Badge returns the badge name for an action, or "" for unknown actions
func Badge(action Action) string {
	return badges[action]
}

// Level derives the level from accumulated points: points 0-99 are level 1,
// 100-199 level 2, and so on.
func Level(points int64) int64 {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// Outcome describes the result of applying one qualifying action
type Outcome struct {
	Points      int64  // new point total
	Awarded     int64  // points granted by this action
	Badge       string // badge granted, "" when none
	NewBadge    bool   // true when the badge was granted by this action
	Level       int64  // level after the grant
	LeveledUp   bool   // true when the grant crossed a level boundary
	KnownAction bool   // false when the action is not a qualifying kind
}

// Apply computes the outcome of a qualifying action against the current
// point total and held badges. Pure: callers persist the result inside a
// transaction to avoid lost updates under concurrent grants.
func Apply(points int64, hasBadge bool, action Action) Outcome {
	badge, known := badges[action]
	out := Outcome{Points: points, Level: Level(points), KnownAction: known}
	if !known {
		return out
	}

	if hasBadge {
		out.Awarded = RecurringBonus
	} else {
		out.Awarded = OneTimeBonus
		out.Badge = badge
		out.NewBadge = true
	}

	before := Level(points)
	out.Points = points + out.Awarded
	out.Level = Level(out.Points)
	out.LeveledUp = out.Level > before
	return out
}
