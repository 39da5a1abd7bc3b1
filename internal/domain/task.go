package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

const (
	TitleMaxLen      = 200
	TargetMinutesMin = 1
	TargetMinutesMax = 100000

	// LogMinutesLimit bounds a single time entry to one day in either direction.
	LogMinutesLimit = 1440

	// WeekStartLayout is the wire and storage format of Task.WeekStart.
	WeekStartLayout = "2006-01-02"
)

var weekStartRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Task is a weekly goal owned by one user.
type Task struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	TargetMinutes int
	WeekStart     string
	TotalLogged   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TimeEntry is one append-only log record against a task.
// Minutes holds the requested delta, not the amount actually applied to the total.
type TimeEntry struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	Minutes   int
	CreatedAt time.Time
}

// ClampTotal applies delta to total and never lets the result drop below zero.
func ClampTotal(total, delta int) int {
	next := total + delta
	if next < 0 {
		return 0
	}
	return next
}

// ValidWeekStart reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidWeekStart(s string) bool {
	if !weekStartRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(WeekStartLayout, s)
	return err == nil
}
