package board

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// DueBucket selects tasks by due date relative to "now".
type DueBucket string

const (
	DueOverdue DueBucket = "overdue"
	DueToday   DueBucket = "today"
	DueWeek    DueBucket = "week"
	DueMonth   DueBucket = "month"
)

// IsValid returns true if the bucket is one of the defined constants.
func (b DueBucket) IsValid() bool {
	switch b {
	case DueOverdue, DueToday, DueWeek, DueMonth:
		return true
	default:
		return false
	}
}

// Filter holds optional filter criteria for task views.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Priority  Priority
	Assignee  string
	DueBucket DueBucket
	Search    string
}

// SortField names the attribute a task view is ordered by.
type SortField string

const (
	SortCreatedAt SortField = "created_at"
	SortDueDate   SortField = "due_date"
	SortPriority  SortField = "priority"
)

// IsValid returns true if the field is one of the defined constants.
func (f SortField) IsValid() bool {
	switch f {
	case SortCreatedAt, SortDueDate, SortPriority:
		return true
	default:
		return false
	}
}

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValid returns true if the direction is one of the defined constants.
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// Sort holds ordering options. The zero value sorts by creation time ascending.
type Sort struct {
	By        SortField
	Direction SortDirection
}

// View filters then sorts tasks and returns a new slice. The input slice and
// its elements are never modified. Sorting is stable, so tasks that compare
// equal keep their column order. Tasks without a due date never match a due
// bucket and sort after dated tasks in either direction.
func View(tasks []Task, f Filter, s Sort, now time.Time) []Task {
	out := make([]Task, 0, len(tasks))
	for i := range tasks {
		if f.Matches(&tasks[i], now) {
			out = append(out, tasks[i].Clone())
		}
	}

	by := s.By
	if by == "" {
		by = SortCreatedAt
	}
	desc := s.Direction == SortDesc

	slices.SortStableFunc(out, func(a, b Task) int {
		if by == SortDueDate {
			return compareDue(a.DueDate, b.DueDate, desc)
		}
		var c int
		if by == SortPriority {
			c = cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
		} else {
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if desc {
			return -c
		}
		return c
	})

	return out
}

// Matches reports whether the task passes every set criterion.
func (f Filter) Matches(t *Task, now time.Time) bool {
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Assignee != "" && (t.AssignedTo == nil || *t.AssignedTo != f.Assignee) {
		return false
	}
	if f.DueBucket != "" && !inBucket(t.DueDate, f.DueBucket, now) {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) {
			return false
		}
	}
	return true
}

func inBucket(due *time.Time, bucket DueBucket, now time.Time) bool {
	if due == nil {
		return false
	}
	d := due.In(now.Location())

	switch bucket {
	case DueOverdue:
		y, m, day := now.Date()
		startOfToday := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
		return d.Before(startOfToday)
	case DueToday:
		y1, m1, d1 := d.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case DueWeek:
		return !d.Before(now) && !d.After(now.AddDate(0, 0, 7))
	case DueMonth:
		return !d.Before(now) && !d.After(now.AddDate(0, 1, 0))
	default:
		return false
	}
}

// compareDue orders dated tasks by due date and puts undated tasks last.
func compareDue(a, b *time.Time, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	c := a.Compare(*b)
	if desc {
		return -c
	}
	return c
}
