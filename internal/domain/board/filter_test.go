package board

import (
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var now = time.Date(2026, 4, 15, 14, 30, 0, 0, time.UTC)

func timePtr(v time.Time) *time.Time { return &v }

func taskIDs(tasks []Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func sampleTasks() []Task {
	return []Task{
		{
			ID: "task-1", Title: "Research API options", Description: "Compare REST and GraphQL",
			Priority: PriorityHigh, AssignedTo: strPtr("user-1"),
			DueDate: timePtr(now.AddDate(0, 0, 3)), CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID: "task-2", Title: "Create wireframes", Description: "Dashboard screens",
			Priority: PriorityMedium, AssignedTo: strPtr("user-2"),
			DueDate: timePtr(now.AddDate(0, 0, 20)), CreatedAt: now.Add(-4 * time.Hour),
		},
		{
			ID: "task-3", Title: "Setup development environment", Description: "",
			Priority: PriorityLow, CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			ID: "task-4", Title: "Implement authentication", Description: "JWT based api login",
			Priority: PriorityHigh, AssignedTo: strPtr("user-1"),
			DueDate: timePtr(now.Add(2 * time.Hour)), CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: "task-5", Title: "Project setup", Description: "Repository and CI",
			Priority: PriorityMedium, AssignedTo: strPtr("user-2"),
			DueDate: timePtr(now.AddDate(0, 0, -1)), CreatedAt: now.Add(-1 * time.Hour),
		},
	}
}

func TestView_Filter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "no filter keeps all", want: []string{"task-1", "task-2", "task-3", "task-4", "task-5"}},
		{name: "priority", filter: Filter{Priority: PriorityHigh}, want: []string{"task-1", "task-4"}},
		{name: "assignee", filter: Filter{Assignee: "user-2"}, want: []string{"task-2", "task-5"}},
		{name: "overdue", filter: Filter{DueBucket: DueOverdue}, want: []string{"task-5"}},
		{name: "today", filter: Filter{DueBucket: DueToday}, want: []string{"task-4"}},
		{name: "week", filter: Filter{DueBucket: DueWeek}, want: []string{"task-1", "task-4"}},
		{name: "month", filter: Filter{DueBucket: DueMonth}, want: []string{"task-1", "task-2", "task-4"}},
		{name: "search title case insensitive", filter: Filter{Search: "SETUP"}, want: []string{"task-3", "task-5"}},
		{name: "search description", filter: Filter{Search: "api"}, want: []string{"task-1", "task-4"}},
		{
			name:   "combined criteria",
			filter: Filter{Priority: PriorityHigh, DueBucket: DueToday, Search: "auth"},
			want:   []string{"task-4"},
		},
		{name: "nothing matches", filter: Filter{Assignee: "user-9"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := taskIDs(View(sampleTasks(), tt.filter, Sort{}, now))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("View() ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestView_Sort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sort Sort
		want []string
	}{
		{name: "default is created ascending", want: []string{"task-1", "task-2", "task-3", "task-4", "task-5"}},
		{
			name: "created descending",
			sort: Sort{By: SortCreatedAt, Direction: SortDesc},
			want: []string{"task-5", "task-4", "task-3", "task-2", "task-1"},
		},
		{
			name: "priority ascending is stable",
			sort: Sort{By: SortPriority, Direction: SortAsc},
			want: []string{"task-3", "task-2", "task-5", "task-1", "task-4"},
		},
		{
			name: "priority descending",
			sort: Sort{By: SortPriority, Direction: SortDesc},
			want: []string{"task-1", "task-4", "task-2", "task-5", "task-3"},
		},
		{
			name: "due ascending undated last",
			sort: Sort{By: SortDueDate, Direction: SortAsc},
			want: []string{"task-5", "task-4", "task-1", "task-2", "task-3"},
		},
		{
			name: "due descending undated last",
			sort: Sort{By: SortDueDate, Direction: SortDesc},
			want: []string{"task-2", "task-1", "task-4", "task-5", "task-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := taskIDs(View(sampleTasks(), Filter{}, tt.sort, now))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("View() order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestView_Pure(t *testing.T) {
	t.Parallel()

	input := sampleTasks()
	original := sampleTasks()
	f := Filter{Search: "e"}
	s := Sort{By: SortPriority, Direction: SortDesc}

	first := View(input, f, s, now)
	second := View(input, f, s, now)

	if diff := cmp.Diff(original, input); diff != "" {
		t.Errorf("View() mutated its input (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("View() not deterministic (-first +second):\n%s", diff)
	}

	// Results are detached from the input.
	*first[0].AssignedTo = "user-evil"
	first[0].Title = "changed"
	if slices.ContainsFunc(input, func(t Task) bool {
		return t.Title == "changed" || (t.AssignedTo != nil && *t.AssignedTo == "user-evil")
	}) {
		t.Error("mutating a View() result changed the input")
	}
}

func TestDueBucket_IsValid(t *testing.T) {
	t.Parallel()

	for _, b := range []DueBucket{DueOverdue, DueToday, DueWeek, DueMonth} {
		if !b.IsValid() {
			t.Errorf("DueBucket(%q).IsValid() = false, want true", b)
		}
	}
	if DueBucket("year").IsValid() {
		t.Error(`DueBucket("year").IsValid() = true, want false`)
	}
	if !SortPriority.IsValid() || SortField("title").IsValid() {
		t.Error("SortField.IsValid() misclassified a value")
	}
	if !SortDesc.IsValid() || SortDirection("up").IsValid() {
		t.Error("SortDirection.IsValid() misclassified a value")
	}
}
