package app

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board/internal/store"
)

type seedTask struct {
	title, description string
	priority           board.Priority
	assignee           string
	due                time.Duration // offset from now; 0 means no due date
}

type seedColumn struct {
	title    string
	wipLimit int
	tasks    []seedTask
}

type seedBoard struct {
	title, description string
	columns            []seedColumn
}

const day = 24 * time.Hour

var sampleBoards = []seedBoard{
	{
		title:       "Project Alpha",
		description: "Main development board for Project Alpha",
		columns: []seedColumn{
			{title: "To Do", tasks: []seedTask{
				{
					title:       "Research API integration options",
					description: "Evaluate different API integration approaches and select the best one for our needs",
					priority:    board.PriorityHigh, assignee: "user2", due: 5 * day,
				},
				{
					title:       "Design database schema",
					description: "Create the initial database schema for the project",
					priority:    board.PriorityMedium, assignee: "user3", due: 12 * day,
				},
				{
					title:       "Setup CI/CD pipeline",
					description: "Configure the CI/CD pipeline for automated testing and deployment",
					priority:    board.PriorityLow,
				},
			}},
			{title: "In Progress", wipLimit: 3, tasks: []seedTask{
				{
					title:       "Implement user authentication",
					description: "Add user authentication functionality using JWT",
					priority:    board.PriorityHigh, assignee: "user2", due: -2 * day,
				},
				{
					title:       "Create responsive UI components",
					description: "Develop reusable UI components that work across different screen sizes",
					priority:    board.PriorityMedium, assignee: "user3", due: 20 * day,
				},
			}},
			{title: "Done", tasks: []seedTask{
				{
					title:       "Write unit tests",
					description: "Create comprehensive unit tests for core functionality",
					priority:    board.PriorityMedium, assignee: "user2", due: -9 * day,
				},
			}},
		},
	},
	{
		title:       "Marketing Campaign",
		description: "Q3 Marketing Campaign Planning",
		columns: []seedColumn{
			{title: "Ideas", tasks: []seedTask{
				{
					title:       "Social media campaign ideas",
					description: "Brainstorm ideas for the upcoming social media campaign",
					priority:    board.PriorityMedium, assignee: "user4", due: 3 * day,
				},
				{
					title:       "Email newsletter template",
					description: "Design a new template for the monthly newsletter",
					priority:    board.PriorityLow, assignee: "user3", due: 25 * day,
				},
			}},
			{title: "Planning", wipLimit: 2, tasks: []seedTask{
				{
					title:       "Budget allocation",
					description: "Allocate budget for different marketing channels",
					priority:    board.PriorityHigh, assignee: "user1", due: -1 * day,
				},
			}},
			{title: "Completed", tasks: []seedTask{
				{
					title:       "Competitor analysis",
					description: "Complete analysis of top 5 competitors",
					priority:    board.PriorityHigh, assignee: "user4", due: -14 * day,
				},
			}},
		},
	},
}

// Seed loads the sample boards into st. Due dates are relative to now. Seed
// writes to the store directly; nothing is sent for confirmation.
func Seed(st *store.Store, now time.Time) error {
	for _, sb := range sampleBoards {
		b := st.CreateBoard(sb.title, sb.description)
		for _, sc := range sb.columns {
			col, err := st.CreateColumn(b.ID, sc.title, sc.wipLimit)
			if err != nil {
				return fmt.Errorf("seeding column %q: %w", sc.title, err)
			}
			for _, stk := range sc.tasks {
				fields := board.TaskFields{
					Title:       stk.title,
					Description: stk.description,
					Priority:    stk.priority,
				}
				if stk.assignee != "" {
					fields.AssignedTo = &stk.assignee
				}
				if stk.due != 0 {
					due := now.Add(stk.due)
					fields.DueDate = &due
				}
				if _, err := st.CreateTask(b.ID, col.ID, fields); err != nil {
					return fmt.Errorf("seeding task %q: %w", stk.title, err)
				}
			}
		}
	}
	return nil
}
