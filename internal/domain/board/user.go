package board

// User is an entry in the assignee directory.
type User struct {
	ID    string
	Name  string
	Email string
	Role  string
}
