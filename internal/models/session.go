package models

// Role identifies which principal type the stored session belongs to. The
// backend exposes separate login endpoints for delivery agents and admins;
// locally there is a single session with a role flag rather than two
// parallel credential sets.
type Role string

const (
	RoleNone  Role = ""
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

// AgentInfo is the denormalized view of the signed-in delivery agent. The
// profile document itself is opaque server state; these are the fields the
// client displays, all optional.
type AgentInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Zone  string `json:"zone"`
	Phone string `json:"phone"`
}
