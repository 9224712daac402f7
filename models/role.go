package models

// Role is the staff profile chosen at session start.
type Role string

const (
	RoleAttendant Role = "attendant"
	RoleKitchen   Role = "kitchen"
	RoleManager   Role = "manager"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAttendant, RoleKitchen, RoleManager:
		return true
	}
	return false
}
