package models

// Role represents user roles in the system.
type Role string

const (
	RoleManager       Role = "Manager"
	RoleDispatcher    Role = "Dispatcher"
	RoleSafetyOfficer Role = "Safety Officer"
	RoleFinance       Role = "Finance"
)

// Screen identifies a dashboard screen gated by role.
type Screen string

const (
	ScreenOverview    Screen = "overview"
	ScreenVehicles    Screen = "vehicles"
	ScreenTrips       Screen = "trips"
	ScreenDrivers     Screen = "drivers"
	ScreenMaintenance Screen = "maintenance"
	ScreenAnalytics   Screen = "analytics"
)

// screenAccess is the single source of truth for role-gated navigation.
// Both the navigation endpoint and the route guard consult it, so what is
// shown and what is enforced cannot drift apart.
var screenAccess = map[Role][]Screen{
	RoleManager: {
		ScreenOverview, ScreenVehicles, ScreenTrips,
		ScreenDrivers, ScreenMaintenance, ScreenAnalytics,
	},
	RoleDispatcher: {
		ScreenOverview, ScreenVehicles, ScreenTrips, ScreenDrivers,
	},
	RoleSafetyOfficer: {
		ScreenOverview, ScreenDrivers, ScreenMaintenance,
	},
	RoleFinance: {
		ScreenOverview, ScreenMaintenance, ScreenAnalytics,
	},
}

// User represents a registered dashboard user. The stored record carries
// the plaintext password; session records strip it before use.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// Session returns a copy of the user with the password removed, the form
// persisted as the current-session record and used app-wide.
func (u User) Session() User {
	u.Password = ""
	return u
}

// IsValidRole checks if a role is valid.
func IsValidRole(role Role) bool {
	switch role {
	case RoleManager, RoleDispatcher, RoleSafetyOfficer, RoleFinance:
		return true
	default:
		return false
	}
}

// CanAccess reports whether the role's allow-list includes the screen.
func (r Role) CanAccess(screen Screen) bool {
	for _, s := range screenAccess[r] {
		if s == screen {
			return true
		}
	}
	return false
}

// AllowedScreens returns the role's navigable screens in display order.
func (r Role) AllowedScreens() []Screen {
	screens := screenAccess[r]
	out := make([]Screen, len(screens))
	copy(out, screens)
	return out
}
