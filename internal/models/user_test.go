package models

import (
	"strings"
	"testing"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"manager role", RoleManager, true},
		{"dispatcher role", RoleDispatcher, true},
		{"safety officer role", RoleSafetyOfficer, true},
		{"finance role", RoleFinance, true},
		{"invalid role", "invalid", false},
		{"empty role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidRole(tt.role)
			if result != tt.expected {
				t.Errorf("IsValidRole(%s) = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestRole_CanAccess(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		screen   Screen
		expected bool
	}{
		// Manager sees every screen
		{"manager overview", RoleManager, ScreenOverview, true},
		{"manager analytics", RoleManager, ScreenAnalytics, true},
		{"manager maintenance", RoleManager, ScreenMaintenance, true},

		// Dispatcher runs operations, not finance
		{"dispatcher trips", RoleDispatcher, ScreenTrips, true},
		{"dispatcher vehicles", RoleDispatcher, ScreenVehicles, true},
		{"dispatcher drivers", RoleDispatcher, ScreenDrivers, true},
		{"dispatcher analytics", RoleDispatcher, ScreenAnalytics, false},
		{"dispatcher maintenance", RoleDispatcher, ScreenMaintenance, false},

		// Safety officer watches drivers and the shop
		{"safety officer drivers", RoleSafetyOfficer, ScreenDrivers, true},
		{"safety officer maintenance", RoleSafetyOfficer, ScreenMaintenance, true},
		{"safety officer trips", RoleSafetyOfficer, ScreenTrips, false},
		{"safety officer vehicles", RoleSafetyOfficer, ScreenVehicles, false},

		// Finance sees costs, not dispatch
		{"finance analytics", RoleFinance, ScreenAnalytics, true},
		{"finance maintenance", RoleFinance, ScreenMaintenance, true},
		{"finance trips", RoleFinance, ScreenTrips, false},
		{"finance drivers", RoleFinance, ScreenDrivers, false},

		// Everyone lands on the overview
		{"dispatcher overview", RoleDispatcher, ScreenOverview, true},
		{"safety officer overview", RoleSafetyOfficer, ScreenOverview, true},
		{"finance overview", RoleFinance, ScreenOverview, true},

		{"unknown role sees nothing", Role("Intern"), ScreenOverview, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.role.CanAccess(tt.screen)
			if result != tt.expected {
				t.Errorf("%s.CanAccess(%s) = %v, want %v", tt.role, tt.screen, result, tt.expected)
			}
		})
	}
}

func TestRole_AllowedScreens(t *testing.T) {
	screens := RoleManager.AllowedScreens()
	if len(screens) != 6 {
		t.Fatalf("manager should see all 6 screens, got %d", len(screens))
	}

	// Returned slice must be a copy, not the allow-list itself.
	screens[0] = Screen("tampered")
	if !RoleManager.CanAccess(ScreenOverview) {
		t.Error("mutating AllowedScreens result must not affect the allow-list")
	}

	if got := Role("Intern").AllowedScreens(); len(got) != 0 {
		t.Errorf("unknown role should have no screens, got %v", got)
	}
}

func TestUser_Session(t *testing.T) {
	u := User{ID: "u1", Email: "a@b.com", Password: "secret", Name: "A", Role: RoleManager}
	s := u.Session()
	if s.Password != "" {
		t.Error("session record must omit the password")
	}
	if u.Password != "secret" {
		t.Error("stripping the session copy must not mutate the stored user")
	}
	if s.ID != u.ID || s.Email != u.Email || s.Role != u.Role {
		t.Error("session record must keep identity fields")
	}
}

func TestNewID(t *testing.T) {
	id := NewID("v")
	if !strings.HasPrefix(id, "v_") {
		t.Errorf("NewID should carry the prefix, got %s", id)
	}
	if id == NewID("v") {
		t.Error("generated ids must be unique")
	}
}
