package task

import (
	"testing"

	"github.com/brightserv/ops-backend-go/internal/domain/user"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusTodo, StatusInProgress, StatusDone} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []Status{"", "archived", "TODO", "doing"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func strPtr(s string) *string { return &s }

func TestCanMove(t *testing.T) {
	assigned := Task{AssigneeID: strPtr("emp-1")}
	unassigned := Task{}

	cases := []struct {
		name       string
		task       Task
		role       user.Role
		employeeID *string
		want       bool
	}{
		{"admin moves anything", unassigned, user.RoleAdmin, nil, true},
		{"manager moves anything", assigned, user.RoleManager, strPtr("emp-9"), true},
		{"cleaner moves own task", assigned, user.RoleCleaner, strPtr("emp-1"), true},
		{"cleaner cannot move others", assigned, user.RoleCleaner, strPtr("emp-2"), false},
		{"cleaner cannot move unassigned", unassigned, user.RoleCleaner, strPtr("emp-1"), false},
		{"cleaner without employee record", assigned, user.RoleCleaner, nil, false},
	}
	for _, c := range cases {
		if got := c.task.CanMove(c.role, c.employeeID); got != c.want {
			t.Errorf("%s: CanMove = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCanEditFields(t *testing.T) {
	if !CanEditFields(user.RoleAdmin) || !CanEditFields(user.RoleManager) {
		t.Error("admins and managers must be able to edit task fields")
	}
	if CanEditFields(user.RoleCleaner) {
		t.Error("cleaners must not edit task fields")
	}
}
