package handlers

import (
	"reflect"
	"testing"
)

func TestDiffRoleSets(t *testing.T) {
	tests := []struct {
		name        string
		before      []string
		after       []string
		wantAdded   []string
		wantRemoved []string
	}{
		{
			name:   "unchanged",
			before: []string{"A", "B"},
			after:  []string{"A", "B"},
		},
		{
			name:      "role added",
			before:    []string{"A"},
			after:     []string{"A", "B"},
			wantAdded: []string{"B"},
		},
		{
			name:        "role removed",
			before:      []string{"A", "B"},
			after:       []string{"A"},
			wantRemoved: []string{"B"},
		},
		{
			name:        "swap",
			before:      []string{"A", "B"},
			after:       []string{"B", "C"},
			wantAdded:   []string{"C"},
			wantRemoved: []string{"A"},
		},
		{
			name:      "from empty",
			before:    nil,
			after:     []string{"A"},
			wantAdded: []string{"A"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := diffRoleSets(tt.before, tt.after)
			if !reflect.DeepEqual(added, tt.wantAdded) {
				t.Errorf("added = %v, want %v", added, tt.wantAdded)
			}
			if !reflect.DeepEqual(removed, tt.wantRemoved) {
				t.Errorf("removed = %v, want %v", removed, tt.wantRemoved)
			}
		})
	}
}

func TestCanAssignRole(t *testing.T) {
	tests := []struct {
		name    string
		rolePos int
		botTop  int
		want    bool
	}{
		{"below bot", 1, 5, true},
		{"equal to bot", 5, 5, false},
		{"above bot", 7, 5, false},
		{"bot position unknown", 1, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canAssignRole(tt.rolePos, tt.botTop); got != tt.want {
				t.Errorf("canAssignRole(%d, %d) = %v, want %v", tt.rolePos, tt.botTop, got, tt.want)
			}
		})
	}
}
