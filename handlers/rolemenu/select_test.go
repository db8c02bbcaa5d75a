package rolemenu

import (
	"reflect"
	"testing"
)

func TestDiffSelection(t *testing.T) {
	menu := []string{"A", "B", "C"}

	tests := []struct {
		name       string
		held       []string
		selected   []string
		wantGrant  []string
		wantRevoke []string
	}{
		{
			name:       "swap one role",
			held:       []string{"A", "B"},
			selected:   []string{"B", "C"},
			wantGrant:  []string{"C"},
			wantRevoke: []string{"A"},
		},
		{
			name:     "no changes",
			held:     []string{"A", "B"},
			selected: []string{"A", "B"},
		},
		{
			name:       "clear all",
			held:       []string{"A", "B", "C"},
			selected:   nil,
			wantRevoke: []string{"A", "B", "C"},
		},
		{
			name:      "select all from none",
			held:      nil,
			selected:  []string{"A", "B", "C"},
			wantGrant: []string{"A", "B", "C"},
		},
		{
			name:      "roles outside the menu are ignored",
			held:      []string{"X", "A"},
			selected:  []string{"A", "B", "Y"},
			wantGrant: []string{"B"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grant, revoke := DiffSelection(tt.held, tt.selected, menu)
			if !reflect.DeepEqual(grant, tt.wantGrant) {
				t.Errorf("toGrant = %v, want %v", grant, tt.wantGrant)
			}
			if !reflect.DeepEqual(revoke, tt.wantRevoke) {
				t.Errorf("toRevoke = %v, want %v", revoke, tt.wantRevoke)
			}
		})
	}
}
