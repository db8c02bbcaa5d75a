package utils

import (
	"reflect"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func testRoles() []*discordgo.Role {
	return []*discordgo.Role{
		{ID: "111", Name: "Admin"},
		{ID: "222", Name: "VIP"},
		{ID: "333", Name: "Game Night"},
	}
}

func TestResolveRoleInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"mention", "<@&111>", []string{"111"}, false},
		{"raw id", "222", []string{"222"}, false},
		{"name exact", "Admin", []string{"111"}, false},
		{"name case insensitive", "vip", []string{"222"}, false},
		{"multiple mixed", "<@&111> 222 vip", []string{"111", "222"}, false},
		{"duplicates collapsed", "<@&111> 111 admin", []string{"111"}, false},
		{"unknown mention", "<@&999>", nil, true},
		{"unknown id", "999", nil, true},
		{"unknown name", "nobody", nil, true},
		{"empty", "   ", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRoleInput(testRoles(), tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveRoleInput(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveRoleInput(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveRoleInputAllOrNothing(t *testing.T) {
	// One bad token fails the whole input even when others resolve.
	if _, err := ResolveRoleInput(testRoles(), "<@&111> missing"); err == nil {
		t.Error("expected error when one token does not resolve")
	}
}

func TestFindRole(t *testing.T) {
	roles := testRoles()
	if r := FindRole(roles, "222"); r == nil || r.Name != "VIP" {
		t.Errorf("FindRole(222) = %v", r)
	}
	if r := FindRole(roles, "999"); r != nil {
		t.Errorf("FindRole(999) = %v, want nil", r)
	}
}

func TestFormatMessageOption(t *testing.T) {
	got := FormatMessageOption(`line1\nline2`)
	if got != "line1\nline2" {
		t.Errorf("FormatMessageOption = %q", got)
	}
}
