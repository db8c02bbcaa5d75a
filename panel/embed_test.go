package panel

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"welcome-power/model"
)

func member(id string, roles ...string) *discordgo.Member {
	return &discordgo.Member{
		User:  &discordgo.User{ID: id},
		Roles: roles,
	}
}

func testSnapshot() *Snapshot {
	return &Snapshot{
		Roles: []*discordgo.Role{
			{ID: "A", Name: "Admin", Color: 0xFF0000, Position: 3},
			{ID: "B", Name: "VIP", Color: 0, Position: 2},
			{ID: "C", Name: "Member", Color: 0x00FF00, Position: 1},
		},
		Members: []*discordgo.Member{
			member("u1", "A"),
			member("u2", "A", "C"),
			member("u3", "C"),
		},
	}
}

func TestBuildPanelEmbedSections(t *testing.T) {
	snap := testSnapshot()
	p := &model.Panel{
		RoleIDs:   []string{"A", "B"},
		Title:     "Staff",
		ShowCount: true,
	}

	embed := BuildPanelEmbed(snap, p)
	if embed.Title != "Staff" {
		t.Errorf("Title = %q", embed.Title)
	}
	if embed.Color != 0xFF0000 {
		t.Errorf("Color = %#x, want first non-default role color", embed.Color)
	}

	desc := embed.Description
	adminIdx := strings.Index(desc, "**Admin**")
	vipIdx := strings.Index(desc, "**VIP**")
	if adminIdx == -1 || vipIdx == -1 {
		t.Fatalf("missing role sections in %q", desc)
	}
	if adminIdx > vipIdx {
		t.Error("sections not in configured role order")
	}
	if !strings.Contains(desc, "<@u1> <@u2>") {
		t.Errorf("Admin members not listed as mentions: %q", desc)
	}
	if !strings.Contains(desc, "**メンバー数:** 2") {
		t.Errorf("Admin member count missing: %q", desc)
	}
	// VIP has no holders: a per-role empty notice, not a combined one.
	if !strings.Contains(desc[vipIdx:], "このロールを持っているメンバーはいません。") {
		t.Errorf("VIP empty section missing: %q", desc)
	}
}

func TestBuildPanelEmbedNoCount(t *testing.T) {
	snap := testSnapshot()
	p := &model.Panel{RoleIDs: []string{"A"}, Title: "t", ShowCount: false}
	if desc := BuildPanelEmbed(snap, p).Description; strings.Contains(desc, "メンバー数") {
		t.Errorf("count rendered although showCount=false: %q", desc)
	}
}

func TestBuildPanelEmbedAllEmpty(t *testing.T) {
	snap := testSnapshot()
	p := &model.Panel{RoleIDs: []string{"B"}, Title: "t"}

	embed := BuildPanelEmbed(snap, p)
	if embed.Description != "このロールを持っているメンバーはいません。" {
		t.Errorf("Description = %q, want combined no-members notice", embed.Description)
	}
	if strings.Contains(embed.Description, "**VIP**") {
		t.Error("per-role section rendered although no role has members")
	}
}

func TestBuildPanelEmbedDeadRolesDropped(t *testing.T) {
	snap := testSnapshot()
	p := &model.Panel{RoleIDs: []string{"GONE", "A"}, Title: "t"}

	desc := BuildPanelEmbed(snap, p).Description
	if strings.Contains(desc, "GONE") {
		t.Errorf("dead role id leaked into output: %q", desc)
	}
	if !strings.Contains(desc, "**Admin**") {
		t.Errorf("live role missing: %q", desc)
	}
}

func TestBuildPanelEmbedNoRolesConfigured(t *testing.T) {
	snap := testSnapshot()
	p := &model.Panel{RoleIDs: []string{"GONE"}, Title: "t"}

	embed := BuildPanelEmbed(snap, p)
	if embed.Description != "表示するロールが設定されていません。" {
		t.Errorf("Description = %q", embed.Description)
	}
	if embed.Color != defaultColor {
		t.Errorf("Color = %#x, want default", embed.Color)
	}
}

func TestBuildPanelEmbedMessagePrefix(t *testing.T) {
	snap := testSnapshot()
	p := &model.Panel{RoleIDs: []string{"A"}, Title: "t", Message: "intro text"}

	desc := BuildPanelEmbed(snap, p).Description
	if !strings.HasPrefix(desc, "intro text\n\n") {
		t.Errorf("supplementary message not leading the body: %q", desc)
	}
}

func TestBuildPanelEmbedIdempotent(t *testing.T) {
	snap := testSnapshot()
	p := &model.Panel{RoleIDs: []string{"A", "B", "C"}, Title: "t", ShowCount: true, Message: "m"}

	first := BuildPanelEmbed(snap, p)
	second := BuildPanelEmbed(snap, p)
	if first.Description != second.Description || first.Color != second.Color || first.Title != second.Title {
		t.Error("repeated render with identical inputs differs")
	}
}

func TestBuildPanelEmbedTruncation(t *testing.T) {
	// Enough members that the mention list exceeds the embed limit.
	snap := &Snapshot{
		Roles: []*discordgo.Role{{ID: "A", Name: "Big"}},
	}
	for n := 0; n < 300; n++ {
		snap.Members = append(snap.Members, member(fmt.Sprintf("10000000000000%04d", n), "A"))
	}
	p := &model.Panel{RoleIDs: []string{"A"}, Title: "t"}

	desc := BuildPanelEmbed(snap, p).Description
	if len(desc) > descriptionLimit {
		t.Fatalf("description length %d exceeds limit", len(desc))
	}
	if !strings.HasSuffix(desc, "...") {
		t.Errorf("truncated description missing ellipsis: %q", desc[len(desc)-20:])
	}
	// The cut must not leave a half mention before the ellipsis.
	body := strings.TrimSuffix(desc, "...")
	if idx := strings.LastIndex(body, "<@"); idx != -1 && !strings.Contains(body[idx:], ">") {
		t.Errorf("mention split by truncation: %q", body[idx:])
	}
}

func TestBuildPanelEmbedTruncationMultibyte(t *testing.T) {
	// A long Japanese message has no spaces or newlines, so the cut cannot
	// fall back to whitespace and must respect rune boundaries.
	snap := &Snapshot{
		Roles:   []*discordgo.Role{{ID: "A", Name: "Big"}},
		Members: []*discordgo.Member{member("u1", "A")},
	}
	p := &model.Panel{
		RoleIDs: []string{"A"},
		Title:   "t",
		Message: strings.Repeat("あ", 2000),
	}

	desc := BuildPanelEmbed(snap, p).Description
	if len(desc) > descriptionLimit {
		t.Fatalf("description length %d exceeds limit", len(desc))
	}
	if !utf8.ValidString(desc) {
		t.Error("truncation split a multi-byte rune")
	}
	if !strings.HasSuffix(desc, "...") {
		t.Errorf("truncated description missing ellipsis: %q", desc[len(desc)-12:])
	}
}
