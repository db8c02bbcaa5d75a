package panel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"welcome-power/model"
)

const (
	// Discord's embed description limit.
	descriptionLimit = 4096

	defaultColor = 0x0099FF
)

// BuildPanelEmbed renders a panel against the snapshot. The function is pure:
// the same snapshot and record always produce an identical embed, which is
// what makes the reconciler's unconditional re-render strategy safe.
//
// Role ids that no longer resolve are silently dropped. Members are listed as
// mentions so the rendered content stays correct when nicknames change.
func BuildPanelEmbed(snap *Snapshot, p *model.Panel) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: p.Title,
		Color: defaultColor,
	}

	var resolved []*discordgo.Role
	for _, id := range p.RoleIDs {
		if r := snap.Role(id); r != nil {
			resolved = append(resolved, r)
		}
	}
	if len(resolved) == 0 {
		embed.Description = "表示するロールが設定されていません。"
		return embed
	}

	for _, r := range resolved {
		if r.Color != 0 {
			embed.Color = r.Color
			break
		}
	}

	var parts []string
	if p.Message != "" {
		parts = append(parts, p.Message)
	}

	anyMembers := false
	for _, r := range resolved {
		if len(snap.MembersWithRole(r.ID)) > 0 {
			anyMembers = true
			break
		}
	}
	if !anyMembers {
		parts = append(parts, "このロールを持っているメンバーはいません。")
		embed.Description = strings.Join(parts, "\n\n")
		return embed
	}

	for _, r := range resolved {
		parts = append(parts, renderRoleSection(snap, r, p.ShowCount))
	}

	embed.Description = truncateDescription(strings.Join(parts, "\n\n"))
	return embed
}

func renderRoleSection(snap *Snapshot, r *discordgo.Role, showCount bool) string {
	members := snap.MembersWithRole(r.ID)
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", r.Name)
	if len(members) == 0 {
		b.WriteString("このロールを持っているメンバーはいません。")
		return b.String()
	}
	mentions := make([]string, len(members))
	for i, m := range members {
		mentions[i] = "<@" + m.User.ID + ">"
	}
	b.WriteString(strings.Join(mentions, " "))
	if showCount {
		fmt.Fprintf(&b, "\n**メンバー数:** %d", len(members))
	}
	return b.String()
}

// truncateDescription trims the body to the embed limit, ending with an
// ellipsis. The cut is moved back to the previous whitespace so a member
// mention is never split in half; text with no whitespace (long Japanese
// prose) is cut at the preceding rune boundary instead.
func truncateDescription(s string) string {
	if len(s) <= descriptionLimit {
		return s
	}
	cut := descriptionLimit - 3
	if idx := strings.LastIndexAny(s[:cut], " \n"); idx > 0 {
		cut = idx
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
