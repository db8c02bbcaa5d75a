package rolemenu

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"welcome-power/bot"
	"welcome-power/panel"
	"welcome-power/utils"
)

// HandleSelect applies a role_menu_ submission: the member's selection
// replaces their current holdings within the menu's role set. Roles selected
// but not held are granted, roles held but not selected are revoked, each
// attempted independently so one failure cannot block the others.
func HandleSelect(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	name := strings.TrimPrefix(i.MessageComponentData().CustomID, "role_menu_")

	rec, ok := b.Store.LoadMenu(i.GuildID, name)
	if !ok {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("メニュー \"%s\" のデータが見つかりません。", name))
		return
	}

	toGrant, toRevoke := DiffSelection(i.Member.Roles, i.MessageComponentData().Values, rec.RoleIDs)
	if len(toGrant) == 0 && len(toRevoke) == 0 {
		utils.SendEphemeralResponse(s, i, "変更はありません。")
		return
	}

	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		log.Printf("rolemenu: error fetching roles for select in guild %s: %v", i.GuildID, err)
	}
	roleName := func(id string) string {
		if r := utils.FindRole(roles, id); r != nil {
			return r.Name
		}
		return id
	}

	var granted, revoked, failed []string
	var changedIDs []string
	for _, id := range toGrant {
		if err := s.GuildMemberRoleAdd(i.GuildID, i.Member.User.ID, id); err != nil {
			log.Printf("rolemenu: error adding role %s to %s: %v", id, i.Member.User.ID, err)
			failed = append(failed, roleName(id))
			continue
		}
		granted = append(granted, roleName(id))
		changedIDs = append(changedIDs, id)
	}
	for _, id := range toRevoke {
		if err := s.GuildMemberRoleRemove(i.GuildID, i.Member.User.ID, id); err != nil {
			log.Printf("rolemenu: error removing role %s from %s: %v", id, i.Member.User.ID, err)
			failed = append(failed, roleName(id))
			continue
		}
		revoked = append(revoked, roleName(id))
		changedIDs = append(changedIDs, id)
	}

	var lines []string
	if len(granted) > 0 {
		lines = append(lines, fmt.Sprintf("✅ 付与: %s", strings.Join(granted, ", ")))
	}
	if len(revoked) > 0 {
		lines = append(lines, fmt.Sprintf("➖ 削除: %s", strings.Join(revoked, ", ")))
	}
	if len(failed) > 0 {
		lines = append(lines, fmt.Sprintf("❌ 失敗: %s", strings.Join(failed, ", ")))
	}
	utils.SendEphemeralResponse(s, i, strings.Join(lines, "\n"))

	if len(changedIDs) > 0 {
		panel.UpdateRolePanels(s, b.Store, b.GetConfig().LogChannelID, i.GuildID, changedIDs)
	}
}

// DiffSelection computes the symmetric difference between the member's
// currently held roles (restricted to the menu's role set) and the submitted
// selection: toGrant is selected-but-not-held, toRevoke is
// held-but-not-selected. Roles outside menuRoleIDs are never touched.
func DiffSelection(memberRoles, selected, menuRoleIDs []string) (toGrant, toRevoke []string) {
	menuSet := make(map[string]struct{}, len(menuRoleIDs))
	for _, id := range menuRoleIDs {
		menuSet[id] = struct{}{}
	}
	held := make(map[string]struct{}, len(memberRoles))
	for _, id := range memberRoles {
		if _, ok := menuSet[id]; ok {
			held[id] = struct{}{}
		}
	}
	selectedSet := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		if _, ok := menuSet[id]; ok {
			selectedSet[id] = struct{}{}
		}
	}

	// Iterate the menu's configured order so the reported changes are stable.
	for _, id := range menuRoleIDs {
		_, isHeld := held[id]
		_, isSelected := selectedSet[id]
		switch {
		case isSelected && !isHeld:
			toGrant = append(toGrant, id)
		case isHeld && !isSelected:
			toRevoke = append(toRevoke, id)
		}
	}
	return toGrant, toRevoke
}
