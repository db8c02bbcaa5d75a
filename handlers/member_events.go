package handlers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"welcome-power/bot"
	"welcome-power/panel"
	"welcome-power/utils"
)

func handleGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd, b *bot.Bot) {
	cfg := b.GetConfig()
	autoRole, ok := cfg.AutoRoles[m.GuildID]
	if !ok || !autoRole.Enabled || len(autoRole.RoleIDs) == 0 {
		return
	}

	log.Printf("New member joined: %s in guild %s", m.User.Username, m.GuildID)

	roles, err := s.GuildRoles(m.GuildID)
	if err != nil {
		log.Printf("auto-role: error fetching roles for guild %s: %v", m.GuildID, err)
		roles = nil
	}
	botTop := botTopRolePosition(s, m.GuildID, roles)

	for _, roleID := range autoRole.RoleIDs {
		role := utils.FindRole(roles, roleID)
		if role == nil {
			log.Printf("auto-role: role %s not found in guild %s", roleID, m.GuildID)
			continue
		}
		if !canAssignRole(role.Position, botTop) {
			log.Printf("auto-role: cannot assign role %s: bot's highest role is not high enough", role.Name)
			utils.LogWarn(s, cfg.LogChannelID, "AutoRole", "Assign",
				fmt.Sprintf("ロール %s はボットの最上位ロールより上にあるため付与できません。", role.Name))
			continue
		}
		if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, roleID); err != nil {
			log.Printf("auto-role: error adding role %s to %s: %v", roleID, m.User.Username, err)
			continue
		}
		log.Printf("auto-role: added role %s to %s", role.Name, m.User.Username)
	}

	// Joining changes panel-relevant membership even when every grant above
	// failed, so refresh unscoped.
	panel.UpdateRolePanels(s, b.Store, cfg.LogChannelID, m.GuildID, nil)
}

func handleGuildMemberUpdate(s *discordgo.Session, m *discordgo.GuildMemberUpdate, b *bot.Bot) {
	if m.BeforeUpdate == nil {
		// The state cache cannot tell us what changed; refresh everything.
		panel.UpdateRolePanels(s, b.Store, b.GetConfig().LogChannelID, m.GuildID, nil)
		return
	}

	added, removed := diffRoleSets(m.BeforeUpdate.Roles, m.Member.Roles)
	if len(added) == 0 && len(removed) == 0 {
		return
	}

	if len(added) > 0 {
		log.Printf("member-update: roles added to %s in guild %s: %v", m.User.Username, m.GuildID, added)
	}
	if len(removed) > 0 {
		log.Printf("member-update: roles removed from %s in guild %s: %v", m.User.Username, m.GuildID, removed)
	}

	panel.UpdateRolePanels(s, b.Store, b.GetConfig().LogChannelID, m.GuildID, append(added, removed...))
}

// botTopRolePosition returns the highest role position held by the bot
// itself, or -1 when it cannot be determined.
func botTopRolePosition(s *discordgo.Session, guildID string, roles []*discordgo.Role) int {
	me, err := s.GuildMember(guildID, s.State.User.ID)
	if err != nil {
		log.Printf("auto-role: error fetching bot member in guild %s: %v", guildID, err)
		return -1
	}
	top := -1
	for _, id := range me.Roles {
		if r := utils.FindRole(roles, id); r != nil && r.Position > top {
			top = r.Position
		}
	}
	return top
}

// canAssignRole reports whether a role at rolePosition can be granted by a
// bot whose highest role sits at botTopPosition. Discord forbids managing
// roles at or above the actor's own highest role.
func canAssignRole(rolePosition, botTopPosition int) bool {
	return rolePosition < botTopPosition
}

// diffRoleSets returns the role ids present only in after (added) and only in
// before (removed).
func diffRoleSets(before, after []string) (added, removed []string) {
	beforeSet := make(map[string]struct{}, len(before))
	for _, id := range before {
		beforeSet[id] = struct{}{}
	}
	afterSet := make(map[string]struct{}, len(after))
	for _, id := range after {
		afterSet[id] = struct{}{}
	}
	for _, id := range after {
		if _, ok := beforeSet[id]; !ok {
			added = append(added, id)
		}
	}
	for _, id := range before {
		if _, ok := afterSet[id]; !ok {
			removed = append(removed, id)
		}
	}
	return added, removed
}
