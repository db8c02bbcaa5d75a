package rolebutton

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"welcome-power/bot"
	"welcome-power/panel"
	"welcome-power/utils"
)

// HandleToggle processes a click on a role_join_/role_leave_ button. A click
// that would not change anything ("already has" / "does not have") is a
// no-op reported to the user, not an error. Successful changes trigger a
// panel refresh scoped to the toggled role.
func HandleToggle(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	customID := i.MessageComponentData().CustomID
	join := strings.HasPrefix(customID, "role_join_")
	roleID := strings.TrimPrefix(strings.TrimPrefix(customID, "role_join_"), "role_leave_")

	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		log.Printf("rolebutton: error fetching roles for toggle in guild %s: %v", i.GuildID, err)
		utils.SendEphemeralResponse(s, i, "ロールの操作中にエラーが発生しました。")
		return
	}
	role := utils.FindRole(roles, roleID)
	if role == nil {
		utils.SendEphemeralResponse(s, i, "ロールが見つかりません。")
		return
	}

	hasRole := slices.Contains(i.Member.Roles, roleID)

	if join {
		if hasRole {
			utils.SendEphemeralResponse(s, i, "既にこのロールを持っています。")
			return
		}
		if err := s.GuildMemberRoleAdd(i.GuildID, i.Member.User.ID, roleID); err != nil {
			log.Printf("rolebutton: error adding role %s to %s: %v", roleID, i.Member.User.ID, err)
			utils.SendEphemeralResponse(s, i, "ロールの操作中にエラーが発生しました。ボットに十分な権限があるか確認してください。")
			return
		}
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("%s ロールを付与しました。", role.Name))
	} else {
		if !hasRole {
			utils.SendEphemeralResponse(s, i, "このロールを持っていません。")
			return
		}
		if err := s.GuildMemberRoleRemove(i.GuildID, i.Member.User.ID, roleID); err != nil {
			log.Printf("rolebutton: error removing role %s from %s: %v", roleID, i.Member.User.ID, err)
			utils.SendEphemeralResponse(s, i, "ロールの操作中にエラーが発生しました。ボットに十分な権限があるか確認してください。")
			return
		}
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("%s ロールを削除しました。", role.Name))
	}

	panel.UpdateRolePanels(s, b.Store, b.GetConfig().LogChannelID, i.GuildID, []string{roleID})
}
