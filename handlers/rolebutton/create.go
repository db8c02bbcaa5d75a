package rolebutton

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"welcome-power/bot"
	"welcome-power/model"
	"welcome-power/utils"
	"welcome-power/utils/storage"
)

func handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	name := opts["name"].StringValue()
	roleInput := opts["role"].StringValue()
	message := utils.FormatMessageOption(opts["message"].StringValue())

	joinLabel := "参加"
	if opt, ok := opts["joinlabel"]; ok {
		joinLabel = opt.StringValue()
	}
	leaveLabel := "退出"
	if opt, ok := opts["leavelabel"]; ok {
		leaveLabel = opt.StringValue()
	}
	joinEmoji := ""
	if opt, ok := opts["joinemoji"]; ok {
		joinEmoji = opt.StringValue()
	}
	leaveEmoji := ""
	if opt, ok := opts["leaveemoji"]; ok {
		leaveEmoji = opt.StringValue()
	}

	if !storage.ValidName(name) {
		utils.SendEphemeralResponse(s, i, "ボタン名は英数字、ハイフン、アンダースコアのみ使用できます。")
		return
	}
	if b.Store.Exists(i.GuildID, model.KindButton, name) {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("ボタン名 \"%s\" は既に使用されています。別の名前を指定してください。", name))
		return
	}

	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		log.Printf("rolebutton: error fetching roles for create in guild %s: %v", i.GuildID, err)
		utils.SendEphemeralResponse(s, i, "サーバー情報の取得に失敗しました。")
		return
	}

	roleIDs, err := utils.ResolveRoleInput(roles, roleInput)
	if err != nil {
		utils.SendEphemeralResponse(s, i, err.Error())
		return
	}
	if len(roleIDs) != 1 {
		utils.SendEphemeralResponse(s, i, "ロールボタンには1つのロールのみ指定できます。")
		return
	}
	roleID := roleIDs[0]

	rec := &model.Button{
		RoleID:     roleID,
		Message:    message,
		JoinLabel:  joinLabel,
		LeaveLabel: leaveLabel,
		JoinEmoji:  joinEmoji,
		LeaveEmoji: leaveEmoji,
		CreatedAt:  time.Now().UTC(),
	}

	msg, err := s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Content:    message,
		Components: buttonComponents(rec),
	})
	if err != nil {
		log.Printf("rolebutton: error sending button message for %s/%s: %v", i.GuildID, name, err)
		utils.SendEphemeralResponse(s, i, "ボタンの送信に失敗しました。ボットに十分な権限があるか確認してください。")
		return
	}

	rec.ChannelID = i.ChannelID
	rec.MessageID = msg.ID

	if b.Store.SaveButton(i.GuildID, name, rec) {
		log.Printf("rolebutton: button %q created by %s in guild %s", name, i.Member.User.Username, i.GuildID)
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("✅ ロールボタン \"%s\" を作成しました。", name))
	} else {
		utils.SendEphemeralResponse(s, i, "⚠️ ボタンは送信されましたが、データの保存に失敗しました。")
	}
}

func buttonComponents(rec *model.Button) []discordgo.MessageComponent {
	joinButton := discordgo.Button{
		Label:    rec.JoinLabel,
		Style:    discordgo.PrimaryButton,
		CustomID: "role_join_" + rec.RoleID,
	}
	leaveButton := discordgo.Button{
		Label:    rec.LeaveLabel,
		Style:    discordgo.SecondaryButton,
		CustomID: "role_leave_" + rec.RoleID,
	}
	if rec.JoinEmoji != "" {
		joinButton.Emoji = &discordgo.ComponentEmoji{Name: rec.JoinEmoji}
	}
	if rec.LeaveEmoji != "" {
		leaveButton.Emoji = &discordgo.ComponentEmoji{Name: rec.LeaveEmoji}
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{joinButton, leaveButton},
		},
	}
}
