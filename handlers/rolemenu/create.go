package rolemenu

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

// Discord caps string select menus at 25 options.
const maxMenuRoles = 25

func handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	name := opts["name"].StringValue()
	rolesInput := opts["roles"].StringValue()
	message := utils.FormatMessageOption(opts["message"].StringValue())

	placeholder := "ロールを選択してください"
	if opt, ok := opts["placeholder"]; ok {
		placeholder = opt.StringValue()
	}

	if !storage.ValidName(name) {
		utils.SendEphemeralResponse(s, i, "メニュー名は英数字、ハイフン、アンダースコアのみ使用できます。")
		return
	}
	if b.Store.Exists(i.GuildID, model.KindMenu, name) {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("メニュー名 \"%s\" は既に使用されています。別の名前を指定してください。", name))
		return
	}

	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		log.Printf("rolemenu: error fetching roles for create in guild %s: %v", i.GuildID, err)
		utils.SendEphemeralResponse(s, i, "サーバー情報の取得に失敗しました。")
		return
	}

	roleIDs, err := utils.ResolveRoleInput(roles, rolesInput)
	if err != nil {
		utils.SendEphemeralResponse(s, i, err.Error())
		return
	}
	if len(roleIDs) > maxMenuRoles {
		utils.SendEphemeralResponse(s, i, "セレクトメニューには最大25個のロールまで設定できます。")
		return
	}

	rec := &model.Menu{
		RoleIDs:     roleIDs,
		Message:     message,
		Placeholder: placeholder,
		CreatedAt:   time.Now().UTC(),
	}

	options := make([]discordgo.SelectMenuOption, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		role := utils.FindRole(roles, roleID)
		options = append(options, discordgo.SelectMenuOption{
			Label:       role.Name,
			Value:       roleID,
			Description: fmt.Sprintf("%sロールを付与/削除", role.Name),
			Emoji:       &discordgo.ComponentEmoji{Name: "🎭"},
		})
	}

	minValues := 0
	selectMenu := discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    "role_menu_" + name,
		Placeholder: placeholder,
		MinValues:   &minValues,
		MaxValues:   len(roleIDs),
		Options:     options,
	}

	msg, err := s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Content: message,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{selectMenu},
			},
		},
	})
	if err != nil {
		log.Printf("rolemenu: error sending menu message for %s/%s: %v", i.GuildID, name, err)
		utils.SendEphemeralResponse(s, i, "メニューの送信に失敗しました。ボットに十分な権限があるか確認してください。")
		return
	}

	rec.ChannelID = i.ChannelID
	rec.MessageID = msg.ID

	if b.Store.SaveMenu(i.GuildID, name, rec) {
		log.Printf("rolemenu: menu %q created by %s in guild %s", name, i.Member.User.Username, i.GuildID)
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("✅ ロール選択メニュー \"%s\" を作成しました。", name))
	} else {
		utils.SendEphemeralResponse(s, i, "⚠️ メニューは作成されましたが、データの保存に失敗しました。")
	}
}
