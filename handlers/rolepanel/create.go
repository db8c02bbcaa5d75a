package rolepanel

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"welcome-power/bot"
	"welcome-power/model"
	"welcome-power/panel"
	"welcome-power/utils"
	"welcome-power/utils/storage"
)

func handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	name := opts["name"].StringValue()
	rolesInput := opts["roles"].StringValue()
	title := opts["title"].StringValue()

	message := ""
	if opt, ok := opts["message"]; ok {
		message = utils.FormatMessageOption(opt.StringValue())
	}
	showCount := false
	if opt, ok := opts["showcount"]; ok {
		showCount = opt.BoolValue()
	}

	if !storage.ValidName(name) {
		utils.SendEphemeralResponse(s, i, "パネル名は英数字、ハイフン、アンダースコアのみ使用できます。")
		return
	}
	if b.Store.Exists(i.GuildID, model.KindPanel, name) {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("パネル名 \"%s\" は既に使用されています。別の名前を指定してください。", name))
		return
	}

	snap, err := panel.FetchSnapshot(s, i.GuildID)
	if err != nil {
		log.Printf("rolepanel: error fetching snapshot for create in guild %s: %v", i.GuildID, err)
		utils.SendEphemeralResponse(s, i, "サーバー情報の取得に失敗しました。")
		return
	}

	roleIDs, err := utils.ResolveRoleInput(snap.Roles, rolesInput)
	if err != nil {
		utils.SendEphemeralResponse(s, i, err.Error())
		return
	}

	rec := &model.Panel{
		RoleIDs:   roleIDs,
		Title:     title,
		Message:   message,
		ShowCount: showCount,
		CreatedAt: time.Now().UTC(),
	}

	embed := panel.BuildPanelEmbed(snap, rec)
	msg, err := s.ChannelMessageSendEmbed(i.ChannelID, embed)
	if err != nil {
		log.Printf("rolepanel: error sending panel message for %s/%s: %v", i.GuildID, name, err)
		utils.SendEphemeralResponse(s, i, "パネルの送信に失敗しました。ボットに十分な権限があるか確認してください。")
		return
	}

	// Channel and message IDs are assigned exactly once here and never
	// change afterwards; all later updates edit the message in place.
	rec.ChannelID = i.ChannelID
	rec.MessageID = msg.ID

	if b.Store.SavePanel(i.GuildID, name, rec) {
		log.Printf("rolepanel: panel %q created by %s in guild %s", name, i.Member.User.Username, i.GuildID)
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("✅ ロールパネル \"%s\" を作成しました。", name))
	} else {
		utils.SendEphemeralResponse(s, i, "⚠️ パネルは送信されましたが、データの保存に失敗したため自動更新は機能しません。")
	}
}
