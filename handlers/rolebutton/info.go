package rolebutton

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"welcome-power/bot"
	"welcome-power/model"
	"welcome-power/utils"
	"welcome-power/utils/storage"
)

const timestampLayout = "2006/01/02 15:04:05"

func handleInfo(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	if opt, ok := opts["name"]; ok {
		showDetail(s, i, b, opt.StringValue())
		return
	}

	names := b.Store.ListNames(i.GuildID, model.KindButton)
	if len(names) == 0 {
		utils.SendEphemeralResponse(s, i, "このサーバーにはロールボタンが作成されていません。")
		return
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(names))
	for idx, name := range names {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s", idx+1, name),
			Value: fmt.Sprintf("`/rolebutton info name:%s` で詳細を確認", name),
		})
	}
	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title:       "🔘 ロールボタン一覧",
		Description: fmt.Sprintf("このサーバーで作成されているボタン: %d個", len(names)),
		Color:       0x3498DB,
		Fields:      fields,
	})
}

func showDetail(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, name string) {
	if !storage.ValidName(name) {
		utils.SendEphemeralResponse(s, i, "ボタン名は英数字、ハイフン、アンダースコアのみ使用できます。")
		return
	}
	rec, ok := b.Store.LoadButton(i.GuildID, name)
	if !ok {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("ボタン \"%s\" が見つかりません。", name))
		return
	}

	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		log.Printf("rolebutton: error fetching roles for info in guild %s: %v", i.GuildID, err)
	}

	roleInfo := fmt.Sprintf("<@&%s> (削除済み)", rec.RoleID)
	if r := utils.FindRole(roles, rec.RoleID); r != nil {
		roleInfo = fmt.Sprintf("<@&%s> (%s)", rec.RoleID, r.Name)
	}

	channelInfo := "なし"
	if rec.ChannelID != "" {
		if ch, err := s.Channel(rec.ChannelID); err == nil {
			channelInfo = fmt.Sprintf("<#%s> (%s)", rec.ChannelID, ch.Name)
		} else {
			channelInfo = fmt.Sprintf("%s (削除済み)", rec.ChannelID)
		}
	}

	messageInfo := rec.MessageID
	if messageInfo == "" {
		messageInfo = "なし"
	}

	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🔘 ボタン詳細: %s", name),
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📄 説明文", Value: rec.Message},
			{Name: "🎭 対象ロール", Value: roleInfo},
			{Name: "🔘 参加ボタン", Value: fmt.Sprintf("%s %s", rec.JoinEmoji, rec.JoinLabel), Inline: true},
			{Name: "🔘 退出ボタン", Value: fmt.Sprintf("%s %s", rec.LeaveEmoji, rec.LeaveLabel), Inline: true},
			{Name: "📍 設置チャンネル", Value: channelInfo, Inline: true},
			{Name: "🆔 メッセージID", Value: messageInfo, Inline: true},
			{Name: "📅 作成日時", Value: rec.CreatedAt.Local().Format(timestampLayout), Inline: true},
			{Name: "🔄 更新日時", Value: rec.UpdatedAt.Local().Format(timestampLayout), Inline: true},
		},
	})
}
