package rolepanel

import (
	"fmt"
	"log"
	"strings"

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

	names := b.Store.ListNames(i.GuildID, model.KindPanel)
	if len(names) == 0 {
		utils.SendEphemeralResponse(s, i, "このサーバーにはロールパネルが作成されていません。")
		return
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(names))
	for idx, name := range names {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s", idx+1, name),
			Value: fmt.Sprintf("`/rolepanel info name:%s` で詳細を確認", name),
		})
	}
	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title:       "📋 ロールパネル一覧",
		Description: fmt.Sprintf("このサーバーで作成されているパネル: %d個", len(names)),
		Color:       0x3498DB,
		Fields:      fields,
	})
}

func showDetail(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, name string) {
	if !storage.ValidName(name) {
		utils.SendEphemeralResponse(s, i, "パネル名は英数字、ハイフン、アンダースコアのみ使用できます。")
		return
	}
	rec, ok := b.Store.LoadPanel(i.GuildID, name)
	if !ok {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("パネル \"%s\" が見つかりません。", name))
		return
	}

	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		log.Printf("rolepanel: error fetching roles for info in guild %s: %v", i.GuildID, err)
	}

	roleLines := make([]string, 0, len(rec.RoleIDs))
	for _, id := range rec.RoleIDs {
		if r := utils.FindRole(roles, id); r != nil {
			roleLines = append(roleLines, fmt.Sprintf("<@&%s> (%s)", id, r.Name))
		} else {
			roleLines = append(roleLines, fmt.Sprintf("<@&%s> (削除済み)", id))
		}
	}
	roleInfo := "なし"
	if len(roleLines) > 0 {
		roleInfo = strings.Join(roleLines, "\n")
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
	description := rec.Message
	if description == "" {
		description = "なし"
	}

	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📋 パネル詳細: %s", name),
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📄 タイトル", Value: rec.Title},
			{Name: "📄 説明文", Value: description},
			{Name: "🎭 対象ロール", Value: roleInfo},
			{Name: "🔢 メンバー数表示", Value: boolLabel(rec.ShowCount), Inline: true},
			{Name: "📍 設置チャンネル", Value: channelInfo, Inline: true},
			{Name: "🆔 メッセージID", Value: messageInfo, Inline: true},
			{Name: "📅 作成日時", Value: rec.CreatedAt.Local().Format(timestampLayout), Inline: true},
			{Name: "🔄 更新日時", Value: rec.UpdatedAt.Local().Format(timestampLayout), Inline: true},
		},
	})
}

func boolLabel(v bool) string {
	if v {
		return "あり"
	}
	return "なし"
}
