package rolepanel

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"welcome-power/bot"
	"welcome-power/panel"
	"welcome-power/utils"
	"welcome-power/utils/storage"
)

func handleEdit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	name := opts["name"].StringValue()

	if !storage.ValidName(name) {
		utils.SendEphemeralResponse(s, i, "パネル名は英数字、ハイフン、アンダースコアのみ使用できます。")
		return
	}

	rec, ok := b.Store.LoadPanel(i.GuildID, name)
	if !ok {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("パネル \"%s\" が見つかりません。", name))
		return
	}

	snap, err := panel.FetchSnapshot(s, i.GuildID)
	if err != nil {
		log.Printf("rolepanel: error fetching snapshot for edit in guild %s: %v", i.GuildID, err)
		utils.SendEphemeralResponse(s, i, "サーバー情報の取得に失敗しました。")
		return
	}

	// Partial update: only explicitly supplied options are applied.
	changed := false
	if opt, ok := opts["roles"]; ok {
		roleIDs, err := utils.ResolveRoleInput(snap.Roles, opt.StringValue())
		if err != nil {
			utils.SendEphemeralResponse(s, i, err.Error())
			return
		}
		rec.RoleIDs = roleIDs
		changed = true
	}
	if opt, ok := opts["title"]; ok {
		rec.Title = opt.StringValue()
		changed = true
	}
	if opt, ok := opts["message"]; ok {
		rec.Message = utils.FormatMessageOption(opt.StringValue())
		changed = true
	}
	if opt, ok := opts["showcount"]; ok {
		rec.ShowCount = opt.BoolValue()
		changed = true
	}
	if !changed {
		utils.SendEphemeralResponse(s, i, "更新する項目が指定されていません。")
		return
	}

	if !b.Store.SavePanel(i.GuildID, name, rec) {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("パネル \"%s\" の保存に失敗しました。", name))
		return
	}

	// Refresh the live message; a failure here leaves the record updated, so
	// report partial success rather than rolling back.
	if rec.ChannelID != "" && rec.MessageID != "" {
		embed := panel.BuildPanelEmbed(snap, rec)
		if _, err := s.ChannelMessageEditEmbed(rec.ChannelID, rec.MessageID, embed); err != nil {
			log.Printf("rolepanel: error refreshing panel message after edit %s/%s: %v", i.GuildID, name, err)
			utils.SendEphemeralResponse(s, i, fmt.Sprintf("⚠️ パネル \"%s\" を更新しましたが、メッセージの更新に失敗しました。", name))
			return
		}
	}

	utils.SendEphemeralResponse(s, i, fmt.Sprintf("✅ パネル \"%s\" を更新しました。", name))
}
