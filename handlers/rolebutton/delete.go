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

func handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	name := opts["name"].StringValue()

	if !storage.ValidName(name) {
		utils.SendEphemeralResponse(s, i, "ボタン名は英数字、ハイフン、アンダースコアのみ使用できます。")
		return
	}

	rec, ok := b.Store.LoadButton(i.GuildID, name)
	if !ok {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("ボタン \"%s\" が見つかりません。", name))
		return
	}

	messageDeleted := false
	if rec.ChannelID != "" && rec.MessageID != "" {
		if err := s.ChannelMessageDelete(rec.ChannelID, rec.MessageID); err != nil {
			log.Printf("rolebutton: error deleting button message %s/%s: %v", i.GuildID, name, err)
		} else {
			messageDeleted = true
		}
	}

	if !b.Store.Delete(i.GuildID, model.KindButton, name) {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("ボタン \"%s\" の削除に失敗しました。", name))
		return
	}

	log.Printf("rolebutton: button %q deleted by %s in guild %s", name, i.Member.User.Username, i.GuildID)
	if messageDeleted {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("ボタン \"%s\" とメッセージを削除しました。", name))
	} else {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("ボタン \"%s\" を削除しました。（メッセージの削除は失敗しました）", name))
	}
}
