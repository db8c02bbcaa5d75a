package handlers

import (
	"github.com/bwmarrin/discordgo"

	"welcome-power/utils"
)

// HandleHelp shows the command and feature overview.
func HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title:       "🤖 WelcomePower Bot - ヘルプ",
		Description: "Discord ロール管理ボットのコマンド一覧",
		Color:       0x0099FF,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "📋 **ロールパネル管理**",
				Value: "`/rolepanel create` - 新しいロールパネルを作成\n" +
					"`/rolepanel edit` - パネルの設定を変更\n" +
					"`/rolepanel delete` - パネルを削除\n" +
					"`/rolepanel info` - パネル一覧・詳細表示",
			},
			{
				Name: "🔘 **ロールボタン管理**",
				Value: "`/rolebutton create` - 新しいロールボタンを作成\n" +
					"`/rolebutton delete` - ボタンを削除\n" +
					"`/rolebutton info` - ボタン一覧・詳細表示",
			},
			{
				Name: "📑 **ロールメニュー管理**",
				Value: "`/rolemenu create` - 新しいロール選択メニューを作成\n" +
					"`/rolemenu delete` - メニューを削除\n" +
					"`/rolemenu info` - メニュー一覧・詳細表示",
			},
			{
				Name: "❓ **その他**",
				Value: "`/help` - このヘルプメッセージを表示\n" +
					"`/reload` - 自動ロール設定を再読み込み\n" +
					"`/botinfo` - ボットの稼働状況を表示",
			},
			{
				Name: "⚙️ **機能説明**",
				Value: "**自動ロール付与**: 新規メンバーが参加した際、設定されたロールを自動で付与\n" +
					"**ロールパネル**: 指定したロールの所有者一覧をEmbedで表示（ロール変更時に自動更新）\n" +
					"**ロールボタン/メニュー**: ユーザーが自分でロールのつけ外しが可能",
			},
		},
	}
	utils.SendEmbedResponse(s, i, embed)
}
