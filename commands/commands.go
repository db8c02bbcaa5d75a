package commands

import (
	"github.com/bwmarrin/discordgo"
)

var manageServer int64 = discordgo.PermissionManageServer

// Generate returns the full application command set. The definitions are
// static; registration pushes them wholesale via bulk overwrite at startup.
func Generate() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		rolePanelCommand(),
		roleButtonCommand(),
		roleMenuCommand(),
		{
			Name:                     "help",
			Description:              "ヘルプ情報を表示します",
			DefaultMemberPermissions: &manageServer,
		},
		{
			Name:                     "reload",
			Description:              "自動ロール設定を再読み込みします",
			DefaultMemberPermissions: &manageServer,
		},
		{
			Name:                     "botinfo",
			Description:              "ボットの稼働状況を表示します",
			DefaultMemberPermissions: &manageServer,
		},
	}
}

func nameOption(description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "name",
		Description: description,
		Required:    required,
	}
}

func rolePanelCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "rolepanel",
		Description:              "ロールパネルを作成・管理します",
		DefaultMemberPermissions: &manageServer,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "create",
				Description: "新しいロールパネルを作成します",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "roles",
						Description: "対象ロール（複数可、スペース区切り）例: @role1 @role2",
						Required:    true,
					},
					nameOption("パネル名（ファイル名として使用）", true),
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "title",
						Description: "パネルのタイトル",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "message",
						Description: "パネルの説明文",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "showcount",
						Description: "メンバー数を表示するか",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "ロールパネルを削除します",
				Options: []*discordgo.ApplicationCommandOption{
					nameOption("削除するパネル名", true),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "edit",
				Description: "ロールパネルの設定を変更します（指定した項目のみ）",
				Options: []*discordgo.ApplicationCommandOption{
					nameOption("編集するパネル名", true),
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "roles",
						Description: "新しい対象ロール（複数可、スペース区切り）",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "title",
						Description: "新しいタイトル",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "message",
						Description: "新しい説明文",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "showcount",
						Description: "メンバー数を表示するか",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "info",
				Description: "ロールパネルの詳細情報を表示します",
				Options: []*discordgo.ApplicationCommandOption{
					nameOption("パネル名（未指定時は全パネルのリストを表示）", false),
				},
			},
		},
	}
}

func roleButtonCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "rolebutton",
		Description:              "ロール切り替えボタンを作成・管理します",
		DefaultMemberPermissions: &manageServer,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "create",
				Description: "新しいロールボタンを作成します",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "role",
						Description: "対象ロール 例: @role",
						Required:    true,
					},
					nameOption("ボタン名（ファイル名として使用）", true),
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "message",
						Description: "ボタンの説明文",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "joinlabel",
						Description: "参加ボタンのラベル（デフォルト: 参加）",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "leavelabel",
						Description: "退出ボタンのラベル（デフォルト: 退出）",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "joinemoji",
						Description: "参加ボタンの絵文字",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "leaveemoji",
						Description: "退出ボタンの絵文字",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "ロールボタンを削除します",
				Options: []*discordgo.ApplicationCommandOption{
					nameOption("削除するボタン名", true),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "info",
				Description: "ロールボタンの詳細情報を表示します",
				Options: []*discordgo.ApplicationCommandOption{
					nameOption("ボタン名（未指定時は全ボタンのリストを表示）", false),
				},
			},
		},
	}
}

func roleMenuCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "rolemenu",
		Description:              "ロール選択メニューを作成・管理します",
		DefaultMemberPermissions: &manageServer,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "create",
				Description: "新しいロール選択メニューを作成します",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "roles",
						Description: "対象ロール（最大25個、スペース区切り）例: @role1 @role2",
						Required:    true,
					},
					nameOption("メニュー名（ファイル名として使用）", true),
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "message",
						Description: "メニューの説明文",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "placeholder",
						Description: "メニューのプレースホルダーテキスト（デフォルト: ロールを選択してください）",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "ロール選択メニューを削除します",
				Options: []*discordgo.ApplicationCommandOption{
					nameOption("削除するメニュー名", true),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "info",
				Description: "ロール選択メニューの詳細情報を表示します",
				Options: []*discordgo.ApplicationCommandOption{
					nameOption("メニュー名（未指定時は全メニューのリストを表示）", false),
				},
			},
		},
	}
}
