package handlers

import (
	"log"
	"runtime/debug"
	"strings"

	"github.com/bwmarrin/discordgo"

	"welcome-power/bot"
	"welcome-power/handlers/rolebutton"
	"welcome-power/handlers/rolemenu"
	"welcome-power/handlers/rolepanel"
	"welcome-power/utils"
)

// Register installs the command table and the gateway event handlers on the
// bot. The registry is assembled statically here; there is no runtime
// discovery of handlers.
func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"rolepanel": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			rolepanel.Handle(s, i, b)
		},
		"rolebutton": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			rolebutton.Handle(s, i, b)
		},
		"rolemenu": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			rolemenu.Handle(s, i, b)
		},
		"help": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleHelp(s, i)
		},
		"reload": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			handleReload(s, i, b)
		},
		"botinfo": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			SystemInfoHandler(s, i, b)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		log.Printf("Bot is running on %d servers", len(r.Guilds))
		if err := s.UpdateGameStatus(0, "ロール管理"); err != nil {
			log.Printf("Failed to set presence: %v", err)
		}
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleInteractionCreate(s, i, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
		handleGuildMemberAdd(s, m, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberUpdate) {
		handleGuildMemberUpdate(s, m, b)
	})
}

func handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		h, ok := b.CommandHandlers[name]
		if !ok {
			log.Printf("Unknown command: %s", name)
			return
		}
		invokeCommand(s, i, name, h)
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case strings.HasPrefix(customID, "role_join_") || strings.HasPrefix(customID, "role_leave_"):
			rolebutton.HandleToggle(s, i, b)
		case strings.HasPrefix(customID, "role_menu_"):
			rolemenu.HandleSelect(s, i, b)
		}
	}
}

// invokeCommand runs a command handler with a panic boundary: an escaped
// panic is logged and converted into a generic failure message to the user,
// replying if possible and following up when the handler already responded.
func invokeCommand(s *discordgo.Session, i *discordgo.InteractionCreate, name string, h func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Command %s panicked: %v\n%s", name, r, debug.Stack())
			utils.RespondOrFollowUp(s, i, "コマンドの実行中にエラーが発生しました。")
		}
	}()
	h(s, i)
}

func handleReload(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := b.ReloadConfig(); err != nil {
		utils.SendEphemeralResponse(s, i, "❌ 設定の再読み込み中にエラーが発生しました。")
		return
	}
	utils.SendEphemeralResponse(s, i, "✅ 自動ロール設定の再読み込みが完了しました。")
}
