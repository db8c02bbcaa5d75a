package rolebutton

import (
	"github.com/bwmarrin/discordgo"

	"welcome-power/bot"
)

// Handle routes the /rolebutton subcommands.
func Handle(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		opts[opt.Name] = opt
	}

	switch sub.Name {
	case "create":
		handleCreate(s, i, b, opts)
	case "delete":
		handleDelete(s, i, b, opts)
	case "info":
		handleInfo(s, i, b, opts)
	}
}
