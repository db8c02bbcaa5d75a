package bot

import (
	"log"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"welcome-power/model"
	"welcome-power/utils/database"
	"welcome-power/utils/storage"
)

// Bot is the application context constructed once at startup and passed into
// every handler. Nothing here is reached through package-level state.
type Bot struct {
	Session            *discordgo.Session
	Store              *storage.Store
	DB                 *sqlx.DB
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)

	config atomic.Value // *model.Config
}

// New creates the Discord session and the bot context around it.
func New(cfg *model.Config, db *sqlx.DB, store *storage.Store) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessages

	b := &Bot{
		Session: dg,
		Store:   store,
		DB:      db,
	}
	b.config.Store(cfg)
	return b, nil
}

func (b *Bot) GetConfig() *model.Config {
	return b.config.Load().(*model.Config)
}

// ReloadConfig re-reads the per-guild auto-role settings from the database
// and swaps in a fresh config snapshot.
func (b *Bot) ReloadConfig() error {
	log.Println("Reloading auto-role configuration...")

	autoRoles, err := database.LoadAutoRoleConfigs(b.DB)
	if err != nil {
		log.Printf("Error reloading auto-role configuration: %v", err)
		return err
	}

	old := b.GetConfig()
	newCfg := *old
	newCfg.AutoRoles = autoRoles
	b.config.Store(&newCfg)

	log.Printf("Auto-role configuration reloaded for %d guilds", len(autoRoles))
	return nil
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	if err := b.Session.Close(); err != nil {
		log.Printf("Error closing session: %v", err)
	}
	if err := b.DB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
