package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"welcome-power/commands"
	"welcome-power/utils"
)

// Run opens the gateway connection, registers the application commands and
// blocks until the process receives an interrupt. Steady-state errors never
// terminate the process; only startup failures are fatal.
func (b *Bot) Run() {
	if err := b.Session.Open(); err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	cfg := b.GetConfig()

	log.Println("Registering application commands...")
	cmds := commands.Generate()
	registered, err := b.Session.ApplicationCommandBulkOverwrite(cfg.AppID, "", cmds)
	if err != nil {
		log.Fatalf("Cannot register application commands: %v", err)
	}
	b.RegisteredCommands = registered
	log.Printf("Registered %d application commands", len(registered))

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	utils.LogInfo(b.Session, cfg.LogChannelID, "System", "Startup", "Bot has started successfully.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
