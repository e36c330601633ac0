package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/discord"
	"github.com/pmurley/link-tracker/pkg/logger"
)

// Bot serves the link report over Discord chat commands.
type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	logger   *logger.Logger
	handlers *discord.HandlerManager
}

func New(cfg *config.Config, log *logger.Logger, reporter discord.Reporter) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	b := &Bot{
		session: session,
		config:  cfg,
		logger:  log,
	}

	b.handlers = discord.NewHandlerManager(b.session, cfg, log, reporter)

	return b, nil
}

func (b *Bot) Start() error {
	b.handlers.RegisterHandlers()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	b.logger.Info("Discord bot connected", "prefix", b.config.CommandPrefix)
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}
