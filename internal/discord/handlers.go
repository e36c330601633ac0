package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pmurley/link-tracker/internal/analysis"
	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/pkg/logger"
)

const commandTimeout = 30 * time.Second

// Reporter produces a fresh duplicate report on every call.
type Reporter interface {
	Report(ctx context.Context) (analysis.Report, error)
}

type HandlerManager struct {
	session  *discordgo.Session
	config   *config.Config
	logger   *logger.Logger
	reporter Reporter
	commands map[string]CommandHandler
}

type CommandHandler func(s *discordgo.Session, m *discordgo.MessageCreate, args []string)

func NewHandlerManager(
	session *discordgo.Session,
	config *config.Config,
	logger *logger.Logger,
	reporter Reporter,
) *HandlerManager {
	hm := &HandlerManager{
		session:  session,
		config:   config,
		logger:   logger,
		reporter: reporter,
		commands: make(map[string]CommandHandler),
	}

	hm.registerCommands()

	return hm
}

func (hm *HandlerManager) RegisterHandlers() {
	hm.session.AddHandler(hm.messageCreate)
}

func (hm *HandlerManager) registerCommands() {
	hm.commands["help"] = hm.handleHelp
	hm.commands["links"] = hm.handleLinks
	hm.commands["dupes"] = hm.handleDupes
	hm.commands["refresh"] = hm.handleRefresh
}

// parseCommand splits "!links 2" into ("links", ["2"]).
func parseCommand(prefix, content string) (string, []string, bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	parts := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(parts) == 0 {
		return "", nil, false
	}

	return strings.ToLower(parts[0]), parts[1:], true
}

func (hm *HandlerManager) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	command, args, ok := parseCommand(hm.config.CommandPrefix, m.Content)
	if !ok {
		return
	}

	if handler, exists := hm.commands[command]; exists {
		handler(s, m, args)
	}
}

func (hm *HandlerManager) send(s *discordgo.Session, channelID, text string) {
	for _, chunk := range splitMessage(text, maxMessageLength) {
		if _, err := s.ChannelMessageSend(channelID, chunk); err != nil {
			hm.logger.Error("Failed to send message", "channel", channelID, "error", err)
			return
		}
	}
}

// loadReport reads the sheet for a single command.
func (hm *HandlerManager) loadReport(s *discordgo.Session, m *discordgo.MessageCreate) (analysis.Report, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	report, err := hm.reporter.Report(ctx)
	if err != nil {
		hm.logger.Error("Error fetching sheets", "error", err)
		hm.send(s, m.ChannelID, "Failed to fetch data from Google Sheets: "+err.Error())
		return analysis.Report{}, false
	}
	return report, true
}

func (hm *HandlerManager) handleHelp(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	p := hm.config.CommandPrefix
	helpMessage := "**Link Tracker Commands:**\n```\n" +
		p + "help         - Show this help message\n" +
		p + "links [page] - List one page of links\n" +
		p + "dupes        - Show duplicate links and where they appear\n" +
		p + "refresh      - Re-read the sheet and show totals\n" +
		"```"

	hm.send(s, m.ChannelID, helpMessage)
}

func (hm *HandlerManager) handleLinks(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	page := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			hm.send(s, m.ChannelID, "Usage: `"+hm.config.CommandPrefix+"links [page]`")
			return
		}
		page = n
	}

	report, ok := hm.loadReport(s, m)
	if !ok {
		return
	}

	hm.send(s, m.ChannelID, formatPage(report, page))
}

func (hm *HandlerManager) handleDupes(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	report, ok := hm.loadReport(s, m)
	if !ok {
		return
	}

	hm.send(s, m.ChannelID, formatDuplicates(report))
}

func (hm *HandlerManager) handleRefresh(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	report, ok := hm.loadReport(s, m)
	if !ok {
		return
	}

	hm.send(s, m.ChannelID, fmt.Sprintf("Data reloaded successfully! %s", formatSummary(report, 1)))
}
