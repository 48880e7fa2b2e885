// Package bot implements the Telegram side of the shop: order notifications
// to the merchant and the operator's catalog management commands.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/bloomlavka/bloom_api/internal/service"
	"github.com/bloomlavka/bloom_api/internal/utils"
)

// Operator commands.
const (
	addFlowerCmd    = "addflower"
	cancelFlowerCmd = "cancelflower"
	listFlowersCmd  = "listflowers"
	deleteFlowerCmd = "deleteflower"
)

// Bot wraps the Telegram API client, routes operator commands and implements
// service.Notifier for order notifications.
type Bot struct {
	api         *tgbotapi.BotAPI
	adminChatID int64
	catalog     *service.CatalogService
	flow        *AddFlowerFlow
}

// New connects to the Telegram API and constructs the Bot.
func New(token string, adminChatID int64, catalog *service.CatalogService, flow *AddFlowerFlow) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	log.Info().Str("username", api.Self.UserName).Msg("Telegram bot authorized")
	return &Bot{
		api:         api,
		adminChatID: adminChatID,
		catalog:     catalog,
		flow:        flow,
	}, nil
}

// Start runs the long-polling update loop until the context is cancelled.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	log.Info().Msg("Starting Telegram update loop")
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			log.Info().Msg("Telegram update loop stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(update.Message)
		}
	}
}

// Notify sends an order notification to the operator chat.
func (b *Bot) Notify(ctx context.Context, text string) error {
	msg := tgbotapi.NewMessage(b.adminChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	// Commands are never wizard input, even mid-session.
	if msg.IsCommand() {
		b.handleCommand(chatID, msg.Command(), msg.CommandArguments())
		return
	}
	if msg.Text == "" {
		return
	}
	if reply, handled := b.flow.HandleText(chatID, msg.Text); handled {
		b.send(chatID, reply)
	}
}

func (b *Bot) handleCommand(chatID int64, command, args string) {
	switch command {
	case addFlowerCmd:
		if chatID != b.adminChatID {
			b.send(chatID, "⛔ Access denied.")
			return
		}
		b.send(chatID, b.flow.Start(chatID))

	case cancelFlowerCmd:
		// No session, no reply: cancelling nothing is a no-op.
		if reply, ok := b.flow.Cancel(chatID); ok {
			b.send(chatID, reply)
		}

	case listFlowersCmd:
		if chatID != b.adminChatID {
			return
		}
		b.listFlowers(chatID)

	case deleteFlowerCmd:
		if chatID != b.adminChatID {
			return
		}
		b.deleteFlower(chatID, args)
	}
}

func (b *Bot) listFlowers(chatID int64) {
	flowers, err := b.catalog.ListFlowers()
	if err != nil {
		log.Error().Err(err).Msg("Failed to read catalog for listing")
		b.send(chatID, "❌ Could not read the catalog.")
		return
	}
	var lines []string
	for _, f := range flowers {
		lines = append(lines, fmt.Sprintf("• [%d] %s", f.ID, f.Name))
	}
	b.send(chatID, "📋 Flower list:\n\n"+strings.Join(lines, "\n"))
}

func (b *Bot) deleteFlower(chatID int64, args string) {
	id, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		b.send(chatID, "Usage: /deleteflower <id>")
		return
	}
	deleted, err := b.catalog.DeleteFlower(id)
	if errors.Is(err, utils.ErrFlowerNotFound) {
		b.send(chatID, fmt.Sprintf("❌ Flower with ID %d not found.", id))
		return
	}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to delete flower")
		b.send(chatID, "❌ Could not update the catalog.")
		return
	}
	b.send(chatID, fmt.Sprintf("✅ Deleted: *%s* (ID: %d)", deleted.Name, id))
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send Telegram message")
	}
}
