package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bloomlavka/bloom_api/internal/models"
	"github.com/bloomlavka/bloom_api/internal/utils"
)

// Notifier delivers a formatted notification to the merchant. The Telegram
// bot is the production implementation.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// OrderService validates incoming orders and relays them to the merchant.
// Orders are not persisted: a failed dispatch loses the order and the caller
// only learns about it from the error.
type OrderService struct {
	notifier Notifier
}

// NewOrderService constructs an OrderService.
func NewOrderService(notifier Notifier) *OrderService {
	return &OrderService{notifier: notifier}
}

// Submit validates the order and dispatches a notification. Validation
// failures return utils.ErrValidation; dispatch failures return
// utils.ErrDispatchFailed.
func (s *OrderService) Submit(ctx context.Context, req *models.OrderRequest) error {
	if err := validateOrder(req); err != nil {
		return err
	}

	if err := s.notifier.Notify(ctx, formatOrderMessage(req, time.Now())); err != nil {
		log.Error().Err(err).Str("flower", req.Flower.Name).Msg("Order notification failed")
		return fmt.Errorf("%w: %v", utils.ErrDispatchFailed, err)
	}

	log.Info().
		Str("flower", req.Flower.Name).
		Int("quantity", req.Quantity).
		Int("totalPrice", req.TotalPrice).
		Msg("Order dispatched")
	return nil
}

func validateOrder(req *models.OrderRequest) error {
	switch {
	case strings.TrimSpace(req.Flower.Name) == "":
		return fmt.Errorf("%w: flower is required", utils.ErrValidation)
	case req.Quantity <= 0:
		return fmt.Errorf("%w: quantity must be positive", utils.ErrValidation)
	case req.TotalPrice <= 0:
		return fmt.Errorf("%w: totalPrice must be positive", utils.ErrValidation)
	case strings.TrimSpace(req.Phone) == "" && req.TgUser == nil:
		return fmt.Errorf("%w: a phone number or Telegram user is required", utils.ErrValidation)
	}
	return nil
}

// formatOrderMessage renders the merchant notification in Telegram Markdown.
func formatOrderMessage(req *models.OrderRequest, now time.Time) string {
	var b strings.Builder
	b.WriteString("🌸 *NEW ORDER* 🌸\n")
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "🌷 *Flower:* %s\n", req.Flower.Name)
	fmt.Fprintf(&b, "📦 *Quantity:* %d pcs\n", req.Quantity)
	fmt.Fprintf(&b, "💰 *Total:* %d ₽\n", req.TotalPrice)
	fmt.Fprintf(&b, "%s\n", formatContact(req))
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "⏱ *Time:* %s", now.Format("02.01.2006 15:04"))
	return b.String()
}

// formatContact picks the contact line once, based on which method the
// request carries. Phone wins when both are present.
func formatContact(req *models.OrderRequest) string {
	if strings.TrimSpace(req.Phone) != "" {
		return fmt.Sprintf("📞 *Phone:* %s", req.Phone)
	}
	u := req.TgUser
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if u.Username != "" {
		if name == "" {
			return fmt.Sprintf("💬 *Telegram:* @%s", u.Username)
		}
		return fmt.Sprintf("💬 *Telegram:* @%s (%s)", u.Username, name)
	}
	if name == "" {
		name = fmt.Sprintf("id %d", u.ID)
	}
	return fmt.Sprintf("💬 *Telegram:* %s", name)
}
