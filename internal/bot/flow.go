package bot

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bloomlavka/bloom_api/internal/service"
)

// AddFlowerFlow runs the multi-turn add-flower wizard. It owns no transport:
// replies are returned as strings so the dialogue can be tested without a
// Telegram connection.
type AddFlowerFlow struct {
	sessions *SessionStore
	catalog  *service.CatalogService
}

// NewAddFlowerFlow constructs an AddFlowerFlow.
func NewAddFlowerFlow(sessions *SessionStore, catalog *service.CatalogService) *AddFlowerFlow {
	return &AddFlowerFlow{sessions: sessions, catalog: catalog}
}

// Start opens a fresh session for the chat, discarding any in-flight one, and
// returns the first prompt.
func (w *AddFlowerFlow) Start(chatID int64) string {
	w.sessions.Put(chatID, &Session{})
	return fmt.Sprintf("Adding a new flower. Step 1/%d\n\n%s", len(addFlowerFields), addFlowerFields[0].Prompt)
}

// Cancel discards the chat's session. The bool reports whether there was one
// to cancel; without a session the command is a no-op.
func (w *AddFlowerFlow) Cancel(chatID int64) (string, bool) {
	if !w.sessions.Delete(chatID) {
		return "", false
	}
	return "❌ Adding cancelled.", true
}

// HandleText feeds a plain-text message into the chat's session. The bool
// reports whether a session consumed the message; callers must not pass
// commands here.
func (w *AddFlowerFlow) HandleText(chatID int64, text string) (string, bool) {
	sess, ok := w.sessions.Get(chatID)
	if !ok {
		return "", false
	}

	field := addFlowerFields[sess.Step]
	value, ok := parseInput(field.Kind, text)
	if !ok {
		// Same step again; the session does not advance.
		return invalidInputReply(field.Kind), true
	}
	field.assign(&sess.Flower, value)
	sess.Step++

	if sess.Step < len(addFlowerFields) {
		return fmt.Sprintf("Step %d/%d\n\n%s", sess.Step+1, len(addFlowerFields), addFlowerFields[sess.Step].Prompt), true
	}

	flower, err := w.catalog.AddFlower(sess.Flower)
	w.sessions.Delete(chatID)
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to save new flower")
		return "❌ Could not save the flower, the catalog file is unavailable. Nothing was added.", true
	}

	var b strings.Builder
	b.WriteString("✅ Flower added!\n\n")
	fmt.Fprintf(&b, "🌸 *%s* (%s)\n", flower.Name, flower.Latin)
	fmt.Fprintf(&b, "💵 Supplier price: %d ₽\n", flower.SupplierPrice)
	fmt.Fprintf(&b, "📦 Pack: %d pcs\n", flower.PackSize)
	fmt.Fprintf(&b, "📈 Markup: %g%%\n", flower.Markup*100)
	fmt.Fprintf(&b, "🆔 ID: %d\n\n", flower.ID)
	b.WriteString("The flower is live on the site!")
	return b.String(), true
}

func invalidInputReply(kind FieldKind) string {
	switch kind {
	case FieldInt:
		return "❌ Enter a valid positive whole number. Try again:"
	case FieldPercent:
		return "❌ Enter a valid number. Try again:"
	default:
		return "❌ The value cannot be empty. Try again:"
	}
}
