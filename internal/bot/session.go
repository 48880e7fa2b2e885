package bot

import (
	"strconv"
	"strings"
	"sync"

	"github.com/bloomlavka/bloom_api/internal/models"
)

// FieldKind tags how a wizard field validates and transforms operator input.
type FieldKind int

const (
	// FieldText accepts any non-empty trimmed text.
	FieldText FieldKind = iota
	// FieldInt requires a positive integer.
	FieldInt
	// FieldPercent requires a non-negative number, stored divided by 100.
	FieldPercent
	// FieldURL stores text verbatim; the skip keyword maps to the default
	// placeholder image.
	FieldURL
)

// skipKeyword lets the operator skip the image step, case-insensitively.
const skipKeyword = "skip"

// fieldValue is the parsed result of one wizard input.
type fieldValue struct {
	Text  string
	Int   int
	Float float64
}

// fieldSpec declares one wizard step: its kind tag, the prompt shown to the
// operator, and where the parsed value lands on the flower being assembled.
type fieldSpec struct {
	Name   string
	Kind   FieldKind
	Prompt string
	assign func(f *models.Flower, v fieldValue)
}

// addFlowerFields is the fixed step order of the add-flower wizard.
var addFlowerFields = []fieldSpec{
	{
		Name:   "name",
		Kind:   FieldText,
		Prompt: "🌸 Flower name (e.g. White Rose):",
		assign: func(f *models.Flower, v fieldValue) { f.Name = v.Text },
	},
	{
		Name:   "latin",
		Kind:   FieldText,
		Prompt: "🔬 Latin name (e.g. Rosa White):",
		assign: func(f *models.Flower, v fieldValue) { f.Latin = v.Text },
	},
	{
		Name:   "supplierPrice",
		Kind:   FieldInt,
		Prompt: "💵 Supplier price per piece in rubles (e.g. 350):",
		assign: func(f *models.Flower, v fieldValue) { f.SupplierPrice = v.Int },
	},
	{
		Name:   "packSize",
		Kind:   FieldInt,
		Prompt: "📦 Pack size in pieces (e.g. 25):",
		assign: func(f *models.Flower, v fieldValue) { f.PackSize = v.Int },
	},
	{
		Name:   "markup",
		Kind:   FieldPercent,
		Prompt: "📈 Markup in percent (e.g. 30 for 30%):",
		assign: func(f *models.Flower, v fieldValue) { f.Markup = v.Float },
	},
	{
		Name:   "image",
		Kind:   FieldURL,
		Prompt: "🖼 Image URL (or type \"skip\"):",
		assign: func(f *models.Flower, v fieldValue) { f.Image = v.Text },
	},
	{
		Name:   "description",
		Kind:   FieldText,
		Prompt: "📝 Flower description:",
		assign: func(f *models.Flower, v fieldValue) { f.Description = v.Text },
	},
}

// parseInput validates and transforms raw operator text for a field kind.
// The bool reports whether the input was accepted.
func parseInput(kind FieldKind, text string) (fieldValue, bool) {
	text = strings.TrimSpace(text)
	switch kind {
	case FieldInt:
		n, err := strconv.Atoi(text)
		if err != nil || n <= 0 {
			return fieldValue{}, false
		}
		return fieldValue{Int: n}, true
	case FieldPercent:
		n, err := strconv.ParseFloat(text, 64)
		if err != nil || n < 0 {
			return fieldValue{}, false
		}
		return fieldValue{Float: n / 100}, true
	case FieldURL:
		if strings.EqualFold(text, skipKeyword) {
			return fieldValue{Text: models.DefaultImageURL}, true
		}
		return fieldValue{Text: text}, true
	default:
		if text == "" {
			return fieldValue{}, false
		}
		return fieldValue{Text: text}, true
	}
}

// Session is one operator's in-progress add-flower dialogue. Sessions live in
// process memory only; a restart drops them.
type Session struct {
	Step   int
	Flower models.Flower
}

// SessionStore maps chat ids to in-flight sessions. One session per chat.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewSessionStore constructs an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Get returns the session for a chat, if any.
func (s *SessionStore) Get(chatID int64) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// Put stores or replaces the session for a chat.
func (s *SessionStore) Put(chatID int64, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = sess
}

// Delete removes the session for a chat and reports whether one existed.
func (s *SessionStore) Delete(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[chatID]
	delete(s.sessions, chatID)
	return ok
}
