package prompt

import (
	"log/slog"
	"strings"
)

// ContextSource retrieves knowledge text relevant to a query, packed to fit
// a token budget.
type ContextSource interface {
	Context(query string, tokenBudget int) (string, error)
}

// Builder renders chat prompts.
type Builder struct {
	source ContextSource
	cfg    *Config
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates a prompt builder. A nil source disables knowledge
// retrieval; prompts then carry only the system text and the conversation.
func NewBuilder(source ContextSource, cfg *Config, opts ...Option) (*Builder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Builder{
		source: source,
		cfg:    cfg,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			return nil, optErr
		}
	}

	return b, nil
}

// BuildPrompt renders the full prompt for userInput: the system block with
// retrieved knowledge appended, the session's trailing turns, the pending
// user turn and the assistant cue. A nil session renders with no history.
func (b *Builder) BuildPrompt(session *Session, userInput string) (string, error) {
	var knowledge string
	if b.source != nil {
		retrieved, err := b.source.Context(userInput, b.cfg.ContextBudget)
		if err != nil {
			return "", err
		}
		knowledge = retrieved
	}

	system := b.cfg.SystemPrompt
	if knowledge != "" {
		system += "\n\nRelevant knowledge:\n" + knowledge
	}

	messages := []string{"<|system|>\n" + system + "<|end|>"}

	var turns []Turn
	if session != nil {
		turns = session.Turns
		if len(turns) > b.cfg.HistoryWindow {
			turns = turns[len(turns)-b.cfg.HistoryWindow:]
		}
	}
	for _, turn := range turns {
		messages = append(messages, "<|"+turn.Role+"|>\n"+turn.Content+"<|end|>")
	}

	messages = append(messages,
		"<|user|>\n"+userInput+"<|end|>",
		"<|assistant|>")

	b.logger.Debug("prompt assembled",
		"history_turns", len(turns),
		"knowledge", knowledge != "")

	return strings.Join(messages, "\n"), nil
}
