package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/youngsunson/spellv3/internal/analysis"
	"github.com/youngsunson/spellv3/internal/config"
	"github.com/youngsunson/spellv3/internal/document"
	"github.com/youngsunson/spellv3/internal/llm"
	"github.com/youngsunson/spellv3/internal/prompts"
	"github.com/youngsunson/spellv3/internal/review"
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard state
	setupStep        int
	selectedProvider int
	apiKeyInput      textinput.Model

	// Settings
	settingsMode  string
	selectedModel int

	// Document state
	buffer   *document.Buffer
	docError error

	// Analysis options for the next run
	opts prompts.Options

	// Analysis run
	analyzing     bool
	spin          spinner.Model
	analysisError error

	// Review state
	result     *analysis.Result
	items      []suggestion
	cursor     int
	applied    int
	applyError error

	// Input
	input textinput.Model

	// Provider
	provider      llm.Provider
	service       *review.Service
	providerReady bool
	providerError error

	logger *zap.Logger
}

// suggestion is one row in the review list, flattened out of the
// per-category collections so the cursor can walk them uniformly.
type suggestion struct {
	cat      analysis.Category
	current  string
	proposed string
	detail   string
	position int
}

func flatten(res *analysis.Result) []suggestion {
	if res == nil {
		return nil
	}
	var items []suggestion
	for _, e := range res.SpellingErrors {
		proposed := ""
		if len(e.Suggestions) > 0 {
			proposed = e.Suggestions[0]
		}
		items = append(items, suggestion{
			cat:      analysis.CategorySpelling,
			current:  e.Wrong,
			proposed: proposed,
			position: e.Position,
		})
	}
	for _, p := range res.PunctuationIssues {
		items = append(items, suggestion{
			cat:      analysis.CategoryPunctuation,
			current:  p.CurrentSentence,
			proposed: p.CorrectedSentence,
			detail:   p.Issue,
			position: p.Position,
		})
	}
	for _, t := range res.ToneSuggestions {
		items = append(items, suggestion{
			cat:      analysis.CategoryTone,
			current:  t.Current,
			proposed: t.Suggestion,
			detail:   t.Reason,
			position: t.Position,
		})
	}
	for _, s := range res.StyleSuggestions {
		items = append(items, suggestion{
			cat:      analysis.CategoryStyle,
			current:  s.Current,
			proposed: s.Suggestion,
			detail:   s.Type,
			position: s.Position,
		})
	}
	for _, s := range res.Mixing.Corrections {
		items = append(items, suggestion{
			cat:      analysis.CategoryMixing,
			current:  s.Current,
			proposed: s.Suggestion,
			detail:   s.Type,
			position: s.Position,
		})
	}
	for _, e := range res.EuphonyImprovements {
		proposed := ""
		if len(e.Suggestions) > 0 {
			proposed = e.Suggestions[0]
		}
		items = append(items, suggestion{
			cat:      analysis.CategoryEuphony,
			current:  e.Current,
			proposed: proposed,
			detail:   e.Reason,
			position: e.Position,
		})
	}
	return items
}

func newState(logger *zap.Logger) *state {
	input := textinput.New()
	input.Placeholder = "Type a file path, or /help for commands..."
	input.CharLimit = 500
	input.Width = 60

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(colorSecondary)

	if logger == nil {
		logger = zap.NewNop()
	}

	return &state{
		input:       input,
		apiKeyInput: apiKey,
		spin:        spin,
		logger:      logger,
	}
}
