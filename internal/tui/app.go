// Package tui is the interactive review surface: load a document,
// run an analysis, walk the suggestions, accept or dismiss each one.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/youngsunson/spellv3/internal/analysis"
	"github.com/youngsunson/spellv3/internal/config"
	"github.com/youngsunson/spellv3/internal/document"
	"github.com/youngsunson/spellv3/internal/llm"
	"github.com/youngsunson/spellv3/internal/review"
)

type view int

const (
	viewWelcome view = iota
	viewSetup
	viewDocument
	viewAnalyzing
	viewReview
	viewError
	viewSettings
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(logger *zap.Logger) *App {
	s := newState(logger)

	// Check if setup needed
	cfg, _ := config.Load()
	if cfg == nil {
		s.needsSetup = true
		s.config = config.DefaultConfig()
	} else {
		s.config = cfg
	}
	s.opts.Tone = s.config.Analysis.Tone
	s.opts.Style = s.config.Analysis.Style
	s.opts.ContentFeedback = s.config.Analysis.ContentFeedback

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	// Test provider connection
	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.testProvider(),
	)
}

func (a *App) testProvider() tea.Cmd {
	return func() tea.Msg {
		provider, err := llm.NewProvider(a.state.config)
		if err != nil {
			return providerErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{provider}
	}
}

func (a *App) loadDocument(path string) tea.Cmd {
	return func() tea.Msg {
		buf, err := document.Load(path)
		if err != nil {
			return docErrorMsg{err}
		}
		return documentLoadedMsg{buf}
	}
}

func (a *App) startAnalysis() tea.Cmd {
	if a.state.buffer == nil || a.state.service == nil {
		return nil
	}
	a.state.analyzing = true
	a.state.analysisError = nil
	a.view = viewAnalyzing

	svc := a.state.service
	text := a.state.buffer.Content()
	opts := a.state.opts

	analyze := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		res, err := svc.Analyze(ctx, text, opts)
		if err != nil {
			return analysisErrorMsg{err}
		}
		return analysisDoneMsg{res}
	}
	return tea.Batch(a.state.spin.Tick, analyze)
}

func (a *App) acceptCurrent() tea.Cmd {
	if a.state.cursor >= len(a.state.items) {
		return nil
	}
	item := a.state.items[a.state.cursor]
	if item.proposed == "" || item.proposed == item.current {
		// Nothing to substitute; treat like a dismiss.
		a.dismissCurrent()
		return nil
	}

	svc := a.state.service
	res := a.state.result
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		updated, err := svc.AcceptSuggestion(ctx, res, item.current, item.proposed, item.position)
		if err != nil {
			return applyErrorMsg{err}
		}
		return appliedMsg{updated}
	}
}

func (a *App) dismissCurrent() {
	if a.state.cursor >= len(a.state.items) {
		return
	}
	item := a.state.items[a.state.cursor]
	a.state.result = a.state.service.DismissSuggestion(a.state.result, item.cat, item.current)
	a.refreshItems()
}

func (a *App) refreshItems() {
	a.state.items = flatten(a.state.result)
	if a.state.cursor >= len(a.state.items) {
		a.state.cursor = len(a.state.items) - 1
	}
	if a.state.cursor < 0 {
		a.state.cursor = 0
	}
}

func (a *App) resetDocument() {
	a.state.buffer = nil
	a.state.result = nil
	a.state.items = nil
	a.state.cursor = 0
	a.state.applied = 0
	a.state.docError = nil
	a.state.analysisError = nil
	a.state.applyError = nil
	a.state.input.Reset()
	a.state.input.Focus()
	a.view = viewWelcome
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case spinner.TickMsg:
		if a.state.analyzing {
			var cmd tea.Cmd
			a.state.spin, cmd = a.state.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.view = viewWelcome
		return a, a.testProvider()

	case setupErrorMsg:
		a.state.providerError = msg.error
		a.view = viewError
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		a.state.providerError = nil
		a.state.provider = msg.provider
		a.state.input.Focus()
		return a, textinput.Blink

	case providerErrorMsg:
		a.state.providerError = msg.error
		a.view = viewError
		return a, nil

	case documentLoadedMsg:
		a.state.buffer = msg.buffer
		a.state.docError = nil
		a.state.service = review.NewService(a.state.provider, a.state.config.Model, msg.buffer, a.state.logger)
		a.state.input.Reset()
		a.view = viewDocument
		return a, nil

	case docErrorMsg:
		a.state.docError = msg.error
		a.view = viewError
		return a, nil

	case analysisDoneMsg:
		a.state.analyzing = false
		a.state.result = msg.result
		a.state.cursor = 0
		a.refreshItems()
		a.view = viewReview
		return a, nil

	case analysisErrorMsg:
		a.state.analyzing = false
		a.state.analysisError = msg.error
		a.view = viewError
		return a, nil

	case appliedMsg:
		a.state.result = msg.result
		a.state.applied++
		a.state.applyError = nil
		a.refreshItems()
		return a, nil

	case applyErrorMsg:
		a.state.applyError = msg.error
		return a, nil
	}

	// Update text inputs based on view
	if a.view == viewSetup && a.state.setupStep == 1 {
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	} else if a.view == viewSettings && a.state.settingsMode == "apikey" {
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	} else if a.view == viewWelcome {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		switch a.view {
		case viewSettings, viewHelp:
			a.view = viewWelcome
			return nil
		case viewReview:
			a.view = viewDocument
			return nil
		case viewSetup:
			if a.state.setupStep == 1 {
				a.state.setupStep = 0
				a.state.apiKeyInput.Reset()
				return nil
			}
		}
		a.quitting = true
		return tea.Quit
	}

	// View-specific handling
	switch a.view {
	case viewWelcome:
		return a.handleWelcomeKey(msg)
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewDocument:
		return a.handleDocumentKey(msg)
	case viewReview:
		return a.handleReviewKey(msg)
	case viewError:
		return a.handleErrorKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	}

	return nil
}

func (a *App) handleWelcomeKey(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, keys.Enter) {
		return nil
	}

	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	if strings.HasPrefix(input, "/") {
		cmd := strings.ToLower(input)
		switch {
		case cmd == "/help" || cmd == "/h":
			a.view = viewHelp
			a.state.input.Reset()
			return nil
		case cmd == "/settings" || cmd == "/s":
			a.view = viewSettings
			a.state.settingsMode = ""
			a.state.input.Reset()
			return nil
		case cmd == "/quit" || cmd == "/q":
			a.quitting = true
			return tea.Quit
		}
		a.state.input.Reset()
		return nil
	}

	if !a.state.providerReady {
		return nil
	}
	return a.loadDocument(input)
}

func (a *App) handleDocumentKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return a.startAnalysis()
	case "t":
		if a.state.opts.Tone == "" {
			a.state.opts.Tone = "formal"
		} else if a.state.opts.Tone == "formal" {
			a.state.opts.Tone = "informal"
		} else {
			a.state.opts.Tone = ""
		}
	case "s":
		if a.state.opts.Style == "" {
			a.state.opts.Style = "cholito"
		} else if a.state.opts.Style == "cholito" {
			a.state.opts.Style = "sadhu"
		} else {
			a.state.opts.Style = ""
		}
	case "c":
		a.state.opts.ContentFeedback = !a.state.opts.ContentFeedback
	case "n":
		a.resetDocument()
	}
	return nil
}

func (a *App) handleReviewKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if a.state.cursor > 0 {
			a.state.cursor--
		}
	case key.Matches(msg, keys.Down):
		if a.state.cursor < len(a.state.items)-1 {
			a.state.cursor++
		}
	case key.Matches(msg, keys.Accept):
		return a.acceptCurrent()
	case key.Matches(msg, keys.Dismiss):
		a.dismissCurrent()
	case key.Matches(msg, keys.Save):
		if a.state.buffer != nil && a.state.buffer.Dirty() {
			if err := a.state.buffer.Save(); err != nil {
				a.state.applyError = err
			}
		}
	case key.Matches(msg, keys.Retry):
		return a.startAnalysis()
	case key.Matches(msg, keys.New):
		a.resetDocument()
	}
	return nil
}

func (a *App) handleErrorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		if a.state.analysisError != nil && a.state.buffer != nil {
			return a.startAnalysis()
		}
		if a.state.providerError != nil {
			a.view = viewWelcome
			return a.testProvider()
		}
		a.resetDocument()
	case "s":
		a.view = viewSettings
		a.state.settingsMode = ""
	case "n":
		a.resetDocument()
	}
	return nil
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.setupStep {
	case 0: // Provider selection
		switch msg.String() {
		case "up", "k":
			if a.state.selectedProvider > 0 {
				a.state.selectedProvider--
			}
		case "down", "j":
			if a.state.selectedProvider < len(config.Providers)-1 {
				a.state.selectedProvider++
			}
		case "enter":
			provider := config.Providers[a.state.selectedProvider]
			a.state.config.Provider = provider.ID
			a.state.config.Model = provider.DefaultModel

			if provider.NeedsAPIKey {
				a.state.setupStep = 1
				a.state.apiKeyInput.Focus()
				return textinput.Blink
			}
			return a.finishSetup()
		}

	case 1: // API key entry
		if msg.String() == "enter" {
			a.state.config.APIKey = a.state.apiKeyInput.Value()
			return a.finishSetup()
		}
	}

	return nil
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.settingsMode {
	case "provider":
		switch msg.String() {
		case "up", "k":
			if a.state.selectedProvider > 0 {
				a.state.selectedProvider--
			}
		case "down", "j":
			if a.state.selectedProvider < len(config.Providers)-1 {
				a.state.selectedProvider++
			}
		case "enter":
			p := config.Providers[a.state.selectedProvider]
			a.state.config.Provider = p.ID
			a.state.config.Model = p.DefaultModel
			a.state.settingsMode = ""
			return a.saveAndReconnect()
		}

	case "model":
		p := config.GetProvider(a.state.config.Provider)
		if p == nil {
			a.state.settingsMode = ""
			return nil
		}
		switch msg.String() {
		case "up", "k":
			if a.state.selectedModel > 0 {
				a.state.selectedModel--
			}
		case "down", "j":
			if a.state.selectedModel < len(p.Models)-1 {
				a.state.selectedModel++
			}
		case "enter":
			a.state.config.Model = p.Models[a.state.selectedModel]
			a.state.settingsMode = ""
			return a.saveAndReconnect()
		}

	case "apikey":
		if msg.String() == "enter" {
			a.state.config.APIKey = a.state.apiKeyInput.Value()
			a.state.apiKeyInput.Reset()
			a.state.settingsMode = ""
			return a.saveAndReconnect()
		}

	default:
		switch msg.String() {
		case "p":
			a.state.settingsMode = "provider"
		case "m":
			a.state.settingsMode = "model"
			a.state.selectedModel = 0
		case "k":
			a.state.settingsMode = "apikey"
			a.state.apiKeyInput.Focus()
			return textinput.Blink
		}
	}
	return nil
}

func (a *App) saveAndReconnect() tea.Cmd {
	cfg := a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

func (a *App) finishSetup() tea.Cmd {
	return func() tea.Msg {
		if err := a.state.config.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{ provider llm.Provider }
type providerErrorMsg struct{ error }
type documentLoadedMsg struct{ buffer *document.Buffer }
type docErrorMsg struct{ error }
type analysisDoneMsg struct{ result *analysis.Result }
type analysisErrorMsg struct{ error }
type appliedMsg struct{ result *analysis.Result }
type applyErrorMsg struct{ error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewSetup:
		return a.renderSetup()
	case viewDocument:
		return a.renderDocument()
	case viewAnalyzing:
		return a.renderAnalyzing()
	case viewReview:
		return a.renderReview()
	case viewError:
		return a.renderError()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}
