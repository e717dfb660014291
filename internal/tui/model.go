// Package tui hosts the chipbook screens. The Poker AI screen is the
// card-entry workflow; the home screen exists so entry state can be seen
// surviving navigation, since the session scope outlives both.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/chipbook/chipbook/internal/analysis"
	"github.com/chipbook/chipbook/internal/deck"
	"github.com/chipbook/chipbook/internal/entry"
	"github.com/chipbook/chipbook/internal/session"
)

// Analyzer posts a hand to the analysis service
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Response, error)
}

type screen int

const (
	screenHome screen = iota
	screenPoker
)

// analysisMsg delivers the result of an analysis request
type analysisMsg struct {
	resp *analysis.Response
	err  error
}

// revealExpiredMsg redraws after a reveal lapses on its own
type revealExpiredMsg struct{}

// Model is the Bubble Tea model for the chipbook client
type Model struct {
	scope    *session.Scope
	analyzer Analyzer
	logger   *log.Logger

	celebrationsEnabled bool
	notify              func(strength string)

	screen     screen
	cursor     int // highlighted slot, in scan order
	pickCursor int // highlighted choice inside the picker
	picker     *entry.Picker

	analyzing bool
	spinner   spinner.Model
	result    *analysis.Response
	reasoning viewport.Model
	errMsg    string

	confetti celebration

	width    int
	height   int
	quitting bool
}

// New creates the model over an existing session scope
func New(scope *session.Scope, analyzer Analyzer, celebrations bool, logger *log.Logger) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SuccessStyle

	vp := viewport.New(60, 4)

	return &Model{
		scope:               scope,
		analyzer:            analyzer,
		logger:              logger.WithPrefix("tui"),
		celebrationsEnabled: celebrations,
		notify:              notifySuccess,
		screen:              screenPoker,
		picker:              entry.NewPicker(scope.Store()),
		spinner:             sp,
		reasoning:           vp,
	}
}

// Init starts the reveal-expiry watcher
func (m *Model) Init() tea.Cmd {
	return m.watchReveal()
}

// watchReveal bridges the privacy keeper's expiry channel into the event
// loop, one message per reveal lapse
func (m *Model) watchReveal() tea.Cmd {
	ch := m.scope.Privacy().Expired()
	return func() tea.Msg {
		<-ch
		return revealExpiredMsg{}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := m.width - 6
		if w < 20 {
			w = 20
		}
		m.reasoning.Width = w

	case revealExpiredMsg:
		// State already flipped in the keeper; re-arm the watcher so the
		// next reveal is caught too.
		cmds = append(cmds, m.watchReveal())

	case analysisMsg:
		cmds = append(cmds, m.finishAnalysis(msg)...)

	case celebrationTickMsg:
		if cmd := m.confetti.tick(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case spinner.TickMsg:
		if m.analyzing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.quitting {
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		}
	}

	var cmd tea.Cmd
	m.reasoning, cmd = m.reasoning.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return nil
	}

	if m.screen == screenHome {
		return m.handleHomeKey(msg)
	}
	if m.picker.Stage() != entry.Closed {
		return m.handlePickerKey(msg)
	}
	return m.handlePokerKey(msg)
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		m.quitting = true
	case "enter", "p", "tab":
		m.screen = screenPoker
	}
	return nil
}

func (m *Model) handlePokerKey(msg tea.KeyMsg) tea.Cmd {
	slots := entry.AllSlots()

	switch msg.String() {
	case "q":
		m.quitting = true

	case "tab":
		m.screen = screenHome

	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}

	case "right", "l":
		if m.cursor < len(slots)-1 {
			m.cursor++
		}

	case "enter", " ":
		slot := slots[m.cursor]
		if slot.Group == entry.Hand && !m.scope.Privacy().Visible() {
			// Tapping a hidden hole card implies a reveal.
			m.scope.Privacy().Reveal()
		}
		m.picker.Tap(slot)
		m.pickCursor = 0

	case "v":
		if m.scope.Privacy().Visible() {
			m.scope.Privacy().Hide()
		} else {
			m.scope.Privacy().Reveal()
		}

	case "c":
		m.scope.SetConsent(!m.scope.Consent())

	case "r":
		m.scope.Reset()
		m.result = nil
		m.errMsg = ""
		m.cursor = 0

	case "x":
		m.errMsg = ""

	case "s":
		return m.submit()
	}
	return nil
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	choices := len(deck.Ranks())
	if m.picker.Stage() == entry.PickingSuit {
		choices = len(deck.Suits())
	}

	switch msg.String() {
	case "esc":
		m.picker.Cancel()
		m.pickCursor = 0

	case "left", "h":
		if m.pickCursor > 0 {
			m.pickCursor--
		}

	case "right", "l":
		if m.pickCursor < choices-1 {
			m.pickCursor++
		}

	case "enter", " ":
		switch m.picker.Stage() {
		case entry.PickingRank:
			m.picker.ChooseRank(deck.Ranks()[m.pickCursor])
		case entry.PickingSuit:
			m.picker.ChooseSuit(deck.Suits()[m.pickCursor])
			m.syncCursor()
		}
		m.pickCursor = 0
	}
	return nil
}

// syncCursor moves the slot highlight to wherever auto-advance landed
func (m *Model) syncCursor() {
	target, ok := m.picker.Target()
	if !ok {
		return
	}
	for i, slot := range entry.AllSlots() {
		if slot == target {
			m.cursor = i
			return
		}
	}
}

// submit fires the analysis request. One request in flight at a time; the
// analyzing flag disables the control rather than queueing.
func (m *Model) submit() tea.Cmd {
	if m.analyzing {
		return nil
	}
	v := m.scope.Validate()
	if !v.Eligible {
		return nil
	}

	req, err := analysis.BuildRequest(m.scope.Store())
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.analyzing = true
	m.errMsg = ""
	m.result = nil

	ctx := m.scope.Context()
	analyzer := m.analyzer
	m.logger.Debug("Submitting hand for analysis")

	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			resp, err := analyzer.Analyze(ctx, req)
			return analysisMsg{resp: resp, err: err}
		},
	)
}

// finishAnalysis records the outcome. Failures are inline and dismissible;
// entry state is untouched either way and resubmission is allowed at once.
func (m *Model) finishAnalysis(msg analysisMsg) []tea.Cmd {
	m.analyzing = false

	if msg.err != nil {
		m.logger.Warn("Analysis request failed", "error", msg.err)
		m.errMsg = msg.err.Error()
		return nil
	}

	m.result = msg.resp
	m.reasoning.SetContent(msg.resp.Reasoning)
	m.reasoning.GotoTop()

	if m.celebrationsEnabled && analysis.Celebratory(msg.resp.HandStrength) {
		m.logger.Debug("Celebrating hand", "strength", msg.resp.HandStrength)
		m.notify(msg.resp.HandStrength)
		return []tea.Cmd{m.confetti.start(len(msg.resp.HandStrength))}
	}
	return nil
}

// View renders the active screen
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen == screenHome {
		return m.renderHome()
	}
	return m.renderPoker()
}

func (m *Model) renderHome() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("chipbook"))
	b.WriteString("\n\n")
	b.WriteString("Your poker ledger, groups and wallet live in the mobile app.\n")
	b.WriteString("This client hosts the Poker AI hand workflow.\n\n")

	filled := len(m.scope.Store().Cards())
	if filled > 0 {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Poker AI: %d card(s) entered, waiting for you", filled)))
		b.WriteString("\n\n")
	}

	b.WriteString(HintStyle.Render("p: poker ai"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("q: quit"))
	return b.String()
}

func (m *Model) renderPoker() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Poker AI"))
	b.WriteString("\n\n")

	b.WriteString("Your hand      ")
	if m.scope.Privacy().Visible() {
		b.WriteString(InfoStyle.Render("(v to hide)"))
	} else {
		b.WriteString(InfoStyle.Render("(hidden, v to reveal)"))
	}
	b.WriteString("\n")
	b.WriteString(m.renderSlotRow(entry.Hand))
	b.WriteString("\n\nCommunity      ")
	b.WriteString(InfoStyle.Render("(flop, turn, river)"))
	b.WriteString("\n")
	b.WriteString(m.renderSlotRow(entry.Community))
	b.WriteString("\n\n")

	if m.picker.Stage() != entry.Closed {
		b.WriteString(m.renderPicker())
		b.WriteString("\n\n")
	}

	consent := "[ ]"
	if m.scope.Consent() {
		consent = SuccessStyle.Render("[x]")
	}
	b.WriteString(fmt.Sprintf("%s I consent to sending this hand for analysis (c)\n\n", consent))

	v := m.scope.Validate()
	for _, hint := range v.Hints {
		b.WriteString(HintStyle.Render("• " + hint))
		b.WriteString("\n")
	}
	if len(v.Hints) > 0 {
		b.WriteString("\n")
	}

	switch {
	case m.analyzing:
		b.WriteString(m.spinner.View())
		b.WriteString(" analyzing...\n")
	case v.Eligible:
		b.WriteString(SuccessStyle.Render("[s] analyze hand"))
		b.WriteString("\n")
	default:
		b.WriteString(InfoStyle.Render("[s] analyze hand (blocked)"))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("analysis failed: " + m.errMsg))
		b.WriteString(InfoStyle.Render("  (x to dismiss)"))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(m.renderResult())
		b.WriteString("\n")
	}

	if m.confetti.active() {
		b.WriteString("\n")
		b.WriteString(m.confetti.render(m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("←/→ move • enter pick • c consent • r reset • tab home • q quit"))
	return b.String()
}

func (m *Model) renderSlotRow(g entry.Group) string {
	var cells []string
	for i, slot := range entry.AllSlots() {
		if slot.Group != g {
			continue
		}
		cell := m.renderSlot(slot)
		style := SlotStyle
		if i == m.cursor && m.picker.Stage() == entry.Closed {
			style = SlotActiveStyle
		}
		if target, ok := m.picker.Target(); ok && target == slot {
			style = SlotActiveStyle
		}
		cells = append(cells, style.Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) renderSlot(slot entry.Slot) string {
	card, ok := m.scope.Store().Get(slot)
	if !ok {
		return MaskedCardStyle.Render(" · ")
	}
	if slot.Group == entry.Hand && !m.scope.Privacy().Visible() {
		return MaskedCardStyle.Render("▒▒▒")
	}
	if card.IsRed() {
		return RedCardStyle.Render(card.String())
	}
	return BlackCardStyle.Render(card.String())
}

func (m *Model) renderPicker() string {
	target, _ := m.picker.Target()

	var b strings.Builder
	switch m.picker.Stage() {
	case entry.PickingRank:
		b.WriteString(fmt.Sprintf("Pick a rank for %s\n", target))
		for i, r := range deck.Ranks() {
			style := PickerChoiceStyle
			if i == m.pickCursor {
				style = PickerCursorStyle
			}
			b.WriteString(style.Render(r.Symbol()))
		}
	case entry.PickingSuit:
		rank, _ := m.picker.PendingRank()
		b.WriteString(fmt.Sprintf("Pick a suit for %s (%s)\n", target, rank.Symbol()))
		for i, s := range deck.Suits() {
			style := PickerChoiceStyle
			if i == m.pickCursor {
				style = PickerCursorStyle
			}
			b.WriteString(style.Render(s.String() + " " + s.Name()))
		}
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("←/→ choose • enter confirm • esc cancel"))
	return PickerStyle.Render(b.String())
}

func (m *Model) renderResult() string {
	var b strings.Builder
	b.WriteString(SuccessStyle.Render("Action: " + m.result.Action))
	b.WriteString("\n")
	b.WriteString("Potential: " + m.result.Potential)
	b.WriteString("\n")
	b.WriteString("Hand strength: " + m.result.HandStrength)
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(m.reasoning.View()))
	return ResultStyle.Render(b.String())
}
