// Package tui renders a Hangman round in the terminal with Bubble Tea. It
// reads everything through a Driver, so the same model plays a local session
// or a remote one.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/session"
)

// NoticeTimeout is how long the "Hint not available" notice stays up.
const NoticeTimeout = 2 * time.Second

// HintUnavailableNotice is shown when a hint request is refused.
const HintUnavailableNotice = "Hint not available"

// Rows of the letter grid.
var gridRows = []string{"abcdefg", "hijklmn", "opqrstu", "vwxyz"}

// Driver plays one player's rounds. session.Local and client.Client both
// implement it.
type Driver interface {
	Current(ctx context.Context) (session.Update, error)
	Guess(ctx context.Context, letter rune) (session.Update, error)
	Hint(ctx context.Context) (session.Update, error)
	NewGame(ctx context.Context) (session.Update, error)
}

// request is one queued driver call
type request func(ctx context.Context, d Driver) (session.Update, error)

// updateMsg carries a driver reply back into the model
type updateMsg struct {
	update session.Update
	err    error
}

// clearNoticeMsg expires the notice it was scheduled for
type clearNoticeMsg struct {
	seq int
}

// Model is the Bubble Tea model for a Hangman game
type Model struct {
	ctx    context.Context
	driver Driver
	logger *log.Logger
	keys   keyMap
	help   help.Model

	ready  bool
	update session.Update

	// Driver calls run one at a time; keys pressed meanwhile wait here.
	inFlight bool
	queue    []request

	notice        string
	noticeSeq     int
	noticeTimeout time.Duration
	err           error

	width    int
	quitting bool
}

// New creates a model for driver.
func New(ctx context.Context, driver Driver, logger *log.Logger) *Model {
	keys := defaultKeyMap()
	keys.Again.SetEnabled(false)
	return &Model{
		ctx:    ctx,
		driver: driver,
		logger: logger.WithPrefix("tui"),
		keys:   keys,
		help:   help.New(),

		noticeTimeout: NoticeTimeout,
	}
}

// Run shows the game until the player quits or ctx is cancelled.
func Run(ctx context.Context, driver Driver, logger *log.Logger) error {
	p := tea.NewProgram(New(ctx, driver, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init fetches the current round
func (m *Model) Init() tea.Cmd {
	return m.enqueue(func(ctx context.Context, d Driver) (session.Update, error) {
		return d.Current(ctx)
	})
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case updateMsg:
		return m, m.receive(msg)

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// handleKey maps one key press to a driver call
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Any key press dismisses the notice.
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.Hint):
		m.logger.Debug("Hint requested")
		return m.enqueue(func(ctx context.Context, d Driver) (session.Update, error) {
			return d.Hint(ctx)
		})

	case key.Matches(msg, m.keys.NewGame), key.Matches(msg, m.keys.Again):
		m.logger.Debug("New game requested")
		return m.enqueue(func(ctx context.Context, d Driver) (session.Update, error) {
			return d.NewGame(ctx)
		})
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return nil
	}
	letter, ok := game.Normalize(msg.Runes[0])
	if !ok {
		return nil
	}
	m.logger.Debug("Guess", "letter", string(letter))
	return m.enqueue(func(ctx context.Context, d Driver) (session.Update, error) {
		return d.Guess(ctx, letter)
	})
}

// enqueue runs req now, or after the call in flight returns
func (m *Model) enqueue(req request) tea.Cmd {
	if m.inFlight {
		m.queue = append(m.queue, req)
		return nil
	}
	m.inFlight = true
	return m.call(req)
}

func (m *Model) call(req request) tea.Cmd {
	ctx, driver := m.ctx, m.driver
	return func() tea.Msg {
		u, err := req(ctx, driver)
		return updateMsg{update: u, err: err}
	}
}

// receive applies a driver reply and starts the next queued call
func (m *Model) receive(msg updateMsg) tea.Cmd {
	var cmds []tea.Cmd

	m.inFlight = false
	if len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		m.inFlight = true
		cmds = append(cmds, m.call(next))
	}

	if msg.err != nil {
		m.logger.Error("Request failed", "error", msg.err)
		m.err = msg.err
		return tea.Batch(cmds...)
	}

	m.err = nil
	m.ready = true
	m.update = msg.update
	finished := msg.update.Status.Finished()
	m.keys.Again.SetEnabled(finished)
	m.keys.Guess.SetEnabled(!finished)
	m.logger.Debug("Round updated",
		"outcome", msg.update.Outcome,
		"status", msg.update.Status,
		"incorrect", msg.update.Incorrect)

	if msg.update.Outcome == game.OutcomeHintUnavailable {
		m.noticeSeq++
		m.notice = HintUnavailableNotice
		seq := m.noticeSeq
		cmds = append(cmds, tea.Tick(m.noticeTimeout, func(time.Time) tea.Msg {
			return clearNoticeMsg{seq: seq}
		}))
	}
	return tea.Batch(cmds...)
}

// Notice returns the transient notice currently shown, if any.
func (m *Model) Notice() string {
	return m.notice
}

// Current returns the last update received from the driver.
func (m *Model) Current() session.Update {
	return m.update
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		if m.err != nil {
			return ErrorStyle.Render("Error: "+m.err.Error()) + "\n"
		}
		return "Loading..."
	}

	u := m.update
	var sections []string

	sections = append(sections, m.renderHeader())

	board := lipgloss.JoinHorizontal(lipgloss.Top,
		GallowsStyle.Render(Gallows(u.Incorrect)),
		"    ",
		m.renderWord(),
	)
	sections = append(sections, PanelStyle.Render(board))
	sections = append(sections, m.renderLetters())

	if line := m.renderStatus(); line != "" {
		sections = append(sections, line)
	}
	if m.notice != "" {
		sections = append(sections, WarningStyle.Render(m.notice))
	}
	if m.err != nil {
		sections = append(sections, ErrorStyle.Render("Error: "+m.err.Error()))
	}

	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m *Model) renderHeader() string {
	t := m.update.Tally
	return lipgloss.JoinHorizontal(lipgloss.Center,
		HeaderStyle.Render("HANGMAN"),
		"  ",
		InfoStyle.Render(fmt.Sprintf("Wins: %d  Losses: %d", t.Wins, t.Losses)),
	)
}

// renderWord renders the masked word, the miss counter and the hint text
func (m *Model) renderWord() string {
	u := m.update
	var b strings.Builder

	spaced := make([]string, 0, len(u.Masked))
	for _, r := range u.Masked {
		spaced = append(spaced, string(r))
	}
	b.WriteString(WordStyle.Render(strings.Join(spaced, " ")))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Misses: %d/%d", u.Incorrect, game.MaxIncorrect))
	if u.HintText != "" {
		b.WriteString("\n\n")
		b.WriteString(HintStyle.Render(u.HintText))
	}
	return b.String()
}

// renderLetters renders the letter grid in rows of 7, 7, 7 and 5
func (m *Model) renderLetters() string {
	rows := make([][]string, len(gridRows))
	for i, row := range gridRows {
		for _, r := range row {
			rows[i] = append(rows[i], strings.ToUpper(string(r)))
		}
	}

	letters := m.update.Letters
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(gridRows) || col >= len(gridRows[row]) {
				return keyBase
			}
			r := rune(gridRows[row][col])
			return LetterStyle(letters[r-'a'])
		})
	return t.Render()
}

// renderStatus renders the end-of-round line
func (m *Model) renderStatus() string {
	u := m.update
	switch u.Status {
	case game.Won:
		return SuccessStyle.Render("You Won!")
	case game.Lost:
		return ErrorStyle.Render("You Lost! The word was: " + u.Masked)
	}
	return ""
}
