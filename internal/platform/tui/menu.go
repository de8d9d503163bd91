package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chase"
)

// MapSelection holds the user's choice from the map picker.
type MapSelection struct {
	MapID string
}

// MapSelectModel lets users choose which maze to play.
type MapSelectModel struct {
	cursor     int
	width      int
	height     int
	keyMapper  *KeyMapper
	selection  MapSelection
	choosing   bool
	quitting   bool
	back       bool
	scoreboard bool // True if user pressed Tab for the scoreboard
}

// NewMapSelectModel creates a new map selection model.
func NewMapSelectModel(width, height int) MapSelectModel {
	return MapSelectModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m MapSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MapSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MapSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < chase.LevelCount()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = MapSelection{MapID: chase.GetLevel(m.cursor).ID}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the map picker.
func (m MapSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M A Z E   C H A S E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a maze:", m.width))
	b.WriteString("\n\n")

	for i, name := range chase.LevelNames() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, name), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Tab: Scores  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MapSelectModel) Selected() *MapSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m MapSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MapSelectModel) WantsBack() bool {
	return m.back
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MapSelectModel) WantsScoreboard() bool {
	return m.scoreboard
}

// MapSelectResult is the outcome of a standalone map picker run.
type MapSelectResult struct {
	// MapID is the chosen map, or empty if nothing was selected.
	MapID string

	// WantsScoreboard is true if the user pressed Tab for the scoreboard.
	WantsScoreboard bool

	// Quit is true if the user quit or backed out of the picker.
	Quit bool

	// Config carries any terminal size changes back to the caller.
	Config core.RuntimeConfig
}

// RunMapSelector runs the map picker as its own program and reports
// what the user chose.
func RunMapSelector(cfg core.RuntimeConfig) (MapSelectResult, error) {
	model := NewMapSelectModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	result := MapSelectResult{Config: cfg}

	finalModel, err := p.Run()
	if err != nil {
		return result, err
	}

	m, ok := finalModel.(MapSelectModel)
	if !ok {
		result.Quit = true
		return result, nil
	}

	result.Config.ScreenW = m.width
	result.Config.ScreenH = m.height

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		result.Quit = true
		return result, nil
	}

	if sel := m.Selected(); sel != nil {
		result.MapID = sel.MapID
	}
	return result, nil
}

// centerText pads a line so it renders centered at the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	pad := (width - len(text)) / 2
	return strings.Repeat(" ", pad) + text
}
