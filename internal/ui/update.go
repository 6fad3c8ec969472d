package ui

import (
	"github.com/Cyclone1070/commitsearch/internal/ui/models"
	"github.com/Cyclone1070/commitsearch/internal/ui/views"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// scopeDoneMsg is sent when the progress scope owning a picker is cancelled.
type scopeDoneMsg struct{}

// pickerModel implements tea.Model for list selection
type pickerModel struct {
	state  models.PickerState
	styles views.Styles
	done   <-chan struct{}
}

func newPickerModel(title string, items []models.Item, styles views.Styles, done <-chan struct{}) pickerModel {
	m := pickerModel{
		state: models.PickerState{
			Title:  title,
			Items:  items,
			Index:  -1,
			Chosen: -1,
		},
		styles: styles,
		done:   done,
	}
	m.state.Index = m.initialIndex()
	return m
}

// Init implements tea.Model
func (m pickerModel) Init() tea.Cmd {
	if m.done == nil {
		return nil
	}
	return waitForScope(m.done)
}

// Update implements tea.Model
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height

	case scopeDoneMsg:
		m.state.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "shift+tab":
		m.move(-1)
	case "down", "j", "tab":
		m.move(1)
	case "home", "g":
		m.state.Index = m.firstSelectable()
	case "enter":
		if m.state.Index >= 0 {
			m.state.Chosen = m.state.Index
			return m, tea.Quit
		}
	case "esc", "q", "ctrl+c":
		m.state.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// move steps the cursor by delta, skipping rows that cannot be selected.
func (m *pickerModel) move(delta int) {
	for i := m.state.Index + delta; i >= 0 && i < len(m.state.Items); i += delta {
		if m.state.Items[i].Selectable() {
			m.state.Index = i
			return
		}
	}
}

// initialIndex puts the cursor on the first commit or option, ahead of any actions.
func (m pickerModel) initialIndex() int {
	for i, item := range m.state.Items {
		if item.Kind == models.ItemCommit || item.Kind == models.ItemOption {
			return i
		}
	}
	return m.firstSelectable()
}

func (m pickerModel) firstSelectable() int {
	for i, item := range m.state.Items {
		if item.Selectable() {
			return i
		}
	}
	return -1
}

// chosen returns the selected item, if any.
func (m pickerModel) chosen() (models.Item, bool) {
	if m.state.Chosen < 0 || m.state.Chosen >= len(m.state.Items) {
		return models.Item{}, false
	}
	return m.state.Items[m.state.Chosen], true
}

// View implements tea.Model
func (m pickerModel) View() string {
	if m.state.Quitting || m.state.Chosen >= 0 {
		return ""
	}
	return views.RenderPicker(m.state, m.styles)
}

// inputModel implements tea.Model for the search text prompt
type inputModel struct {
	state  models.InputState
	styles views.Styles
}

func newInputModel(title, prefill string, styles views.Styles) inputModel {
	ti := textinput.New()
	ti.Placeholder = "Search commits, or use a prefix like @author"
	ti.SetValue(prefill)
	ti.CursorEnd()
	ti.Focus()

	return inputModel{
		state:  models.InputState{Title: title, Input: ti},
		styles: styles,
	}
}

// Init implements tea.Model
func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.state.Submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.state.Quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m inputModel) View() string {
	if m.state.Submitted || m.state.Quitting {
		return ""
	}
	return views.RenderInput(m.state, m.styles)
}

func waitForScope(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return scopeDoneMsg{}
	}
}
