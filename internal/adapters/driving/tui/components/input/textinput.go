// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/styles"
)

// ValueInput wraps a bubbles textinput for editing a single setting value.
type ValueInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewValueInput creates a new value input component.
func NewValueInput(s *styles.Styles) *ValueInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter value..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	return &ValueInput{
		textinput: ti,
		styles:    s,
		label:     "Value",
		width:     50,
	}
}

// Init initialises the value input.
func (v *ValueInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (v *ValueInput) Update(msg tea.Msg) (*ValueInput, tea.Cmd) {
	var cmd tea.Cmd
	v.textinput, cmd = v.textinput.Update(msg)
	return v, cmd
}

// View renders the value input.
func (v *ValueInput) View() string {
	label := v.styles.Title.Render(v.label + ": ")
	input := v.styles.InputField.Render(v.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (v *ValueInput) Value() string {
	return v.textinput.Value()
}

// SetValue sets the input value.
func (v *ValueInput) SetValue(value string) {
	v.textinput.SetValue(value)
	v.textinput.CursorEnd()
}

// Label returns the current input label.
func (v *ValueInput) Label() string {
	return v.label
}

// SetLabel sets the label shown before the input, typically a setting key.
func (v *ValueInput) SetLabel(label string) {
	if label == "" {
		label = "Value"
	}
	v.label = label
}

// Focus sets focus on the input.
func (v *ValueInput) Focus() tea.Cmd {
	return v.textinput.Focus()
}

// Blur removes focus from the input.
func (v *ValueInput) Blur() {
	v.textinput.Blur()
}

// Focused returns whether the input is focused.
func (v *ValueInput) Focused() bool {
	return v.textinput.Focused()
}

// SetWidth sets the width of the input.
func (v *ValueInput) SetWidth(width int) {
	v.width = width
	// Account for label and padding
	inputWidth := width - len(v.label) - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	v.textinput.Width = inputWidth
}

// Width returns the current width.
func (v *ValueInput) Width() int {
	return v.width
}

// Reset clears the input and restores the default label.
func (v *ValueInput) Reset() {
	v.textinput.Reset()
	v.label = "Value"
}
