// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/components/input"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/messages"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/styles"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionEdit
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	// Current settings
	settings *domain.CleanSettings
	keys     []string
	values   map[string]string
	err      error

	// Navigation state
	section  Section
	selected int
	editKey  string

	// Text input for the value being edited
	input *input.ValueInput

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	valueInput := input.NewValueInput(s)
	valueInput.Blur()

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		values:          map[string]string{},
		input:           valueInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.input.SetWidth(msg.Width)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
			v.refreshValues()
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
			// Reload settings after save
			cmd := v.loadSettings()
			return v, cmd
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// refreshValues re-renders the per-key values from the service.
func (v *View) refreshValues() {
	if v.settingsService == nil {
		return
	}

	v.keys = v.settingsService.Keys()
	v.values = make(map[string]string, len(v.keys))
	for _, key := range v.keys {
		value, err := v.settingsService.Value(key)
		if err != nil {
			continue
		}
		v.values[key] = value
	}

	if v.selected >= len(v.keys) {
		v.selected = 0
	}
}

// handleKeyMsg handles key presses based on current section.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Global escape to go back
	if msg.String() == "esc" {
		switch v.section {
		case SectionOverview:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		default:
			v.section = SectionOverview
			v.input.Blur()
			v.input.Reset()
			return v, nil
		}
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionEdit:
		return v.handleEditKeys(msg)
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(v.keys)-1 {
			v.selected++
		}
	case keyEnter:
		if v.selected >= 0 && v.selected < len(v.keys) {
			v.section = SectionEdit
			v.editKey = v.keys[v.selected]
			v.input.SetLabel(v.editKey)
			v.input.SetValue(v.values[v.editKey])
			cmd := v.input.Focus()
			return v, cmd
		}
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEnter {
		cmd := v.saveSetting(v.editKey, v.input.Value())
		return v, cmd
	}

	// Everything else edits the value
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// saveSetting returns a command that stores one setting.
func (v *View) saveSetting(key, value string) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Key: key, Err: fmt.Errorf("settings service not available")}
		}
		err := v.settingsService.Set(key, value)
		if err == nil {
			v.section = SectionOverview
			v.input.Blur()
			v.input.Reset()
		}
		return messages.SettingsSaved{Key: key, Err: err}
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	// Error display
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	// Loading state
	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionEdit:
		b.WriteString(v.renderEdit())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	for i, key := range v.keys {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		line := fmt.Sprintf("%s%-24s %s", indicator, key, v.values[key])

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	// Validation status
	b.WriteString("\n")
	if v.settingsService != nil {
		if err := v.settingsService.Validate(); err != nil {
			b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Warning: %s", err.Error())))
		} else {
			b.WriteString(v.styles.Success.Render("Configuration is valid"))
		}

		if path := v.settingsService.Path(); path != "" {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Config: %s", path)))
		}
	}

	return b.String()
}

func (v *View) renderEdit() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Edit %s", v.editKey)))
	b.WriteString("\n\n")

	b.WriteString(v.input.View())
	b.WriteString("\n")

	if hint := settingHint(v.editKey); hint != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(hint))
		b.WriteString("\n")
	}

	return b.String()
}

// settingHint returns usage guidance for the key being edited.
func settingHint(key string) string {
	switch key {
	case "clean.temporal_threshold", "clean.numeric_threshold":
		return "A ratio between 0 and 1."
	case "clean.sample_size":
		return "Number of leading values inspected per column."
	case "clean.name_hints", "clean.missing_tokens", "clean.exclude_columns":
		return "Separate entries with semicolons."
	case "clean.date_layouts":
		return "Go reference-time layouts, separated by semicolons."
	case "clean.output_suffix":
		return "Appended to the file name before the extension."
	case "workspace.dir":
		return "Directory scanned for CSV files."
	case "history.enabled":
		return "true or false."
	default:
		return ""
	}
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	case SectionEdit:
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// ActiveSection returns the active section.
func (v *View) ActiveSection() Section {
	return v.section
}

// SelectedKey returns the key under the cursor in the overview.
func (v *View) SelectedKey() string {
	if v.selected >= 0 && v.selected < len(v.keys) {
		return v.keys[v.selected]
	}
	return ""
}

// EditKey returns the key being edited, if any.
func (v *View) EditKey() string {
	return v.editKey
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.editKey = ""
	v.err = nil
	v.input.Blur()
	v.input.Reset()
}
