// Package form implements the full-screen calculator form using
// Bubble Tea. It is the graphical shell: all five inputs live on one
// screen, the results pane refreshes on every calculation, and an
// impractical gravity shows as a warning without suppressing the
// numbers.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tlahteenmaki/meadwright/internal/display"
	"github.com/tlahteenmaki/meadwright/internal/domain"
	"github.com/tlahteenmaki/meadwright/internal/gravity"
	"github.com/tlahteenmaki/meadwright/internal/info"
	"github.com/tlahteenmaki/meadwright/internal/logger"
)

// Form fields in navigation order.
const (
	fieldVolume = iota
	fieldUnits
	fieldABV
	fieldSweetness
	fieldTurbo
	fieldCalculate
	fieldCount
)

// Info overlays.
const (
	overlayNone = iota
	overlayWater
	overlayHoney
)

var (
	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(1, 2)
)

// Model is the Bubble Tea model for the calculator form.
type Model struct {
	log *logger.Logger

	volume    textinput.Model
	abv       textinput.Model
	units     domain.UnitSystem
	sweetness int // index into domain.SweetnessLevels()
	turbo     bool

	focus   int
	overlay int
	width   int

	targets   domain.GravityTargets
	result    domain.IngredientResult
	hasResult bool

	message     string
	messageWarn bool
	messageErr  bool
}

// New creates the form with the traditional defaults (5 gallons, 14%,
// semi-sweet, standard yeast) and the results pane already populated,
// so the screen is never empty on startup.
func New(log *logger.Logger) Model {
	volume := textinput.New()
	volume.SetValue("5.0")
	volume.CharLimit = 10
	volume.Width = 10
	volume.Focus()

	abv := textinput.New()
	abv.SetValue("14")
	abv.CharLimit = 2
	abv.Width = 10

	m := Model{
		log:       log,
		volume:    volume,
		abv:       abv,
		units:     domain.UnitsUS,
		sweetness: 1, // Semi-Sweet
	}
	m.calculate()
	return m
}

// Run starts the form on its own alternate screen. Blocks until quit.
func Run(log *logger.Logger) error {
	_, err := tea.NewProgram(New(log), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.overlay != overlayNone {
			switch msg.Type {
			case tea.KeyCtrlC:
				return m, tea.Quit
			case tea.KeyEsc, tea.KeyEnter:
				m.overlay = overlayNone
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyF1:
			m.overlay = overlayWater
			return m, nil

		case tea.KeyF2:
			m.overlay = overlayHoney
			return m, nil

		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil

		case tea.KeyLeft:
			m.cycle(-1)
			return m, nil

		case tea.KeyRight:
			m.cycle(1)
			return m, nil

		case tea.KeySpace:
			if m.focus == fieldUnits || m.focus == fieldSweetness || m.focus == fieldTurbo {
				m.cycle(1)
				return m, nil
			}

		case tea.KeyEnter:
			m.calculate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldVolume:
		m.volume, cmd = m.volume.Update(msg)
	case fieldABV:
		m.abv, cmd = m.abv.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(field int) {
	m.focus = field
	m.volume.Blur()
	m.abv.Blur()
	switch field {
	case fieldVolume:
		m.volume.Focus()
	case fieldABV:
		m.abv.Focus()
	}
}

// cycle steps the selector under focus: unit system, sweetness level,
// or the turbo toggle.
func (m *Model) cycle(dir int) {
	switch m.focus {
	case fieldUnits:
		if m.units == domain.UnitsUS {
			m.units = domain.UnitsMetric
		} else {
			m.units = domain.UnitsUS
		}
	case fieldSweetness:
		n := len(domain.SweetnessLevels())
		m.sweetness = (m.sweetness + dir + n) % n
	case fieldTurbo:
		m.turbo = !m.turbo
	}
}

// calculate reads the form, runs the core, and refreshes the results
// pane. Input errors leave the previous results on screen; an
// impractical gravity warns but still renders (form policy).
func (m *Model) calculate() {
	m.message = ""
	m.messageWarn = false
	m.messageErr = false

	volume, err := strconv.ParseFloat(strings.TrimSpace(m.volume.Value()), 64)
	if err != nil {
		m.fail("Enter a valid batch volume.")
		return
	}
	abv, err := strconv.Atoi(strings.TrimSpace(m.abv.Value()))
	if err != nil {
		m.fail("Enter a valid whole-number ABV.")
		return
	}

	input := domain.CalculationInput{
		Volume:    volume,
		Units:     m.units,
		ABV:       abv,
		Sweetness: domain.SweetnessLevels()[m.sweetness],
		Mode:      domain.ModeStandard,
	}
	if m.turbo {
		input.Mode = domain.ModeTurbo
	}
	if err := input.Validate(); err != nil {
		m.fail(capitalize(userMessage(err)))
		return
	}

	targets, err := gravity.ResolveTargets(input.ABV, input.Sweetness, input.Mode)
	if err != nil {
		m.fail(capitalize(userMessage(err)))
		return
	}

	m.targets = targets
	m.result = gravity.CalculateIngredients(targets, input.Volume, input.Units)
	m.hasResult = true

	if m.log != nil {
		m.log.Debug("form calculation: og=%.3f honey=%.2f %s water=%.2f %s",
			targets.OG, m.result.Honey, m.result.HoneyUnit, m.result.Water, m.result.WaterUnit)
	}

	switch {
	case gravity.Impractical(targets):
		m.message = fmt.Sprintf(
			"WARNING: OG %.3f is extremely high for any mead yeast. Try a lower ABV.", targets.OG)
		m.messageWarn = true
	case m.turbo:
		m.message = "Calculation complete. (Turbo yeast: FG forced to 1.000)"
	default:
		m.message = "Calculation complete."
	}
}

func (m *Model) fail(msg string) {
	m.message = msg
	m.messageErr = true
}

// userMessage strips the sentinel prefix so the form shows only the
// human half of a wrapped error.
func userMessage(err error) string {
	s := err.Error()
	if _, detail, ok := strings.Cut(s, ": "); ok {
		return detail
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m Model) View() string {
	if m.overlay != overlayNone {
		return m.viewOverlay()
	}

	var b strings.Builder

	b.WriteString(display.TitleStyle.Render("Mead Ingredient Calculator"))
	b.WriteString("\n\n")

	b.WriteString(m.fieldRow(fieldVolume, "Batch volume", m.volume.View()))
	b.WriteString(m.fieldRow(fieldUnits, "Units", m.selector(fieldUnits, m.units.String())))
	b.WriteString(m.fieldRow(fieldABV, "Target ABV %", m.abv.View()))
	b.WriteString(m.fieldRow(fieldSweetness, "Sweetness", m.selector(fieldSweetness, domain.SweetnessLevels()[m.sweetness].String())))
	b.WriteString(m.fieldRow(fieldTurbo, "Turbo yeast", m.selector(fieldTurbo, onOff(m.turbo))))

	calc := display.HintStyle.Render("[ Calculate ]")
	if m.focus == fieldCalculate {
		calc = focusStyle.Render("[ Calculate ]")
	}
	b.WriteString("\n  " + calc + "\n\n")

	b.WriteString(m.viewResults())

	if m.message != "" {
		style := display.HintStyle
		if m.messageWarn {
			style = display.WarnStyle
		}
		if m.messageErr {
			style = display.ErrorStyle
		}
		b.WriteString("\n  " + style.Render(m.message) + "\n")
	}

	b.WriteString("\n" + display.HintStyle.Render(
		"  tab/↑↓ move · ←→ change · enter calculate · F1 water info · F2 honey info · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) fieldRow(field int, label, value string) string {
	marker := "  "
	labelStyle := display.LabelStyle
	if m.focus == field {
		marker = focusStyle.Render("> ")
		labelStyle = focusStyle
	}
	return fmt.Sprintf("  %s%s %s\n", marker, labelStyle.Render(padLabel(label)), value)
}

func (m Model) selector(field int, value string) string {
	if m.focus == field {
		return focusStyle.Render("‹ " + value + " ›")
	}
	return display.ValueStyle.Render(value)
}

func (m Model) viewResults() string {
	if !m.hasResult {
		return boxStyle.Render(display.HintStyle.Render("Press enter to calculate."))
	}

	row := func(label, value string) string {
		return display.LabelStyle.Render(padLabel(label)) + " " + display.ResultStyle.Render(value)
	}

	water := fmt.Sprintf("%.2f %s", m.result.Water, m.result.WaterUnit)
	if m.result.Water <= 0 {
		water = fmt.Sprintf("0.00 %s (honey alone fills the batch)", m.result.WaterUnit)
	}

	lines := []string{
		display.TitleStyle.Render("Results"),
		row("Original gravity", fmt.Sprintf("%.3f", m.targets.OG)),
		row("Final gravity", fmt.Sprintf("%.3f", m.targets.FG)),
		row("Honey", fmt.Sprintf("%.2f %s", m.result.Honey, m.result.HoneyUnit)),
		row("Top-off water", water),
		row("Gravity points", fmt.Sprintf("%.0f", m.result.GravityPoints)),
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewOverlay() string {
	text := info.WaterQuality
	if m.overlay == overlayHoney {
		text = info.HoneyVarieties
	}
	var b strings.Builder
	b.WriteString(boxStyle.Render(display.ValueStyle.Render(text)))
	b.WriteString("\n" + display.HintStyle.Render("  esc to close"))
	b.WriteString("\n")
	return b.String()
}

func padLabel(label string) string {
	const width = 16
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
