package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/globalsight/sar-drone-client/models"
)

// simulationFormModel is the risk-prediction form. It collects a disaster
// scenario (date, type, coordinates) and, on submit, hands a validated
// [models.SimulationSpec] back to the main loop.
type simulationFormModel struct {
	inputs []textinput.Model
	focus  int
	saving bool
	errMsg string
}

const (
	fieldYear = iota
	fieldMonth
	fieldDay
	fieldType
	fieldLatitude
	fieldLongitude
	fieldCountry
	simulationFormFields
)

func newSimulationFormModel() *simulationFormModel {
	inputs := make([]textinput.Model, simulationFormFields)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldYear].Placeholder = "2026"
	inputs[fieldYear].CharLimit = 4
	inputs[fieldMonth].Placeholder = "1-12"
	inputs[fieldMonth].CharLimit = 2
	inputs[fieldDay].Placeholder = "1-31"
	inputs[fieldDay].CharLimit = 2
	inputs[fieldType].Placeholder = "Flood, Earthquake, Storm..."
	inputs[fieldLatitude].Placeholder = "-90.0 .. 90.0"
	inputs[fieldLongitude].Placeholder = "-180.0 .. 180.0"
	inputs[fieldCountry].Placeholder = "optional"
	inputs[fieldYear].Focus()

	return &simulationFormModel{inputs: inputs}
}

func (m *simulationFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles form keys. It returns the parsed spec and submitted=true
// when the form validates on enter; esc is handled by the caller.
func (m *simulationFormModel) Update(msg tea.Msg) (spec models.SimulationSpec, submitted bool, cmd tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab", "down":
			m.focusNext()
			return spec, false, nil
		case "shift+tab", "up":
			m.focusPrev()
			return spec, false, nil
		case "enter":
			if m.saving {
				return spec, false, nil
			}
			parsed, err := m.toSpec()
			if err != "" {
				m.errMsg = err
				return spec, false, nil
			}
			m.errMsg = ""
			return parsed, true, nil
		}
	}

	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return spec, false, cmd
}

// toSpec validates the raw inputs and builds the spec. The returned string is
// a user-facing validation message, empty when the form is valid.
func (m *simulationFormModel) toSpec() (models.SimulationSpec, string) {
	var spec models.SimulationSpec

	year, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldYear].Value()))
	if err != nil || year < 1900 || year > 2200 {
		return spec, "Year must be a number between 1900 and 2200"
	}
	month, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldMonth].Value()))
	if err != nil || month < 1 || month > 12 {
		return spec, "Month must be between 1 and 12"
	}
	day, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldDay].Value()))
	if err != nil || day < 1 || day > 31 {
		return spec, "Day must be between 1 and 31"
	}

	disasterType := strings.TrimSpace(m.inputs[fieldType].Value())
	if disasterType == "" {
		return spec, "Disaster type is required"
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldLatitude].Value()), 64)
	if err != nil || lat < -90 || lat > 90 {
		return spec, "Latitude must be between -90 and 90"
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldLongitude].Value()), 64)
	if err != nil || lon < -180 || lon > 180 {
		return spec, "Longitude must be between -180 and 180"
	}

	spec = models.SimulationSpec{
		InputYear:         year,
		InputStartMonth:   month,
		InputStartDay:     day,
		InputDisasterType: disasterType,
		InputLatitude:     lat,
		InputLongitude:    lon,
		InputCountry:      strings.TrimSpace(m.inputs[fieldCountry].Value()),
	}
	return spec, ""
}

func (m *simulationFormModel) View() string {
	var b strings.Builder
	b.WriteString("Year:           [" + m.inputs[fieldYear].View() + "]\n")
	b.WriteString("Start month:    [" + m.inputs[fieldMonth].View() + "]\n")
	b.WriteString("Start day:      [" + m.inputs[fieldDay].View() + "]\n")
	b.WriteString("Disaster type:  [" + m.inputs[fieldType].View() + "]\n")
	b.WriteString("Latitude:       [" + m.inputs[fieldLatitude].View() + "]\n")
	b.WriteString("Longitude:      [" + m.inputs[fieldLongitude].View() + "]\n")
	b.WriteString("Country:        [" + m.inputs[fieldCountry].View() + "]\n")

	if m.saving {
		b.WriteString("\n[Creating...]\n")
	} else {
		b.WriteString("\n[Create simulation]\n")
	}

	if m.errMsg != "" {
		b.WriteString(renderError(m.errMsg))
	}

	return renderPage("NEW RISK SIMULATION", strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: create")
}

func (m *simulationFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *simulationFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
