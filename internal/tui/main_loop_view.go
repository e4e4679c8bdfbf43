package tui

import (
	"fmt"
	"strings"
)

func (m mainLoopModel) View() string {
	if m.addForm != nil {
		return appStyle.Render(m.addForm.View())
	}
	if m.lastDispatch != nil {
		return appStyle.Render(m.renderDispatch())
	}
	if m.detail {
		return appStyle.Render(m.renderDetail())
	}

	var b strings.Builder

	user := m.session.Current().User
	if user != nil {
		b.WriteString("Operator: ")
		b.WriteString(user.Username)
		b.WriteString("\n\n")
	}

	if m.filtering {
		b.WriteString("Filter by disaster type: [")
		b.WriteString(m.filterDraft)
		b.WriteString("_]\n\n")
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else if m.tab == tabHistory {
		b.WriteString(m.renderHistoryTable())
	} else {
		b.WriteString(m.renderSimulationsTable())
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(renderError(m.errMsg))
	}

	hotKeys := "tab: switch │ enter: details │ ←/→: page │ c: copy │ r: reload │ ctrl+l: logout │ q: quit"
	if m.tab == tabHistory {
		hotKeys = "f: filter │ " + hotKeys
	} else {
		hotKeys = "n: new │ p: predict │ d: dispatch │ " + hotKeys
	}

	title := "DISASTER HISTORY"
	if m.tab == tabSimulations {
		title = "MY SIMULATIONS"
	}

	return appStyle.Render(renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys))
}

func (m mainLoopModel) renderTabs() string {
	history := " History "
	sims := " Simulations "
	if m.tab == tabHistory {
		history = "[History]"
	} else {
		sims = "[Simulations]"
	}
	return history + " " + sims
}

func (m mainLoopModel) renderHistoryTable() string {
	var b strings.Builder

	if len(m.historyPage.Content) == 0 {
		if m.historyFilter != "" {
			return fmt.Sprintf("No events of type %q\n", m.historyFilter)
		}
		return "No events\n"
	}

	b.WriteString(fmt.Sprintf("  %-14s │ %-10s │ %-4s │ %-16s │ %s\n", "DisNo", "Type", "Year", "Country", "Name"))
	b.WriteString("  " + strings.Repeat("─", 76) + "\n")
	for i, event := range m.historyPage.Content {
		cursor := " "
		if i == m.historyIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-14s │ %-10s │ %4d │ %-16s │ %s\n",
			cursor,
			fitText(event.DisNo, 14),
			fitText(event.DisasterType, 10),
			event.YearEvent,
			fitText(event.Country, 16),
			fitText(event.EventName, 24),
		))
	}

	b.WriteString(fmt.Sprintf("\nPage %d/%d — %d events",
		m.historyPage.Number+1, max(m.historyPage.TotalPages, 1), m.historyPage.TotalElements))
	if m.historyFilter != "" {
		b.WriteString(" — filter: " + m.historyFilter)
	}
	b.WriteString("\n")

	return b.String()
}

func (m mainLoopModel) renderSimulationsTable() string {
	var b strings.Builder

	if len(m.simsPage.Content) == 0 {
		return "No simulations yet — press n to create one\n"
	}

	b.WriteString(fmt.Sprintf("  %-6s │ %-12s │ %-12s │ %-10s │ %s\n", "ID", "Type", "Status", "Fatality", "Requested"))
	b.WriteString("  " + strings.Repeat("─", 70) + "\n")
	for i, sim := range m.simsPage.Content {
		cursor := " "
		if i == m.simsIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-6d │ %-12s │ %-12s │ %-10s │ %s\n",
			cursor,
			sim.ID,
			fitText(sim.DisasterType, 12),
			fitText(valueOrDash(sim.IAProcessingStatus), 12),
			fitText(valueOrDash(sim.PredictedFatalityCategory), 10),
			fitText(sim.RequestTimestamp, 19),
		))
	}

	b.WriteString(fmt.Sprintf("\nPage %d/%d — %d simulations\n",
		m.simsPage.Number+1, max(m.simsPage.TotalPages, 1), m.simsPage.TotalElements))

	return b.String()
}

func (m mainLoopModel) renderDispatch() string {
	d := m.lastDispatch

	var b strings.Builder
	if d.SimulationID != 0 {
		b.WriteString(fmt.Sprintf("Simulation:      #%d\n", d.SimulationID))
	}
	b.WriteString(fmt.Sprintf("Drones sent:     %d\n", d.DronesDispatched))
	b.WriteString(fmt.Sprintf("Coverage area:   %.1f km²\n", d.EstimatedCoverageArea))
	b.WriteString("Mission notes:   ")
	b.WriteString(valueOrDash(d.MissionNotes))

	return renderPage("DRONE DISPATCH", b.String(), "esc: back")
}
