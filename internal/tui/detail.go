package tui

import (
	"fmt"
	"strings"
)

func (m mainLoopModel) renderDetail() string {
	if m.tab == tabHistory {
		return m.renderEventDetail()
	}
	return m.renderSimulationDetail()
}

func (m mainLoopModel) renderEventDetail() string {
	event, ok := m.currentEvent()
	if !ok {
		return renderPage("EVENT", "", "esc: back")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("DisNo:          %s\n", event.DisNo))
	b.WriteString(fmt.Sprintf("Name:           %s\n", valueOrDash(event.EventName)))
	b.WriteString(fmt.Sprintf("Type:           %s\n", valueOrDash(event.DisasterType)))
	b.WriteString(fmt.Sprintf("Country:        %s\n", valueOrDash(event.Country)))
	b.WriteString(fmt.Sprintf("Year:           %d\n", event.YearEvent))
	b.WriteString(fmt.Sprintf("Dates:          %s — %s\n", valueOrDash(event.StartDate), valueOrDash(event.EndDate)))
	if event.Latitude != 0 || event.Longitude != 0 {
		b.WriteString(fmt.Sprintf("Coordinates:    %.4f, %.4f\n", event.Latitude, event.Longitude))
	}
	if event.TotalDeaths > 0 {
		b.WriteString(fmt.Sprintf("Total deaths:   %d\n", event.TotalDeaths))
	}
	if event.TotalAffected > 0 {
		b.WriteString(fmt.Sprintf("Total affected: %d\n", event.TotalAffected))
	}

	return renderPage("EVENT "+event.DisNo, strings.TrimRight(b.String(), "\n"), "c: copy DisNo │ esc: back")
}

func (m mainLoopModel) renderSimulationDetail() string {
	sim, ok := m.currentSimulation()
	if !ok {
		return renderPage("SIMULATION", "", "esc: back")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("ID:             %d\n", sim.ID))
	b.WriteString(fmt.Sprintf("Type:           %s\n", valueOrDash(sim.DisasterType)))
	b.WriteString(fmt.Sprintf("Status:         %s\n", valueOrDash(sim.IAProcessingStatus)))
	b.WriteString(fmt.Sprintf("Fatality:       %s\n", valueOrDash(sim.PredictedFatalityCategory)))
	b.WriteString(fmt.Sprintf("Requested:      %s\n", valueOrDash(sim.RequestTimestamp)))
	if sim.InputYear != 0 {
		b.WriteString(fmt.Sprintf("Scenario year:  %d\n", sim.InputYear))
	}
	if sim.InputLatitude != 0 || sim.InputLongitude != 0 {
		b.WriteString(fmt.Sprintf("Coordinates:    %.4f, %.4f\n", sim.InputLatitude, sim.InputLongitude))
	}

	title := fmt.Sprintf("SIMULATION #%d", sim.ID)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "p: predict │ d: dispatch │ c: copy ID │ esc: back")
}
