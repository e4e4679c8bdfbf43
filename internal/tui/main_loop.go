package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/globalsight/sar-drone-client/internal/adapter"
	"github.com/globalsight/sar-drone-client/internal/session"
	"github.com/globalsight/sar-drone-client/models"
)

type mainTab int

const (
	tabHistory mainTab = iota
	tabSimulations
)

const listPageSize = 10

const (
	historySort     = "yearEvent,desc"
	simulationsSort = "requestTimestamp,desc"
)

type mainLoopModel struct {
	ctx           context.Context
	session       *session.Store
	serverAdapter adapter.ServerAdapter

	tab     mainTab
	loading bool
	status  string
	errMsg  string

	historyPage   models.Page[models.DisasterEvent]
	historyIdx    int
	historyNum    int
	historyFilter string
	filterDraft   string
	filtering     bool

	simsPage models.Page[models.Simulation]
	simsIdx  int
	simsNum  int

	detail       bool
	lastDispatch *models.DroneDispatch

	addForm *simulationFormModel

	sessionExpired bool
	logout         bool
}

func newMainLoopModel(ctx context.Context, sess *session.Store, serverAdapter adapter.ServerAdapter) mainLoopModel {
	return mainLoopModel{
		ctx:           ctx,
		session:       sess,
		serverAdapter: serverAdapter,
		loading:       true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadHistory()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.handleRemoteError(msg.err)
		}
		m.errMsg = ""
		m.historyPage = msg.page
		m.historyNum = msg.page.Number
		m.clampHistoryIdx()
		return m, nil
	case simulationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.handleRemoteError(msg.err)
		}
		m.errMsg = ""
		m.simsPage = msg.page
		m.simsNum = msg.page.Number
		m.clampSimsIdx()
		return m, nil
	case simulationsCreatedMsg:
		if m.addForm != nil {
			m.addForm.saving = false
		}
		if msg.err != nil {
			return m.handleRemoteError(msg.err)
		}
		m.addForm = nil
		m.errMsg = ""
		if len(msg.created) == 1 {
			m.status = fmt.Sprintf("Simulation #%d created", msg.created[0].ID)
		} else {
			m.status = fmt.Sprintf("%d simulations created", len(msg.created))
		}
		m.loading = true
		return m, m.cmdLoadSimulations()
	case predictionDoneMsg:
		if msg.err != nil {
			return m.handleRemoteError(msg.err)
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Prediction started for simulation #%d (%s)", msg.sim.ID, valueOrDash(msg.sim.IAProcessingStatus))
		m.loading = true
		return m, m.cmdLoadSimulations()
	case dispatchDoneMsg:
		if msg.err != nil {
			return m.handleRemoteError(msg.err)
		}
		m.errMsg = ""
		dispatch := msg.dispatch
		m.lastDispatch = &dispatch
		m.status = fmt.Sprintf("%d drones dispatched", dispatch.DronesDispatched)
		return m, nil
	case eventDeletedMsg:
		if msg.err != nil {
			return m.handleRemoteError(msg.err)
		}
		m.errMsg = ""
		m.status = "Event deleted"
		m.loading = true
		return m, m.cmdLoadHistory()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.addForm != nil {
			return m.updateAddForm(msg)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.addForm != nil {
		return m.updateAddForm(msg)
	}

	if m.filtering {
		return m.updateFilter(keyMsg)
	}

	if m.lastDispatch != nil {
		if keyMsg.String() == "esc" {
			m.lastDispatch = nil
		}
		return m, nil
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "ctrl+l":
		m.session.Logout(m.ctx)
		m.logout = true
		return m, tea.Quit
	case "tab":
		if m.tab == tabHistory {
			m.tab = tabSimulations
			m.loading = true
			return m, m.cmdLoadSimulations()
		}
		m.tab = tabHistory
		m.loading = true
		return m, m.cmdLoadHistory()
	case "up", "k":
		if m.tab == tabHistory && m.historyIdx > 0 {
			m.historyIdx--
		}
		if m.tab == tabSimulations && m.simsIdx > 0 {
			m.simsIdx--
		}
	case "down", "j":
		if m.tab == tabHistory && m.historyIdx < len(m.historyPage.Content)-1 {
			m.historyIdx++
		}
		if m.tab == tabSimulations && m.simsIdx < len(m.simsPage.Content)-1 {
			m.simsIdx++
		}
	case "left", "h":
		if m.tab == tabHistory && m.historyNum > 0 {
			m.historyNum--
			m.loading = true
			return m, m.cmdLoadHistory()
		}
		if m.tab == tabSimulations && m.simsNum > 0 {
			m.simsNum--
			m.loading = true
			return m, m.cmdLoadSimulations()
		}
	case "right", "l":
		if m.tab == tabHistory && m.historyNum < m.historyPage.TotalPages-1 {
			m.historyNum++
			m.loading = true
			return m, m.cmdLoadHistory()
		}
		if m.tab == tabSimulations && m.simsNum < m.simsPage.TotalPages-1 {
			m.simsNum++
			m.loading = true
			return m, m.cmdLoadSimulations()
		}
	case "r":
		m.loading = true
		if m.tab == tabHistory {
			return m, m.cmdLoadHistory()
		}
		return m, m.cmdLoadSimulations()
	case "f":
		if m.tab == tabHistory {
			m.filtering = true
			m.filterDraft = m.historyFilter
		}
	case "n":
		if m.tab == tabSimulations {
			m.addForm = newSimulationFormModel()
			return m, m.addForm.Init()
		}
	case "p":
		if m.tab == tabSimulations {
			if sim, ok := m.currentSimulation(); ok {
				m.status = ""
				return m, m.cmdTriggerPrediction(sim.ID)
			}
		}
	case "d":
		if m.tab == tabSimulations {
			if sim, ok := m.currentSimulation(); ok {
				m.status = ""
				return m, m.cmdDispatchDrones(sim.ID)
			}
		}
	case "ctrl+d":
		if m.tab == tabHistory {
			if event, ok := m.currentEvent(); ok {
				m.status = ""
				return m, m.cmdDeleteEvent(event.DisNo)
			}
		}
	case "c":
		m.copyCurrentID()
	case "enter":
		if m.tab == tabHistory {
			if _, ok := m.currentEvent(); ok {
				m.detail = true
			}
		} else {
			if _, ok := m.currentSimulation(); ok {
				m.detail = true
			}
		}
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.detail = false
	case "c":
		m.copyCurrentID()
	case "p":
		if m.tab == tabSimulations {
			if sim, ok := m.currentSimulation(); ok {
				m.detail = false
				return m, m.cmdTriggerPrediction(sim.ID)
			}
		}
	case "d":
		if m.tab == tabSimulations {
			if sim, ok := m.currentSimulation(); ok {
				m.detail = false
				return m, m.cmdDispatchDrones(sim.ID)
			}
		}
	}
	return m, nil
}

func (m mainLoopModel) updateFilter(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.filtering = false
		m.filterDraft = ""
	case "enter":
		m.filtering = false
		m.historyFilter = strings.TrimSpace(m.filterDraft)
		m.historyNum = 0
		m.loading = true
		return m, m.cmdLoadHistory()
	case "backspace":
		if len(m.filterDraft) > 0 {
			m.filterDraft = m.filterDraft[:len(m.filterDraft)-1]
		}
	default:
		if len(keyMsg.Runes) > 0 {
			m.filterDraft += string(keyMsg.Runes)
		}
	}
	return m, nil
}

func (m mainLoopModel) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.addForm = nil
		return m, nil
	}

	spec, submitted, cmd := m.addForm.Update(msg)
	if submitted {
		m.addForm.saving = true
		return m, m.cmdCreateSimulations([]models.SimulationSpec{spec})
	}
	return m, cmd
}

// handleRemoteError funnels every backend failure through one place so an
// expired token always forces a logout, whatever screen it surfaced on.
func (m mainLoopModel) handleRemoteError(err error) (tea.Model, tea.Cmd) {
	m.loading = false
	if isSessionExpired(err) {
		m.sessionExpired = true
		m.logout = true
		m.session.Logout(m.ctx)
		return m, tea.Quit
	}
	m.errMsg = humanizeServerUnavailableError(err)
	return m, nil
}

func (m *mainLoopModel) copyCurrentID() {
	var text string
	if m.tab == tabHistory {
		event, ok := m.currentEvent()
		if !ok {
			m.status = "Nothing to copy"
			return
		}
		text = event.DisNo
	} else {
		sim, ok := m.currentSimulation()
		if !ok {
			m.status = "Nothing to copy"
			return
		}
		text = fmt.Sprintf("%d", sim.ID)
	}

	if err := clipboard.WriteAll(text); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.status = "Copied " + text
}

func (m mainLoopModel) currentEvent() (models.DisasterEvent, bool) {
	if m.historyIdx < 0 || m.historyIdx >= len(m.historyPage.Content) {
		return models.DisasterEvent{}, false
	}
	return m.historyPage.Content[m.historyIdx], true
}

func (m mainLoopModel) currentSimulation() (models.Simulation, bool) {
	if m.simsIdx < 0 || m.simsIdx >= len(m.simsPage.Content) {
		return models.Simulation{}, false
	}
	return m.simsPage.Content[m.simsIdx], true
}

func (m *mainLoopModel) clampHistoryIdx() {
	if m.historyIdx >= len(m.historyPage.Content) {
		m.historyIdx = len(m.historyPage.Content) - 1
	}
	if m.historyIdx < 0 {
		m.historyIdx = 0
	}
}

func (m *mainLoopModel) clampSimsIdx() {
	if m.simsIdx >= len(m.simsPage.Content) {
		m.simsIdx = len(m.simsPage.Content) - 1
	}
	if m.simsIdx < 0 {
		m.simsIdx = 0
	}
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	srv := m.serverAdapter
	q := models.PageQuery{Page: m.historyNum, Size: listPageSize, Sort: historySort}
	filters := map[string]string{"disasterType": m.historyFilter}

	return func() tea.Msg {
		page, err := srv.ListHistory(ctx, q, filters)
		return historyLoadedMsg{page: page, err: err}
	}
}

func (m mainLoopModel) cmdLoadSimulations() tea.Cmd {
	ctx := m.ctx
	srv := m.serverAdapter
	q := models.PageQuery{Page: m.simsNum, Size: listPageSize, Sort: simulationsSort}

	return func() tea.Msg {
		page, err := srv.ListUserSimulations(ctx, q, nil)
		return simulationsLoadedMsg{page: page, err: err}
	}
}

func (m mainLoopModel) cmdCreateSimulations(specs []models.SimulationSpec) tea.Cmd {
	ctx := m.ctx
	srv := m.serverAdapter

	return func() tea.Msg {
		created, err := srv.CreateSimulations(ctx, specs)
		return simulationsCreatedMsg{created: created, err: err}
	}
}

func (m mainLoopModel) cmdTriggerPrediction(id int64) tea.Cmd {
	ctx := m.ctx
	srv := m.serverAdapter

	return func() tea.Msg {
		sim, err := srv.TriggerPrediction(ctx, id)
		return predictionDoneMsg{sim: sim, err: err}
	}
}

func (m mainLoopModel) cmdDispatchDrones(id int64) tea.Cmd {
	ctx := m.ctx
	srv := m.serverAdapter

	return func() tea.Msg {
		dispatch, err := srv.DispatchDrones(ctx, id)
		return dispatchDoneMsg{dispatch: dispatch, err: err}
	}
}

func (m mainLoopModel) cmdDeleteEvent(disNo string) tea.Cmd {
	ctx := m.ctx
	srv := m.serverAdapter

	return func() tea.Msg {
		err := srv.DeleteHistoryEvent(ctx, disNo)
		return eventDeletedMsg{err: err}
	}
}
