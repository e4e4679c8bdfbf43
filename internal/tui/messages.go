package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/globalsight/sar-drone-client/models"
)

// NavigateTo switches the root model to another page. An optional Payload is
// re-dispatched as a message into the target page.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the authentication flow. On success the root model
// quits the login program and hands control to the main loop.
type LoginResult struct {
	Err  error
	User models.UserProfile
}

// RegisterResult reports the outcome of an account registration.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Username string
}

type historyLoadedMsg struct {
	page models.Page[models.DisasterEvent]
	err  error
}

type simulationsLoadedMsg struct {
	page models.Page[models.Simulation]
	err  error
}

type simulationsCreatedMsg struct {
	created []models.Simulation
	err     error
}

type predictionDoneMsg struct {
	sim models.Simulation
	err error
}

type dispatchDoneMsg struct {
	dispatch models.DroneDispatch
	err      error
}

type eventDeletedMsg struct {
	err error
}
