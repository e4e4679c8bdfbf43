package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/globalsight/sar-drone-client/internal/adapter"
	"github.com/globalsight/sar-drone-client/internal/logger"
	"github.com/globalsight/sar-drone-client/internal/session"
	"github.com/globalsight/sar-drone-client/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	session       *session.Store
	serverAdapter adapter.ServerAdapter
	buildInfo     models.AppBuildInfo
}

func New(sess *session.Store, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		session:       sess,
		serverAdapter: serverAdapter,
		buildInfo:     buildInfo,
	}, nil
}

// LoginFlow runs the menu/login/register screens until a login succeeds or
// the user quits. A non-empty notice is shown on the menu (e.g. after a
// forced logout).
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.UserProfile, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.session),
		"register": NewRegisterModel(ctx, t.session),
	}

	menu := pages["menu"].(*MenuModel)
	if notice != "" {
		menu.status = notice
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.UserProfile{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.UserProfile{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.UserProfile{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the authenticated home screen. It returns logout=true when
// the user logged out or the session expired; sessionExpired distinguishes
// the forced case so the caller can show a notice on the next login screen.
func (t *TUI) MainLoop(ctx context.Context) (logout, sessionExpired bool, err error) {
	model := newMainLoopModel(ctx, t.session, t.serverAdapter)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, false, tea.ErrProgramKilled
	}
	return result.logout, result.sessionExpired, nil
}
