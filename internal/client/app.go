package client

import (
	"context"
	"errors"

	"github.com/globalsight/sar-drone-client/internal/logger"
	"github.com/globalsight/sar-drone-client/internal/session"
	"github.com/globalsight/sar-drone-client/internal/tui"
)

const sessionExpiredNotice = "Session expired, please log in again"

// App drives the client lifecycle: one Bootstrap at startup, then the login
// flow and the main loop alternate until the user quits.
type App struct {
	session *session.Store
	tui     *tui.TUI
	logger  *logger.Logger
}

func NewApp(sess *session.Store, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if sess == nil || ui == nil {
		return nil, errors.New("session store and ui are required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		session: sess,
		tui:     ui,
		logger:  log,
	}, nil
}

// Run implements [Client]. Returns nil when the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	a.session.Bootstrap(ctx)

	notice := ""
	for {
		if !a.session.Current().Authenticated() {
			_, err := a.tui.LoginFlow(ctx, notice)
			if err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		logout, sessionExpired, err := a.tui.MainLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		notice = ""
		if sessionExpired {
			notice = sessionExpiredNotice
		}
		a.logger.Info().Bool("session_expired", sessionExpired).Msg("logged out, returning to login screen")
	}
}
