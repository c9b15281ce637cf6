package cli

import (
	"bufio"
	"io"
	"time"

	"task-manager/internal/config"
	"task-manager/internal/workspace"
)

// App carries what every command handler needs: the session, the
// configuration, the terminal streams and the form prompter.
type App struct {
	session      *workspace.Session
	config       *config.Config
	in           *bufio.Reader
	out          io.Writer
	prompter     Prompter
	errorHandler *ErrorHandler
	registry     *CommandRegistry
}

// NewApp creates an application reading answers from in and writing to out
func NewApp(session *workspace.Session, cfg *config.Config, in io.Reader, out io.Writer) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	reader := bufio.NewReader(in)

	app := &App{
		session:      session,
		config:       cfg,
		in:           reader,
		out:          out,
		prompter:     NewLinePrompter(reader, out, session.TaskValidator()),
		errorHandler: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// SetPrompter replaces the form prompter
func (a *App) SetPrompter(p Prompter) {
	a.prompter = p
}

// timeout returns the configured per-command timeout
func (a *App) timeout() time.Duration {
	if a.config.Application.Timeout > 0 {
		return a.config.Application.Timeout
	}
	return 60 * time.Second
}
