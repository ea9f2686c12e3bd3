package sidebar

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"skillscout/internal/config"
	"skillscout/internal/ipc"
	"skillscout/internal/store"
)

// Run starts the sidebar TUI with its IPC server attached.
func Run(cfg *config.Config) error {
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	log := newLogger(cfg.LogPath)
	st := store.New(cfg.DataDir)
	p := tea.NewProgram(NewModel(st, log), tea.WithAltScreen())

	server, err := ipc.Listen(cfg.SocketPath, func(msg ipc.Message) error {
		return dispatch(p, msg)
	}, log)
	if err != nil {
		return errors.Wrap(err, "failed to start sidebar IPC server")
	}
	defer server.Close()

	// Make sure the socket file goes away on SIGTERM too, not just on a
	// clean quit from inside the TUI.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		<-sigs
		p.Quit()
	}()

	log.WithField("socket", cfg.SocketPath).Info("sidebar started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("sidebar TUI error: %w", err)
	}
	return nil
}

// dispatch validates an IPC message and forwards it into the running
// program. Decode errors are returned to the caller as a failed reply;
// the sidebar state is never touched with half-parsed data.
func dispatch(p *tea.Program, msg ipc.Message) error {
	switch msg.Type {
	case ipc.TypeTodos:
		var todos []TodoItem
		if err := json.Unmarshal(msg.Data, &todos); err != nil {
			return errors.Wrap(err, "invalid todos payload")
		}
		p.Send(todosMsg(todos))

	case ipc.TypeContext:
		var items []ContextItem
		if err := json.Unmarshal(msg.Data, &items); err != nil {
			return errors.Wrap(err, "invalid context payload")
		}
		p.Send(contextMsg(items))

	case ipc.TypeTasks:
		var tasks []TaskItem
		if err := json.Unmarshal(msg.Data, &tasks); err != nil {
			return errors.Wrap(err, "invalid tasks payload")
		}
		p.Send(tasksMsg(tasks))

	case ipc.TypeFocus:
		var tab string
		if err := json.Unmarshal(msg.Data, &tab); err != nil {
			return errors.Wrap(err, "invalid focus payload")
		}
		p.Send(focusMsg(tab))

	default:
		return errors.Errorf("unknown message type %q", msg.Type)
	}
	return nil
}

// newLogger writes to the sidebar log file; the terminal belongs to the TUI.
func newLogger(path string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return log
	}
	log.SetOutput(f)
	return log
}
