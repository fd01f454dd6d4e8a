// Package update wires the state, mapper, dialogs and dispatcher into a
// bubbletea program.
package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/milosmiric/ratado-sub000/internal/app"
	"github.com/milosmiric/ratado-sub000/internal/command"
	"github.com/milosmiric/ratado-sub000/internal/dialog"
	"github.com/milosmiric/ratado-sub000/internal/keys"
	"github.com/milosmiric/ratado-sub000/internal/storage"
	"github.com/milosmiric/ratado-sub000/internal/views"
)

type TickMsg time.Time

type Model struct {
	State *app.State
	Repo  storage.Repository
	Tick  time.Duration
}

func New(st *app.State, repo storage.Repository, tick time.Duration) Model {
	if tick <= 0 {
		tick = time.Second
	}
	return Model{State: st, Repo: repo, Tick: tick}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.Tick)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case TickMsg:
		m.State.OnTick(time.Time(typed))
		return m, tickCmd(m.Tick)

	case tea.KeyMsg:
		// Force-quit is the only key that bypasses an active dialog.
		if typed.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.State.Dialog != nil {
			switch m.State.Dialog.HandleKey(typed) {
			case dialog.ActionSubmit:
				m.run(command.New(command.TypeDialogSubmit))
			case dialog.ActionCancel:
				m.run(command.New(command.TypeDialogCancel))
			}
			return m, nil
		}

		cmd, ok := keys.Map(typed, m.State)
		if !ok {
			return m, nil
		}
		if !m.run(cmd) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// run executes one command, surfacing any error as a status message. It
// returns false when the event loop should stop.
func (m Model) run(cmd command.Command) bool {
	cont, err := command.Execute(context.Background(), cmd, m.State, m.Repo)
	if err != nil {
		m.State.SetStatus(err.Error(), true)
	}
	return cont
}

func (m Model) View() string {
	return views.Render(m.State)
}
