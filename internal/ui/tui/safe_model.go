package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicStatus = "browse: unexpected error, rerun with --log-file for details"

// safeModel keeps a panic in the list from leaving the terminal in raw mode.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered",
				"where", "browse.update",
				"path", s.m.deps.Resource.Path,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)

			s.m.status = panicStatus
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered",
				"where", "browse.view",
				"path", s.m.deps.Resource.Path,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			out = panicStatus
		}
	}()
	return s.m.View()
}

var _ tea.Model = (*safeModel)(nil)
