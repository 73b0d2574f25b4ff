package tui

import (
	"log/slog"

	"github.com/aalvaropc/envlines/internal/domain"
)

type Deps struct {
	Resource domain.TextResource
	Lines    []domain.Line
	Prefix   string

	Logger *slog.Logger
}
