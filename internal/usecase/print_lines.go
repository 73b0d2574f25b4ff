package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/envlines/internal/domain"
	"github.com/aalvaropc/envlines/internal/ports"
)

type PrintLines struct {
	reader  ports.ResourceReader
	printer ports.LinePrinter
	log     *slog.Logger
}

type PrintOption func(*PrintLines)

func WithLogger(l *slog.Logger) PrintOption {
	return func(uc *PrintLines) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewPrintLines(r ports.ResourceReader, p ports.LinePrinter, opts ...PrintOption) *PrintLines {
	uc := &PrintLines{
		reader:  r,
		printer: p,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute prints every significant line of the resource at path and returns
// how many were printed. The resource is fully read and decoded before
// anything is printed, so a failed read produces no output.
func (uc *PrintLines) Execute(ctx context.Context, path string, encoding string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	res, err := uc.reader.ReadResource(path, encoding)
	if err != nil {
		uc.log.Debug("lines.read_failed", "path", path, "kind", domain.KindOf(err), "error", err)
		return 0, err
	}

	all := res.Lines()
	lines := domain.Significant(all)
	uc.log.Debug("lines.read", "path", res.Path, "encoding", res.Encoding, "total", len(all), "significant", len(lines))

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := uc.printer.PrintLines(res, lines); err != nil {
		return 0, err
	}

	uc.log.Info("lines.printed", "path", res.Path, "count", len(lines))
	return len(lines), nil
}

// Load returns the significant lines without printing them.
func (uc *PrintLines) Load(ctx context.Context, path string, encoding string) (domain.TextResource, []domain.Line, error) {
	if err := ctx.Err(); err != nil {
		return domain.TextResource{}, nil, err
	}

	res, err := uc.reader.ReadResource(path, encoding)
	if err != nil {
		return domain.TextResource{}, nil, err
	}
	return res, domain.Significant(res.Lines()), nil
}
