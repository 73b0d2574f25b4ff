package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/envlines/internal/domain"
	"github.com/aalvaropc/envlines/internal/ports"
)

// Printer writes significant lines to w in the configured format.
type Printer struct {
	w      io.Writer
	prefix string
	format domain.OutputFormat
	color  bool
	style  lipgloss.Style
}

func NewPrinter(w io.Writer, cfg domain.OutputConfig) *Printer {
	format := cfg.Format
	if format == "" {
		format = domain.FormatPlain
	}

	// Bound to w so that the style degrades to plain text when w is not a terminal.
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:      w,
		prefix: cfg.Prefix,
		format: format,
		color:  cfg.Color,
		style:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
	}
}

var _ ports.LinePrinter = (*Printer)(nil)

func (p *Printer) PrintLines(res domain.TextResource, lines []domain.Line) error {
	var err error
	switch p.format {
	case domain.FormatPlain:
		err = p.printPlain(lines)
	case domain.FormatJSON:
		err = p.printJSON(res, lines)
	default:
		return &domain.OpError{
			Op:   "render.print",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported format %q (expected plain|json): %w", p.format, domain.ErrInvalidConfig),
		}
	}

	if err != nil {
		return &domain.OpError{
			Op:   "render.print",
			Kind: domain.KindExecution,
			Path: res.Path,
			Err:  err,
		}
	}
	return nil
}

func (p *Printer) printPlain(lines []domain.Line) error {
	prefix := p.prefix
	if p.color && prefix != "" {
		prefix = p.style.Render(prefix)
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(p.w, "%s%s\n", prefix, l.Trimmed); err != nil {
			return err
		}
	}
	return nil
}

type jsonLine struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type jsonListing struct {
	Path     string     `json:"path"`
	Encoding string     `json:"encoding"`
	Prefix   string     `json:"prefix"`
	Lines    []jsonLine `json:"lines"`
}

func (p *Printer) printJSON(res domain.TextResource, lines []domain.Line) error {
	payload := jsonListing{
		Path:     res.Path,
		Encoding: res.Encoding,
		Prefix:   p.prefix,
		Lines:    make([]jsonLine, 0, len(lines)),
	}
	for _, l := range lines {
		payload.Lines = append(payload.Lines, jsonLine{Number: l.Number, Text: l.Trimmed})
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
