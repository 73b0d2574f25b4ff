package ports

import "github.com/aalvaropc/envlines/internal/domain"

// LinePrinter renders the significant lines of a resource.
type LinePrinter interface {
	PrintLines(res domain.TextResource, lines []domain.Line) error
}
