package ports

import "github.com/aalvaropc/envlines/internal/domain"

// ResourceReader loads and decodes a text resource in full (e.g., from the filesystem).
type ResourceReader interface {
	ReadResource(path string, encoding string) (domain.TextResource, error)
}
