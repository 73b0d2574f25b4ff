package ports

import "github.com/aalvaropc/envlines/internal/domain"

// ConfigInitializer writes a starter configuration for a project directory.
type ConfigInitializer interface {
	Init(spec domain.ScaffoldSpec, force bool) error
}
