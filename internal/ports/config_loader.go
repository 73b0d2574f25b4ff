package ports

import "github.com/aalvaropc/envlines/internal/domain"

type ConfigLoader interface {
	LoadConfig(path string) (domain.Config, error)
}
