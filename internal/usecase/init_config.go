package usecase

import (
	"github.com/aalvaropc/envlines/internal/domain"
	"github.com/aalvaropc/envlines/internal/ports"
)

type InitConfig struct {
	initializer ports.ConfigInitializer
}

func NewInitConfig(initializer ports.ConfigInitializer) *InitConfig {
	return &InitConfig{initializer: initializer}
}

// Execute writes a starter config into root seeded from cfg.
func (uc *InitConfig) Execute(root string, cfg domain.Config, force bool) error {
	return uc.initializer.Init(domain.ScaffoldSpec{
		Root:   root,
		Source: cfg.Source,
		Prefix: cfg.Output.Prefix,
	}, force)
}
