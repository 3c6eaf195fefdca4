package commands

import (
	"fmt"

	"github.com/saya-palworld/saya/src/internal/config"
	"github.com/saya-palworld/saya/src/internal/settings"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	// ConfigPath overrides the settings file from the environment when set.
	ConfigPath string
	Verbose    bool
	Paths      *config.Paths
}

// loadSettingsOrFail loads the options table the paths point at.
func loadSettingsOrFail(paths *config.Paths) (*settings.Section, error) {
	section, err := settings.Load(paths.SettingsFile, paths.SettingsSection)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return section, nil
}
