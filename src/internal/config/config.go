package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/saya-palworld/saya/src/internal/errors"
	"github.com/saya-palworld/saya/src/internal/log"
	"github.com/saya-palworld/saya/src/internal/utils"
)

const (
	DefaultSettingsFile    = "/config/palworld_conf.toml"
	DefaultSettingsSection = "Server"
)

var (
	serverConfigDir = filepath.Join("Pal", "Saved", "Config", "LinuxServer")
	saveGamesDir    = filepath.Join("Pal", "Saved", "SaveGames")
)

// Environment holds the raw values read from environment variables.
type Environment struct {
	// ServerDir is the Palworld dedicated server installation directory.
	ServerDir string `env:"PALSERVERDIR,required" validate:"required"`
	// SettingsFile is the TOML settings document to translate.
	SettingsFile string `env:"SAYA_SETTINGS_FILE" envDefault:"/config/palworld_conf.toml" validate:"required"`
	// SettingsSection is the table of the settings document holding server options.
	SettingsSection string `env:"SAYA_SETTINGS_SECTION" envDefault:"Server" validate:"required,section_name"`
}

// Paths is the explicit configuration handed to the translator.
type Paths struct {
	ServerDir         string `validate:"required,absolute_path"`
	SettingsFile      string `validate:"required,absolute_path"`
	SettingsSection   string `validate:"required,section_name"`
	WorldSettingsFile string `validate:"required,absolute_path"`
	LocalSettingsFile string `validate:"required,absolute_path"`
	WorldsDir         string `validate:"required,absolute_path"`
	// SaveGamesDir is the parent of WorldsDir and must be writable by the server.
	SaveGamesDir string `validate:"required,absolute_path"`
}

// LoadEnvironment reads the environment variables of the process.
func LoadEnvironment() (*Environment, error) {
	return loadEnvironment(env.Options{})
}

func loadEnvironment(opts env.Options) (*Environment, error) {
	var e Environment
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return nil, errors.NewConfigError("failed to read environment", err)
	}

	if err := validate.Struct(&e); err != nil {
		return nil, errors.NewValidationError("invalid environment", convertValidatorErrors(err, "", ""))
	}

	return &e, nil
}

// NewPaths derives every file location from env. A non-empty settingsFile
// overrides env.SettingsFile. Relative paths are resolved against the
// working directory.
func NewPaths(e *Environment, settingsFile string) (*Paths, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.NewConfigError("failed to get working directory", err)
	}

	if settingsFile == "" {
		settingsFile = e.SettingsFile
	}

	serverDir := utils.GetAbsolutePath(e.ServerDir, cwd)
	p := &Paths{
		ServerDir:         serverDir,
		SettingsFile:      utils.GetAbsolutePath(settingsFile, cwd),
		SettingsSection:   e.SettingsSection,
		WorldSettingsFile: filepath.Join(serverDir, serverConfigDir, "PalWorldSettings.ini"),
		LocalSettingsFile: filepath.Join(serverDir, serverConfigDir, "GameUserSettings.ini"),
		WorldsDir:         filepath.Join(serverDir, saveGamesDir, "0"),
		SaveGamesDir:      filepath.Join(serverDir, saveGamesDir),
	}

	if err := p.Validate(); err != nil {
		return nil, errors.NewValidationError("invalid paths", err)
	}

	log.Debugf("Server directory: %s", p.ServerDir)
	log.Debugf("Settings file: %s [%s]", p.SettingsFile, p.SettingsSection)
	log.Debugf("Worlds directory: %s", p.WorldsDir)

	return p, nil
}

// Validate checks that every location is set and absolute.
func (p *Paths) Validate() error {
	if err := validate.Struct(p); err != nil {
		return convertValidatorErrors(err, "", "")
	}
	return nil
}

func (p *Paths) String() string {
	return fmt.Sprintf("server=%s settings=%s[%s]", p.ServerDir, p.SettingsFile, p.SettingsSection)
}
