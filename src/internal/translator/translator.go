// Package translator turns saya's settings into the Palworld server configuration files.
//
// A run has two strictly sequential steps:
//
//  1. Serialize the options table and overwrite PalWorldSettings.ini.
//  2. Pick the active world from the save directory and, if one was
//     found, overwrite GameUserSettings.ini with its name.
//
// Step 1 is fully serialized before the file is opened, so an option that
// cannot be translated leaves the previous file untouched, and step 2 never
// runs after a failed step 1. A missing save directory is not an error.
package translator

import (
	"fmt"

	"github.com/saya-palworld/saya/src/internal/config"
	"github.com/saya-palworld/saya/src/internal/errors"
	"github.com/saya-palworld/saya/src/internal/ini"
	"github.com/saya-palworld/saya/src/internal/log"
	"github.com/saya-palworld/saya/src/internal/settings"
	"github.com/saya-palworld/saya/src/internal/utils"
	"github.com/saya-palworld/saya/src/internal/worlds"
)

type Translator struct {
	paths *config.Paths
}

func New(paths *config.Paths) *Translator {
	return &Translator{paths: paths}
}

// Preview returns the PalWorldSettings.ini content for section without writing it.
func (t *Translator) Preview(section *settings.Section) (string, error) {
	return ini.SerializeOptionSettings(section.Entries)
}

// WriteWorldSettings serializes section and overwrites PalWorldSettings.ini.
func (t *Translator) WriteWorldSettings(section *settings.Section) error {
	log.Infof("Creating world settings file...")

	content, err := t.Preview(section)
	if err != nil {
		return err
	}

	if err := utils.WriteFile(t.paths.WorldSettingsFile, []byte(content)); err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to write %s", t.paths.WorldSettingsFile), err)
	}

	log.Infof("Wrote %d option(s) to %s", section.Len(), t.paths.WorldSettingsFile)
	return nil
}

// WriteActiveWorld selects the world to load and writes GameUserSettings.ini when one was found.
func (t *Translator) WriteActiveWorld() (worlds.Selection, error) {
	log.Infof("Creating user settings file...")

	selection := worlds.Discover(t.paths.WorldsDir)
	if !selection.Selected() {
		return selection, nil
	}

	content := ini.RenderLocalSettings(selection.World)
	if err := utils.WriteFile(t.paths.LocalSettingsFile, []byte(content)); err != nil {
		return selection, errors.NewWorldError(fmt.Sprintf("failed to write %s", t.paths.LocalSettingsFile), err)
	}

	log.Infof("Active world set to %s in %s", selection.World, t.paths.LocalSettingsFile)
	return selection, nil
}

// Apply runs both steps in order and stops at the first failure.
func (t *Translator) Apply(section *settings.Section) (worlds.Selection, error) {
	if err := t.WriteWorldSettings(section); err != nil {
		return worlds.Selection{}, err
	}
	return t.WriteActiveWorld()
}
