package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/saya-palworld/saya/src/internal/log"
	"github.com/saya-palworld/saya/src/internal/translator"
	"github.com/saya-palworld/saya/src/internal/utils"
	"github.com/saya-palworld/saya/src/internal/worlds"
)

const writeTestFile = ".writetest"

func CreateSelfCheckCommand() *SelfCheckCommand {
	gc := &SelfCheckCommand{
		fs: flag.NewFlagSet("self-check", flag.ExitOnError),
	}
	return gc
}

type SelfCheckCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
}

func (g *SelfCheckCommand) Name() string {
	return g.fs.Name()
}

func (g *SelfCheckCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *SelfCheckCommand) Run() error {
	log.Infof("Running self-check...")
	paths := g.ctx.Paths
	allOk := true

	if !g.checkSettings() {
		allOk = false
	}

	if err := checkWritable(paths.SaveGamesDir); err != nil {
		log.Errorf("Can't write to %s. Make sure it is mounted as writable! (%v)", paths.SaveGamesDir, err)
		allOk = false
	} else {
		log.Infof("Save directory %s is writable", paths.SaveGamesDir)
	}

	selection := worlds.Discover(paths.WorldsDir)
	log.Infof("Found %d world(s) in %s", len(selection.Candidates), paths.WorldsDir)

	if !allOk {
		return fmt.Errorf("file system requirements were not met")
	}

	log.Infof("Self-check passed")
	return nil
}

// checkWritable creates and removes a probe file in dir. A missing dir fails
// the check, it must be provided by the volume mount.
func checkWritable(dir string) error {
	probe := filepath.Join(dir, writeTestFile)
	file, err := os.OpenFile(probe, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	utils.CloseOrWarn(file)

	if err := os.Remove(probe); err != nil {
		log.Warnf("Failed to remove %s: %v", probe, err)
	}
	return nil
}

func (g *SelfCheckCommand) checkSettings() bool {
	paths := g.ctx.Paths

	section, err := loadSettingsOrFail(paths)
	if err != nil {
		log.Errorf("Failed to use settings file %s. Make sure it exists and is mounted as readable! (%v)", paths.SettingsFile, err)
		return false
	}
	log.Infof("Settings file %s: %d option(s) in [%s], md5 %s", paths.SettingsFile, section.Len(), section.Name, section.Checksum)

	if _, err := translator.New(paths).Preview(section); err != nil {
		log.Errorf("Settings cannot be translated: %v", err)
		return false
	}
	return true
}
