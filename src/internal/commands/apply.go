package commands

import (
	"flag"

	"github.com/saya-palworld/saya/src/internal/log"
	"github.com/saya-palworld/saya/src/internal/settings"
	"github.com/saya-palworld/saya/src/internal/translator"
)

func CreateApplyCommand() *ApplyCommand {
	gc := &ApplyCommand{
		fs: flag.NewFlagSet("apply", flag.ExitOnError),
	}
	return gc
}

type ApplyCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	section *settings.Section
}

func (g *ApplyCommand) Name() string {
	return g.fs.Name()
}

func (g *ApplyCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if section, err := loadSettingsOrFail(ctx.Paths); err != nil {
		return err
	} else {
		g.section = section
	}

	return nil
}

func (g *ApplyCommand) Run() error {
	selection, err := translator.New(g.ctx.Paths).Apply(g.section)
	if err != nil {
		return err
	}

	if selection.Selected() {
		log.Infof("Configuration applied, active world: %s", selection.World)
	} else {
		log.Infof("Configuration applied, no active world yet")
	}
	return nil
}
