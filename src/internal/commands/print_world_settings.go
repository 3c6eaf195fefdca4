package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/saya-palworld/saya/src/internal/log"
	"github.com/saya-palworld/saya/src/internal/settings"
	"github.com/saya-palworld/saya/src/internal/translator"
)

func CreatePrintWorldSettingsCommand() *PrintWorldSettingsCommand {
	gc := &PrintWorldSettingsCommand{
		fs:  flag.NewFlagSet("print-world-settings", flag.ExitOnError),
		out: os.Stdout,
	}
	return gc
}

type PrintWorldSettingsCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	out     io.Writer
	section *settings.Section
}

func (g *PrintWorldSettingsCommand) Name() string {
	return g.fs.Name()
}

func (g *PrintWorldSettingsCommand) Init(args []string, ctx *AppContext) error {
	log.SetForceStdErr(true)
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

func (g *PrintWorldSettingsCommand) Run() error {
	content, err := translator.New(g.ctx.Paths).Preview(g.section)
	if err != nil {
		return fmt.Errorf("failed to print world settings: %w", err)
	}

	_, err = io.WriteString(g.out, content)
	return err
}
