package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/saya-palworld/saya/src/internal/commands"
	"github.com/saya-palworld/saya/src/internal/config"
	"github.com/saya-palworld/saya/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to settings file (default $SAYA_SETTINGS_FILE or "+config.DefaultSettingsFile+")")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Saya - Palworld dedicated server configuration\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [command]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  apply                   Write PalWorldSettings.ini and select the active world (default)\n")
		fmt.Fprintf(os.Stderr, "  print-world-settings    Print PalWorldSettings.ini to stdout\n")
		fmt.Fprintf(os.Stderr, "  self-check              Check the settings file and save directory\n\n")
		fmt.Fprintf(os.Stderr, "Environment:\n")
		fmt.Fprintf(os.Stderr, "  PALSERVERDIR            Palworld server directory (required)\n")
		fmt.Fprintf(os.Stderr, "  SAYA_SETTINGS_FILE      Settings file (default %s)\n", config.DefaultSettingsFile)
		fmt.Fprintf(os.Stderr, "  SAYA_SETTINGS_SECTION   Settings table to translate (default %s)\n\n", config.DefaultSettingsSection)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	env, err := config.LoadEnvironment()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if ctx.Paths, err = config.NewPaths(env, ctx.ConfigPath); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debugf("Using %s", ctx.Paths)

	cmds := []commands.Runner{
		commands.CreateApplyCommand(),
		commands.CreatePrintWorldSettingsCommand(),
		commands.CreateSelfCheckCommand(),
	}

	args := flag.Args()
	subcommand := "apply"
	if len(args) > 0 {
		subcommand, args = args[0], args[1:]
	}

	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args, ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	flag.Usage()
	log.Fatalf("Unknown subcommand: %s", subcommand)
}
