// Package commands implements the saya command-line subcommands.
//
// Every command implements Runner: Init parses the command's own flags and
// loads what it needs, Run does the work, Name is used for dispatch.
//
//   - apply: write PalWorldSettings.ini and select the active world (default)
//   - print-world-settings: print PalWorldSettings.ini to stdout
//   - self-check: verify the settings file and save directory are usable
//
// Example:
//
//	cmd := commands.CreateApplyCommand()
//	if err := cmd.Init(args, ctx); err != nil {
//	    log.Fatalf("Failed to initialize command: %v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("Failed to run command: %v", err)
//	}
package commands
