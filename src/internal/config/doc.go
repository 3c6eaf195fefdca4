// Package config derives saya's file locations from the environment.
//
// The game server installation directory comes from PALSERVERDIR. Every other
// location is a fixed relative segment under it:
//
//   - Pal/Saved/Config/LinuxServer/PalWorldSettings.ini (world settings output)
//   - Pal/Saved/Config/LinuxServer/GameUserSettings.ini (active world output)
//   - Pal/Saved/SaveGames/0 (one subdirectory per saved world)
//
// The settings document location defaults to /config/palworld_conf.toml and
// can be changed with SAYA_SETTINGS_FILE or the -config flag.
//
// # Example Usage
//
//	env, err := config.LoadEnvironment()
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	paths, err := config.NewPaths(env, "")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	fmt.Println(paths.WorldSettingsFile)
//
// Paths is built once at process start and passed explicitly to the
// translator; nothing in saya reads the environment after that.
package config
