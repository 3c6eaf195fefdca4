// Package settings loads the server options table from saya's TOML settings document.
//
// Options are returned in the order they appear in the file, each one already
// classified as an IntValue, StringValue or BoolValue. Any other TOML type in
// the options table (floats, dates, arrays, nested tables) is rejected while
// loading, so later stages only ever see those three kinds. Tables other than
// the requested one are ignored.
//
//	section, err := settings.Load("/config/palworld_conf.toml", "Server")
//	if err != nil {
//	    return err
//	}
//	for _, entry := range section.Entries {
//	    fmt.Printf("%s (%s)\n", entry.Key, entry.Value.Kind())
//	}
package settings
