// Package log provides leveled console logging for saya.
//
// Messages are prefixed with a colored level tag (DBG, INF, WRN, ERR).
// Debug messages are only printed in verbose mode. Errors always go to
// stderr; everything else goes to stdout unless SetForceStdErr is enabled,
// which commands printing generated files to stdout rely on.
//
//	log.Infof("World %s detected, setting configuration.", world)
//	log.Warnf("Cannot list worlds directory %s: %v", dir, err)
//
//	if err != nil {
//	    log.Fatalf("Failed to write world settings: %v", err) // exits with code 1
//	}
package log
