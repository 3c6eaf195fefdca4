// Package worlds discovers saved worlds and picks the one the server should load.
//
// Each world is a subdirectory of Pal/Saved/SaveGames/0 named after the world
// id. With several worlds there is no way to tell which one is wanted, so the
// first one in listing order is used and a warning is logged.
package worlds

import (
	"os"
	"strings"

	"github.com/saya-palworld/saya/src/internal/log"
)

// Selection is the outcome of choosing a world.
type Selection struct {
	// World is the selected world, empty when none was found.
	World string
	// Candidates lists every world directory that was found.
	Candidates []string
}

// Selected reports whether a world was chosen.
func (s Selection) Selected() bool {
	return s.World != ""
}

// Ambiguous reports whether the choice was made between several worlds.
func (s Selection) Ambiguous() bool {
	return len(s.Candidates) > 1
}

// List returns the names of the subdirectories of dir, sorted by name.
// A directory that cannot be read counts as empty.
func List(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warnf("Cannot list worlds in %s, assuming there are none: %v", dir, err)
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			log.Debugf("Skipping %s: not a directory", entry.Name())
			continue
		}
		names = append(names, entry.Name())
	}
	return names
}

// Select picks the world to activate from names.
func Select(names []string) Selection {
	s := Selection{Candidates: names}

	switch len(names) {
	case 0:
		log.Infof("No previous world, this seems to be a first time setup!")
	case 1:
		s.World = names[0]
		log.Infof("World %s detected, setting configuration.", s.World)
	default:
		s.World = names[0]
		log.Warnf("Multiple worlds found (%s)! Picking %s, is this what you want?", strings.Join(names, ", "), s.World)
	}

	return s
}

// Discover lists dir and selects a world from it.
func Discover(dir string) Selection {
	return Select(List(dir))
}
