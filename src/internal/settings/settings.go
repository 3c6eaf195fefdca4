package settings

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/saya-palworld/saya/src/internal/errors"
	"github.com/saya-palworld/saya/src/internal/hashing"
	"github.com/saya-palworld/saya/src/internal/log"
	"github.com/saya-palworld/saya/src/internal/utils"
)

// UnsupportedValueError is returned for an option whose TOML type has no INI rendering.
type UnsupportedValueError struct {
	Key  string
	Type string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("value type not implemented yet: %s is a %s", e.Key, e.Type)
}

// Load reads the settings document at path and returns the named section.
func Load(path, section string) (*Section, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("failed to open settings file %s", path), err)
	}
	defer utils.CloseOrWarn(file)

	content, checksum, err := hashing.ReadAllWithChecksum(file)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("failed to read settings file %s", path), err)
	}

	s, err := Parse(content, section)
	if err != nil {
		return nil, err
	}
	s.Checksum = checksum

	log.Debugf("Loaded %d option(s) from %s [%s], md5 %s", s.Len(), path, section, checksum)
	return s, nil
}

// Parse extracts the named section from a TOML document held in memory.
func Parse(data []byte, section string) (*Section, error) {
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		var derr *toml.DecodeError
		if stderrors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			return nil, errors.NewSettingsError(fmt.Sprintf("failed to parse settings file at line %d, column %d", row, col), err)
		}
		return nil, errors.NewSettingsError("failed to parse settings file", err)
	}

	raw, ok := doc[section]
	if !ok {
		return nil, errors.NewSettingsError(fmt.Sprintf("section [%s] not found", section), nil)
	}
	if _, ok := raw.(map[string]interface{}); !ok {
		return nil, errors.NewSettingsError(fmt.Sprintf("section [%s] is not a table", section), nil)
	}

	// Unmarshal loses key order, so walk the document again to collect entries as written.
	w := &walker{section: section}
	p := unstable.Parser{}
	p.Reset(data)

	var table []string
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table:
			table = keyPath(expr.Key())
			if err := w.checkTable(table, "table"); err != nil {
				return nil, err
			}
		case unstable.ArrayTable:
			table = keyPath(expr.Key())
			if err := w.checkTable(table, "array of tables"); err != nil {
				return nil, err
			}
		case unstable.KeyValue:
			if err := w.visit(table, expr); err != nil {
				return nil, err
			}
		}
	}
	if err := p.Error(); err != nil {
		return nil, errors.NewSettingsError("failed to parse settings file", err)
	}

	return &Section{Name: section, Entries: w.entries}, nil
}

type walker struct {
	section string
	entries []Entry
}

func (w *walker) checkTable(path []string, kind string) error {
	if len(path) > 1 && path[0] == w.section {
		return unsupported(path[1], kind)
	}
	return nil
}

func (w *walker) visit(prefix []string, kv *unstable.Node) error {
	path := append(append([]string{}, prefix...), keyPath(kv.Key())...)
	if path[0] != w.section {
		return nil
	}

	rel := path[1:]
	value := kv.Value()

	switch {
	case len(rel) == 0:
		// Section = { Key = 1, ... }
		it := value.Children()
		for it.Next() {
			if err := w.visit(path, it.Node()); err != nil {
				return err
			}
		}
		return nil
	case len(rel) > 1:
		return unsupported(rel[0], "table")
	}

	v, err := decodeValue(rel[0], value)
	if err != nil {
		return err
	}
	w.entries = append(w.entries, Entry{Key: rel[0], Value: v})
	return nil
}

func decodeValue(key string, n *unstable.Node) (Value, error) {
	switch n.Kind {
	case unstable.Integer:
		i, err := strconv.ParseInt(string(n.Data), 0, 64)
		if err != nil {
			return nil, errors.NewSettingsError(fmt.Sprintf("invalid integer for %s", key), err)
		}
		return IntValue(i), nil
	case unstable.String:
		return StringValue(string(n.Data)), nil
	case unstable.Bool:
		return BoolValue(string(n.Data) == "true"), nil
	case unstable.Float:
		return nil, unsupported(key, "float")
	case unstable.Array:
		return nil, unsupported(key, "array")
	case unstable.InlineTable:
		return nil, unsupported(key, "table")
	case unstable.LocalDate, unstable.LocalTime, unstable.LocalDateTime, unstable.DateTime:
		return nil, unsupported(key, "datetime")
	default:
		return nil, unsupported(key, n.Kind.String())
	}
}

func unsupported(key, kind string) error {
	return errors.NewSettingsError("unsupported option value", &UnsupportedValueError{Key: key, Type: kind})
}

func keyPath(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}
