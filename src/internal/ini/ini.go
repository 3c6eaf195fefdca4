// Package ini renders the Unreal-style INI files read by the Palworld dedicated server.
package ini

import (
	"fmt"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/saya-palworld/saya/src/internal/errors"
	"github.com/saya-palworld/saya/src/internal/settings"
)

const (
	WorldSettingsSection = "/Script/Pal.PalGameWorldSettings"
	LocalSettingsSection = "/Script/Pal.PalGameLocalSettings"

	TMPL_SECTION         = "section"
	TMPL_OPTION_SETTINGS = "option_settings"
	TMPL_WORLD           = "world"
)

var (
	worldSettingsTemplate = fasttemplate.New("[{{section}}]\nOptionSettings=({{option_settings}})\n", "{{", "}}")
	// The server reads this file as-is; it has no trailing newline.
	localSettingsTemplate = fasttemplate.New("[{{section}}]\nDedicatedServerName={{world}}", "{{", "}}")
)

// SerializeOptionSettings renders entries as the PalWorldSettings.ini document.
// Every assignment is terminated by a comma, including the last one.
func SerializeOptionSettings(entries []settings.Entry) (string, error) {
	var sb strings.Builder
	for _, entry := range entries {
		literal, err := FormatValue(entry.Value)
		if err != nil {
			return "", errors.NewSettingsError(fmt.Sprintf("cannot serialize option %s", entry.Key), err)
		}
		sb.WriteString(entry.Key)
		sb.WriteByte('=')
		sb.WriteString(literal)
		sb.WriteByte(',')
	}

	return worldSettingsTemplate.ExecuteString(map[string]interface{}{
		TMPL_SECTION:         WorldSettingsSection,
		TMPL_OPTION_SETTINGS: sb.String(),
	}), nil
}

// FormatValue returns the literal written after "Key=" for v.
func FormatValue(v settings.Value) (string, error) {
	switch val := v.(type) {
	case settings.IntValue:
		return val.String(), nil
	case settings.BoolValue:
		if val {
			return "True", nil
		}
		return "False", nil
	case settings.StringValue:
		// Strings are not escaped, a quote would end the literal early.
		if strings.ContainsRune(string(val), '"') {
			return "", fmt.Errorf("string value %q contains a double quote", string(val))
		}
		return `"` + string(val) + `"`, nil
	default:
		return "", errors.NewInternalError(fmt.Sprintf("unknown value type %T", v), nil)
	}
}

// RenderLocalSettings renders the GameUserSettings.ini document selecting world.
func RenderLocalSettings(world string) string {
	return localSettingsTemplate.ExecuteString(map[string]interface{}{
		TMPL_SECTION: LocalSettingsSection,
		TMPL_WORLD:   world,
	})
}
