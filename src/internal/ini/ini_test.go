package ini

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sayaerrors "github.com/saya-palworld/saya/src/internal/errors"
	"github.com/saya-palworld/saya/src/internal/settings"
)

var optionSettingsRegexp = regexp.MustCompile(`^OptionSettings=\(([A-Za-z0-9_]+=(-?\d+|True|False|"[^"]*"),)*\)$`)

func TestSerializeOptionSettings(t *testing.T) {
	entries := []settings.Entry{
		{Key: "Difficulty", Value: settings.StringValue("None")},
		{Key: "DayTimeSpeedRate", Value: settings.IntValue(1)},
		{Key: "bEnableInvaderEnemy", Value: settings.BoolValue(true)},
	}

	out, err := SerializeOptionSettings(entries)
	require.NoError(t, err)

	assert.Equal(t,
		"[/Script/Pal.PalGameWorldSettings]\nOptionSettings=(Difficulty=\"None\",DayTimeSpeedRate=1,bEnableInvaderEnemy=True,)\n",
		out)
}

func TestSerializeOptionSettings_MatchesLinePattern(t *testing.T) {
	entries := []settings.Entry{
		{Key: "ServerName", Value: settings.StringValue("Saya {{world}} server")},
		{Key: "ServerPlayerMaxNum", Value: settings.IntValue(32)},
		{Key: "DeathPenalty", Value: settings.StringValue("All")},
		{Key: "bIsPvP", Value: settings.BoolValue(false)},
		{Key: "CoopPlayerMaxNum", Value: settings.IntValue(-1)},
		{Key: "AdminPassword", Value: settings.StringValue("")},
	}

	out, err := SerializeOptionSettings(entries)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[/Script/Pal.PalGameWorldSettings]", lines[0])
	assert.Regexp(t, optionSettingsRegexp, lines[1])
	assert.Equal(t, "", lines[2])
	assert.Contains(t, lines[1], `ServerName="Saya {{world}} server",ServerPlayerMaxNum=32,DeathPenalty="All",bIsPvP=False,CoopPlayerMaxNum=-1,AdminPassword="",`)
}

func TestSerializeOptionSettings_Empty(t *testing.T) {
	out, err := SerializeOptionSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, "[/Script/Pal.PalGameWorldSettings]\nOptionSettings=()\n", out)
}

func TestSerializeOptionSettings_QuoteInString(t *testing.T) {
	entries := []settings.Entry{
		{Key: "ServerName", Value: settings.StringValue("ok")},
		{Key: "ServerDescription", Value: settings.StringValue(`say "hi"`)},
	}

	out, err := SerializeOptionSettings(entries)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, errors.Is(err, sayaerrors.ErrSettings))
	assert.Contains(t, err.Error(), "ServerDescription")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value    settings.Value
		expected string
	}{
		{settings.IntValue(0), "0"},
		{settings.IntValue(255), "255"},
		{settings.BoolValue(true), "True"},
		{settings.BoolValue(false), "False"},
		{settings.StringValue("None"), `"None"`},
		{settings.StringValue("It's fine"), `"It's fine"`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got, err := FormatValue(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatValue_Nil(t *testing.T) {
	_, err := FormatValue(nil)
	require.Error(t, err)
}

func TestRenderLocalSettings(t *testing.T) {
	assert.Equal(t,
		"[/Script/Pal.PalGameLocalSettings]\nDedicatedServerName=Home",
		RenderLocalSettings("Home"))
	assert.Equal(t,
		"[/Script/Pal.PalGameLocalSettings]\nDedicatedServerName=0123456789ABCDEF0123456789ABCDEF",
		RenderLocalSettings("0123456789ABCDEF0123456789ABCDEF"))
}
