package mainboilerplate

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Log   LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
	Limit int       `long:"limit" default:"3"`
}

func TestParseConfigFile(t *testing.T) {
	var dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.ini"), []byte(`
[Application Options]
limit = 7
unknown = ignored

[Logging]
level = debug
`), 0o644))

	var cfg testConfig
	var parser = flags.NewParser(&cfg, flags.None)
	require.NoError(t, ParseConfigFile(parser, "test.ini", []string{filepath.Join(dir, "absent"), dir}))
	assert.Equal(t, flags.None, parser.Options, "options are restored")

	_, err := parser.ParseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Limit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestPrintConfig_RoundTrip(t *testing.T) {
	var cfg testConfig
	var parser = flags.NewParser(&cfg, flags.None)
	_, err := parser.ParseArgs([]string{"--limit=9", "--log.level=error", "--log.format=json"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, PrintConfig{Parser: parser, Out: &out}.Execute(nil))
	assert.Contains(t, out.String(), "level = error")

	var dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.ini"), out.Bytes(), 0o644))

	var again testConfig
	var reread = flags.NewParser(&again, flags.None)
	require.NoError(t, ParseConfigFile(reread, "test.ini", []string{dir}))
	_, err = reread.ParseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestParseConfigFile_Missing(t *testing.T) {
	var cfg testConfig
	var parser = flags.NewParser(&cfg, flags.None)
	assert.NoError(t, ParseConfigFile(parser, "none.ini", []string{t.TempDir()}))
}

func TestInitLog(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	defer log.SetFormatter(log.StandardLogger().Formatter)

	InitLog(LogConfig{Level: "debug", Format: "json"})
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	InitLog(LogConfig{Level: "warn", Format: "color"})
	assert.Equal(t, log.WarnLevel, log.GetLevel())
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil, "fine") })
	assert.Panics(t, func() { Must(errors.New("boom"), "failed", "key", "value") })
}
