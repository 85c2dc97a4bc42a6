package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruminaider/combobox/cmd/combobox/tui"
	"github.com/ruminaider/combobox/internal/catalog"
	"github.com/ruminaider/combobox/internal/combobox"
	"github.com/ruminaider/combobox/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addDataFlags(fs)
	addDemoFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadSettings_DefaultsToBuiltin(t *testing.T) {
	cfg, data, err := loadSettings(newFlags(t), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, catalog.Builtin(), data)
}

func TestLoadSettings_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("mode: single\ndebounce_ms: 50\n"), 0644))
	dataPath := filepath.Join(dir, "opts.yaml")
	require.NoError(t, os.WriteFile(dataPath, []byte("options:\n  - id: x\n  - id: y\n    group: G\n"), 0644))

	fs := newFlags(t, "--data", dataPath, "--multi", "--external", "--debounce", "300", "--value", "x,y")
	cfg, data, err := loadSettings(fs, cfgPath)
	require.NoError(t, err)

	assert.True(t, cfg.Multi())
	assert.True(t, cfg.External())
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())
	assert.Equal(t, []string{"x", "y"}, cfg.DefaultValue)
	assert.Equal(t, []string{"x", "y"}, combobox.IDs(data))
	assert.Equal(t, "x", data[0].Label, "label defaults to id")
}

func TestLoadSettings_UnsetFlagsKeepConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("mode: multi\nmatcher: fuzzy\n"), 0644))

	cfg, _, err := loadSettings(newFlags(t), cfgPath)
	require.NoError(t, err)
	assert.True(t, cfg.Multi())
	assert.Equal(t, config.MatcherFuzzy, cfg.Matcher)
}

func TestLoadSettings_RejectsInvalidFlag(t *testing.T) {
	fs := newFlags(t, "--matcher", "regex")
	_, _, err := loadSettings(fs, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoadSettings_MissingDataFile(t *testing.T) {
	fs := newFlags(t, "--data", filepath.Join(t.TempDir(), "nope.yaml"))
	_, _, err := loadSettings(fs, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestModelOptions_SourceOnlyWhenPagedOrExternal(t *testing.T) {
	cfg := config.Default()
	data := catalog.Builtin()

	assert.Nil(t, modelOptions(cfg, data, false).Source)
	assert.NotNil(t, modelOptions(cfg, data, true).Source)

	cfg.Search = config.SearchExternal
	o := modelOptions(cfg, data, false)
	assert.NotNil(t, o.Source)
	assert.True(t, o.External)
	assert.Equal(t, cfg.PageSize, o.PageSize)
}

func TestRunList(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultValue = []string{"remix"}
	var out bytes.Buffer

	require.NoError(t, runList(&out, cfg, catalog.Builtin(), "re"))

	got := out.String()
	assert.Contains(t, got, "REACT\n")
	assert.Contains(t, got, "  ✓ remix")
	assert.Contains(t, got, "fresh")
	assert.NotContains(t, got, "astro")
}

func TestRunList_DisabledAndEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runList(&out, config.Default(), catalog.Builtin(), "gatsby"))
	assert.Contains(t, out.String(), "(disabled)")

	out.Reset()
	require.NoError(t, runList(&out, config.Default(), catalog.Builtin(), "zzz"))
	assert.Equal(t, "No results.\n", out.String())
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, tui.Result{Cancelled: true})
	assert.Equal(t, "Cancelled.\n", out.String())

	out.Reset()
	printResult(&out, tui.Result{})
	assert.Equal(t, "Nothing selected.\n", out.String())

	out.Reset()
	printResult(&out, tui.Result{IDs: []string{"astro"}, Options: []combobox.Option{{ID: "astro", Label: "Astro"}}})
	assert.Equal(t, "  ✓ Astro (astro)\n", out.String())
}

func TestNonNegativeInt(t *testing.T) {
	assert.NoError(t, nonNegativeInt("0"))
	assert.NoError(t, nonNegativeInt("250"))
	assert.Error(t, nonNegativeInt("-1"))
	assert.Error(t, nonNegativeInt("soon"))
}

func TestApplyInitAnswers(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, applyInitAnswers(&cfg, "250", "5"))
	assert.Equal(t, 250, cfg.DebounceMS)
	assert.Equal(t, 5, cfg.MaxDisplayedItems)

	cfg = config.Default()
	assert.Error(t, applyInitAnswers(&cfg, "soon", "5"))
	assert.Error(t, applyInitAnswers(&cfg, "250", "many"))
	assert.Equal(t, config.Default(), cfg, "nothing applied on a parse error")

	assert.ErrorIs(t, applyInitAnswers(&cfg, "-1", "5"), config.ErrInvalid)
}
