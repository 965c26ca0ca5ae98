package options

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/m2gram/capability"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m2gram.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefaults(t *testing.T) {
	opts, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDialect, opts.Dialect)
	assert.Empty(t, opts.Capabilities)
	cfg, err := Apply(opts)
	require.NoError(t, err)
	assert.Equal(t, capability.PIM4, cfg.Dialect())
	assert.Equal(t, capability.Capabilities(capability.PIM4), cfg.Active())
}

func TestPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.options")
	defer teardown()
	//
	path := writeConfig(t, `
dialect: Extended
capabilities:
  variant-records: true
  local-modules: false
`)
	opts, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Extended", opts.Dialect)
	assert.Equal(t, map[string]bool{"variant-records": true, "local-modules": false}, opts.Capabilities)
	//
	t.Setenv("M2GRAM_DIALECT", "PIM3")
	t.Setenv("M2GRAM_CAP_WITH_STATEMENT", "false")
	opts, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "PIM3", opts.Dialect)
	assert.False(t, opts.Capabilities["with-statement"])
	assert.True(t, opts.Capabilities["variant-records"])
	//
	fs := flags(t, "--dialect=PIM4", "--config", path, "--variant-records=false")
	opts, err = Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "PIM4", opts.Dialect)
	assert.False(t, opts.Capabilities["variant-records"])
	_, set := opts.Capabilities["octal-literals"]
	assert.False(t, set, "unchanged flags must not override")
}

func TestMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "m2gram.options")
	defer teardown()
	//
	cfg, err := Apply(&Options{
		Dialect: "extended",
		Capabilities: map[string]bool{
			"local-modules":      true,
			"unqualified-import": true,
		},
	})
	// the prerequisite is applied first, whatever the names
	require.NoError(t, err)
	assert.True(t, cfg.IsEnabled(capability.UnqualifiedImport))
	assert.True(t, cfg.IsEnabled(capability.LocalModules))
	//
	cfg, err = Apply(&Options{
		Dialect: "extended",
		Capabilities: map[string]bool{
			"local-modules":      true,
			"unqualified-import": false,
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, capability.ErrUnmetDependency))
	assert.False(t, cfg.IsEnabled(capability.LocalModules))
}

func TestApplyContinuesAfterErrors(t *testing.T) {
	cfg, err := Apply(&Options{
		Dialect: "PIM3",
		Capabilities: map[string]bool{
			"OctalLiterals":    false,
			"const-parameters": true,
			"no-such-thing":    true,
			"octal-literals":   true,
			"with-statement":   false,
		},
	})
	require.NotNil(t, cfg)
	assert.True(t, errors.Is(err, capability.ErrImmutable))
	assert.True(t, errors.Is(err, ErrUnknownCapability))
	assert.True(t, errors.Is(err, capability.ErrDuplicateAssignment))
	assert.False(t, cfg.IsEnabled(capability.OctalLiterals))
	assert.False(t, cfg.IsEnabled(capability.WithStatement))
}

func TestUnknownDialect(t *testing.T) {
	cfg, err := Apply(&Options{Dialect: "Oberon"})
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrUnknownDialect))
}
