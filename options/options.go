/*
Package options loads the dialect and capability selection of a compilation
session and turns it into a capability configuration.

Options are merged from several sources. Precedence, from highest to lowest:

    command-line flags     --dialect=PIM3 --octal-literals=false
    environment variables  M2GRAM_DIALECT=PIM3 M2GRAM_CAP_OCTAL_LITERALS=false
    configuration file     m2gram.yaml
    defaults               dialect PIM4, no capability overrides

A configuration file looks like this:

    dialect: Extended
    capabilities:
      variant-records: true
      local-modules: false

Apply seeds a configuration from the dialect and sets every capability
mentioned, reporting all rejected settings rather than stopping at the first.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package options

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/npillmayer/m2gram/capability"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/pflag"
)

// tracer traces with key 'm2gram.options'.
func tracer() tracing.Trace {
	return tracing.Select("m2gram.options")
}

// DefaultConfigFile is read if no configuration file is given explicitly and
// it exists in the current directory.
const DefaultConfigFile = "m2gram.yaml"

// DefaultDialect is used if no dialect is selected.
const DefaultDialect = "PIM4"

const envPrefix = "M2GRAM_"

// Errors returned by Apply.
var (
	ErrUnknownDialect    = errors.New("unknown dialect")
	ErrUnknownCapability = errors.New("unknown capability")
)

// Options is the user's selection of dialect and capabilities.
type Options struct {
	Dialect      string          `koanf:"dialect"`
	Capabilities map[string]bool `koanf:"capabilities"`
	Trace        string          `koanf:"trace"`
}

// RegisterFlags adds the flags understood by Load to fs: --config, --dialect,
// --trace and one boolean flag per capability, named by its option name.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "configuration file (default "+DefaultConfigFile+")")
	fs.StringP("dialect", "d", DefaultDialect, "dialect, one of "+strings.Join(capability.DialectNames(), ", "))
	fs.String("trace", "Error", "trace level (Debug, Info, Error)")
	for c := capability.Capability(0); c < capability.Capability(capability.Count); c++ {
		fs.Bool(c.OptionName(), false, "set capability "+c.String())
	}
}

// Load merges defaults, the configuration file, environment variables and the
// explicitly set flags of fs. fs may be nil. If cfgFile is empty, the flag
// --config or DefaultConfigFile is used, if present.
func Load(cfgFile string, fs *pflag.FlagSet) (*Options, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dialect": DefaultDialect,
		"trace":   "Error",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" && fs != nil {
		cfgFile, _ = fs.GetString("config")
	}
	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
		tracer().Infof("read configuration file %s", cfgFile)
	}

	// M2GRAM_DIALECT -> dialect, M2GRAM_CAP_OCTAL_LITERALS -> capabilities.octal-literals
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if fs != nil {
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			if _, ok := capability.Parse(f.Name); ok {
				return "capabilities." + f.Name, posflag.FlagVal(fs, f)
			}
			return f.Name, posflag.FlagVal(fs, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var opts Options
	if err := k.Unmarshal("", &opts); err != nil {
		return nil, fmt.Errorf("unable to decode options: %w", err)
	}
	return &opts, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if name, ok := strings.CutPrefix(s, "cap_"); ok {
		return "capabilities." + strings.ReplaceAll(name, "_", "-")
	}
	return s
}

// Apply creates a configuration for the selected dialect and sets the
// selected capabilities. Prerequisites are set before the capabilities
// depending on them, otherwise the order is lexical by name. Rejected settings
// do not stop the process; all of them are returned, joined into one error.
// An unknown dialect is fatal and no configuration is returned.
func Apply(opts *Options) (*capability.Configuration, error) {
	d, ok := capability.ParseDialect(opts.Dialect)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, opts.Dialect)
	}
	cfg := capability.ForDialect(d)
	var errs []error
	type setting struct {
		name  string
		cap   capability.Capability
		depth int
	}
	settings := make([]setting, 0, len(opts.Capabilities))
	for name := range opts.Capabilities {
		c, ok := capability.Parse(name)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownCapability, name))
			continue
		}
		settings = append(settings, setting{name: name, cap: c, depth: depth(c)})
	}
	sort.Slice(settings, func(i, j int) bool {
		if settings[i].depth != settings[j].depth {
			return settings[i].depth < settings[j].depth
		}
		return settings[i].name < settings[j].name
	})
	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].Error() < errs[j].Error()
	})
	for _, s := range settings {
		on := opts.Capabilities[s.name]
		if err := cfg.Set(s.cap, on); err != nil {
			errs = append(errs, fmt.Errorf("option %s: %w", s.name, err))
			continue
		}
		tracer().Debugf("option %s=%v", s.name, on)
	}
	return cfg, errors.Join(errs...)
}

// depth is the length of the prerequisite chain of c.
func depth(c capability.Capability) int {
	n := 0
	for p, ok := c.Prerequisite(); ok; p, ok = p.Prerequisite() {
		n++
	}
	return n
}
