// Package config resolves app-wide settings from the calculator's builtin
// defaults, an optional YAML file, and PCRMIX_* environment variables,
// unmarshalled through Viper (see /cmd for the flag layer on top).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/genolab/pcrmix/internal/pcr"
	"github.com/genolab/pcrmix/internal/report"
)

// Doses are the nominal per-sample reagent volumes, in µL.
type Doses struct {
	// distilled water per sample
	DDW float64 `mapstructure:"ddw" yaml:"ddw"`

	// master mix per sample when dosing stock of strength MixAt
	Mix float64 `mapstructure:"mix" yaml:"mix"`

	// stock strength the mix dose is defined at
	MixAt pcr.Concentration `mapstructure:"mix-at" yaml:"mix-at"`

	// each primer per sample
	Primer float64 `mapstructure:"primer" yaml:"primer"`
}

// Defaults are applied when a flag is not passed on the command line.
type Defaults struct {
	// percent excess to offset pipetting loss
	Excess float64 `mapstructure:"excess" yaml:"excess"`

	// master-mix stock strength
	Mix pcr.Concentration `mapstructure:"mix" yaml:"mix"`

	// report format, text or json
	Output string `mapstructure:"output" yaml:"output"`
}

// Config is the root-level settings struct, a mix of values from the
// config file, the environment, and the builtin defaults.
type Config struct {
	Doses    Doses    `mapstructure:"doses" yaml:"doses"`
	Defaults Defaults `mapstructure:"defaults" yaml:"defaults"`

	// File is the config file the values were read from, empty when
	// running on builtin defaults alone
	File string `mapstructure:"-" yaml:"-"`
}

// Settings hands the calculator its value struct.
func (c Config) Settings() pcr.Settings {
	return pcr.Settings{
		DDWDose:       c.Doses.DDW,
		MixDose:       c.Doses.Mix,
		MixDoseAt:     c.Doses.MixAt,
		PrimerDose:    c.Doses.Primer,
		DefaultExcess: c.Defaults.Excess,
		DefaultMix:    c.Defaults.Mix,
	}
}

// Load resolves the effective configuration. cfgFile, when non-empty,
// names the file to read and must exist; otherwise .pcrmix.yaml is looked
// for in the home directory and then the working directory, and running
// without one is fine. Environment variables override file values, flags
// override both (see /cmd).
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	s := pcr.DefaultSettings()
	v.SetDefault("doses.ddw", s.DDWDose)
	v.SetDefault("doses.mix", s.MixDose)
	v.SetDefault("doses.mix-at", s.MixDoseAt.String())
	v.SetDefault("doses.primer", s.PrimerDose)
	v.SetDefault("defaults.excess", s.DefaultExcess)
	v.SetDefault("defaults.mix", s.DefaultMix.String())
	v.SetDefault("defaults.output", report.FormatText)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return Config{}, errors.Wrap(err, "finding home directory")
		}
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigName(".pcrmix")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("pcrmix")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			// running without a config file is fine, defaults and
			// environment overrides still apply
		default:
			return Config{}, errors.Wrapf(err, "reading config file %q", v.ConfigFileUsed())
		}
	}

	var c Config
	if err := v.Unmarshal(&c, viper.DecodeHook(ConcentrationHookFunc())); err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	c.File = v.ConfigFileUsed()

	if err := c.Settings().Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DefaultPath is where `pcrmix config init` writes when --config is not
// passed: .pcrmix.yaml in the home directory.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "finding home directory")
	}
	return filepath.Join(home, ".pcrmix.yaml"), nil
}

// starter file written by `pcrmix config init`
const fileTemplate = `# pcrmix settings
#
# Doses are the nominal per-sample volumes, in µL. The mix dose is the
# volume of master-mix stock at the strength named by mix-at; choosing a
# different strength at run time rescales the dispensed volume.
doses:
  ddw: %.1f
  mix: %.1f
  mix-at: %s
  primer: %.1f

# Defaults applied when a flag is not passed on the command line.
defaults:
  excess: %.1f
  mix: %s
  output: %s
`

// Write emits a starter config file with the builtin defaults at path.
// An existing file is left alone unless force is set.
func Write(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Errorf("config file %s already exists, pass --force to overwrite it", path)
	}

	s := pcr.DefaultSettings()
	content := fmt.Sprintf(fileTemplate,
		s.DDWDose, s.MixDose, s.MixDoseAt, s.PrimerDose,
		s.DefaultExcess, s.DefaultMix, report.FormatText,
	)

	return errors.Wrapf(os.WriteFile(path, []byte(content), 0644), "writing %s", path)
}
