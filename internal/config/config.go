// Package config loads generator options from defaults, an optional config
// file and SWAGGER_TYPINGS_* environment variables, in increasing order of
// precedence. Command-line flags bound to the same keys win over all three.
package config

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"swagger-typings/internal/pipeline"
	"swagger-typings/internal/typescript"
)

// EnvPrefix is prepended to upper-cased keys to form environment variable names.
const EnvPrefix = "SWAGGER_TYPINGS"

// FileName is the config file base name searched in the working directory.
const FileName = "swagger-typings"

var (
	// ErrInvalidMapping is returned for mapping entries not shaped "Name=value".
	ErrInvalidMapping = errors.New("invalid mapping entry")
	// ErrInvalidNpmVersion is returned when npmVersion is not a semantic version.
	ErrInvalidNpmVersion = errors.New("invalid npmVersion")
)

// Config holds all generator options.
//
// Mappings are lists of "Name=value" entries rather than maps because viper
// lower-cases map keys and type names are case sensitive.
type Config struct {
	ImportMapping   []string `mapstructure:"importMapping"`
	ModelNamePrefix string   `mapstructure:"modelNamePrefix"`
	ModelNameSuffix string   `mapstructure:"modelNameSuffix"`
	ModelPackage    string   `mapstructure:"modelPackage"`
	APIPackage      string   `mapstructure:"apiPackage"`
	APINamePrefix   string   `mapstructure:"apiNamePrefix"`
	APINameSuffix   string   `mapstructure:"apiNameSuffix"`
	TypeMappings    []string `mapstructure:"typeMappings"`
	NpmName         string   `mapstructure:"npmName"`
	NpmVersion      string   `mapstructure:"npmVersion"`
	NpmRepository   string   `mapstructure:"npmRepository"`
	Strict          bool     `mapstructure:"strict"`
	OutputDir       string   `mapstructure:"outputDir"`
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// Load reads the config file at path into v, or searches the working
// directory for swagger-typings.{yaml,yml,toml,json} when path is empty.
// A missing searched file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper decodes and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the npm version and mapping entries.
func (c *Config) Validate() error {
	if _, err := semver.StrictNewVersion(c.NpmVersion); err != nil {
		return errors.WithHint(
			errors.Mark(errors.Wrapf(err, "npmVersion %q", c.NpmVersion), ErrInvalidNpmVersion),
			"use a full semantic version such as 1.0.0")
	}

	if c.OutputDir == "" {
		return errors.New("outputDir cannot be empty")
	}

	if _, err := ParseMapping(c.ImportMapping); err != nil {
		return errors.Wrap(err, KeyImportMapping)
	}

	if _, err := ParseMapping(c.TypeMappings); err != nil {
		return errors.Wrap(err, KeyTypeMappings)
	}

	return nil
}

// ParseMapping turns "Name=value" entries into a map. Surrounding spaces
// are trimmed and a later entry for the same name wins.
func ParseMapping(entries []string) (map[string]string, error) {
	out := make(map[string]string, len(entries))

	for _, e := range entries {
		name, value, ok := strings.Cut(e, "=")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)

		if !ok || name == "" || value == "" {
			return nil, errors.WithHint(
				errors.Wrapf(ErrInvalidMapping, "%q", e),
				"entries look like Name=value, for example Money=@shop/money")
		}

		out[name] = value
	}

	return out, nil
}

// StrategyOptions converts the naming and type options.
func (c *Config) StrategyOptions() (typescript.Options, error) {
	imports, err := ParseMapping(c.ImportMapping)
	if err != nil {
		return typescript.Options{}, errors.Wrap(err, KeyImportMapping)
	}

	types, err := ParseMapping(c.TypeMappings)
	if err != nil {
		return typescript.Options{}, errors.Wrap(err, KeyTypeMappings)
	}

	return typescript.Options{
		Naming: typescript.Naming{
			ImportMapping:   imports,
			ModelNamePrefix: c.ModelNamePrefix,
			ModelNameSuffix: c.ModelNameSuffix,
			ModelPackage:    c.ModelPackage,
			APIPackage:      c.APIPackage,
			APINamePrefix:   c.APINamePrefix,
			APINameSuffix:   c.APINameSuffix,
		},
		TypeMappings: types,
	}, nil
}

// PipelineConfig converts the pipeline options.
func (c *Config) PipelineConfig() pipeline.Config {
	return pipeline.Config{
		Strict:        c.Strict,
		NpmName:       c.NpmName,
		NpmVersion:    c.NpmVersion,
		NpmRepository: c.NpmRepository,
	}
}
