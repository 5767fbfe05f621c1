package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadWithViper_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultModelPackage, cfg.ModelPackage)
	assert.Equal(t, DefaultAPIPackage, cfg.APIPackage)
	assert.Equal(t, DefaultNpmVersion, cfg.NpmVersion)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Empty(t, cfg.ImportMapping)
	assert.Empty(t, cfg.NpmRepository)
	assert.False(t, cfg.Strict)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "swagger-typings.yaml", `
importMapping:
  - Money=@shop/money
  - "DateTime = luxon"
modelNamePrefix: api
apiNameSuffix: Api
typeMappings:
  - UUID=string
npmName: "@acme/pets"
npmVersion: 2.3.4
npmRepository: https://npm.example.com
strict: true
outputDir: out
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "@acme/pets", cfg.NpmName)
	assert.Equal(t, "2.3.4", cfg.NpmVersion)
	assert.Equal(t, "https://npm.example.com", cfg.NpmRepository)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "out", cfg.OutputDir)

	opts, err := cfg.StrategyOptions()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"Money": "@shop/money", "DateTime": "luxon"}, opts.Naming.ImportMapping)
	assert.Equal(t, map[string]string{"UUID": "string"}, opts.TypeMappings)
	assert.Equal(t, "api", opts.Naming.ModelNamePrefix)
	assert.Equal(t, "Api", opts.Naming.APINameSuffix)
	assert.Equal(t, DefaultModelPackage, opts.Naming.ModelPackage)

	pc := cfg.PipelineConfig()
	assert.True(t, pc.Strict)
	assert.Equal(t, "@acme/pets", pc.NpmName)
	assert.Equal(t, "https://npm.example.com", pc.NpmRepository)
}

func TestLoad_TOMLFile(t *testing.T) {
	path := writeFile(t, "swagger-typings.toml", `
importMapping = ["Money=@shop/money"]
modelPackage = "models"
npmVersion = "0.1.0"
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Money=@shop/money"}, cfg.ImportMapping)
	assert.Equal(t, "models", cfg.ModelPackage)
	assert.Equal(t, "0.1.0", cfg.NpmVersion)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_NoFileSearched(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultNpmVersion, cfg.NpmVersion)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "swagger-typings.yaml", "npmVersion: 2.0.0\nnpmName: from-file\n")

	t.Setenv("SWAGGER_TYPINGS_NPMNAME", "from-env")
	t.Setenv("SWAGGER_TYPINGS_STRICT", "true")
	t.Setenv("SWAGGER_TYPINGS_IMPORTMAPPING", "Money=@shop/money,Tag=./tags")

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.NpmName)
	assert.Equal(t, "2.0.0", cfg.NpmVersion)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"Money=@shop/money", "Tag=./tags"}, cfg.ImportMapping)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{NpmVersion: "1.0.0", OutputDir: "out"}
	}

	t.Run("valid", func(t *testing.T) {
		c := valid()
		assert.NoError(t, c.Validate())
	})

	t.Run("prerelease version", func(t *testing.T) {
		c := valid()
		c.NpmVersion = "1.0.0-beta.1"
		assert.NoError(t, c.Validate())
	})

	for _, version := range []string{"", "1.0", "v1.0.0", "latest"} {
		t.Run("bad version "+version, func(t *testing.T) {
			c := valid()
			c.NpmVersion = version

			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNpmVersion))
			assert.NotEmpty(t, errors.GetAllHints(err))
		})
	}

	t.Run("empty output dir", func(t *testing.T) {
		c := valid()
		c.OutputDir = ""
		assert.Error(t, c.Validate())
	})

	t.Run("bad mapping", func(t *testing.T) {
		c := valid()
		c.TypeMappings = []string{"UUID"}

		err := c.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMapping))
	})
}

func TestParseMapping(t *testing.T) {
	got, err := ParseMapping([]string{"A=x", " B = y ", "A=z", "C=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "z", "B": "y", "C": "a=b"}, got)

	for _, bad := range []string{"A", "=x", "A=", " = "} {
		_, err := ParseMapping([]string{bad})
		assert.True(t, errors.Is(err, ErrInvalidMapping), "entry %q", bad)
	}

	empty, err := ParseMapping(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
