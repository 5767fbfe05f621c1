package config

import "github.com/spf13/viper"

// Configuration keys.
const (
	KeyImportMapping   = "importMapping"
	KeyModelNamePrefix = "modelNamePrefix"
	KeyModelNameSuffix = "modelNameSuffix"
	KeyModelPackage    = "modelPackage"
	KeyAPIPackage      = "apiPackage"
	KeyAPINamePrefix   = "apiNamePrefix"
	KeyAPINameSuffix   = "apiNameSuffix"
	KeyTypeMappings    = "typeMappings"
	KeyNpmName         = "npmName"
	KeyNpmVersion      = "npmVersion"
	KeyNpmRepository   = "npmRepository"
	KeyStrict          = "strict"
	KeyOutputDir       = "outputDir"
)

// Default values.
const (
	DefaultModelPackage = "model"
	DefaultAPIPackage   = "api"
	DefaultNpmVersion   = "1.0.0"
	DefaultOutputDir    = "generated-code/typescript-swagger-js-typings"
)

// SetDefaults configures default values for all configuration options.
// Every key gets a default so environment variables can override it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyImportMapping, []string{})
	v.SetDefault(KeyModelNamePrefix, "")
	v.SetDefault(KeyModelNameSuffix, "")
	v.SetDefault(KeyModelPackage, DefaultModelPackage)
	v.SetDefault(KeyAPIPackage, DefaultAPIPackage)
	v.SetDefault(KeyAPINamePrefix, "")
	v.SetDefault(KeyAPINameSuffix, "")
	v.SetDefault(KeyTypeMappings, []string{})
	v.SetDefault(KeyNpmName, "")
	v.SetDefault(KeyNpmVersion, DefaultNpmVersion)
	v.SetDefault(KeyNpmRepository, "")
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
}
