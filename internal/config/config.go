// Package config handles input from etc/main.toml, the environment and defaults.
package config

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/GoPowerDNS-Admin/pwgen/internal/randstr"
)

const (
	// DefaultPath is the directory searched for the config file.
	DefaultPath = "./etc/"

	// FileName is the name of the config file inside the config directory.
	FileName = "main.toml"

	// EnvPrefix prefixes every environment override, e.g. PWGEN_GENERATOR_MAXLENGTH.
	EnvPrefix = "PWGEN"

	// JSONEnv holds a complete JSON config merged over the file config.
	JSONEnv = "PWGEN_CONFIG_JSON"
)

// ReadConfig from config file. A missing file leaves the defaults in place.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = DefaultPath
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(filepath.Join(path, FileName))
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err := v.Unmarshal(&c, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "toml"
	}); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	if configAsJSON := os.Getenv(JSONEnv); configAsJSON != "" {
		var err error

		c, err = decodeAndMergeConfig(c, configAsJSON)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "pwgen")

	v.SetDefault("log.logLevel", "warn")
	v.SetDefault("log.reportCaller", false)
	v.SetDefault("log.appName", "pwgen")
	v.SetDefault("log.serviceName", "pwgen")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useConsoleWriter", true)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./log")

	for _, level := range []string{"error", "info", "trace", "warn"} {
		v.SetDefault("log.file."+level, level+".log")
		v.SetDefault("log.file."+level+"MaxSize", 10)
		v.SetDefault("log.file."+level+"MaxBackups", 3)
		v.SetDefault("log.file."+level+"MaxAge", 28)
	}

	v.SetDefault("generator.defaultLength", randstr.DefaultLength)
	v.SetDefault("generator.maxLength", randstr.DefaultMaxLength)
	v.SetDefault("generator.alphabet", "upper")
	v.SetDefault("generator.charset", "")
	v.SetDefault("generator.source", "crypto")
	v.SetDefault("generator.unique", false)
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config from env")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate the config tags and the relations between generator settings.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	if strings.TrimSpace(c.Generator.Alphabet) == "" && c.Generator.Charset == "" {
		return errors.Wrap(ErrEmptyAlphabet, invalidErrMessage)
	}

	if c.Generator.MaxLength > 0 && c.Generator.DefaultLength > c.Generator.MaxLength {
		return errors.Wrap(ErrDefaultLengthTooLarge, invalidErrMessage)
	}

	return nil
}
