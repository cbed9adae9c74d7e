/*
Package settings controls reading configuration from environment and assigning defaults
*/
package settings

import (
	"fmt"
	"log" // cannot use zerolog as log options not initialised
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of all environment variables read as settings.
// Nesting is expressed with '__' or '.', e.g. RMDUP__DEDUPE__MODE or RMDUP.DEDUPE.MODE.
const EnvPrefix = "RMDUP"

// ConfigEnv names a yaml file to load before the environment.
const ConfigEnv = EnvPrefix + "__CONFIG"

var Settings *RMSettings
var Dedupe *RMDedupe

type RMDedupe struct {
	// valid modes: exact, wide, bounded
	Mode string `koanf:"mode"`
	// bytes to allocate for the bounded dedupe cache
	CacheBytes HumanReadableBytes `koanf:"cache_bytes"`
	// gjson path selecting the part of a json line to deduplicate on, empty for the whole line
	Key string `koanf:"key"`
}

type RMSettings struct {
	// zerolog level for messages on stderr
	LogLevel string `koanf:"log_level"`
	// folder to write the rotating duplicates.log into, empty to disable
	LogPath string `koanf:"log_path"`
	// prometheus server will listen for connections from this address, empty to disable
	MetricsAddr string `koanf:"metrics_addr"`
	// print a json summary on stderr when input is exhausted
	Stats bool `koanf:"stats"`
	// buffer sizes for stdin and stdout
	ReadBufferBytes  HumanReadableBytes `koanf:"read_buffer_bytes"`
	WriteBufferBytes HumanReadableBytes `koanf:"write_buffer_bytes"`
	Dedupe           RMDedupe           `koanf:"dedupe"`
}

var defaults RMSettings = RMSettings{
	LogLevel:         "warn",
	LogPath:          "",
	MetricsAddr:      "",
	Stats:            false,
	ReadBufferBytes:  HumanToBytesFatal("64Ki"),
	WriteBufferBytes: HumanToBytesFatal("64Ki"),
	Dedupe: RMDedupe{
		Mode:       "exact",
		CacheBytes: HumanToBytesFatal("256Mi"),
		Key:        "",
	},
}

// envKey maps RMDUP__DEDUPE__CACHE_BYTES to dedupe.cache_bytes.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	if !strings.HasPrefix(s, "__") && !strings.HasPrefix(s, ".") {
		// some other variable that happens to share the prefix
		return ""
	}
	s = strings.ToLower(strings.ReplaceAll(strings.TrimLeft(s, "_."), "__", "."))
	if s == "config" {
		return ""
	}
	return s
}

// Parse builds settings from defaults, then the optional yaml file, then the environment.
func Parse(configPath string) (*RMSettings, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default settings: %w", err)
	}
	if configPath != "" {
		if err := k.Load(yamlFile(configPath), yamlParser{}); err != nil {
			return nil, fmt.Errorf("failed to load settings file %s: %w", configPath, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load settings from environment: %w", err)
	}

	var parsed RMSettings
	err := k.UnmarshalWithConf("", &parsed, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(HumanReadableBytesHookFunc()),
			Result:           &parsed,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &parsed, nil
}

// Load replaces the global settings and recreates the logger to match.
func Load(configPath string) error {
	parsed, err := Parse(configPath)
	if err != nil {
		return err
	}
	Settings = parsed
	Dedupe = &Settings.Dedupe
	RecreateLogger(Settings.LogLevel)
	return nil
}

// Override replaces global settings with any non zero value in overrides.
func Override(overrides RMSettings) error {
	err := mergo.Merge(&overrides, *Settings)
	if err != nil {
		return err
	}
	Settings = &overrides
	Dedupe = &Settings.Dedupe
	RecreateLogger(Settings.LogLevel)
	return nil
}

func ResetSettings() {
	err := Load(os.Getenv(ConfigEnv))
	if err != nil {
		log.Fatalf("Could not read settings: %s", err.Error())
	}
}

func init() {
	ResetSettings()
}
