package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir overrides the directory holding base.yaml and the profile
// files. The default is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// layer is one source of configuration. Later layers win.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// Load builds the configuration for profile from, lowest precedence first:
// built-in defaults, base.yaml, <profile>.yaml and APP_ environment
// variables. The result is validated before it is returned.
//
// Env names are matched against the keys already loaded, so underscores
// inside a key survive: APP_BROWSER_REMOTE_URL sets browser.remote_url and
// APP_CLIENT_RATE_LIMIT_BURST_SIZE sets client.rate_limit.burst_size.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	files := []layer{
		{name: "defaults", provider: confmap.Provider(defaults(), ".")},
		yamlLayer(filepath.Join(o.configDir, "base.yaml")),
		yamlLayer(filepath.Join(o.configDir, profile+".yaml")),
	}
	for _, l := range files {
		if err := k.Load(l.provider, l.parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	keys := newEnvKeys(k.Keys())
	envLayer := env.Provider(".", env.Opt{Prefix: envPrefix, TransformFunc: keys.transform})
	if err := k.Load(envLayer, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for profile %q: %w", profile, err)
	}
	return &cfg, nil
}

func yamlLayer(path string) layer {
	return layer{name: path, provider: file.Provider(path), parser: yaml.Parser()}
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain file name", profile)
	}
	return nil
}

// envKeys maps the env spelling of every known key ("server_read_timeout")
// to its dotted koanf form ("server.read_timeout").
type envKeys map[string]string

func newEnvKeys(keys []string) envKeys {
	m := make(envKeys, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}

// transform resolves an APP_ variable to a config key. Unknown names fall
// back to treating every underscore as a separator.
func (m envKeys) transform(name, value string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))
	if dotted, ok := m[key]; ok {
		return dotted, value
	}
	return strings.ReplaceAll(key, "_", "."), value
}
