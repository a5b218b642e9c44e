package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
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
	environ   func() []string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithEnviron replaces os.Environ as the source of APP_ overrides.
func WithEnviron(environ func() []string) Option {
	return func(o *loadOptions) {
		o.environ = environ
	}
}

// layer is one source in the precedence order; later layers win.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the service configuration from, lowest precedence first:
//
//  0. built-in defaults
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_ environment variables
//
// An environment variable only overrides a key that already exists, matched
// by replacing dots with underscores, so field names keep their underscores:
//
//	APP_SERVER_READ_TIMEOUT   -> server.read_timeout
//	APP_STORE_DRIVER          -> store.driver
//	APP_STORE_MAX_OPEN_CONNS  -> store.max_open_conns
//
// Unknown APP_ variables are ignored.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir, environ: os.Environ}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	layers := []layer{
		{name: "defaults", load: loadDefaults},
		yamlLayer(filepath.Join(o.configDir, "base.yaml")),
		yamlLayer(filepath.Join(o.configDir, profile+".yaml")),
		{name: "environment", load: func(k *koanf.Koanf) error { return loadEnv(k, o.environ) }},
	}
	for _, l := range layers {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func yamlLayer(path string) layer {
	return layer{
		name: path,
		load: func(k *koanf.Koanf) error {
			return k.Load(file.Provider(path), yaml.Parser())
		},
	}
}

// loadEnv applies APP_ variables to the keys already present in k.
func loadEnv(k *koanf.Koanf, environ func() []string) error {
	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return k.Load(env.Provider(".", env.Opt{
		Prefix:      envPrefix,
		EnvironFunc: environ,
		TransformFunc: func(name, value string) (string, any) {
			return known[strings.ToLower(strings.TrimPrefix(name, envPrefix))], value
		},
	}), nil)
}

// validateProfile rejects empty profile names and names that would resolve
// outside the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
