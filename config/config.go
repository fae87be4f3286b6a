package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. IBM1_ITERATIONS or
// IBM1_CORPUS_ENCODING.
const EnvPrefix = "IBM1"

// Load builds the configuration from the defaults, the YAML file at
// path (skipped when path is empty), IBM1_* environment variables and
// overrides, later layers winning. Override keys are dotted config
// keys such as "corpus.encoding".
func Load(path string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read the file %w", err)
		}
	}
	for k, val := range overrides {
		v.Set(k, val)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error reading the config file %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func GetDefaultConfig() *Config {
	return &Config{
		Model:      "ibm1",
		Iterations: 5,
		Epsilon:    0.01,
		TopK:       10,
		Convergence: ConvergenceConfig{
			Kind:      "fixed",
			Threshold: 1e-4,
		},
		Corpus: CorpusConfig{
			Source:   "corpus.sv",
			Target:   "corpus.en",
			Encoding: "utf-8",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := GetDefaultConfig()
	v.SetDefault("model", d.Model)
	v.SetDefault("iterations", d.Iterations)
	v.SetDefault("epsilon", d.Epsilon)
	v.SetDefault("top_k", d.TopK)
	v.SetDefault("output", d.Output)
	v.SetDefault("resume", d.Resume)
	v.SetDefault("convergence.kind", d.Convergence.Kind)
	v.SetDefault("convergence.threshold", d.Convergence.Threshold)
	v.SetDefault("corpus.source", d.Corpus.Source)
	v.SetDefault("corpus.target", d.Corpus.Target)
	v.SetDefault("corpus.encoding", d.Corpus.Encoding)
}

// Validate rejects settings training cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("iterations must be positive, got %d", c.Iterations))
	}
	if c.Epsilon < 0 {
		errs = append(errs, fmt.Errorf("epsilon must not be negative, got %g", c.Epsilon))
	}
	if c.TopK <= 0 {
		errs = append(errs, fmt.Errorf("top_k must be positive, got %d", c.TopK))
	}
	if c.Convergence.Threshold < 0 {
		errs = append(errs, fmt.Errorf("convergence threshold must not be negative, got %g", c.Convergence.Threshold))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
