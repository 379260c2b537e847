package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`

	Analysis AnalysisConfig `yaml:"analysis,omitempty"`

	Local *LocalConfig `yaml:"local,omitempty"`
}

// AnalysisConfig holds the default proofreading options applied when a
// run does not override them.
type AnalysisConfig struct {
	// Tone is the register to convert toward: "formal" (সাধু→চলিত
	// stays untouched, আপনি-register) or "informal".
	Tone string `yaml:"tone,omitempty"`
	// Style is the literary style to convert toward: "sadhu" or
	// "cholito".
	Style string `yaml:"style,omitempty"`
	// ContentFeedback asks the model for content-level observations in
	// addition to corrections.
	ContentFeedback bool `yaml:"content_feedback,omitempty"`
}

type LocalConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Provider string `yaml:"provider"`
	Host     string `yaml:"host"`
	Model    string `yaml:"model"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "ollama",
		Model:    "llama3.1:8b",
		Analysis: AnalysisConfig{
			Tone:  "formal",
			Style: "cholito",
		},
		Local: &LocalConfig{
			Enabled:  true,
			Provider: "ollama",
			Host:     "http://localhost:11434",
			Model:    "qwen2.5:3b",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "spellv3"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
