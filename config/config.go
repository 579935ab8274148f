package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Deploy Deploy `yaml:"deploy"`
	Launch Launch `yaml:"launch"`
	Smoke  Smoke  `yaml:"smoke"`
}

// Deploy lists the bot deployments the deploy command checks.
type Deploy struct {
	Owner   string   `yaml:"owner"`
	Targets []Target `yaml:"targets"`
}

type Target struct {
	Name string `yaml:"name"`
	Repo string `yaml:"repo"`
	App  string `yaml:"app"`
}

// Launch describes how the bot process is started.
type Launch struct {
	Dir     string   `yaml:"dir"`
	Command []string `yaml:"command"`
}

// Smoke configures the smoke-test bot.
type Smoke struct {
	TokenEnv string `yaml:"token_env"`
}

// Default returns the built-in configuration matching the production
// setup: the main and admin bots under the DmitryPavl GitHub account.
func Default() *Config {
	return &Config{
		Deploy: Deploy{
			Owner: "DmitryPavl",
			Targets: []Target{
				{Name: "Main Bot", Repo: "hackreality-main-bot", App: "hackreality-main-bot"},
				{Name: "Admin Bot", Repo: "hackreality-admin-bot", App: "hackreality-admin-bot"},
			},
		},
		Launch: Launch{
			Dir:     ".",
			Command: []string{"python3", "main.py"},
		},
		Smoke: Smoke{
			TokenEnv: "ADMIN_BOT_TOKEN",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Deploy.Owner == "" {
		cfg.Deploy.Owner = def.Deploy.Owner
	}
	if len(cfg.Deploy.Targets) == 0 {
		cfg.Deploy.Targets = def.Deploy.Targets
	}
	if cfg.Launch.Dir == "" {
		cfg.Launch.Dir = def.Launch.Dir
	}
	if len(cfg.Launch.Command) == 0 {
		cfg.Launch.Command = def.Launch.Command
	}
	if cfg.Smoke.TokenEnv == "" {
		cfg.Smoke.TokenEnv = def.Smoke.TokenEnv
	}
}

func validate(cfg *Config) error {
	for i, t := range cfg.Deploy.Targets {
		if t.Name == "" {
			return fmt.Errorf("deploy target %d: name is required", i)
		}
		if t.Repo == "" && t.App == "" {
			return fmt.Errorf("deploy target %q: repo or app is required", t.Name)
		}
	}
	return nil
}
