package config_test

import (
	"testing"

	"github.com/hackreality/botops/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if len(cfg.Deploy.Targets) != 2 {
		t.Fatalf("expected 2 deploy targets, got %d", len(cfg.Deploy.Targets))
	}
	if cfg.Deploy.Owner == "" {
		t.Error("expected default owner to be set")
	}
	if len(cfg.Launch.Command) == 0 {
		t.Error("expected default launch command")
	}
	if cfg.Smoke.TokenEnv != "ADMIN_BOT_TOKEN" {
		t.Errorf("expected default token env ADMIN_BOT_TOKEN, got %q", cfg.Smoke.TokenEnv)
	}
}

func TestLoadFull(t *testing.T) {
	cfg, err := config.Load("testdata/botops.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Deploy.Owner != "example-org" {
		t.Errorf("expected owner example-org, got %q", cfg.Deploy.Owner)
	}
	if len(cfg.Deploy.Targets) != 2 {
		t.Errorf("expected 2 targets, got %d", len(cfg.Deploy.Targets))
	}
	if cfg.Launch.Dir != "/srv/bot" {
		t.Errorf("expected launch dir /srv/bot, got %q", cfg.Launch.Dir)
	}
	if cfg.Smoke.TokenEnv != "SMOKE_BOT_TOKEN" {
		t.Errorf("expected token env SMOKE_BOT_TOKEN, got %q", cfg.Smoke.TokenEnv)
	}
}

func TestLoadPartialFillsDefaults(t *testing.T) {
	cfg, err := config.Load("testdata/partial.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Deploy.Owner != "example-org" {
		t.Errorf("expected owner example-org, got %q", cfg.Deploy.Owner)
	}
	if len(cfg.Deploy.Targets) == 0 {
		t.Error("expected default targets to be filled in")
	}
	if len(cfg.Launch.Command) == 0 {
		t.Error("expected default launch command to be filled in")
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := config.Load("testdata/invalid.yaml")
	if err == nil {
		t.Error("expected error for target without a name")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := config.Load("testdata/nonexistent.yaml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}
