package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadValidConfig(t *testing.T) {
	t.Setenv("NETRC", filepath.Join(t.TempDir(), "missing"))

	dir := writeConfigFile(t, `
server:
  port: 9000
jira:
  site: https://example.atlassian.net
  email: user@example.com
  api_token: token
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("unexpected default host: %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 9000 {
		t.Fatalf("unexpected port: %d", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != "info" {
		t.Fatalf("unexpected log level: %s", cfg.Server.LogLevel)
	}
	if cfg.Jira.Email != "user@example.com" || cfg.Jira.APIToken != "token" {
		t.Fatalf("unexpected credentials: %+v", cfg.Jira.ServiceCredentials)
	}
}

func TestLoadMissingSite(t *testing.T) {
	t.Setenv("NETRC", filepath.Join(t.TempDir(), "missing"))

	dir := writeConfigFile(t, `
jira:
  email: user@example.com
  api_token: token
`)

	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "jira.site is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadSiteRequiresScheme(t *testing.T) {
	t.Setenv("NETRC", filepath.Join(t.TempDir(), "missing"))

	dir := writeConfigFile(t, `
jira:
  site: example.atlassian.net
  email: user@example.com
  api_token: token
`)

	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "must start with http:// or https://") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("NETRC", filepath.Join(t.TempDir(), "missing"))

	dir := writeConfigFile(t, `
jira:
  site: https://example.atlassian.net
`)

	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "requires email and api_token") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadCredentialsFromNetrc(t *testing.T) {
	netrcPath := filepath.Join(t.TempDir(), "netrc")
	netrc := "machine example.atlassian.net login netrc@example.com password netrc-token\n"
	if err := os.WriteFile(netrcPath, []byte(netrc), 0o600); err != nil {
		t.Fatalf("write netrc: %v", err)
	}
	t.Setenv("NETRC", netrcPath)

	dir := writeConfigFile(t, `
jira:
  site: https://example.atlassian.net
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Jira.Email != "netrc@example.com" || cfg.Jira.APIToken != "netrc-token" {
		t.Fatalf("netrc credentials not applied: %+v", cfg.Jira.ServiceCredentials)
	}
}
