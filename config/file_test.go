package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "info" {
		t.Errorf("Default().Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.JSON {
		t.Error("Default().Log.JSON should be false")
	}
}

func TestLoadFile_MissingFileReturnsEmpty(t *testing.T) {
	values, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.conf"))
	if err != nil {
		t.Fatalf("LoadFile on a missing file should not error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("LoadFile on a missing file should return no values, got %v", values)
	}
}

func TestLoadFile_ParsesKeyValuePairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.conf")
	writeFile(t, path, "# a comment\nlog.level = debug\nlog.json = \"true\"\n\nlog.file = node.log\n")

	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := map[string]string{
		"log.level": "debug",
		"log.json":  "true",
		"log.file":  "node.log",
	}
	for k, v := range want {
		if values[k] != v {
			t.Errorf("values[%q] = %q, want %q", k, values[k], v)
		}
	}
}

func TestLoadFile_InvalidLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.conf")
	writeFile(t, path, "not a key value line\n")

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile should reject a line with no '='")
	}
}

func TestApplyFileConfig_OverridesLogSettings(t *testing.T) {
	cfg := Default()
	values := map[string]string{
		"log.level": "warn",
		"log.json":  "yes",
		"log.file":  "/var/log/node.log",
	}

	if err := ApplyFileConfig(cfg, values); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
	if !cfg.Log.JSON {
		t.Error("Log.JSON should be true after applying log.json = yes")
	}
	if cfg.Log.File != "/var/log/node.log" {
		t.Errorf("Log.File = %q, want %q", cfg.Log.File, "/var/log/node.log")
	}
}

func TestApplyFileConfig_IgnoresUnknownKeys(t *testing.T) {
	cfg := Default()
	if err := ApplyFileConfig(cfg, map[string]string{"p2p.port": "30303"}); err != nil {
		t.Fatalf("ApplyFileConfig should ignore unknown keys, got error: %v", err)
	}
	if *cfg != *Default() {
		t.Error("an unknown key should leave the config unchanged")
	}
}

func TestWriteDefaultConfig_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.conf")
	if err := WriteDefaultConfig(path); err != nil {
		t.Fatalf("WriteDefaultConfig: %v", err)
	}

	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile on a just-written default config: %v", err)
	}

	cfg := Default()
	if err := ApplyFileConfig(cfg, values); err != nil {
		t.Fatalf("ApplyFileConfig on a just-written default config: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("round-tripped Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}
}
