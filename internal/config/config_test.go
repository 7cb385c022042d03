package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
xdotool_path: /opt/xdotool/bin/xdotool
type_delay_ms: 12
clamp_to_screen: true
clipboard: xsel
watch:
  log_file: /tmp/autoit-events.log
  max_size_mb: 5
  max_files: 2
`)
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.XdotoolPath != "/opt/xdotool/bin/xdotool" {
		t.Fatalf("unexpected xdotool path: %q", cfg.XdotoolPath)
	}
	if cfg.TypeDelay() != 12*time.Millisecond {
		t.Fatalf("unexpected type delay: %v", cfg.TypeDelay())
	}
	if !cfg.ClampToScreen {
		t.Fatal("expected clamp_to_screen to be set")
	}
	if cfg.Clipboard != ClipboardXsel {
		t.Fatalf("unexpected clipboard tool: %q", cfg.Clipboard)
	}
	if cfg.Watch.LogFile != "/tmp/autoit-events.log" || cfg.Watch.MaxSizeMB != 5 || cfg.Watch.MaxFiles != 2 {
		t.Fatalf("unexpected watch config: %+v", cfg.Watch)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "type_delay_ms: 3\n")
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TypeDelayMS != 3 {
		t.Fatalf("unexpected delay: %d", cfg.TypeDelayMS)
	}
	if cfg.Clipboard != ClipboardAuto {
		t.Fatalf("expected default clipboard, got %q", cfg.Clipboard)
	}
	if cfg.Watch.MaxSizeMB != 10 || cfg.Watch.MaxFiles != 3 {
		t.Fatalf("expected default watch limits, got %+v", cfg.Watch)
	}
}

func TestLoadRejectsUnknownClipboard(t *testing.T) {
	path := writeConfig(t, "clipboard: wlclipboard\n")
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected error for unknown clipboard tool")
	}
}

func TestLoadRejectsNegativeDelay(t *testing.T) {
	path := writeConfig(t, "type_delay_ms: -1\n")
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected error for negative delay")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "clipboard: [\n")
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestZeroDelayDisablesFlag(t *testing.T) {
	cfg := Default()
	if cfg.TypeDelay() != 0 {
		t.Fatalf("expected zero delay, got %v", cfg.TypeDelay())
	}
}
