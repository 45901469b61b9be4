package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDir(t *testing.T) {
	t.Run("uses QUICKSTATUS_HOME when set", func(t *testing.T) {
		t.Setenv(HomeEnv, "/custom/quickstatus")
		got, err := Dir()
		if err != nil {
			t.Fatalf("Dir() error = %v", err)
		}
		if got != "/custom/quickstatus" {
			t.Errorf("Dir() = %q, want /custom/quickstatus", got)
		}
	})

	t.Run("defaults to ~/.quickstatus", func(t *testing.T) {
		t.Setenv(HomeEnv, "")
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("Cannot get home directory")
		}
		got, err := Dir()
		if err != nil {
			t.Fatalf("Dir() error = %v", err)
		}
		want := filepath.Join(home, ".quickstatus")
		if got != want {
			t.Errorf("Dir() = %q, want %q", got, want)
		}
	})

	t.Run("expands tilde in QUICKSTATUS_HOME", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("Cannot get home directory")
		}
		t.Setenv(HomeEnv, "~/elsewhere")
		got, _ := Dir()
		want := filepath.Join(home, "elsewhere")
		if got != want {
			t.Errorf("Dir() = %q, want %q", got, want)
		}
	})
}

func TestPaths(t *testing.T) {
	dir := "/tmp/qs"
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"statuses", StatusesPath(dir), "/tmp/qs/statuses.json"},
		{"defaults", DefaultsPath(dir), "/tmp/qs/defaults.json"},
		{"global", GlobalConfigPath(dir), "/tmp/qs/config.yml"},
		{"env", EnvPath(dir), "/tmp/qs/.env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandPath(/abs/path) = %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q", got)
	}
	if got, want := ExpandPath("~/x"), filepath.Join(home, "x"); got != want {
		t.Errorf("ExpandPath(~/x) = %q, want %q", got, want)
	}
}

func TestConfigLoadError(t *testing.T) {
	inner := errors.New("boom")
	err := &ConfigLoadError{Message: "could not parse contents of", Path: "/x/statuses.json", Err: inner}

	if got := err.Error(); got != "could not parse contents of /x/statuses.json: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, inner) {
		t.Error("ConfigLoadError should unwrap to its cause")
	}

	bare := &ConfigLoadError{Message: "could not find file", Path: "/x/statuses.json"}
	if got := bare.Error(); got != "could not find file /x/statuses.json" {
		t.Errorf("Error() = %q", got)
	}
}
