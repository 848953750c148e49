package config

import (
	"errors"
	"io/fs"
	"testing"
	"time"
)

type mapFS map[string]string

func (m mapFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m mapFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m[path]; !ok {
		return nil, fs.ErrNotExist
	}
	return fileInfo(path), nil
}

type fileInfo string

func (f fileInfo) Name() string       { return string(f) }
func (f fileInfo) Size() int64        { return 0 }
func (f fileInfo) Mode() fs.FileMode  { return 0o644 }
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return false }
func (f fileInfo) Sys() any           { return nil }

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Shell.Prompt != "atlas> " || cfg.Shell.Color != ColorAuto || cfg.Shell.Format != FormatJSON {
		t.Errorf("unexpected defaults: %+v", cfg.Shell)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	fsys := mapFS{"/etc/atlas.toml": `
[array]
initial = [3, 7.5, 2]
capacity = 10

[shell]
prompt = "> "
color = "never"
format = "yaml"
scripts = ["a.lua", "b.lua"]
scriptTimeout = "250ms"
`}

	cfg, err := Load("/etc/atlas.toml", WithFS(fsys), WithEnv(false))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []float64{3, 7.5, 2}
	if len(cfg.Array.Initial) != len(want) {
		t.Fatalf("Initial = %v, want %v", cfg.Array.Initial, want)
	}
	for i := range want {
		if cfg.Array.Initial[i] != want[i] {
			t.Errorf("Initial[%d] = %v, want %v", i, cfg.Array.Initial[i], want[i])
		}
	}
	if cfg.Array.Capacity != 10 {
		t.Errorf("Capacity = %d, want 10", cfg.Array.Capacity)
	}
	if cfg.Shell.Prompt != "> " || cfg.Shell.Color != ColorNever || cfg.Shell.Format != FormatYAML {
		t.Errorf("Shell = %+v", cfg.Shell)
	}
	if len(cfg.Shell.Scripts) != 2 || cfg.Shell.Scripts[1] != "b.lua" {
		t.Errorf("Scripts = %v", cfg.Shell.Scripts)
	}
	if cfg.Shell.ScriptTimeout != 250*time.Millisecond {
		t.Errorf("ScriptTimeout = %v, want 250ms", cfg.Shell.ScriptTimeout)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("", WithFS(mapFS{}), WithEnv(false))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Shell.Prompt != Default().Shell.Prompt {
		t.Errorf("Prompt = %q", cfg.Shell.Prompt)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("ATLASTEST_SHELL_PROMPT", "env> ")
	t.Setenv("ATLASTEST_ARRAY_INITIAL", "[1,2]")

	fsys := mapFS{"atlas.toml": "[shell]\nprompt = \"file> \"\n"}
	cfg, err := Load("", WithFS(fsys), WithEnvPrefix("ATLASTEST_"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Shell.Prompt != "env> " {
		t.Errorf("Prompt = %q, want env> ", cfg.Shell.Prompt)
	}
	if len(cfg.Array.Initial) != 2 || cfg.Array.Initial[1] != 2 {
		t.Errorf("Initial = %v", cfg.Array.Initial)
	}
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	t.Setenv("ATLASPATH_CONFIG", "/home/me/custom.toml")

	fsys := mapFS{
		"atlas.toml":           "[shell]\nprompt = \"default> \"\n",
		"/home/me/custom.toml": "[shell]\nprompt = \"custom> \"\n",
	}
	cfg, err := Load("", WithFS(fsys), WithEnvPrefix("ATLASPATH_"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Shell.Prompt != "custom> " {
		t.Errorf("Prompt = %q, want custom> ", cfg.Shell.Prompt)
	}

	cfg, err = Load("atlas.toml", WithFS(fsys), WithEnvPrefix("ATLASPATH_"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Shell.Prompt != "default> " {
		t.Errorf("explicit path Prompt = %q, want default> ", cfg.Shell.Prompt)
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		path string
		want error
	}{
		{"bad color", map[string]any{"shell": map[string]any{"color": "purple"}}, "shell.color", ErrValidationFailed},
		{"bad format", map[string]any{"shell": map[string]any{"format": "xml"}}, "shell.format", ErrValidationFailed},
		{"prompt not string", map[string]any{"shell": map[string]any{"prompt": int64(3)}}, "shell.prompt", ErrTypeMismatch},
		{"initial not list", map[string]any{"array": map[string]any{"initial": "1,2"}}, "array.initial", ErrTypeMismatch},
		{"initial bad item", map[string]any{"array": map[string]any{"initial": []any{"x"}}}, "array.initial", ErrTypeMismatch},
		{"negative capacity", map[string]any{"array": map[string]any{"capacity": int64(-1)}}, "array.capacity", ErrValidationFailed},
		{"fractional capacity", map[string]any{"array": map[string]any{"capacity": 1.5}}, "array.capacity", ErrTypeMismatch},
		{"capacity over limit", map[string]any{"array": map[string]any{"capacity": int64(MaxCapacity + 1)}}, "array.capacity", ErrValidationFailed},
		{"bad timeout", map[string]any{"shell": map[string]any{"scriptTimeout": "soon"}}, "shell.scriptTimeout", ErrTypeMismatch},
		{"negative timeout", map[string]any{"shell": map[string]any{"scriptTimeout": "-1s"}}, "shell.scriptTimeout", ErrValidationFailed},
		{"scripts bad item", map[string]any{"shell": map[string]any{"scripts": []any{int64(1)}}}, "shell.scripts", ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Default().Apply(tt.data)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var serr *SettingError
			if !errors.As(err, &serr) || serr.Path != tt.path {
				t.Errorf("error = %v, want SettingError for %s", err, tt.path)
			}
		})
	}
}

func TestApplySingleScript(t *testing.T) {
	cfg := Default()
	if err := cfg.Apply(map[string]any{"shell": map[string]any{"scripts": "init.lua"}}); err != nil {
		t.Fatal(err)
	}
	if len(cfg.Shell.Scripts) != 1 || cfg.Shell.Scripts[0] != "init.lua" {
		t.Errorf("Scripts = %v", cfg.Shell.Scripts)
	}
}

func TestApplyScriptTimeout(t *testing.T) {
	tests := []struct {
		in   any
		want time.Duration
	}{
		{"2s", 2 * time.Second},
		{int64(3), 3 * time.Second},
		{0.5, 500 * time.Millisecond},
		{"0s", 0},
	}
	for _, tt := range tests {
		cfg := Default()
		if err := cfg.Apply(map[string]any{"shell": map[string]any{"scriptTimeout": tt.in}}); err != nil {
			t.Fatalf("Apply(%v) failed: %v", tt.in, err)
		}
		if cfg.Shell.ScriptTimeout != tt.want {
			t.Errorf("ScriptTimeout for %v = %v, want %v", tt.in, cfg.Shell.ScriptTimeout, tt.want)
		}
	}

	if Default().Shell.ScriptTimeout != DefaultScriptTimeout {
		t.Error("default ScriptTimeout should be DefaultScriptTimeout")
	}
}
