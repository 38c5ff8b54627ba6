package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "hf.toml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write hf.toml: %v", err)
	}
	return path
}

func TestLoadProjectConfig(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `# test manifest
[package]
name = "demo"

[build]
files = ["main.hf", "lib/util.hf"]
opt = 2
target = "x86_64-unknown-linux"
`)
	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("loadProjectConfig: %v", err)
	}
	if cfg.Package.Name != "demo" {
		t.Fatalf("Package.Name = %q, want demo", cfg.Package.Name)
	}
	if len(cfg.Build.Files) != 2 || cfg.Build.Files[0] != "main.hf" {
		t.Fatalf("Build.Files = %v", cfg.Build.Files)
	}
	if cfg.Build.Opt == nil || *cfg.Build.Opt != 2 {
		t.Fatalf("Build.Opt = %v, want 2", cfg.Build.Opt)
	}
	if cfg.Build.Target != "x86_64-unknown-linux" {
		t.Fatalf("Build.Target = %q", cfg.Build.Target)
	}
}

func TestLoadProjectConfigOptOmitted(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `[package]
name = "demo"

[build]
files = ["main.hf"]
`)
	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("loadProjectConfig: %v", err)
	}
	if cfg.Build.Opt != nil {
		t.Fatalf("Build.Opt = %v, want nil when omitted", *cfg.Build.Opt)
	}
}

func TestLoadProjectConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{
			name: "missing package",
			data: "[build]\nfiles = [\"main.hf\"]\n",
			want: "missing [package]",
		},
		{
			name: "missing package name",
			data: "[package]\n[build]\nfiles = [\"main.hf\"]\n",
			want: "missing [package].name",
		},
		{
			name: "blank package name",
			data: "[package]\nname = \"  \"\n[build]\nfiles = [\"main.hf\"]\n",
			want: "missing [package].name",
		},
		{
			name: "missing build",
			data: "[package]\nname = \"demo\"\n",
			want: "missing [build]",
		},
		{
			name: "empty files",
			data: "[package]\nname = \"demo\"\n[build]\nfiles = []\n",
			want: "missing [build].files",
		},
		{
			name: "bad toml",
			data: "[package\n",
			want: "failed to parse TOML",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.data)
			_, err := loadProjectConfig(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %q, want substring %q", err, tc.want)
			}
		})
	}
}

func TestFindHFTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n[build]\nfiles = [\"main.hf\"]\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := findHFToml(nested)
	if err != nil {
		t.Fatalf("findHFToml: %v", err)
	}
	if !ok {
		t.Fatalf("expected manifest to be found from nested dir")
	}
	if path != filepath.Join(root, "hf.toml") {
		t.Fatalf("path = %q, want %q", path, filepath.Join(root, "hf.toml"))
	}
}

func TestFindHFTomlMissing(t *testing.T) {
	_, ok, err := findHFToml(t.TempDir())
	if err != nil {
		t.Fatalf("findHFToml: %v", err)
	}
	if ok {
		t.Fatalf("expected no manifest in empty tree")
	}
}

func TestManifestFilesJoinRoot(t *testing.T) {
	manifest := &projectManifest{
		Root: filepath.Join("proj", "root"),
		Config: projectConfig{
			Build: buildConfig{Files: []string{"main.hf", "lib/util.hf"}},
		},
	}
	got := manifestFiles(manifest)
	want := []string{
		filepath.Join("proj", "root", "main.hf"),
		filepath.Join("proj", "root", "lib", "util.hf"),
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("files[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input string
		want  uiMode
	}{
		{"", uiModeAuto},
		{"auto", uiModeAuto},
		{"AUTO", uiModeAuto},
		{"on", uiModeOn},
		{"off", uiModeOff},
		{" On ", uiModeOn},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if err != nil {
			t.Fatalf("readUIMode(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}

func TestSummarizeCompileError(t *testing.T) {
	if summarizeCompileError(nil) != nil {
		t.Fatalf("nil in, nil out")
	}
	plain := errors.New("cannot write object file: disk full")
	if got := summarizeCompileError(plain); got != plain {
		t.Fatalf("plain error should pass through, got %v", got)
	}
}
