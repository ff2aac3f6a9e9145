package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hsayar/folio/content"
)

func TestRunNewWritesLoadableContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "jane-doe")
	if err := runNew(dir); err != nil {
		t.Fatalf("runNew() = %v", err)
	}

	p, err := content.Load(filepath.Join(dir, "content.yaml"))
	if err != nil {
		t.Fatalf("scaffolded content does not load: %v", err)
	}
	if p.Profile.Name != "Jane Doe" {
		t.Errorf("name = %q, want Jane Doe", p.Profile.Name)
	}

	env, err := os.ReadFile(filepath.Join(dir, ".env.example"))
	if err != nil {
		t.Fatalf("read .env.example: %v", err)
	}
	if !strings.Contains(string(env), "FOLIO_CONTENT_PATH=content.yaml") {
		t.Errorf(".env.example missing content path: %s", env)
	}
}

func TestRunNewRefusesExistingDir(t *testing.T) {
	if err := runNew(t.TempDir()); err == nil {
		t.Fatal("expected error for existing directory")
	}
}

func TestToTitle(t *testing.T) {
	tests := map[string]string{"jane-doe": "Jane Doe", "ada": "Ada", "": ""}
	for in, want := range tests {
		if got := toTitle(in); got != want {
			t.Errorf("toTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseInterspersed(t *testing.T) {
	tests := []struct {
		args     []string
		wantCfg  string
		wantRest []string
	}{
		{[]string{"-config", "site.yaml", "dist"}, "site.yaml", []string{"dist"}},
		{[]string{"dist", "-config", "site.yaml"}, "site.yaml", []string{"dist"}},
		{[]string{"dist"}, "", []string{"dist"}},
		{[]string{"--", "-config"}, "", []string{"-config"}},
		{nil, "", nil},
	}
	for _, tt := range tests {
		fs := flag.NewFlagSet("export", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		cfg := fs.String("config", "", "")
		rest, err := parseInterspersed(fs, tt.args)
		if err != nil {
			t.Fatalf("parseInterspersed(%q) = %v", tt.args, err)
		}
		if *cfg != tt.wantCfg || !reflect.DeepEqual(rest, tt.wantRest) {
			t.Errorf("parseInterspersed(%q) = config %q, rest %q; want %q, %q", tt.args, *cfg, rest, tt.wantCfg, tt.wantRest)
		}
	}
}
