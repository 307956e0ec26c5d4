package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the CLI with a throwaway config so the developer's own
// unikit.toml cannot leak in.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "unikit.toml")
	if err := os.WriteFile(cfgPath, []byte("[codegen]\nhelper_prefix = \"_\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--color=off", "--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExprCommand(t *testing.T) {
	out, _, err := run(t, "expr", "a+b*c")
	if err != nil {
		t.Fatalf("expr: %v", err)
	}
	if !strings.Contains(out, "a + b * c\n") || !strings.Contains(out, "truthiness: dynamic") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestExprCommandError(t *testing.T) {
	_, stderr, err := run(t, "expr", "a +")
	if !errors.Is(err, errCompile) {
		t.Fatalf("err = %v, want errCompile", err)
	}
	if !strings.Contains(stderr, "<cli>:1:") {
		t.Errorf("diagnostic not located:\n%s", stderr)
	}
}

func TestVIfCommand(t *testing.T) {
	out, _, err := run(t, "vif", "--branch", "ok", "--else")
	if err != nil {
		t.Fatalf("vif: %v", err)
	}
	if want := "{ a: ok, ...ok ? {} : {} }\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestVForCommand(t *testing.T) {
	out, _, err := run(t, "vfor", "(item, i) in items", "--prop", "a=item.name")
	if err != nil {
		t.Fatalf("vfor: %v", err)
	}
	want := "{ a: _vFor(items, (item, i) => { return { a: item.name }; }) }\nhelpers: _vFor\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestHarmonyImportsCommand(t *testing.T) {
	out, _, err := run(t, "harmony", "imports", "@ohos.router", "vue")
	if err != nil {
		t.Fatalf("harmony imports: %v", err)
	}
	for _, want := range []string{"import ohos_router from '@ohos.router';", "// vue is provided as Vue"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestRemapSyntaxCommand(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "build.log")
	blob := "x oops\n  ,-[pages/a.uts:4:2]\n4 | bad\n  `----\n"
	if err := os.WriteFile(logPath, []byte(blob), 0o600); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "remap", "syntax", "--log", logPath, "--style", "plain")
	if err != nil {
		t.Fatalf("remap syntax: %v", err)
	}
	if want := "oops\n    at pages/a.uts:4:2\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRemapSwiftDiskCache(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)
	t.Cleanup(func() {
		pf := remapCmd.PersistentFlags()
		_ = pf.Set("cache", "false")
		_ = pf.Set("clear-cache", "false")
	})

	dir := t.TempDir()
	mapFile := filepath.Join(dir, "index.swift.map")
	sm := `{"version":3,"file":"index.swift","sources":["/proj/uni_modules/m/utssdk/app-ios/index.uts"],"names":[],"mappings":";;WACS;;;WAGA"}`
	if err := os.WriteFile(mapFile, []byte(sm), 0o600); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(dir, "build.log")
	if err := os.WriteFile(logPath, []byte("/tmpl/src/index.swift:3:12: error: bad return\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	maps := filepath.Join(xdg, "unikit", "maps")
	stale := filepath.Join(maps, "stale.mp")
	entries := func() []string {
		t.Helper()
		got, err := filepath.Glob(filepath.Join(maps, "*.mp"))
		if err != nil {
			t.Fatal(err)
		}
		return got
	}

	steps := []struct {
		flag      string
		wantStale bool
	}{
		{flag: "--cache", wantStale: true},
		{flag: "--clear-cache", wantStale: false},
	}
	for _, st := range steps {
		if err := os.MkdirAll(maps, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(stale, nil, 0o600); err != nil {
			t.Fatal(err)
		}
		out, _, err := run(t, "remap", "swift", st.flag, "--log", logPath,
			"--sourcemap-file", mapFile, "--source-root", "/proj", "--style", "plain")
		if err != nil {
			t.Fatalf("%s: %v", st.flag, err)
		}
		if !strings.Contains(out, "uni_modules/m/utssdk/app-ios/index.uts:2:10") {
			t.Errorf("%s: position not remapped:\n%s", st.flag, out)
		}
		_, statErr := os.Stat(stale)
		if gotStale := statErr == nil; gotStale != st.wantStale {
			t.Errorf("%s: stale entry present = %v, want %v", st.flag, gotStale, st.wantStale)
		}
		if n := len(entries()); n == 0 || (st.wantStale && n != 2) || (!st.wantStale && n != 1) {
			t.Errorf("%s: cache entries = %v", st.flag, entries())
		}
	}
}
