package stacktrace

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
)

func TestResolveExplicitMap(t *testing.T) {
	mapFile := filepath.Join(t.TempDir(), "index.swift.map")
	writeMap(t, mapFile, swiftMap())
	r := newTestResolver(t, ResolverOptions{})
	loc := Locator{MapFile: mapFile, SourceRoot: swiftSourceRoot}

	tests := []struct {
		line, col         int
		wantLine, wantCol int
	}{
		{3, 12, 2, 10},
		{6, 12, 5, 10},
		// ближайшее предыдущее сопоставление на той же строке
		{3, 40, 2, 10},
		// правее последнего сегмента и после последней строки карты
		{6, 40, 5, 10},
		{7, 1, 5, 10},
	}
	for _, tt := range tests {
		pos, ok := r.Resolve("/build/index.swift", tt.line, tt.col, loc)
		if !ok {
			t.Fatalf("%d:%d: not resolved", tt.line, tt.col)
		}
		if pos.File != "uni_modules/test-uts1/utssdk/app-ios/index.uts" {
			t.Errorf("%d:%d: file %q", tt.line, tt.col, pos.File)
		}
		if pos.Line != tt.wantLine || pos.Column != tt.wantCol {
			t.Errorf("%d:%d: got %d:%d, want %d:%d", tt.line, tt.col, pos.Line, pos.Column, tt.wantLine, tt.wantCol)
		}
	}
}

func TestLastGenerated(t *testing.T) {
	tests := []struct {
		mappings string
		want     genPos
		ok       bool
	}{
		{";;WACS;;;WAGA", genPos{line: 6, col: 11}, true},
		{strings.Repeat(";", 32) + "oBASI", genPos{line: 33, col: 20}, true},
		{"AAAA,EAAE;;", genPos{line: 1, col: 2}, true},
		{"AAAA,DAAC", genPos{line: 1, col: -1}, true},
		{";;", genPos{}, false},
		{"", genPos{}, false},
		{"A!AA", genPos{line: 1, col: 0}, true},
		{"!", genPos{}, false},
	}
	for _, tt := range tests {
		got, ok := lastGenerated(tt.mappings)
		if ok != tt.ok || got != tt.want {
			t.Errorf("lastGenerated(%q) = %+v, %v; want %+v, %v", tt.mappings, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolvePastLastMappingKotlin(t *testing.T) {
	mapFile := filepath.Join(t.TempDir(), "test.kt.map")
	writeMap(t, mapFile, kotlinMap())
	r := newTestResolver(t, ResolverOptions{})
	pos, ok := r.Resolve("/src/test.kt", 40, 1, Locator{MapFile: mapFile})
	if !ok || pos.Line != 10 || pos.Column != 5 {
		t.Fatalf("got %+v ok=%v, want 10:5", pos, ok)
	}
}

func TestResolveUnmapped(t *testing.T) {
	dir := t.TempDir()
	mapFile := filepath.Join(dir, "index.swift.map")
	writeMap(t, mapFile, swiftMap())
	broken := filepath.Join(dir, "broken.map")
	if err := os.WriteFile(broken, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	r := newTestResolver(t, ResolverOptions{})

	tests := []struct {
		name string
		loc  Locator
		line int
		col  int
	}{
		{"missing map", Locator{MapFile: filepath.Join(dir, "nope.map")}, 3, 12},
		{"broken map", Locator{MapFile: broken}, 3, 12},
		{"before first mapping", Locator{MapFile: mapFile}, 1, 1},
		{"zero line", Locator{MapFile: mapFile}, 0, 1},
		{"no locator", Locator{}, 3, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := r.Resolve("/build/index.swift", tt.line, tt.col, tt.loc)
			if ok {
				t.Fatalf("expected miss, got %+v", pos)
			}
			if pos.File != "/build/index.swift" || pos.Line != tt.line || pos.Column != tt.col {
				t.Errorf("input not returned unchanged: %+v", pos)
			}
		})
	}
}

func TestLocatorMapPath(t *testing.T) {
	loc := Locator{InputDir: "/proj/.kotlin/src", SourceMapDir: "/proj/.sourcemap/app"}
	tests := []struct {
		file string
		want string
		ok   bool
	}{
		{"/proj/.kotlin/src/components/test/test.kt", "/proj/.sourcemap/app/components/test/test.kt.map", true},
		{"/proj/.kotlin/src/index.kt", "/proj/.sourcemap/app/index.kt.map", true},
		{"/elsewhere/index.kt", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := loc.MapPath(tt.file)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MapPath(%q) = %q, %v; want %q, %v", tt.file, got, ok, tt.want, tt.ok)
		}
	}
	if got, ok := (Locator{MapFile: "/a/b.map"}).MapPath("/anything.swift"); !ok || got != "/a/b.map" {
		t.Errorf("explicit map: got %q, %v", got, ok)
	}
}

func TestPreloadLoadsEachMapOnce(t *testing.T) {
	inputDir := "/proj/src"
	mapDir := t.TempDir()
	files := []string{"a.kt", "b.kt", "c/d.kt"}
	for _, f := range files {
		writeMap(t, filepath.Join(mapDir, f+".map"), kotlinMap())
	}

	var mu sync.Mutex
	reads := map[string]int{}
	r := newTestResolver(t, ResolverOptions{
		ReadFile: func(path string) ([]byte, error) {
			mu.Lock()
			reads[path]++
			mu.Unlock()
			return os.ReadFile(path)
		},
	})
	loc := Locator{InputDir: inputDir, SourceMapDir: mapDir}

	var requested []string
	for range 20 {
		for _, f := range files {
			requested = append(requested, filepath.Join(inputDir, f))
		}
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Preload(context.Background(), requested, loc); err != nil {
				t.Errorf("Preload: %v", err)
			}
			for _, f := range requested {
				r.Resolve(f, 33, 21, loc)
			}
		}()
	}
	wg.Wait()

	if got := r.Loads(); got != int64(len(files)) {
		t.Errorf("Loads() = %d, want %d", got, len(files))
	}
	for path, n := range reads {
		if n != 1 {
			t.Errorf("%s read %d times", path, n)
		}
	}
}

func TestPreloadCancelled(t *testing.T) {
	mapDir := t.TempDir()
	writeMap(t, filepath.Join(mapDir, "a.kt.map"), kotlinMap())
	r := newTestResolver(t, ResolverOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.Preload(ctx, []string{"/src/a.kt"}, Locator{InputDir: "/src", SourceMapDir: mapDir})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Preload error = %v, want context.Canceled", err)
	}
}

func TestSourceContent(t *testing.T) {
	mapDir := t.TempDir()
	writeMap(t, filepath.Join(mapDir, "components/test/test.kt.map"), kotlinMap())
	r := newTestResolver(t, ResolverOptions{})
	loc := Locator{InputDir: "/src", SourceMapDir: mapDir}

	pos, ok := r.Resolve("/src/components/test/test.kt", 33, 21, loc)
	if !ok {
		t.Fatalf("not resolved")
	}
	if pos.File != "components/test/test.uts" || pos.Line != 10 || pos.Column != 5 {
		t.Fatalf("got %s:%d:%d", pos.File, pos.Line, pos.Column)
	}
	content, ok := r.SourceContent(pos)
	if !ok {
		t.Fatalf("no source content")
	}
	if want := "\tconst a = test()"; !slices.Contains(strings.Split(content, "\n"), want) {
		t.Errorf("content lacks %q:\n%s", want, content)
	}
	if _, ok := r.SourceContent(Position{File: "x.uts", Source: "relative/x.uts"}); ok {
		t.Errorf("relative source without map should have no content")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cacheDir := t.TempDir()
	mapFile := filepath.Join(t.TempDir(), "index.swift.map")
	writeMap(t, mapFile, swiftMap())
	loc := Locator{MapFile: mapFile, SourceRoot: swiftSourceRoot}

	disk, err := OpenDiskCache(cacheDir)
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	first := newTestResolver(t, ResolverOptions{Disk: disk})
	want, ok := first.Resolve("/build/index.swift", 6, 12, loc)
	if !ok {
		t.Fatalf("not resolved")
	}
	if err := disk.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	reopened, err := OpenDiskCache(cacheDir)
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	second := newTestResolver(t, ResolverOptions{Disk: reopened})
	got, ok := second.Resolve("/build/index.swift", 6, 12, loc)
	if !ok {
		t.Fatalf("cached lookup missed")
	}
	if got.File != want.File || got.Line != want.Line || got.Column != want.Column {
		t.Errorf("cached %+v, fresh %+v", got, want)
	}
	if err := reopened.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
}
