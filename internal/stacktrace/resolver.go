package stacktrace

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-sourcemap/sourcemap"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"unikit/internal/source"
	"unikit/internal/trace"
)

const defaultMapCacheSize = 256

// Position is a location in original source. Line and Column are 1-based.
type Position struct {
	File   string `msgpack:"file"`
	Line   int    `msgpack:"line"`
	Column int    `msgpack:"col"`
	Name   string `msgpack:"name,omitempty"`

	// Source is the map's own name for the file, MapPath the map it came
	// from. Both are empty for unmapped positions.
	Source  string `msgpack:"src,omitempty"`
	MapPath string `msgpack:"-"`
}

type ResolverOptions struct {
	CacheSize int        // parsed maps kept per pass; 256 when zero
	Disk      *DiskCache // optional
	Tracer    trace.Tracer
	// ReadFile reads map files; os.ReadFile when nil.
	ReadFile func(path string) ([]byte, error)
}

// Resolver maps generated positions back to sources. It is safe for
// concurrent use; each map file is read and parsed at most once while it
// stays cached.
type Resolver struct {
	opts  ResolverOptions
	mu    sync.Mutex
	maps  *lru.Cache[string, *mapEntry]
	loads atomic.Int64
}

type mapEntry struct {
	path string

	readOnce sync.Once
	raw      []byte
	hash     [sha256.Size]byte
	readErr  error

	parseOnce sync.Once
	consumer  *sourcemap.Consumer
	root      string
	parseErr  error
	// last генерируемая позиция последнего сегмента (line 1-based, col
	// 0-based); consumer не находит ничего правее неё
	last    genPos
	hasLast bool
}

type genPos struct{ line, col int }

func NewResolver(opts ResolverOptions) (*Resolver, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = defaultMapCacheSize
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	if opts.ReadFile == nil {
		opts.ReadFile = os.ReadFile
	}
	cache, err := lru.New[string, *mapEntry](size)
	if err != nil {
		return nil, fmt.Errorf("map cache: %w", err)
	}
	return &Resolver{opts: opts, maps: cache}, nil
}

// Loads returns how many map files were read from disk.
func (r *Resolver) Loads() int64 {
	return r.loads.Load()
}

func (r *Resolver) entry(path string) *mapEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.maps.Get(path); ok {
		return e
	}
	e := &mapEntry{path: path}
	r.maps.Add(path, e)
	return e
}

func (e *mapEntry) read(r *Resolver) bool {
	e.readOnce.Do(func() {
		span := trace.Begin(r.opts.Tracer, trace.ScopeModule, "sourcemap:"+e.path, 0)
		defer span.End("")
		r.loads.Add(1)
		e.raw, e.readErr = r.opts.ReadFile(e.path)
		if e.readErr == nil {
			e.hash = sha256.Sum256(e.raw)
		}
	})
	return e.readErr == nil
}

func (e *mapEntry) parse(r *Resolver) bool {
	if !e.read(r) {
		return false
	}
	e.parseOnce.Do(func() {
		e.consumer, e.parseErr = sourcemap.Parse("", e.raw)
		if e.parseErr == nil {
			meta := readMapMeta(e.raw)
			e.root = meta.SourceRoot
			e.last, e.hasLast = lastGenerated(meta.Mappings)
		}
	})
	return e.parseErr == nil
}

// Resolve maps file:line:column (1-based) through the map chosen by loc.
// Without a usable map or mapping the input comes back with ok=false.
func (r *Resolver) Resolve(file string, line, column int, loc Locator) (Position, bool) {
	in := Position{File: file, Line: line, Column: column}
	if line <= 0 {
		return in, false
	}
	mapPath, ok := loc.MapPath(file)
	if !ok {
		return in, false
	}
	e := r.entry(mapPath)
	if !e.read(r) {
		return in, false
	}
	if pos, root, ok := r.opts.Disk.Lookup(e.hash, line, column); ok {
		pos.File = cleanSourcePath(pos.Source, root, loc.SourceRoot)
		pos.MapPath = mapPath
		return pos, true
	}
	if !e.parse(r) {
		return in, false
	}
	src, name, l, c, ok := e.lookup(line, max(column-1, 0))
	if !ok || src == "" {
		return in, false
	}
	pos := Position{
		File:    cleanSourcePath(src, e.root, loc.SourceRoot),
		Line:    l,
		Column:  c + 1,
		Name:    name,
		Source:  src,
		MapPath: mapPath,
	}
	r.opts.Disk.Store(e.hash, e.root, line, column, pos)
	return pos, true
}

// lookup is nearest-preceding: past the last segment the consumer gives up,
// so the query is clamped onto that segment.
func (e *mapEntry) lookup(line, col int) (src, name string, l, c int, ok bool) {
	src, name, l, c, ok = e.consumer.Source(line, col)
	if ok || !e.hasLast {
		return src, name, l, c, ok
	}
	if line > e.last.line || (line == e.last.line && col > e.last.col) {
		return e.consumer.Source(e.last.line, e.last.col)
	}
	return src, name, l, c, ok
}

// SourceContent returns the original text of pos from the map's
// sourcesContent, or from disk when the map has none and the path is
// absolute.
func (r *Resolver) SourceContent(pos Position) (string, bool) {
	if pos.MapPath != "" && pos.Source != "" {
		if e := r.entry(pos.MapPath); e.parse(r) {
			if content := e.consumer.SourceContent(pos.Source); content != "" {
				return content, true
			}
		}
	}
	path := strings.TrimPrefix(pos.Source, "file://")
	if path == "" || !strings.HasPrefix(path, "/") {
		return "", false
	}
	b, err := os.ReadFile(path) // #nosec G304 -- path comes from the source map
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Preload reads and parses the maps of files in parallel. Missing or
// broken maps are not errors; only cancellation is.
func (r *Resolver) Preload(ctx context.Context, files []string, loc Locator) error {
	span := trace.Begin(r.opts.Tracer, trace.ScopePass, "remap/preload", trace.CurrentSpan(ctx).SpanID)
	defer span.End("")

	seen := make(map[string]struct{}, len(files))
	var paths []string
	for _, f := range files {
		p, ok := loc.MapPath(f)
		if !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(paths)))
	for _, p := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			r.entry(p).parse(r)
			return nil
		})
	}
	return g.Wait()
}

// cleanSourcePath убирает file://, корень карты и SourceRoot вызывающего.
func cleanSourcePath(src, mapRoot, sourceRoot string) string {
	p := strings.TrimPrefix(src, "file://")
	for _, root := range []string{sourceRoot, strings.TrimPrefix(mapRoot, "file://")} {
		root = strings.TrimRight(root, "/")
		if root == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(p, root+"/"); ok {
			p = rest
		}
	}
	return source.NormalizePath(p)
}

type mapMeta struct {
	SourceRoot string `json:"sourceRoot"`
	Mappings   string `json:"mappings"`
}

// readMapMeta reads the fields the consumer does not expose.
func readMapMeta(raw []byte) mapMeta {
	var meta mapMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return mapMeta{}
	}
	return meta
}

// lastGenerated returns the generated position of the last segment in
// mappings. Index maps (sections) have no top-level mappings.
func lastGenerated(mappings string) (genPos, bool) {
	lines := strings.Split(mappings, ";")
	for i := len(lines) - 1; i >= 0; i-- {
		col, seen := 0, false
		for _, seg := range strings.Split(lines[i], ",") {
			if seg == "" {
				continue
			}
			d, ok := decodeVLQ(seg)
			if !ok {
				return genPos{}, false
			}
			col += d
			seen = true
		}
		if seen {
			return genPos{line: i + 1, col: col}, true
		}
	}
	return genPos{}, false
}

const vlqAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// decodeVLQ decodes the first base64 VLQ value of seg.
func decodeVLQ(seg string) (int, bool) {
	v, shift := 0, 0
	for i := 0; i < len(seg) && shift < 32; i++ {
		d := strings.IndexByte(vlqAlphabet, seg[i])
		if d < 0 {
			return 0, false
		}
		v |= (d & 31) << shift
		if d&32 == 0 {
			if v&1 == 1 {
				return -(v >> 1), true
			}
			return v >> 1, true
		}
		shift += 5
	}
	return 0, false
}
