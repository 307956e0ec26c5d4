package stacktrace

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when mapPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит уже разрешённые позиции по хэшу содержимого карты.
// Записи читаются лениво и сбрасываются на диск в Flush.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu     sync.RWMutex
	dir    string
	loaded map[[sha256.Size]byte]*mapPayload
	dirty  map[[sha256.Size]byte]struct{}
}

type mapPayload struct {
	Schema    uint16
	Root      string              // sourceRoot карты
	Positions map[string]Position // "line:col" -> позиция
}

// OpenDiskCache uses dir, or $XDG_CACHE_HOME/unikit (~/.cache/unikit) when
// dir is empty.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "unikit")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{
		dir:    dir,
		loaded: make(map[[sha256.Size]byte]*mapPayload),
		dirty:  make(map[[sha256.Size]byte]struct{}),
	}, nil
}

func (c *DiskCache) pathFor(hash [sha256.Size]byte) string {
	return filepath.Join(c.dir, "maps", hex.EncodeToString(hash[:])+".mp")
}

func posKey(line, col int) string {
	return strconv.Itoa(line) + ":" + strconv.Itoa(col)
}

// Lookup returns a cached position and the map's sourceRoot.
func (c *DiskCache) Lookup(hash [sha256.Size]byte, line, col int) (Position, string, bool) {
	if c == nil {
		return Position{}, "", false
	}
	p := c.payload(hash)
	if p == nil {
		return Position{}, "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	pos, ok := p.Positions[posKey(line, col)]
	return pos, p.Root, ok
}

// Store remembers pos for line:col of the map with the given hash.
func (c *DiskCache) Store(hash [sha256.Size]byte, root string, line, col int, pos Position) {
	if c == nil {
		return
	}
	p := c.payload(hash)
	c.mu.Lock()
	defer c.mu.Unlock()
	if p == nil {
		p = &mapPayload{Schema: diskCacheSchemaVersion, Root: root, Positions: make(map[string]Position)}
		c.loaded[hash] = p
	}
	p.Positions[posKey(line, col)] = pos
	c.dirty[hash] = struct{}{}
}

// payload reads the entry for hash once; a missing or stale file yields nil.
func (c *DiskCache) payload(hash [sha256.Size]byte) *mapPayload {
	c.mu.RLock()
	p, ok := c.loaded[hash]
	c.mu.RUnlock()
	if ok {
		return p
	}

	var out mapPayload
	if found, err := c.read(hash, &out); err != nil || !found || out.Schema != diskCacheSchemaVersion {
		out = mapPayload{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.loaded[hash]; ok {
		return p
	}
	if out.Positions == nil {
		c.loaded[hash] = nil
		return nil
	}
	c.loaded[hash] = &out
	return &out
}

func (c *DiskCache) read(hash [sha256.Size]byte, out *mapPayload) (bool, error) {
	f, err := os.Open(c.pathFor(hash))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// Flush writes every changed entry.
func (c *DiskCache) Flush() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs []error
	for hash := range c.dirty {
		if err := c.write(hash, c.loaded[hash]); err != nil {
			errs = append(errs, fmt.Errorf("flush %x: %w", hash[:4], err))
			continue
		}
		delete(c.dirty, hash)
	}
	return errors.Join(errs...)
}

func (c *DiskCache) write(hash [sha256.Size]byte, payload *mapPayload) error {
	p := c.pathFor(hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name()) //nolint:errcheck // после Rename файла уже нет

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.loaded)
	clear(c.dirty)
	return os.RemoveAll(filepath.Join(c.dir, "maps"))
}
