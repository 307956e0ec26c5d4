// Package config loads unikit.toml and overlays the environment on it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const FileName = "unikit.toml"

// ErrNoConfig is returned when no unikit.toml exists up the tree.
var ErrNoConfig = errors.New("no " + FileName + " found")

type Config struct {
	Path    string        `toml:"-"` // пусто для значений по умолчанию
	Remap   RemapConfig   `toml:"remap"`
	Codegen CodegenConfig `toml:"codegen"`
}

type RemapConfig struct {
	InputDir     string `toml:"input_dir"`
	SourceMapDir string `toml:"sourcemap_dir"`
	SourceRoot   string `toml:"source_root"`
	Style        string `toml:"style"`
	ReplaceTabs  bool   `toml:"replace_tabs"`
	CacheDir     string `toml:"cache_dir"`
	CacheSize    int    `toml:"cache_size"`
}

type CodegenConfig struct {
	HelperPrefix string `toml:"helper_prefix"`
}

// Default is the configuration used without a file.
func Default() Config {
	return Config{
		Remap: RemapConfig{
			Style:       "hbuilder",
			ReplaceTabs: true,
			CacheSize:   256,
		},
		Codegen: CodegenConfig{HelperPrefix: "_"},
	}
}

// Find walks up from startDir to locate unikit.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the nearest unikit.toml. It returns the
// defaults together with ErrNoConfig when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Default(), err
	}
	if !ok {
		return Default(), ErrNoConfig
	}
	return Load(path)
}

// Load parses path on top of the defaults. Relative directories are
// resolved against the file's directory.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("remap", "cache_size") && cfg.Remap.CacheSize <= 0 {
		return Default(), fmt.Errorf("%s: [remap].cache_size must be positive", path)
	}
	if meta.IsDefined("remap", "style") && strings.TrimSpace(cfg.Remap.Style) == "" {
		return Default(), fmt.Errorf("%s: [remap].style is empty", path)
	}
	if meta.IsDefined("codegen", "helper_prefix") && !validPrefix(cfg.Codegen.HelperPrefix) {
		return Default(), fmt.Errorf("%s: [codegen].helper_prefix %q is not an identifier prefix", path, cfg.Codegen.HelperPrefix)
	}

	cfg.Path = path
	base := filepath.Dir(path)
	for _, dir := range []*string{&cfg.Remap.InputDir, &cfg.Remap.SourceMapDir, &cfg.Remap.CacheDir} {
		if *dir != "" && !filepath.IsAbs(*dir) {
			*dir = filepath.Join(base, *dir)
		}
	}
	return cfg, nil
}

// Env variables that override the file.
const (
	EnvInputDir     = "UNI_INPUT_DIR"
	EnvSourceMapDir = "UNI_SOURCEMAP_DIR"
	EnvSourceRoot   = "UNI_SOURCE_ROOT"
	EnvStyle        = "UNIKIT_STYLE"
	EnvReplaceTabs  = "UNIKIT_REPLACE_TABS"
)

// LoadEnv reads dir/.env without touching the process environment and
// layers the process environment over it.
func LoadEnv(dir string) (func(string) (string, bool), error) {
	dotenv, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides cfg with the variables lookup knows about.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(EnvInputDir, &cfg.Remap.InputDir)
	set(EnvSourceMapDir, &cfg.Remap.SourceMapDir)
	set(EnvSourceRoot, &cfg.Remap.SourceRoot)
	set(EnvStyle, &cfg.Remap.Style)
	if v, ok := lookup(EnvReplaceTabs); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvReplaceTabs, err)
		}
		cfg.Remap.ReplaceTabs = b
	}
	return nil
}

func validPrefix(p string) bool {
	if p == "" {
		return false
	}
	for i, r := range p {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
