package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"unikit/internal/config"
	"unikit/internal/stacktrace"
)

var remapCmd = &cobra.Command{
	Use:   "remap",
	Short: "Map native compiler diagnostics back to .uts sources",
}

var remapKotlinCmd = &cobra.Command{
	Use:   "kotlin --records file.json",
	Short: "Remap kotlinc records (JSON array of {type, message, file, line, column})",
	Args:  cobra.NoArgs,
	RunE:  runRemapKotlin,
}

var remapSwiftCmd = &cobra.Command{
	Use:   "swift --log file --sourcemap-file index.swift.map",
	Short: "Remap a swiftc log through one source map",
	Args:  cobra.NoArgs,
	RunE:  runRemapSwift,
}

var remapSyntaxCmd = &cobra.Command{
	Use:   "syntax --log file",
	Short: "Render boxed UTS syntax errors",
	Args:  cobra.NoArgs,
	RunE:  runRemapSyntax,
}

func init() {
	remapCmd.AddCommand(remapKotlinCmd, remapSwiftCmd, remapSyntaxCmd)

	pf := remapCmd.PersistentFlags()
	pf.String("input-dir", "", "root of the generated sources (UNI_INPUT_DIR)")
	pf.String("sourcemap-dir", "", "directory mirroring input-dir with .map files (UNI_SOURCEMAP_DIR)")
	pf.String("sourcemap-file", "", "single source map for every file")
	pf.String("source-root", "", "prefix stripped from mapped paths (UNI_SOURCE_ROOT)")
	pf.String("style", "", "frame style ("+joinStyles()+")")
	pf.Bool("replace-tabs", true, "count tabs as one column")
	pf.String("cache-dir", "", "persist resolved positions in this directory")
	pf.Bool("cache", false, "persist resolved positions ($XDG_CACHE_HOME/unikit unless --cache-dir)")
	pf.Bool("clear-cache", false, "drop persisted positions before remapping (implies --cache)")

	remapKotlinCmd.Flags().String("records", "-", "JSON records file (- for stdin)")
	remapSwiftCmd.Flags().String("log", "-", "swiftc output (- for stdin)")
	remapSyntaxCmd.Flags().String("log", "-", "transpiler output (- for stdin)")
}

// remapSettings is config overlaid with explicitly set flags.
func remapSettings(cmd *cobra.Command) (config.RemapConfig, error) {
	rc := app.cfg.Remap
	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"input-dir":     &rc.InputDir,
		"sourcemap-dir": &rc.SourceMapDir,
		"source-root":   &rc.SourceRoot,
		"style":         &rc.Style,
		"cache-dir":     &rc.CacheDir,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return rc, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
	}
	if flags.Changed("replace-tabs") {
		v, err := flags.GetBool("replace-tabs")
		if err != nil {
			return rc, fmt.Errorf("failed to get replace-tabs flag: %w", err)
		}
		rc.ReplaceTabs = v
	}
	return rc, nil
}

func newResolver(cmd *cobra.Command, rc config.RemapConfig) (*stacktrace.Resolver, *stacktrace.DiskCache, error) {
	disk, err := openCache(cmd, rc)
	if err != nil {
		return nil, nil, err
	}
	r, err := stacktrace.NewResolver(stacktrace.ResolverOptions{CacheSize: rc.CacheSize, Disk: disk})
	if err != nil {
		return nil, nil, err
	}
	return r, disk, nil
}

// openCache returns nil when neither cache_dir nor a cache flag is set.
func openCache(cmd *cobra.Command, rc config.RemapConfig) (*stacktrace.DiskCache, error) {
	flags := cmd.Flags()
	enabled, err := flags.GetBool("cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache flag: %w", err)
	}
	drop, err := flags.GetBool("clear-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if rc.CacheDir == "" && !enabled && !drop {
		return nil, nil
	}
	disk, err := stacktrace.OpenDiskCache(rc.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if drop {
		if err := disk.DropAll(); err != nil {
			return nil, fmt.Errorf("clear cache: %w", err)
		}
	}
	return disk, nil
}

func runRemapKotlin(cmd *cobra.Command, _ []string) error {
	rc, err := remapSettings(cmd)
	if err != nil {
		return err
	}
	path, err := cmd.Flags().GetString("records")
	if err != nil {
		return fmt.Errorf("failed to get records flag: %w", err)
	}
	in, closeIn, err := openInput(path)
	if err != nil {
		return err
	}
	defer closeIn()

	var records []stacktrace.Record
	if err := app.timer.Measure("decode", func() error {
		raw, err := stacktrace.DecodeRecords(in)
		records = stacktrace.ValidateRecords(raw)
		return err
	}); err != nil {
		return err
	}

	r, disk, err := newResolver(cmd, rc)
	if err != nil {
		return err
	}
	var out string
	if err := app.timer.Measure("remap", func() error {
		out, err = stacktrace.ParseKotlinStacktrace(cmd.Context(), records, stacktrace.KotlinOptions{
			InputDir:             rc.InputDir,
			SourceMapDir:         rc.SourceMapDir,
			ReplaceTabsWithSpace: rc.ReplaceTabs,
			Style:                rc.Style,
			Resolver:             r,
		})
		return err
	}); err != nil {
		return fmt.Errorf("remap kotlin: %w", err)
	}
	return finishRemap(cmd.OutOrStdout(), out, disk)
}

func runRemapSwift(cmd *cobra.Command, _ []string) error {
	rc, err := remapSettings(cmd)
	if err != nil {
		return err
	}
	mapFile, err := cmd.Flags().GetString("sourcemap-file")
	if err != nil {
		return fmt.Errorf("failed to get sourcemap-file flag: %w", err)
	}
	if mapFile == "" {
		return fmt.Errorf("remap swift: --sourcemap-file is required")
	}
	log, err := readLog(cmd)
	if err != nil {
		return err
	}
	r, disk, err := newResolver(cmd, rc)
	if err != nil {
		return err
	}
	var out string
	if err := app.timer.Measure("remap", func() error {
		out, err = stacktrace.ParseSwiftPluginStacktrace(cmd.Context(), stacktrace.SwiftOptions{
			Stacktrace:    log,
			SourceMapFile: mapFile,
			SourceRoot:    rc.SourceRoot,
			Style:         rc.Style,
			Resolver:      r,
		})
		return err
	}); err != nil {
		return fmt.Errorf("remap swift: %w", err)
	}
	return finishRemap(cmd.OutOrStdout(), out, disk)
}

func runRemapSyntax(cmd *cobra.Command, _ []string) error {
	rc, err := remapSettings(cmd)
	if err != nil {
		return err
	}
	log, err := readLog(cmd)
	if err != nil {
		return err
	}
	out, err := stacktrace.ParseSyntaxError(log, rc.InputDir, stacktrace.SyntaxOptions{
		ReplaceTabsWithSpace: rc.ReplaceTabs,
		Style:                rc.Style,
	})
	if err != nil {
		return fmt.Errorf("remap syntax: %w", err)
	}
	return finishRemap(cmd.OutOrStdout(), out, nil)
}

func finishRemap(w io.Writer, out string, disk *stacktrace.DiskCache) error {
	if out != "" {
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	if err := disk.Flush(); err != nil {
		return fmt.Errorf("flush cache: %w", err)
	}
	return nil
}

func readLog(cmd *cobra.Command) (string, error) {
	path, err := cmd.Flags().GetString("log")
	if err != nil {
		return "", fmt.Errorf("failed to get log flag: %w", err)
	}
	in, closeIn, err := openInput(path)
	if err != nil {
		return "", err
	}
	defer closeIn()
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path) // #nosec G304 -- path is provided by the user
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func joinStyles() string {
	return strings.Join(stacktrace.StyleIDs(), "|")
}
