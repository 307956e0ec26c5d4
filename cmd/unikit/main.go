package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"unikit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "unikit",
	Short: "uni-app compiler toolkit",
	Long: `unikit lowers v-if/v-for directives into render expressions and maps
native Kotlin/Swift/UTS diagnostics back to the original sources`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
	PersistentPostRun: teardownApp,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(remapCmd)
	rootCmd.AddCommand(exprCmd)
	rootCmd.AddCommand(vforCmd)
	rootCmd.AddCommand(vifCmd)
	rootCmd.AddCommand(harmonyCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("timings", false, "show timing information")
	flags.String("config", "", "path to unikit.toml (default: nearest one up the tree)")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.Int("trace-ring-size", 4096, "events kept for the failure dump")
	flags.Duration("trace-heartbeat", 0, "heartbeat interval, 0 disables")
	flags.String("cpu-profile", "", "write CPU profile to file")
	flags.String("mem-profile", "", "write heap profile to file on exit")
	flags.String("runtime-trace", "", "write runtime/trace output to file")
}

// main runs the root command; any command error exits with status 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		dumpTraceRing(rootCmd)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
