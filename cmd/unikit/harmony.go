package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"unikit/internal/harmony"
)

var harmonyCmd = &cobra.Command{
	Use:   "harmony",
	Short: "HarmonyOS import and manifest helpers",
}

var harmonyImportsCmd = &cobra.Command{
	Use:   "imports <id>...",
	Short: "Print the import prelude for system modules",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		code := harmony.ImportExternalCode(args)
		if code != "" {
			fmt.Fprintln(out, strings.ReplaceAll(code, ";import ", ";\nimport "))
		}
		for _, id := range args {
			if name := harmony.GlobalName(id); name != "" && !harmony.IsGlobal(id) {
				fmt.Fprintf(out, "// %s is provided as %s\n", id, name)
			}
		}
		return nil
	},
}

// manifestSubset is the part of manifest.json the harmony build reads.
type manifestSubset struct {
	AppPlus struct {
		Distribute struct {
			SDKConfigs map[string]map[string]any `json:"sdkConfigs"`
		} `json:"distribute"`
		Modules map[string]any `json:"modules"`
	} `json:"app-plus"`
}

var harmonyDepsCmd = &cobra.Command{
	Use:   "deps <manifest.json>",
	Short: "List providers and modules a manifest pulls into a Harmony build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0]) // #nosec G304 -- path is provided by the user
		if err != nil {
			return fmt.Errorf("read manifest: %w", err)
		}
		var m manifestSubset
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		out := cmd.OutOrStdout()
		for _, p := range harmony.RelatedProviders(m.AppPlus.Distribute.SDKConfigs) {
			fmt.Fprintf(out, "provider %s\n", p)
		}
		for _, mod := range harmony.RelatedModules(m.AppPlus.Modules) {
			fmt.Fprintf(out, "module %s -> %s\n", mod, harmony.ModuleSpecifier(mod))
		}
		return nil
	},
}

func init() {
	harmonyCmd.AddCommand(harmonyImportsCmd, harmonyDepsCmd)
}
