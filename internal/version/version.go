// Package version holds build information for the unikit CLI.
package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Overridden at build time via -ldflags "-X unikit/internal/version.Version=...".
var (
	Version    = "0.1.0-dev"
	GitCommit  = ""
	GitMessage = ""
	BuildDate  = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored paints major, minor and patch; the pre-release tail stays plain.
// Strings that are not x.y.z are returned as is.
func Colored(v string) string {
	core, tail, _ := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if tail != "" {
		out += "-" + tail
	}
	return out
}

// Info is the build description printed by `unikit version`.
type Info struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

func Current() Info {
	return Info{
		Version:    strings.TrimSpace(Version),
		GitCommit:  strings.TrimSpace(GitCommit),
		GitMessage: strings.TrimSpace(GitMessage),
		BuildDate:  strings.TrimSpace(BuildDate),
	}
}

func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "unikit %s", Colored(i.Version))
	if i.GitCommit != "" {
		fmt.Fprintf(&sb, "\ncommit: %s", i.GitCommit)
		if i.GitMessage != "" {
			fmt.Fprintf(&sb, " (%s)", i.GitMessage)
		}
	}
	if i.BuildDate != "" {
		fmt.Fprintf(&sb, "\nbuilt:  %s", i.BuildDate)
	}
	return sb.String()
}
