// Package version holds the build-time identity of the zeroc CLI.
package version

import "github.com/fatih/color"

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = majorColor.Sprint("0") + "." + minorColor.Sprint("1") + "." + patchColor.Sprint("0") + "-dev"

	// GitCommit is an optional git commit hash, overridable via -ldflags.
	GitCommit = ""

	// BuildDate is an optional ISO-8601 build date, overridable via -ldflags.
	BuildDate = ""
)
