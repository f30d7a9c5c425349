package cmd

import (
	"fmt"
	"runtime"
)

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// versionTemplate is printed by --version.
func versionTemplate() string {
	return fmt.Sprintf("Version:    {{.Version}}\n"+
		"Commit:     %s\n"+
		"Build Date: %s\n"+
		"Go Version: %s\n"+
		"OS/Arch:    %s/%s\n",
		emptyAsNA(commit), emptyAsNA(buildDate), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func emptyAsNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
