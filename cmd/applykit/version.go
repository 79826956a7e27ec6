package main

import (
	"fmt"
	runtimedebug "runtime/debug"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version info",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionString reports the release version, falling back to the module
// version recorded at build time when no release version was stamped.
func versionString() string {
	v := version
	modPath := "github.com/amishk599/applykit"
	if info, ok := runtimedebug.ReadBuildInfo(); ok {
		if info.Main.Path != "" {
			modPath = info.Main.Path
		}
		if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return fmt.Sprintf("applykit %s (%s)", v, modPath)
}
