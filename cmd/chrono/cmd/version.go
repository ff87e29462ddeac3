package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "chrono %s\n", version.Get("cli"))
			printField(out, "library", version.Library)
			printField(out, "go", runtime.Version())
			printField(out, "os/arch", runtime.GOOS+"/"+runtime.GOARCH)
		},
	}
}
