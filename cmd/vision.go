package cmd

import (
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/davibonetto/titan-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	visionStream bool
	visionIndex  uint
)

var visionCmd = &cobra.Command{
	Use:     "vision",
	Aliases: []string{"vis", "eye", "stream"},
	Short:   "👁️ Connect to OPTICUS vision stream",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := workflow.Env{Console: ui.NewConsole(cmd.OutOrStdout()), Verbose: verbose}
		return workflow.Vision(cmd.Context(), env, workflow.VisionOptions{
			Stream: visionStream,
			Index:  visionIndex,
		})
	},
}

func init() {
	visionCmd.Flags().BoolVarP(&visionStream, "stream", "s", false, "enable streaming mode")
	visionCmd.Flags().UintVarP(&visionIndex, "index", "i", 0, "camera/source index")
	rootCmd.AddCommand(visionCmd)
}
