package mini

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettbslone/flux-core/pkg/platform"
)

func newRunCmd() *cobra.Command {
	opts := &submitOptions{}
	verbosity := 0

	cmd := &cobra.Command{
		Use:   "run [OPTIONS] cmd ...",
		Short: "Run a job interactively",
		Long: `Submit a job like submit does, then attach to it: the process is
replaced by the attach program, which streams the job's I/O.

Examples:
  flux-mini run hostname
  flux-mini run -n 4 --label-io myapp
  flux-mini run -v myapp            (report the job id on stderr)
  flux-mini run -vv myapp           (also show job events while attached)`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plat := platform.NewPlatform()

			id, submitted, err := opts.execute(args, cmd.OutOrStdout(), plat)
			if err != nil || !submitted {
				return err
			}

			handoff := &Handoff{
				LabelIO:   opts.labelIO,
				Verbosity: verbosity,
				ExecPath:  plat.Getenv(execPathVar),
				Stderr:    os.Stderr,
				Platform:  plat,
			}
			// Does not return when the attach succeeds
			return handoff.Attach(id)
		},
	}

	addSubmitFlags(cmd.Flags(), opts)
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity on stderr (multiple use OK)")
	cmd.Flags().SetInterspersed(false)

	return cmd
}
