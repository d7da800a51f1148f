package mini

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/garrettbslone/flux-core/pkg/client"
	"github.com/garrettbslone/flux-core/pkg/config"
	"github.com/garrettbslone/flux-core/pkg/jobspec"
	"github.com/garrettbslone/flux-core/pkg/platform"
)

// submitOptions is the option set shared by the submit and run subcommands
type submitOptions struct {
	nodes        int
	ntasks       int
	coresPerTask int
	gpusPerTask  int
	timeLimit    string
	priority     int
	jobName      string
	setopt       []string
	setattr      []string
	input        string
	output       string
	errfile      string
	labelIO      bool
	flagGroups   []string
	dryRun       bool
}

func addSubmitFlags(fs *pflag.FlagSet, o *submitOptions) {
	fs.IntVarP(&o.nodes, "nodes", "N", 0, "Number of nodes to allocate")
	fs.IntVarP(&o.ntasks, "ntasks", "n", 1, "Number of tasks to start")
	fs.IntVarP(&o.coresPerTask, "cores-per-task", "c", 1, "Number of cores to allocate per task")
	fs.IntVarP(&o.gpusPerTask, "gpus-per-task", "g", 0, "Number of GPUs to allocate per task")
	fs.StringVarP(&o.timeLimit, "time-limit", "t", "", "Time limit in standard duration, e.g. 2d, 1.5h")
	fs.IntVar(&o.priority, "priority", 16, "Set job priority (0-31, default=16)")
	fs.StringVar(&o.jobName, "job-name", "", "Set an optional name for job to NAME")
	fs.StringArrayVarP(&o.setopt, "setopt", "o", nil,
		"Set shell option OPT. An optional value is supported with OPT=VAL (default VAL=1) (multiple use OK)")
	fs.StringArrayVar(&o.setattr, "setattr", nil, "Set job attribute ATTR to VAL (multiple use OK)")
	fs.StringVar(&o.input, "input", "", "Redirect job stdin from FILENAME")
	fs.StringVar(&o.output, "output", "", "Redirect job stdout to FILENAME")
	fs.StringVar(&o.errfile, "error", "", "Redirect job stderr to FILENAME")
	fs.BoolVar(&o.labelIO, "label-io", false, "Add rank labels to stdout, stderr lines")
	fs.StringArrayVar(&o.flagGroups, "flags", nil,
		"Set comma separated list of job submission flags. Possible flags: debug, waitable")
	fs.BoolVar(&o.dryRun, "dry-run", false, "Don't actually submit job, just emit jobspec")
}

// buildJobspec assembles the jobspec from the command vector and options.
// Mutators apply in a fixed order so later writes win under the same key:
// duration, job name, stdin, stdout, stderr, setopt, setattr.
func (o *submitOptions) buildJobspec(command []string, plat platform.Platform) (*jobspec.Jobspec, error) {
	cwd, err := plat.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	js, err := jobspec.FromCommand(command, jobspec.FromCommandOptions{
		NumTasks:     o.ntasks,
		CoresPerTask: o.coresPerTask,
		GPUsPerTask:  o.gpusPerTask,
		NumNodes:     o.nodes,
	}, cwd, plat.Environ())
	if err != nil {
		return nil, err
	}

	if o.timeLimit != "" {
		if err := js.SetDuration(o.timeLimit); err != nil {
			return nil, err
		}
	}

	if o.jobName != "" {
		js.SetAttr("system.job.name", o.jobName)
	}

	if o.input != "" {
		js.SetShellOption("input.stdin.type", "file")
		js.SetShellOption("input.stdin.path", o.input)
	}

	if o.output != "" {
		js.SetShellOption("output.stdout.type", "file")
		js.SetShellOption("output.stdout.path", o.output)
		if o.labelIO {
			js.SetShellOption("output.stdout.label", true)
		}
	}

	if o.errfile != "" {
		js.SetShellOption("output.stderr.type", "file")
		js.SetShellOption("output.stderr.path", o.errfile)
		if o.labelIO {
			js.SetShellOption("output.stderr.label", true)
		}
	}

	for _, token := range o.setopt {
		key, value, err := jobspec.ParseShellOption(token)
		if err != nil {
			return nil, err
		}
		js.SetShellOption(key, value)
	}

	for _, token := range o.setattr {
		key, value, err := jobspec.ParseAttr(token)
		if err != nil {
			return nil, err
		}
		js.SetAttr(key, value)
	}

	return js, nil
}

// submitter is the slice of the handle the executor needs
type submitter interface {
	Submit(ctx context.Context, jobspec string, priority int, flags client.SubmitFlags) (client.JobID, error)
	Close() error
}

// openHandle is a seam for tests; production code opens a real handle
var openHandle = func(node *config.Node) (submitter, error) {
	return client.Open(node)
}

// execute builds and either emits (dry run) or submits the jobspec.
// The returned bool reports whether a submission actually happened: a dry
// run prints the serialized jobspec to out and stops before any RPC.
func (o *submitOptions) execute(command []string, out io.Writer, plat platform.Platform) (client.JobID, bool, error) {
	js, err := o.buildJobspec(command, plat)
	if err != nil {
		return 0, false, err
	}

	flags, err := client.ResolveFlags(o.flagGroups)
	if err != nil {
		return 0, false, err
	}

	spec, err := js.Dumps()
	if err != nil {
		return 0, false, err
	}

	if o.dryRun {
		fmt.Fprintln(out, spec)
		return 0, false, nil
	}

	if nodeConfig == nil {
		return 0, false, fmt.Errorf("no configuration loaded - this should not happen")
	}

	node, err := nodeConfig.GetNode(nodeName)
	if err != nil {
		return 0, false, err
	}

	handle, err := openHandle(node)
	if err != nil {
		return 0, false, err
	}
	defer func() { _ = handle.Close() }()

	// Blocks until the service answers or the transport fails; the
	// submission is all-or-nothing, so no timeout and no retry.
	id, err := handle.Submit(context.Background(), spec, o.priority, flags)
	if err != nil {
		return 0, false, err
	}

	return id, true, nil
}

func newSubmitCmd() *cobra.Command {
	opts := &submitOptions{}

	cmd := &cobra.Command{
		Use:   "submit [OPTIONS] cmd ...",
		Short: "Enqueue a job",
		Long: `Submit a job to the resource manager, display the job id on stdout,
and return without waiting for the job.

Examples:
  flux-mini submit hostname
  flux-mini submit -n 4 -c 2 myapp --arg
  flux-mini submit -N 2 -n 4 --time-limit=1.5h myapp
  flux-mini submit --output=out.txt --label-io myapp
  flux-mini submit --setattr=system.job.name=test --dry-run hostname`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, submitted, err := opts.execute(args, cmd.OutOrStdout(), platform.NewPlatform())
			if err != nil {
				return err
			}
			if submitted {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	addSubmitFlags(cmd.Flags(), opts)
	// Everything after the first positional token belongs to the job
	cmd.Flags().SetInterspersed(false)

	return cmd
}
