package mini

import (
	"fmt"
	"io"

	"github.com/garrettbslone/flux-core/pkg/client"
	"github.com/garrettbslone/flux-core/pkg/errors"
	"github.com/garrettbslone/flux-core/pkg/platform"
)

// attachProgram connects interactively to a running job's I/O and events
const attachProgram = "flux-job"

// execPathVar names extra directories, prepended to PATH, in which the
// attach program is searched
const execPathVar = "FLUX_EXEC_PATH"

// Handoff replaces the current process image with the attach program for a
// submitted job. The search path and process operations are explicit
// collaborators, not ambient globals.
type Handoff struct {
	LabelIO   bool
	Verbosity int
	ExecPath  string
	Stderr    io.Writer
	Platform  platform.Platform
}

// Attach reports the job id when requested, then replaces the process
// image with "flux-job attach". On success this call never returns; any
// return is a failure to locate or execute the attach program.
func (h *Handoff) Attach(id client.JobID) error {
	if h.Verbosity >= 1 {
		fmt.Fprintf(h.Stderr, "jobid: %s\n", id)
		// A redirected stderr may be buffered; force it out now, the
		// image replacement would lose it.
		if f, ok := h.Stderr.(interface{ Sync() error }); ok {
			_ = f.Sync()
		}
	}

	argv := []string{attachProgram, "attach"}
	if h.LabelIO {
		argv = append(argv, "--label-io")
	}
	if h.Verbosity > 1 {
		argv = append(argv, "--show-events")
	}
	if h.Verbosity > 2 {
		argv = append(argv, "--show-exec")
	}
	argv = append(argv, id.String())

	path := h.Platform.Getenv("PATH")
	if h.ExecPath != "" {
		path = h.ExecPath + ":" + path
	}
	if err := h.Platform.Setenv("PATH", path); err != nil {
		return errors.NewExecError(attachProgram, err)
	}

	argv0, err := h.Platform.LookPath(attachProgram)
	if err != nil {
		return errors.NewExecError(attachProgram, err)
	}

	if err := h.Platform.Exec(argv0, argv, h.Platform.Environ()); err != nil {
		return errors.NewExecError(attachProgram, err)
	}

	return errors.NewExecError(attachProgram, fmt.Errorf("exec returned unexpectedly"))
}
