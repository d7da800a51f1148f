// Package jobspec builds version 1 jobspec documents: the structured
// description of a unit of work accepted by the resource manager. The
// builder mirrors the canonical jobspec shape — a resource tree, a task
// section bound to a slot label, and a nested attribute section reached
// through dotted paths.
package jobspec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/garrettbslone/flux-core/pkg/errors"
)

// Version is the jobspec document version this builder emits
const Version = 1

// Resource is one vertex of the jobspec resource tree
type Resource struct {
	Type  string      `json:"type"`
	Count int         `json:"count"`
	Label string      `json:"label,omitempty"`
	With  []*Resource `json:"with,omitempty"`
}

// Task binds the command to a resource slot
type Task struct {
	Command []string       `json:"command"`
	Slot    string         `json:"slot"`
	Count   map[string]int `json:"count"`
}

// Jobspec is the unit of work submitted to the resource manager. It is
// built once per invocation and treated as immutable after submission.
type Jobspec struct {
	Version    int                    `json:"version"`
	Resources  []*Resource            `json:"resources"`
	Tasks      []*Task                `json:"tasks"`
	Attributes map[string]interface{} `json:"attributes"`
}

// FromCommandOptions carries the resource shape for FromCommand. Zero
// values mean "not requested": NumNodes and GPUsPerTask are omitted from
// the resource tree entirely when unset, not emitted as zero counts.
type FromCommandOptions struct {
	NumTasks     int
	CoresPerTask int
	GPUsPerTask  int
	NumNodes     int
}

// FromCommand builds a jobspec for command with the given resource shape,
// working directory, and environment snapshot. The environment is captured
// by the caller once, at build time, and treated as immutable from then on.
func FromCommand(command []string, opts FromCommandOptions, cwd string, environ []string) (*Jobspec, error) {
	if len(command) == 0 {
		return nil, errors.NewInvalidRequest("job command and arguments are missing")
	}

	numTasks := opts.NumTasks
	if numTasks == 0 {
		numTasks = 1
	}
	coresPerTask := opts.CoresPerTask
	if coresPerTask == 0 {
		coresPerTask = 1
	}

	if numTasks < 1 {
		return nil, errors.NewInvalidRequestField("ntasks", "must be >= 1, got %d", numTasks)
	}
	if coresPerTask < 1 {
		return nil, errors.NewInvalidRequestField("cores-per-task", "must be >= 1, got %d", coresPerTask)
	}
	if opts.GPUsPerTask < 0 {
		return nil, errors.NewInvalidRequestField("gpus-per-task", "must be >= 0, got %d", opts.GPUsPerTask)
	}
	if opts.NumNodes < 0 {
		return nil, errors.NewInvalidRequestField("nodes", "must be >= 1, got %d", opts.NumNodes)
	}

	children := []*Resource{{Type: "core", Count: coresPerTask}}
	if opts.GPUsPerTask > 0 {
		children = append(children, &Resource{Type: "gpu", Count: opts.GPUsPerTask})
	}

	taskCount := map[string]int{"per_slot": 1}
	var resources []*Resource
	if opts.NumNodes > 0 {
		if opts.NumNodes > numTasks {
			return nil, errors.NewInvalidRequestField("nodes",
				"unable to distribute %d tasks over %d nodes", numTasks, opts.NumNodes)
		}
		numSlots := numTasks / opts.NumNodes
		if numTasks%opts.NumNodes != 0 {
			// Uneven distribution wastes task slots on some nodes; record
			// the total instead of a per-slot count.
			numSlots++
			taskCount = map[string]int{"total": numTasks}
		}
		slot := &Resource{Type: "slot", Count: numSlots, Label: "task", With: children}
		resources = []*Resource{{Type: "node", Count: opts.NumNodes, With: []*Resource{slot}}}
	} else {
		resources = []*Resource{{Type: "slot", Count: numTasks, Label: "task", With: children}}
	}

	environment := make(map[string]string, len(environ))
	for _, entry := range environ {
		if idx := strings.Index(entry, "="); idx >= 0 {
			environment[entry[:idx]] = entry[idx+1:]
		}
	}

	js := &Jobspec{
		Version:   Version,
		Resources: resources,
		Tasks: []*Task{{
			Command: command,
			Slot:    "task",
			Count:   taskCount,
		}},
		Attributes: map[string]interface{}{
			"system": map[string]interface{}{
				"duration":    float64(0),
				"cwd":         cwd,
				"environment": environment,
			},
		},
	}

	return js, nil
}

// SetDuration validates limit against the standard duration grammar and
// records it in seconds. Zero means unlimited.
func (j *Jobspec) SetDuration(limit string) error {
	seconds, err := ParseDuration(limit)
	if err != nil {
		return err
	}
	j.SetAttr("system.duration", seconds)
	return nil
}

// SetAttr sets the attribute at the dotted path to value. Repeated writes
// under the same path overwrite: last one wins. A write through an existing
// scalar replaces it with a fresh mapping.
func (j *Jobspec) SetAttr(path string, value interface{}) {
	keys := strings.Split(path, ".")
	node := j.Attributes
	for _, key := range keys[:len(keys)-1] {
		next, ok := node[key].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			node[key] = next
		}
		node = next
	}
	node[keys[len(keys)-1]] = value
}

// SetShellOption sets the shell option at the dotted path, stored under
// the system.shell.options attribute subtree.
func (j *Jobspec) SetShellOption(path string, value interface{}) {
	j.SetAttr("system.shell.options."+path, value)
}

// GetAttr returns the attribute at the dotted path, if present
func (j *Jobspec) GetAttr(path string) (interface{}, bool) {
	keys := strings.Split(path, ".")
	node := j.Attributes
	for _, key := range keys[:len(keys)-1] {
		next, ok := node[key].(map[string]interface{})
		if !ok {
			return nil, false
		}
		node = next
	}
	value, ok := node[keys[len(keys)-1]]
	return value, ok
}

// GetShellOption returns the shell option at the dotted path, if present
func (j *Jobspec) GetShellOption(path string) (interface{}, bool) {
	return j.GetAttr("system.shell.options." + path)
}

// Dumps serializes the jobspec to its canonical textual form: JSON with
// lexically ordered keys, the document the resource manager consumes.
func (j *Jobspec) Dumps() (string, error) {
	data, err := json.Marshal(j)
	if err != nil {
		return "", fmt.Errorf("failed to serialize jobspec: %w", err)
	}
	return string(data), nil
}
