package client

import (
	"strings"

	"github.com/garrettbslone/flux-core/pkg/errors"
)

// SubmitFlags is the submission flag bitmask understood by the job manager
type SubmitFlags uint32

// Bit 1 is reserved by the job manager for pre-signed submissions and is
// never set by this client.
const (
	FlagDebug    SubmitFlags = 2
	FlagWaitable SubmitFlags = 4
)

var flagNames = map[string]SubmitFlags{
	"debug":    FlagDebug,
	"waitable": FlagWaitable,
}

// ResolveFlags maps comma-separated submission-flag groups to a bitmask.
// Tokens are matched exactly, with no trimming; the first unrecognized
// token fails the whole resolution.
func ResolveFlags(groups []string) (SubmitFlags, error) {
	var flags SubmitFlags
	for _, group := range groups {
		for _, name := range strings.Split(group, ",") {
			bit, ok := flagNames[name]
			if !ok {
				return 0, errors.NewInvalidRequestField("flags", "Unknown flag %s", name)
			}
			flags |= bit
		}
	}
	return flags, nil
}

// Names returns the symbolic names of the set bits, for diagnostics
func (f SubmitFlags) Names() []string {
	var names []string
	if f&FlagDebug != 0 {
		names = append(names, "debug")
	}
	if f&FlagWaitable != 0 {
		names = append(names, "waitable")
	}
	return names
}
