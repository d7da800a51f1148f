// Package client implements the RPC handle to the resource manager. The
// handle wraps a single gRPC connection, opened once per invocation and
// never pooled or reused.
package client

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/garrettbslone/flux-core/pkg/config"
	"github.com/garrettbslone/flux-core/pkg/errors"
	"github.com/garrettbslone/flux-core/pkg/logger"
)

const submitMethod = "/flux.JobManager/Submit"

// JobID is the opaque identifier the job manager assigns on submission.
// It is never parsed by this client, only stringified for output and for
// the attach program's final argument.
type JobID uint64

func (id JobID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// SubmitRequest carries a serialized jobspec to the job manager. Priority
// is passed through unvalidated; the service enforces its 0-31 range.
type SubmitRequest struct {
	Jobspec  string `json:"jobspec"`
	Priority int    `json:"priority"`
	Flags    uint32 `json:"flags"`
}

// SubmitResponse is the job manager's answer to a submission
type SubmitResponse struct {
	ID uint64 `json:"id"`
}

// Handle is an open connection to a resource-manager node
type Handle struct {
	address string
	conn    *grpc.ClientConn
	log     *logger.Logger
}

// Open creates a handle from a node configuration. Nodes with embedded
// certificates get TLS; a bare address (the local broker) connects without.
func Open(node *config.Node) (*Handle, error) {
	if node == nil {
		return nil, errors.NewTransportError("open", "", fmt.Errorf("node configuration cannot be nil"))
	}

	creds := insecure.NewCredentials()
	if node.HasTLS() {
		tlsConfig, err := node.GetClientTLSConfig()
		if err != nil {
			return nil, errors.NewTransportError("open", node.Address, err)
		}
		creds = credentials.NewTLS(tlsConfig)
	}

	conn, err := grpc.NewClient(
		node.Address,
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.WaitForReady(true)),
	)
	if err != nil {
		return nil, errors.NewTransportError("connect", node.Address, err)
	}

	// Diagnostics stay quiet unless FLUX_MINI_LOG lowers the threshold
	level, _ := logger.ParseLevel(os.Getenv("FLUX_MINI_LOG"))
	log := logger.NewWithConfig(logger.Config{Level: level}).WithField("component", "client")

	return &Handle{
		address: node.Address,
		conn:    conn,
		log:     log,
	}, nil
}

func (h *Handle) Close() error {
	if h.conn != nil {
		return h.conn.Close()
	}
	return nil
}

// Submit sends a serialized jobspec to the job manager and returns the
// assigned job id. The call blocks until the service responds or the
// transport fails; no retry, no local timeout.
func (h *Handle) Submit(ctx context.Context, jobspec string, priority int, flags SubmitFlags) (JobID, error) {
	req := &SubmitRequest{
		Jobspec:  jobspec,
		Priority: priority,
		Flags:    uint32(flags),
	}
	resp := &SubmitResponse{}

	h.log.Debug("submitting job", "address", h.address, "priority", priority, "flags", uint32(flags))

	err := h.conn.Invoke(ctx, submitMethod, req, resp, grpc.CallContentSubtype(CodecName))
	if err != nil {
		return 0, errors.NewTransportError("submit", h.address, err)
	}

	h.log.Debug("job submitted", "jobid", resp.ID)
	return JobID(resp.ID), nil
}
