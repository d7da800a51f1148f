package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "with field",
			err:      NewInvalidRequestField("--setattr", "Missing value for attr %s", "foo"),
			expected: "--setattr: Missing value for attr foo",
		},
		{
			name:     "without field",
			err:      NewInvalidRequest("job command and arguments are missing"),
			expected: "job command and arguments are missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, IsInvalidRequest(tt.err))
			assert.False(t, IsTransport(tt.err))
			assert.False(t, IsExecFailed(tt.err))
		})
	}
}

func TestTransportError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewTransportError("submit", "localhost:50051", cause)

	assert.Equal(t, "submit localhost:50051: connection refused", err.Error())
	assert.True(t, IsTransport(err))
	assert.False(t, IsInvalidRequest(err))
	assert.True(t, errors.Is(err, ErrTransport))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestExecError(t *testing.T) {
	cause := fmt.Errorf("no such file or directory")
	err := NewExecError("flux-job", cause)

	assert.Equal(t, "exec flux-job: no such file or directory", err.Error())
	assert.True(t, IsExecFailed(err))
	assert.False(t, IsTransport(err))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestClassifiersRejectPlainErrors(t *testing.T) {
	err := fmt.Errorf("some error")

	assert.False(t, IsInvalidRequest(err))
	assert.False(t, IsTransport(err))
	assert.False(t, IsExecFailed(err))
}

func TestWrappedClassification(t *testing.T) {
	err := fmt.Errorf("building jobspec: %w", NewInvalidRequest("empty command"))

	assert.True(t, IsInvalidRequest(err))
}
