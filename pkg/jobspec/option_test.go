package jobspec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garrettbslone/flux-core/pkg/errors"
)

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected interface{}
	}{
		{"integer", "42", json.Number("42")},
		{"float", "1.5", json.Number("1.5")},
		{"bool true", "true", true},
		{"bool false", "false", false},
		{"null", "null", nil},
		{"quoted string", `"hello"`, "hello"},
		{"list", "[1,2]", []interface{}{json.Number("1"), json.Number("2")}},
		{"object", `{"a":1}`, map[string]interface{}{"a": json.Number("1")}},
		{"bare word falls back", "hello", "hello"},
		{"trailing garbage falls back", "1x", "1x"},
		{"two values fall back", "1 2", "1 2"},
		{"path stays string", "/tmp/out.txt", "/tmp/out.txt"},
		{"empty string stays string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeValue(tt.raw))
		})
	}
}

func TestParseShellOption(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantKey string
		wantVal interface{}
	}{
		{"key with value", "initrc=/etc/rc", "initrc", "/etc/rc"},
		{"key with typed value", "cpu-affinity=true", "cpu-affinity", true},
		{"bare key defaults to 1", "verbose", "verbose", json.Number("1")},
		{"value containing equals", "opt=a=b", "opt", "a=b"},
		{"empty value", "opt=", "opt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, val, err := ParseShellOption(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantVal, val)
		})
	}
}

func TestParseShellOption_MissingName(t *testing.T) {
	_, _, err := ParseShellOption("=1")

	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequest(err))
}

func TestParseAttr(t *testing.T) {
	key, val, err := ParseAttr("system.job.name=myjob")
	require.NoError(t, err)
	assert.Equal(t, "system.job.name", key)
	assert.Equal(t, "myjob", val)

	key, val, err = ParseAttr("system.exec.bulkexec={}")
	require.NoError(t, err)
	assert.Equal(t, "system.exec.bulkexec", key)
	assert.Equal(t, map[string]interface{}{}, val)
}

func TestParseAttr_RequiresValue(t *testing.T) {
	_, _, err := ParseAttr("system.job.name")

	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequest(err))
	assert.Contains(t, err.Error(), "Missing value for attr system.job.name")
}
