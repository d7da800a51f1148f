package jobspec

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/garrettbslone/flux-core/pkg/errors"
)

// ParseShellOption splits a --setopt token into its key and value. A bare
// key with no '=' defaults to the value 1.
func ParseShellOption(token string) (string, interface{}, error) {
	key, raw, found := strings.Cut(token, "=")
	if key == "" {
		return "", nil, errors.NewInvalidRequestField("setopt", "missing option name in %q", token)
	}
	if !found {
		raw = "1"
	}
	return key, DecodeValue(raw), nil
}

// ParseAttr splits a --setattr token into its key and value. Unlike shell
// options, an attribute requires an explicit value.
func ParseAttr(token string) (string, interface{}, error) {
	key, raw, found := strings.Cut(token, "=")
	if !found {
		return "", nil, errors.NewInvalidRequestField("setattr", "Missing value for attr %s", token)
	}
	if key == "" {
		return "", nil, errors.NewInvalidRequestField("setattr", "missing attribute name in %q", token)
	}
	return key, DecodeValue(raw), nil
}

// DecodeValue decodes a structured literal — a JSON number, boolean, null,
// string, array, or object — falling back to the raw string when the input
// is not valid JSON. Numbers decode as json.Number so integer literals
// survive re-serialization unchanged.
func DecodeValue(raw string) interface{} {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return raw
	}
	// Reject trailing content so e.g. "1x" stays a plain string.
	if dec.More() {
		return raw
	}
	if _, err := dec.Token(); err != io.EOF {
		return raw
	}
	return value
}
