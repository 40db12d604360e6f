package main

import (
	"bytes"
	"encoding/json"
)

// indent re-encodes compact JSON with two space indentation
func indent(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
