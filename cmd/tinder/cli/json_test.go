// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestWriteJSON_RawMessageKeepsOrder(t *testing.T) {
	var buffer bytes.Buffer
	if err := WriteJSON(&buffer, json.RawMessage(`{"z":1,"a":[true]}`)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	want := "{\n  \"z\": 1,\n  \"a\": [\n    true\n  ]\n}\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}
}

func TestWriteJSON_EmptyRawMessage(t *testing.T) {
	var buffer bytes.Buffer
	if err := WriteJSON(&buffer, json.RawMessage(nil)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if buffer.String() != "null\n" {
		t.Errorf("output = %q, want null", buffer.String())
	}
}

func TestEmitJSON(t *testing.T) {
	var output JSONOutput
	var buffer bytes.Buffer

	done, err := output.EmitJSON(&buffer, map[string]int{"limit": 3})
	if done || err != nil || buffer.Len() != 0 {
		t.Fatalf("EmitJSON without --json = (%v, %v), wrote %q", done, err, buffer.String())
	}

	output.OutputJSON = true
	var results []string
	done, err = output.EmitJSON(&buffer, results)
	if !done || err != nil {
		t.Fatalf("EmitJSON with --json = (%v, %v)", done, err)
	}
	if buffer.String() != "[]\n" {
		t.Errorf("nil slice output = %q, want []", buffer.String())
	}
}
