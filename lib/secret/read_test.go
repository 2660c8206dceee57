// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFromPath(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{name: "plain token", content: "EAAGm0PX4ZCps", expected: "EAAGm0PX4ZCps"},
		{name: "trailing newline", content: "EAAGm0PX4ZCps\n", expected: "EAAGm0PX4ZCps"},
		{name: "surrounding whitespace", content: "  EAAGm0PX4ZCps \t\n", expected: "EAAGm0PX4ZCps"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(tempDir, strings.ReplaceAll(test.name, " ", "-"))
			if err := os.WriteFile(path, []byte(test.content), 0600); err != nil {
				t.Fatalf("writing test file: %v", err)
			}

			buffer, err := ReadFromPath(path)
			if err != nil {
				t.Fatalf("ReadFromPath: %v", err)
			}
			defer buffer.Close()
			if buffer.String() != test.expected {
				t.Errorf("ReadFromPath = %q, want %q", buffer.String(), test.expected)
			}
		})
	}
}

func TestReadFromPath_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadFromPath("/nonexistent/path/to/token"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("whitespace only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blank")
		if err := os.WriteFile(path, []byte("   \n\t\n"), 0600); err != nil {
			t.Fatalf("writing test file: %v", err)
		}
		if _, err := ReadFromPath(path); err == nil {
			t.Error("expected error for whitespace-only file")
		}
	})
}

func TestNewFromBytes_ZerosSource(t *testing.T) {
	source := []byte("x-auth-token")
	buffer, err := NewFromBytes(source)
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	defer buffer.Close()

	for index, value := range source {
		if value != 0 {
			t.Fatalf("source[%d] = %d, want 0", index, value)
		}
	}
	if buffer.String() != "x-auth-token" {
		t.Errorf("String() = %q", buffer.String())
	}
}

func TestNewFromBytes_Empty(t *testing.T) {
	if _, err := NewFromBytes(nil); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestBufferClose(t *testing.T) {
	buffer, err := NewFromString("token")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("String after Close should panic")
		}
	}()
	_ = buffer.String()
}
