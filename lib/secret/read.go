// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ReadFromPath reads a credential from a file path, or the first line
// of stdin if path is "-". Surrounding whitespace is trimmed. Returns an
// error if nothing is left after trimming.
func ReadFromPath(path string) (*Buffer, error) {
	if path == "-" {
		return readLine(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return fromTrimmed(data)
}

// Prompt writes prompt to output and reads a credential from the
// terminal on stdin without echo. Falls back to reading one line when
// stdin is not a terminal (pipes, CI).
func Prompt(prompt string, output io.Writer) (*Buffer, error) {
	stdinFd := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFd) {
		return readLine(os.Stdin)
	}

	fmt.Fprint(output, prompt)
	data, err := term.ReadPassword(stdinFd)
	fmt.Fprintln(output)
	if err != nil {
		return nil, fmt.Errorf("reading from terminal: %w", err)
	}
	return fromTrimmed(data)
}

func readLine(input io.Reader) (*Buffer, error) {
	scanner := bufio.NewScanner(input)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return nil, fmt.Errorf("stdin is empty")
	}
	return fromTrimmed(scanner.Bytes())
}

func fromTrimmed(data []byte) (*Buffer, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret is empty")
	}
	buffer, err := NewFromBytes(trimmed)
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}
