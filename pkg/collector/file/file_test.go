// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MalteKiefer/Status/pkg/vfs"
)

func TestNewParserDefaults(t *testing.T) {
	p := NewParser()
	if p.delimiter != "\n" {
		t.Errorf("delimiter = %q, want newline", p.delimiter)
	}
	if p.maxSize != 1<<20 {
		t.Errorf("maxSize = %d, want %d", p.maxSize, 1<<20)
	}
	if !p.skipComments {
		t.Error("skipComments should default to true")
	}
	if p.kvDelimiter != "=" {
		t.Errorf("kvDelimiter = %q, want =", p.kvDelimiter)
	}
}

func TestGetLines(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		content   string
		opts      []Option
		expected  []string
		expectErr bool
	}{
		{
			name:     "cmdline style",
			content:  "BOOT_IMAGE=/vmlinuz root=/dev/sda1 quiet",
			opts:     []Option{WithDelimiter(" ")},
			expected: []string{"BOOT_IMAGE=/vmlinuz", "root=/dev/sda1", "quiet"},
		},
		{
			name:     "comments and blanks dropped",
			content:  "# comment\nID=debian\n\n  \nVERSION_ID=\"12\"\n",
			expected: []string{"ID=debian", "VERSION_ID=\"12\""},
		},
		{
			name:     "comments kept",
			content:  "# comment\nID=debian\n",
			opts:     []Option{WithSkipComments(false)},
			expected: []string{"# comment", "ID=debian"},
		},
		{
			name:      "exceeds max size",
			content:   "0123456789",
			opts:      []Option{WithMaxSize(5)},
			expectErr: true,
		},
		{
			name:      "invalid utf8",
			content:   "ID=\xff\xfe",
			expectErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "f"+string(rune('a'+i)))
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			got, err := NewParser(tt.opts...).GetLines(path)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d lines %v, want %d %v", len(got), got, len(tt.expected), tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestGetLinesErrors(t *testing.T) {
	p := NewParser()
	if _, err := p.GetLines(""); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := p.GetLines("/nonexistent/status/test/file"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetMapOSRelease(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "etc"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := `PRETTY_NAME="Ubuntu 24.04.1 LTS"
NAME="Ubuntu"
VERSION_ID="24.04"
ID=ubuntu
ID_LIKE=debian
EMPTY=
`
	if err := os.WriteFile(filepath.Join(root, "etc", "os-release"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	p := NewParser(
		WithResolver(vfs.New(root)),
		WithVTrimChars(`"`),
		WithSkipEmptyValues(true),
	)
	m, err := p.GetMap("/etc/os-release")
	if err != nil {
		t.Fatalf("GetMap() error = %v", err)
	}

	expected := map[string]string{
		"PRETTY_NAME": "Ubuntu 24.04.1 LTS",
		"NAME":        "Ubuntu",
		"VERSION_ID":  "24.04",
		"ID":          "ubuntu",
		"ID_LIKE":     "debian",
	}
	if len(m) != len(expected) {
		t.Errorf("got %d keys %v, want %d", len(m), m, len(expected))
	}
	for k, v := range expected {
		if m[k] != v {
			t.Errorf("%s = %q, want %q", k, m[k], v)
		}
	}
}

func TestGetMapColonDelimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status")
	if err := os.WriteFile(path, []byte("Name:\tbash\nState:\tS (sleeping)\nFlag\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := NewParser(WithKVDelimiter(":")).GetMap(path)
	if err != nil {
		t.Fatalf("GetMap() error = %v", err)
	}
	if m["Name"] != "bash" || m["State"] != "S (sleeping)" {
		t.Errorf("unexpected map: %v", m)
	}
	if v, ok := m["Flag"]; !ok || v != "" {
		t.Errorf("Flag = %q (present %v), want empty and present", v, ok)
	}
}
