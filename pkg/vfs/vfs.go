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

package vfs

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Resolver maps absolute virtual-filesystem paths (/proc, /sys, /etc) onto an
// optional alternate root, e.g. a host filesystem bind-mounted into a container
// at /host. A path is redirected only when the shadow copy exists; otherwise
// the real path is used.
//
// A nil *Resolver behaves like a resolver without a root.
type Resolver struct {
	root string
}

// New validates root once and returns a Resolver. The override is ignored
// unless root is absolute after cleaning and names an existing directory.
func New(root string) *Resolver {
	r := &Resolver{}
	if root == "" {
		return r
	}

	cleaned := filepath.Clean(root)
	if !filepath.IsAbs(cleaned) {
		slog.Debug("ignoring relative root path", slog.String("root", root))
		return r
	}

	fi, err := os.Stat(cleaned)
	if err != nil || !fi.IsDir() {
		slog.Debug("ignoring root path that is not an existing directory", slog.String("root", root))
		return r
	}

	if cleaned != "/" {
		r.root = cleaned
	}
	return r
}

// Root returns the validated alternate root, or "" when none is configured.
func (r *Resolver) Root() string {
	if r == nil {
		return ""
	}
	return r.root
}

// Path returns root+p when a root is configured and that path exists,
// otherwise p unchanged.
func (r *Resolver) Path(p string) string {
	if r == nil || r.root == "" {
		return p
	}
	custom := filepath.Join(r.root, p)
	if _, err := os.Stat(custom); err == nil {
		return custom
	}
	return p
}

// Exists reports whether the resolved path exists.
func (r *Resolver) Exists(p string) bool {
	_, err := os.Stat(r.Path(p))
	return err == nil
}

// Read returns the raw contents of the resolved path.
func (r *Resolver) Read(p string) ([]byte, error) {
	return os.ReadFile(r.Path(p))
}

// Get reads the resolved path and returns its contents with trailing
// whitespace removed. Any read failure yields fallback. Content that is not
// valid UTF-8 (firmware-provided model strings) is decoded as ISO-8859-1.
func (r *Resolver) Get(p, fallback string) string {
	b, err := r.Read(p)
	if err != nil {
		return fallback
	}
	if !utf8.Valid(b) {
		if decoded, derr := charmap.ISO8859_1.NewDecoder().Bytes(b); derr == nil {
			b = decoded
		}
	}
	return strings.TrimRight(string(b), " \t\r\n")
}

// GetInt reads the resolved path as a base-10 integer. Missing files and
// non-numeric content yield fallback.
func (r *Resolver) GetInt(p string, fallback int64) int64 {
	s := r.Get(p, "")
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// Ls returns the sorted full paths of the entries of the resolved directory.
// Returned paths are in the real (unresolved) namespace so they can be passed
// back into Get. Missing, unreadable or non-directory paths yield an empty slice.
func (r *Resolver) Ls(p string) []string {
	entries, err := os.ReadDir(r.Path(p))
	if err != nil {
		return []string{}
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, filepath.Join(p, e.Name()))
	}
	sort.Strings(out)
	return out
}

// LsGlob returns the sorted paths under the resolved directory p that match
// pattern, which may span several path segments ("hwmon*/temp*_input").
// Paths are in the real namespace like Ls.
func (r *Resolver) LsGlob(p, pattern string) []string {
	resolved := r.Path(p)
	matches, err := filepath.Glob(filepath.Join(resolved, pattern))
	if err != nil {
		return []string{}
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(resolved, m)
		if err != nil {
			continue
		}
		out = append(out, filepath.Join(p, rel))
	}
	sort.Strings(out)
	return out
}
