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

package snapshotter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestHandleSnapshot(t *testing.T) {
	n := &NodeSnapshotter{Version: "v0.1.0", Factory: healthyFactory()}

	t.Run("json by default", func(t *testing.T) {
		rec := httptest.NewRecorder()
		n.HandleSnapshot(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec.Header().Get("Cache-Control") != "no-store" {
			t.Error("snapshots must not be cached")
		}

		var snap Snapshot
		if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if snap.CPU == nil || snap.CPU.Model != "test cpu" {
			t.Errorf("unexpected cpu %+v", snap.CPU)
		}
		if snap.APIVersion != FullAPIVersion {
			t.Errorf("unexpected apiVersion %q", snap.APIVersion)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		rec := httptest.NewRecorder()
		n.HandleSnapshot(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshot?format=yaml", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var doc map[string]any
		if err := yaml.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
			t.Fatalf("invalid YAML: %v", err)
		}
		if doc["kind"] != "Snapshot" {
			t.Errorf("unexpected kind %v", doc["kind"])
		}
	})

	t.Run("table", func(t *testing.T) {
		rec := httptest.NewRecorder()
		n.HandleSnapshot(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshot?format=table", nil))

		if !strings.Contains(rec.Body.String(), "cpu.model") {
			t.Errorf("expected flattened cpu.model row, got:\n%s", rec.Body.String())
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		rec := httptest.NewRecorder()
		n.HandleSnapshot(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshot?format=xml", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		n.HandleSnapshot(rec, httptest.NewRequest(http.MethodPost, "/v1/snapshot", nil))

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
		if rec.Header().Get("Allow") != http.MethodGet {
			t.Error("expected Allow header")
		}
	})
}
