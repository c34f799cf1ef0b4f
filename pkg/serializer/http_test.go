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

package serializer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testData struct {
	Message string `json:"message" yaml:"message"`
	Code    int    `json:"code" yaml:"code"`
}

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := testData{Message: "success", Code: 200}

	RespondJSON(w, http.StatusOK, data)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var result testData
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if result != data {
		t.Errorf("expected %+v, got %+v", data, result)
	}
}

func TestRespondJSON_DifferentStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"OK", http.StatusOK},
		{"BadRequest", http.StatusBadRequest},
		{"TooManyRequests", http.StatusTooManyRequests},
		{"ServiceUnavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondJSON(w, tt.statusCode, testData{Message: tt.name, Code: tt.statusCode})

			if w.Code != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, w.Code)
			}
		})
	}
}

func TestRespondJSON_EmptyData(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, nil)

	if body := w.Body.String(); body != "null\n" {
		t.Errorf("expected 'null\\n', got %q", body)
	}
}

func TestRespond_BuffersBeforeWritingHeaders(t *testing.T) {
	w := httptest.NewRecorder()

	// Channels cannot be encoded; a 200 here would mean headers were sent early.
	RespondJSON(w, http.StatusOK, make(chan int))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("expected error message in body")
	}
}

func TestRespond_Formats(t *testing.T) {
	data := testData{Message: "hello", Code: 7}

	t.Run("yaml", func(t *testing.T) {
		w := httptest.NewRecorder()
		Respond(w, http.StatusOK, FormatYAML, data)

		if ct := w.Header().Get("Content-Type"); ct != "application/yaml" {
			t.Errorf("unexpected Content-Type %s", ct)
		}
		var result testData
		if err := yaml.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("invalid YAML: %v", err)
		}
		if result != data {
			t.Errorf("expected %+v, got %+v", data, result)
		}
	})

	t.Run("table", func(t *testing.T) {
		w := httptest.NewRecorder()
		Respond(w, http.StatusOK, FormatTable, data)

		if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
			t.Errorf("unexpected Content-Type %s", w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Body.String(), "message") {
			t.Errorf("expected message row, got %q", w.Body.String())
		}
	})

	t.Run("unknown falls back to json", func(t *testing.T) {
		w := httptest.NewRecorder()
		Respond(w, http.StatusOK, Format("xml"), data)

		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected Content-Type %s", ct)
		}
	})
}
