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
	"context"
	"log/slog"
	"net/http"

	"github.com/MalteKiefer/Status/pkg/defaults"
	"github.com/MalteKiefer/Status/pkg/serializer"
	"github.com/MalteKiefer/Status/pkg/server"
)

// HandleSnapshot serves GET /v1/snapshot. Every request builds a fresh
// snapshot; ?format=json|yaml|table selects the encoding (json by default).
func (n *NodeSnapshotter) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, server.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	format := serializer.FormatJSON
	if f := r.URL.Query().Get("format"); f != "" {
		parsed, err := serializer.ParseFormat(f)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
				"Invalid format", false, map[string]any{
					"format":    f,
					"supported": serializer.SupportedFormats(),
				})
			return
		}
		format = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SnapshotHandlerTimeout)
	defer cancel()

	snap := n.Snapshot(ctx)

	if r.Context().Err() != nil {
		slog.Debug("client went away before snapshot completed",
			slog.String("requestID", server.RequestID(r.Context())))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	serializer.Respond(w, http.StatusOK, format, snap)
}
