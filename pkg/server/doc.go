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

// Package server provides the HTTP front end shared by the status binaries.
//
// # Endpoints
//
// Built in, not rate limited:
//   - GET /         name, version, readiness and the route list
//   - GET /health   liveness, always 200 while the process serves
//   - GET /ready    200 once listening, 503 during startup and shutdown
//   - GET /metrics  Prometheus exposition (promhttp)
//
// Handlers passed with WithHandler are mounted behind the middleware chain:
// metrics, API version negotiation, request ID, panic recovery, rate
// limiting and request logging.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("statusd"),
//	    server.WithVersion(version),
//	    server.WithAddress(":8080"),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/snapshot": snapshotter.HandleSnapshot,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run returns after ctx is canceled and in-flight requests have drained or
// ShutdownTimeout elapsed.
//
// # Errors
//
// Non-2xx API responses share one body:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 10, "burst": 20},
//	  "requestId": "3f2a...",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": true
//	}
//
// WriteErrorFromErr derives status and code from a pkg/errors StructuredError.
//
// # systemd
//
// With WithSystemdNotify(true) the server sends READY=1 after binding and
// STOPPING=1 when shutdown starts, for Type=notify units.
package server
