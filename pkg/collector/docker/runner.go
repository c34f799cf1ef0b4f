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

package docker

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/MalteKiefer/Status/pkg/errors"

	utilexec "k8s.io/utils/exec"
)

// Runner executes an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands on the host through k8s.io/utils/exec.
type ExecRunner struct {
	exec utilexec.Interface
}

// NewExecRunner returns a Runner backed by the real process table.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{exec: utilexec.New()}
}

// Run starts name with args and waits for it to finish or for ctx to expire.
// Missing binaries, non-zero exits and timeouts are all returned as errors.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := r.exec.CommandContext(ctx, name, args...).Output()
	if err == nil {
		return out, nil
	}

	if ctx.Err() != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeTimeout, "command timed out", ctx.Err(),
			map[string]any{"command": name, "args": args})
	}
	if stderrors.Is(err, utilexec.ErrExecutableNotFound) {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "command not found", err,
			map[string]any{"command": name})
	}

	var exitErr utilexec.ExitError
	if stderrors.As(err, &exitErr) {
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable,
			fmt.Sprintf("command exited with status %d", exitErr.ExitStatus()), err,
			map[string]any{"command": name, "args": args})
	}
	return nil, errors.Wrap(errors.ErrCodeInternal, "command failed", err)
}

// runWithTimeout bounds a single invocation independently of the parent deadline.
func runWithTimeout(ctx context.Context, r Runner, timeout time.Duration, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return r.Run(ctx, name, args...)
}
