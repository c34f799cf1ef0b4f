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
	"context"

	"github.com/shirou/gopsutil/v4/common"
)

// HostEnv returns ctx annotated so that gopsutil reads the same host
// filesystem as the Resolver. Without a root ctx is returned unchanged.
func (r *Resolver) HostEnv(ctx context.Context) context.Context {
	if r.Root() == "" {
		return ctx
	}
	return context.WithValue(ctx, common.EnvKey, common.EnvMap{
		common.HostProcEnvKey: r.Path("/proc"),
		common.HostSysEnvKey:  r.Path("/sys"),
		common.HostEtcEnvKey:  r.Path("/etc"),
		common.HostVarEnvKey:  r.Path("/var"),
		common.HostRunEnvKey:  r.Path("/run"),
		common.HostDevEnvKey:  r.Path("/dev"),
		common.HostRootEnvKey: r.Root(),
	})
}
