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

package host

import (
	"fmt"

	"github.com/MalteKiefer/Status/pkg/collector/file"
	"github.com/MalteKiefer/Status/pkg/measurement"
)

var (
	filePathReleasePrimary  = "/etc/os-release"
	filePathReleaseFallback = "/usr/lib/os-release"
)

// readRelease parses os-release(5), falling back to /usr/lib/os-release
// when /etc/os-release does not exist.
//
//	NAME="Ubuntu"
//	ID=ubuntu
//	VERSION_ID="22.04"
//	PRETTY_NAME="Ubuntu 22.04.4 LTS"
func (c *Collector) readRelease() (measurement.OSRelease, error) {
	path := filePathReleasePrimary
	if !c.Resolver.Exists(path) {
		path = filePathReleaseFallback
	}

	parser := file.NewParser(
		file.WithResolver(c.Resolver),
		file.WithKVDelimiter("="),
		// Values may be quoted with either quote character.
		file.WithVTrimChars(`"'`),
		file.WithSkipEmptyValues(true),
	)

	params, err := parser.GetMap(path)
	if err != nil {
		return measurement.OSRelease{}, fmt.Errorf("failed to read os release from %s: %w", path, err)
	}

	return measurement.OSRelease{
		ID:         params["ID"],
		Name:       params["NAME"],
		Version:    params["VERSION"],
		VersionID:  params["VERSION_ID"],
		PrettyName: params["PRETTY_NAME"],
	}, nil
}
