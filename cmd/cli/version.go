// /*
// Copyright 2025 The Grove Authors.
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
// */

package cli

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/pflag"
)

// AppName is the name of the command line tool.
const AppName = "bimap"

// verboseSettings are the build settings reported by --version-verbose.
var verboseSettings = []string{"vcs.revision", "vcs.modified"}

var (
	printVersion        bool
	printVerboseVersion bool
)

// AddFlags registers the version flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&printVersion, "version", false, "Print the version and exit")
	fs.BoolVar(&printVerboseVersion, "version-verbose", false, "Print detailed build information and exit")
}

// PrintVersionAndExitIfRequested prints the build information and exits if one of the version flags was set.
func PrintVersionAndExitIfRequested() {
	if printVersion || printVerboseVersion {
		fmt.Print(GetBuildInfo(printVerboseVersion))
		os.Exit(0)
	}
}

// GetBuildInfo gets the build information of the binary.
// If verbose is true, it returns detailed build information else it will only return the application version.
func GetBuildInfo(verbose bool) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fmt.Sprintf("%s: binary build info not embedded\n", AppName)
	}
	if !verbose {
		return fmt.Sprintf("%s version: %s\n", AppName, info.Main.Version)
	}
	return getVerboseBuildInfo(info)
}

func getVerboseBuildInfo(info *debug.BuildInfo) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (%s)\n", AppName, info.Main.Version, info.GoVersion)
	for _, key := range verboseSettings {
		fmt.Fprintf(&sb, "  %s: %s\n", key, getSetting(info, key))
	}
	return sb.String()
}

func getSetting(info *debug.BuildInfo, key string) string {
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return fmt.Sprintf("<unknown %s>", key)
}
