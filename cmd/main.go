// /*
// Copyright 2024 The Grove Authors.
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

package main

import (
	"os"

	"github.com/ai-dynamo/bimap/cmd/cli"
	bimapopts "github.com/ai-dynamo/bimap/cmd/opts"
	bimaplogger "github.com/ai-dynamo/bimap/internal/logger"

	"github.com/spf13/pflag"
)

var (
	logger = bimaplogger.MustNewLogger(false, bimaplogger.InfoLevel, bimaplogger.LogFormatJSON).WithName("bimap-setup")
)

func main() {
	fs := pflag.CommandLine
	cli.AddFlags(fs)
	cliOpts := bimapopts.NewCLIOptions(fs)

	pflag.Parse()
	cli.PrintVersionAndExitIfRequested()

	cfg, err := initializeConfig(cliOpts)
	if err != nil {
		logger.Error(err, "failed to initialize configuration")
		os.Exit(1)
	}

	runLogger := bimaplogger.MustNewLogger(cfg.Log.DevMode, cfg.Log.Level, cfg.Log.Format).WithName(cli.AppName)
	printFlags(fs, runLogger)

	if err = run(cfg, os.Stdout, runLogger); err != nil {
		runLogger.Error(err, "failed to run")
		os.Exit(1)
	}
}

func initializeConfig(cliOpts *bimapopts.CLIOptions) (*bimapopts.Config, error) {
	// complete and validate configuration
	if err := cliOpts.Complete(); err != nil {
		return nil, err
	}
	if err := cliOpts.Validate(); err != nil {
		return nil, err
	}
	return cliOpts.Config, nil
}
