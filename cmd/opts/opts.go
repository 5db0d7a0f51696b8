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

package opts

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ai-dynamo/bimap/internal/bimaps"
	"github.com/ai-dynamo/bimap/internal/logger"
	"github.com/ai-dynamo/bimap/internal/utils"

	"github.com/spf13/pflag"
)

// OutputFormat selects how the resulting bimap is rendered.
type OutputFormat string

const (
	// OutputDisplay renders {k <-> v, ...}.
	OutputDisplay OutputFormat = "display"
	// OutputDebug renders {"k": "v", ...}.
	OutputDebug OutputFormat = "debug"
	// OutputYAML renders an ordered YAML mapping.
	OutputYAML OutputFormat = "yaml"
)

var allOutputFormats = []OutputFormat{OutputDisplay, OutputDebug, OutputYAML}

// Config is the validated configuration the command runs with.
type Config struct {
	// Pairs are the associations to insert, in order.
	Pairs []bimaps.Pair[string, string]
	// Removals are identifiers whose association is removed after insertion.
	Removals []string
	// Lookups are identifiers resolved against the final bimap.
	Lookups []string
	// Strict rejects identifiers already used in either direction.
	Strict bool
	// Output is the rendering of the final bimap.
	Output OutputFormat
	// Log configures the logger.
	Log LogConfiguration
}

// LogConfiguration configures the logger.
type LogConfiguration struct {
	DevMode bool
	Level   logger.LogLevel
	Format  logger.LogFormat
}

// CLIOptions holds the raw command line flags.
type CLIOptions struct {
	pairs     []string
	removals  []string
	lookups   []string
	strict    bool
	output    string
	devMode   bool
	logLevel  string
	logFormat string
	// Config is populated by Complete.
	Config *Config
}

// NewCLIOptions creates CLIOptions and registers its flags on fs.
func NewCLIOptions(fs *pflag.FlagSet) *CLIOptions {
	cliOpts := &CLIOptions{}
	cliOpts.addFlags(fs)
	return cliOpts
}

func (o *CLIOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringArrayVar(&o.pairs, "pair", nil, "Association to insert in the form key=value. Can be repeated; order is preserved.")
	fs.StringArrayVar(&o.removals, "remove", nil, "Key or value whose association is removed. Can be repeated.")
	fs.StringArrayVar(&o.lookups, "lookup", nil, "Key or value to resolve to its counterpart. Can be repeated.")
	fs.BoolVar(&o.strict, "strict", false, "Reject identifiers already used as a key or a value in either direction.")
	fs.StringVar(&o.output, "output", string(OutputDisplay), fmt.Sprintf("Output format, one of %v.", allOutputFormats))
	fs.BoolVar(&o.devMode, "dev-mode", false, "Enable development logging.")
	fs.StringVar(&o.logLevel, "log-level", string(logger.InfoLevel), fmt.Sprintf("Log level, one of %v.", logger.AllLogLevels))
	fs.StringVar(&o.logFormat, "log-format", string(logger.LogFormatJSON), fmt.Sprintf("Log format, one of %v.", logger.AllLogFormats))
}

// Complete parses the raw flags into Config.
func (o *CLIOptions) Complete() error {
	pairs, err := utils.SplitPairs(o.pairs)
	if err != nil {
		return fmt.Errorf("invalid --pair: %w", err)
	}
	o.Config = &Config{
		Pairs:    pairs,
		Removals: o.removals,
		Lookups:  o.lookups,
		Strict:   o.strict,
		Output:   OutputFormat(o.output),
		Log: LogConfiguration{
			DevMode: o.devMode,
			Level:   logger.LogLevel(o.logLevel),
			Format:  logger.LogFormat(o.logFormat),
		},
	}
	return nil
}

// Validate checks the completed Config.
func (o *CLIOptions) Validate() error {
	if o.Config == nil {
		return errors.New("options have not been completed")
	}
	var errs []error
	if !slices.Contains(allOutputFormats, o.Config.Output) {
		errs = append(errs, fmt.Errorf("unsupported output format %q, expected one of %v", o.Config.Output, allOutputFormats))
	}
	if !slices.Contains(logger.AllLogLevels, o.Config.Log.Level) {
		errs = append(errs, fmt.Errorf("unsupported log level %q, expected one of %v", o.Config.Log.Level, logger.AllLogLevels))
	}
	if !slices.Contains(logger.AllLogFormats, o.Config.Log.Format) {
		errs = append(errs, fmt.Errorf("unsupported log format %q, expected one of %v", o.Config.Log.Format, logger.AllLogFormats))
	}
	for _, id := range slices.Concat(o.Config.Lookups, o.Config.Removals) {
		if utils.IsEmptyStringType(id) {
			errs = append(errs, errors.New("--lookup and --remove do not accept blank identifiers"))
			break
		}
	}
	return errors.Join(errs...)
}
