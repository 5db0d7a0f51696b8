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

package main

import (
	"fmt"
	"io"

	bimapopts "github.com/ai-dynamo/bimap/cmd/opts"
	"github.com/ai-dynamo/bimap/internal/bimaps"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// run builds the bimap described by cfg, applies removals, resolves lookups and renders the result to out.
func run(cfg *bimapopts.Config, out io.Writer, logger logr.Logger) error {
	bm, err := buildBiMap(cfg, logger)
	if err != nil {
		return err
	}

	for _, id := range cfg.Removals {
		if err = bimaps.Remove(bm, id); err != nil {
			return fmt.Errorf("failed to remove %q: %w", id, err)
		}
		logger.V(1).Info("association removed", "identifier", id)
	}

	for _, id := range cfg.Lookups {
		counterpart, err := bimaps.Get(bm, id)
		if err != nil {
			return fmt.Errorf("failed to look up %q: %w", id, err)
		}
		if _, err = fmt.Fprintf(out, "%s -> %s\n", id, counterpart); err != nil {
			return err
		}
	}

	logger.Info("bimap ready", "associations", bm.Len())
	return render(bm, cfg.Output, out)
}

func buildBiMap(cfg *bimapopts.Config, logger logr.Logger) (*bimaps.BiMap[string, string], error) {
	set := func(bm *bimaps.BiMap[string, string], key, value string) error {
		return bm.Set(key, value)
	}
	if cfg.Strict {
		set = bimaps.SetUnambiguous[string]
	}

	bm := bimaps.New[string, string]()
	for _, pair := range cfg.Pairs {
		if err := set(bm, pair.Key, pair.Value); err != nil {
			return nil, fmt.Errorf("failed to add %s=%s: %w", pair.Key, pair.Value, err)
		}
		logger.V(1).Info("association added", "key", pair.Key, "value", pair.Value)
	}
	return bm, nil
}

func render(bm *bimaps.BiMap[string, string], format bimapopts.OutputFormat, out io.Writer) error {
	switch format {
	case bimapopts.OutputDebug:
		_, err := fmt.Fprintln(out, bm.GoString())
		return err
	case bimapopts.OutputYAML:
		data, err := yaml.Marshal(bm)
		if err != nil {
			return fmt.Errorf("failed to render bimap as YAML: %w", err)
		}
		_, err = out.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(out, bm.String())
		return err
	}
}

func printFlags(fs *pflag.FlagSet, logger logr.Logger) {
	var flagKVs []any
	fs.VisitAll(func(f *pflag.Flag) {
		flagKVs = append(flagKVs, f.Name, f.Value.String())
	})
	logger.V(1).Info("Running with flags", flagKVs...)
}
