// Copyright 2025 The SCALSRenderer Authors.
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

// scals-render resolves a declarative UI document offline and prints the
// resulting IR tree. With --track it also prints the state paths each
// node depends on.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/document"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/ir"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/resolve"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/state"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/tracking"
)

var (
	docFile   string
	stateFile string
	track     bool
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:           "scals-render",
	Short:         "Resolve a declarative UI document and print its IR tree",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&docFile, "file", "f", "", "path to the UI document (JSON or YAML, required)")
	rootCmd.Flags().StringVar(&stateFile, "state", "", "path to a JSON file with initial session state")
	rootCmd.Flags().BoolVar(&track, "track", false, "record and print per-node state dependencies")
	rootCmd.Flags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity")
	_ = rootCmd.MarkFlagRequired("file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := newLogger(verbosity)

	data, err := os.ReadFile(docFile)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	doc, err := document.Decode(data)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	store := state.New()
	if stateFile != "" {
		if err := loadState(stateFile, store); err != nil {
			return fmt.Errorf("load state: %w", err)
		}
	}

	opts := []resolve.Option{resolve.WithLogger(log)}
	var tracker *tracking.Tracker
	if track {
		tracker = tracking.NewTracker()
		opts = append(opts, resolve.WithTracker(tracker))
	}

	tree, err := resolve.New(opts...).Resolve(doc, store)
	if err != nil {
		if resolve.IsStructural(err) {
			// A broken document still renders something: an empty tree.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			printHeading("IR tree (empty, document is structurally invalid)")
			ir.New("container").Dump(os.Stdout)
			os.Exit(1)
		}
		return err
	}

	printHeading("IR tree")
	tree.Root.Dump(os.Stdout)

	if tracker != nil {
		printHeading("dependencies")
		printScopes(tracker)
	}
	return nil
}

func newLogger(v int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: v})
}

// loadState seeds the session store from a flat JSON object. Writes go
// through Set so the first pass sees a store in its normal shape.
func loadState(path string, store *state.Store) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var values map[string]interface{}
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		store.Set(k, values[k])
	}
	return nil
}

func printHeading(text string) {
	color.New(color.FgCyan, color.Bold).Fprintf(os.Stdout, "== %s ==\n", text)
}

func printScopes(tracker *tracking.Tracker) {
	scopes := tracker.Scopes()
	ids := make([]string, 0, len(scopes))
	for id := range scopes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	node := color.New(color.FgYellow)
	for _, id := range ids {
		s := scopes[id]
		node.Fprintf(os.Stdout, "%s\n", id)
		printSet("  reads", s.Reads)
		printSet("  writes", s.Writes)
		printSet("  local reads", s.LocalReads)
		printSet("  local writes", s.LocalWrites)
	}
}

func printSet(label string, paths sets.Set[string]) {
	if paths.Len() == 0 {
		return
	}
	fmt.Printf("%s:", label)
	for _, p := range sets.List(paths) {
		fmt.Printf(" %s", p)
	}
	fmt.Println()
}
