// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/ashgrove/lr0gen/internal/automaton"
	"github.com/ashgrove/lr0gen/internal/config"
	"github.com/ashgrove/lr0gen/internal/grammar"
	"github.com/ashgrove/lr0gen/internal/grammarfile"
	"github.com/ashgrove/lr0gen/internal/lex"
	"github.com/ashgrove/lr0gen/internal/lr0grammar"
	"github.com/ashgrove/lr0gen/internal/table"
	"github.com/ashgrove/lr0gen/internal/validator"
)

var version = semver.Version{
	Minor:      1,
	PreRelease: "alpha",
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	cfg := config.Default()

	root := &cobra.Command{
		Use:     "guanabana",
		Short:   "Build and inspect LR(0) parsing tables for a grammar file",
		Version: version.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadFile(configPath)
			if err != nil {
				return fmt.Errorf("loading config %s: %w", configPath, err)
			}
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional TOML config file")

	root.AddCommand(newCheckCmd(&cfg))
	root.AddCommand(newTableCmd(&cfg))
	root.AddCommand(newItemsCmd())
	return root
}

// pipeline lexes and parses grammarFile, flattens it to the LR(0) grammar
// model, and augments it. It is shared by every subcommand; the stages
// after augmentation (automaton, validation, table) are cheap enough that
// each subcommand just re-derives what it needs from the augmented grammar.
func pipeline(grammarFile string) (*lr0grammar.Grammar, error) {
	src, err := os.ReadFile(grammarFile)
	if err != nil {
		return nil, err
	}

	tokens, err := lex.Tokenize(grammarFile, src)
	if err != nil {
		return nil, err
	}

	b := grammar.NewBuilder(grammarFile)
	sink := grammar.NewBuilderSink(b)
	grammarfile.Parse(sink, tokens)
	g := b.Finalize()
	for _, d := range b.Diagnostics() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	if b.HasErrors() {
		return nil, fmt.Errorf("%s: grammar has errors", grammarFile)
	}

	rules := g.Flatten()
	lg, err := lr0grammar.FromRules(rules)
	if err != nil {
		return nil, err
	}
	if err := lg.Validate(); err != nil {
		return nil, err
	}
	return lg.Augmented()
}

func newCheckCmd(cfg *config.Config) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "check <grammar-file>",
		Short: "Report shift/reduce and reduce/reduce conflicts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := pipeline(args[0])
			if err != nil {
				return err
			}
			a, err := automaton.Build(lg)
			if err != nil {
				return err
			}
			conflicts := validator.Validate(a)
			if len(conflicts) == 0 {
				if !quiet && !cfg.Quiet {
					fmt.Printf("%s: no conflicts across %d states\n", args[0], len(a.States))
				}
				return nil
			}
			for _, c := range conflicts {
				fmt.Println(c.String())
				for _, it := range a.States[c.StateID].Items {
					fmt.Printf("  %s\n", it)
				}
			}
			return fmt.Errorf("%s: %d conflict(s) found", args[0], len(conflicts))
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the no-conflicts message")
	return cmd
}

func newTableCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <grammar-file>",
		Short: "Print the ACTION/GOTO parsing table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := pipeline(args[0])
			if err != nil {
				return err
			}
			a, err := automaton.Build(lg)
			if err != nil {
				return err
			}
			t := table.Build(a)
			fmt.Print(table.Rules(lg))
			fmt.Println(t.Render(cfg.TableWidth))
			if conflicts := t.Conflicts(); len(conflicts) > 0 {
				fmt.Fprintf(os.Stderr, "%d cell(s) hold more than one action\n", len(conflicts))
			}
			return nil
		},
	}
	return cmd
}

func newItemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items <grammar-file>",
		Short: "Print the canonical LR(0) item sets and their transitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := pipeline(args[0])
			if err != nil {
				return err
			}
			a, err := automaton.Build(lg)
			if err != nil {
				return err
			}
			for _, st := range a.States {
				fmt.Printf("state %d:\n", st.ID)
				for _, it := range st.Items {
					fmt.Printf("  %s\n", it)
				}
				for _, tr := range st.Transitions {
					fmt.Printf("  on %s -> state %d\n", tr.Symbol, tr.To)
				}
			}
			return nil
		},
	}
	return cmd
}
