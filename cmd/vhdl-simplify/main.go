// Command vhdl-simplify loads a named example design (built with
// internal/fixture, standing in for a parsed and checked architecture
// body) and prints its post-simplification tree.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/config"
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/demo"
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/simplify"
)

func main() {
	glog.InitFlags(nil)

	var verbose bool
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "vhdl-simplify [scenario]",
		Short: "Desugar a named example design into its residual process form",
		Long: "vhdl-simplify runs the tree rewriter over one of a handful of named\n" +
			"example designs and prints the resulting tree, the same shape a\n" +
			"recompiled nvc-style toolchain would hand to the simulation kernel.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			if configPath != "" {
				var err error
				cfg, err = config.LoadFile(configPath)
				if err != nil {
					return fmt.Errorf("loading config %s: %w", configPath, err)
				}
			} else {
				cfg = config.Load(".")
			}
			if verbose {
				cfg.Trace = true
				_ = flag.Set("v", "1")
			}

			name := "mux"
			if len(args) == 1 {
				name = args[0]
			}
			scenario, err := demo.Lookup(name)
			if err != nil {
				return err
			}

			d := scenario.Build()
			a := d.Arena
			top := d.Top

			if cfg.Trace {
				glog.V(1).Infof("simplifying scenario %q (%s)", scenario.Name, scenario.Description)
			}

			result, err := simplify.Run(a, top)
			if err != nil {
				return fmt.Errorf("structural violation: %w", err)
			}

			fmt.Println(ir.Dump(result))
			return nil
		},
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable TRACE-level logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a config file (default: search vhdl_sim.json locations)")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default vhdl_sim.json configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "vhdl_sim.json"
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the available example scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range demo.Names() {
				s, _ := demo.Lookup(name)
				fmt.Printf("  %-14s %s\n", s.Name, s.Description)
			}
			return nil
		},
	}

	rootCmd.AddCommand(initCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
