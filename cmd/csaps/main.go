// SPDX-License-Identifier: MIT

// Package main provides the csaps command-line front-end.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/csaps"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csaps",
		Short: "csaps - cubic smoothing splines for N-d data",
		Long: `csaps fits cubic smoothing splines to sampled N-d data and evaluates them.

Features:
  • any rank of data, one signal axis
  • optional per-site weights
  • automatic or explicit smoothing parameter
  • JSON persistence of fitted splines`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "csaps v%s (%s)\n", version, commit)
		},
	})

	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a spline from a request file",
		Long:  "Fit a spline from a YAML or JSON request holding x, y and optional axis, weights, smooth and xi",
		RunE:  runFit,
	}
	fitCmd.Flags().String("request", "", "Request file (YAML or JSON)")
	fitCmd.Flags().String("output", getEnvStr("CSAPS_OUTPUT", "yaml"), "Output format: yaml, json")
	fitCmd.Flags().String("save", "", "Write the fitted spline as JSON to this file")
	fitCmd.Flags().Bool("verbose", false, "Log progress to stderr")
	_ = fitCmd.MarkFlagRequired("request")
	rootCmd.AddCommand(fitCmd)

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a saved spline",
		RunE:  runEval,
	}
	evalCmd.Flags().String("spline", "", "Spline JSON file written by fit --save")
	evalCmd.Flags().Float64Slice("xi", nil, "Query sites, comma separated")
	evalCmd.Flags().String("output", getEnvStr("CSAPS_OUTPUT", "yaml"), "Output format: yaml, json")
	_ = evalCmd.MarkFlagRequired("spline")
	rootCmd.AddCommand(evalCmd)

	return rootCmd
}

func runFit(cmd *cobra.Command, args []string) error {
	reqPath, _ := cmd.Flags().GetString("request")
	output, _ := cmd.Flags().GetString("output")
	savePath, _ := cmd.Flags().GetString("save")
	verbose, _ := cmd.Flags().GetBool("verbose")

	req, err := loadRequest(reqPath)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("fit: loaded request %s: %d sites", reqPath, len(req.X))
	}

	s, err := req.fit()
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	sp := s.Spline()
	if verbose {
		log.Printf("fit: fitted %d channel(s), %d piece(s), p=%g", sp.Ndim(), sp.Pieces(), sp.Smooth())
	}

	res := FitResult{
		Ndim:   sp.Ndim(),
		Order:  sp.Order(),
		Pieces: sp.Pieces(),
		Smooth: sp.Smooth(),
		Breaks: sp.Breaks(),
	}
	if req.Xi != nil {
		yi, err := s.Evaluate(req.Xi)
		if err != nil {
			return fmt.Errorf("evaluate: %w", err)
		}
		res.Shape = yi.Shape()
		res.Values = nest(res.Shape, yi.Data())
	}

	if savePath != "" {
		raw, err := json.Marshal(sp)
		if err != nil {
			return fmt.Errorf("encode spline: %w", err)
		}
		if err = os.WriteFile(savePath, raw, 0o644); err != nil {
			return fmt.Errorf("save spline: %w", err)
		}
		if verbose {
			log.Printf("fit: saved spline to %s", savePath)
		}
	}

	return write(cmd.OutOrStdout(), output, res)
}

func runEval(cmd *cobra.Command, args []string) error {
	splinePath, _ := cmd.Flags().GetString("spline")
	xi, _ := cmd.Flags().GetFloat64Slice("xi")
	output, _ := cmd.Flags().GetString("output")

	raw, err := os.ReadFile(splinePath)
	if err != nil {
		return fmt.Errorf("read spline: %w", err)
	}
	var sp csaps.NdSpline[float64]
	if err = json.Unmarshal(raw, &sp); err != nil {
		return fmt.Errorf("decode spline: %w", err)
	}

	yi, err := sp.Evaluate(xi)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	values := make([][]float64, yi.Rows())
	for c := range values {
		if values[c], err = yi.Row(c); err != nil {
			return fmt.Errorf("evaluate: %w", err)
		}
	}

	return write(cmd.OutOrStdout(), output, map[string]any{
		"xi":     xi,
		"values": values,
	})
}

// write encodes v as YAML or JSON.
func write(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// getEnvStr returns environment variable value or default
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
