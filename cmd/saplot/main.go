// Package main provides the CLI entry point for saplot.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/saplot-go/internal/logx"
	"github.com/ukaji3/saplot-go/pkg/saplot"
)

const usageLine = "Usage: saplot <results_directory>"

var (
	errUsage       = errors.New("missing results directory")
	errBatchFailed = errors.New("one or more results files could not be plotted")
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	logx.SetOutput(stderr)

	rootCmd := newRootCmd(stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, errBatchFailed):
		// already reported
		return 1
	default:
		logx.Errorf("%v", err)
		return 1
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "saplot <results_directory>",
		Short: "Plot simulated annealing results as PNG line charts",
		Long: `saplot renders every results_sa_*.txt file in a directory as a line
chart of C_max per iteration and saves it next to the input as a .png.`,
		Args:          requireDirectory,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd
}

func requireDirectory(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return errUsage
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	dir := args[0]

	report, err := saplot.PlotAll(dir, saplot.DefaultOptions())
	if err != nil {
		return err
	}

	logx.Infof("plotted %d of %d file(s) in %s", len(report.Succeeded()), len(report.Results), dir)
	if len(report.Failed()) > 0 {
		return errBatchFailed
	}
	return nil
}
