package main

import (
	"fmt"
	"os"

	"github.com/aglyzov/findany/filter"
	"github.com/aglyzov/findany/progress"
	"github.com/spf13/cobra"
)

var (
	caseInsensitive bool
	invert          bool
	outputPath      string
	substrings      []string

	rootCmd = &cobra.Command{
		Use:   "findany [OPTIONS] [SUBSTRINGS] [FILE]",
		Short: "findany prints the lines that contain any substring from a dictionary",
		Long: `Find any substring from SUBSTRINGS in all lines of FILE and print the ones
that contain at least one. SUBSTRINGS is a newline-delimited dictionary file,
or is given inline with repeated -s flags. Read standard input if FILE is
missing.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func init() {
	rootCmd.Flags().BoolVarP(&caseInsensitive, "case-insensitive", "i", false,
		"accept the match regardless of upper or lower case")
	rootCmd.Flags().BoolVarP(&invert, "invert", "v", false,
		"print the lines that contain none of the substrings")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write matching lines to PATH and show progress")
	rootCmd.Flags().StringArrayVarP(&substrings, "substring", "s", nil,
		"add STR to the dictionary; repeatable; replaces the SUBSTRINGS file")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(args)
	if err != nil {
		return err
	}
	if cfg.OutputPath != "" && progress.Enabled() {
		cfg.Progress = progress.New(filter.InputSize(cfg), "findany")
	}
	_, err = filter.Run(cfg)
	return err
}

// resolve maps the positional arguments onto the config record: with
// -s flags the only allowed positional is the input file, without them
// the first positional is the dictionary file and the second the input.
func resolve(args []string) (filter.Config, error) {
	cfg := filter.Config{
		Substrings:      substrings,
		OutputPath:      outputPath,
		CaseInsensitive: caseInsensitive,
		Invert:          invert,
	}
	if len(substrings) > 0 {
		switch len(args) {
		case 0:
		case 1:
			cfg.InputPath = args[0]
		default:
			return cfg, fmt.Errorf("%w: substring flags conflict with a dictionary file", filter.ErrUsage)
		}
		return cfg, nil
	}
	switch len(args) {
	case 0:
		return cfg, fmt.Errorf("%w: missing SUBSTRINGS", filter.ErrUsage)
	case 1:
		cfg.DictPath = args[0]
	default:
		cfg.DictPath = args[0]
		cfg.InputPath = args[1]
	}
	return cfg, nil
}

// Execute runs the command. Diagnostics go to standard output and any
// fatal error exits nonzero, matching the tool's historical behavior.
func Execute() {
	if len(os.Args) <= 1 {
		_ = rootCmd.Help()
		return
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
