package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HF-Foundation/HF-CLI/internal/diagfmt"
	"github.com/HF-Foundation/HF-CLI/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.hf|dir>",
	Short: "Dump the tokens of HF source files",
	Long:  `Tokenize scans a source file (or every source file under a directory) and dumps the resulting tokens.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "max files scanned in parallel (0 = GOMAXPROCS)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}

	var results []driver.TokenizeResult
	if info.IsDir() {
		results, err = driver.TokenizeDir(cmd.Context(), args[0], jobs)
		if err != nil {
			return err
		}
	} else {
		res, err := driver.Tokenize(args[0])
		if err != nil {
			return err
		}
		results = []driver.TokenizeResult{*res}
	}

	opts := diagfmt.Opts{Color: useColor(cmd, os.Stderr)}
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			diagfmt.Render(os.Stderr, res.Err, res.File.Path, res.File.Content, opts)
			failed++
		}
	}

	if err := dumpTokens(os.Stdout, results, format, info.IsDir()); err != nil {
		return err
	}
	if failed > 0 {
		return errors.New("tokenization failed")
	}
	return nil
}

type fileTokens struct {
	File   string                `json:"file"`
	Tokens []diagfmt.TokenOutput `json:"tokens"`
}

func dumpTokens(w *os.File, results []driver.TokenizeResult, format string, multi bool) error {
	if format == "json" {
		if !multi {
			return diagfmt.FormatTokensJSON(w, results[0].Tokens)
		}
		output := make([]fileTokens, 0, len(results))
		for _, res := range results {
			output = append(output, fileTokens{
				File:   res.File.Path,
				Tokens: diagfmt.TokensOutput(res.Tokens),
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	for i, res := range results {
		if multi {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s\n", res.File.Path)
		}
		if err := diagfmt.FormatTokensPretty(w, res.Tokens); err != nil {
			return err
		}
	}
	return nil
}
