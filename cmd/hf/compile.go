package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HF-Foundation/HF-CLI/internal/diag"
	"github.com/HF-Foundation/HF-CLI/internal/driver"
	"github.com/HF-Foundation/HF-CLI/internal/observ"
	"github.com/HF-Foundation/HF-CLI/internal/target"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] <file.hf ...>",
	Short: "Compile HF source files to object files",
	Long: `Compile runs each input file through the pipeline (tokenize, parse,
lower, codegen) and writes one object file beside each input. Files are
taken from the command line, or from hf.toml when none are given.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().Int("opt", 0, "optimization level (0-3)")
	compileCmd.Flags().String("target", "", "target triple <host>-<vendor>-<system> (default: native host)")
	compileCmd.Flags().Bool("keep-going", false, "compile remaining files after a per-file failure")
	compileCmd.Flags().String("ui", "auto", "progress interface (auto|on|off)")
}

func runCompile(cmd *cobra.Command, args []string) error {
	opt, err := cmd.Flags().GetInt("opt")
	if err != nil {
		return err
	}
	triple, err := cmd.Flags().GetString("target")
	if err != nil {
		return err
	}
	keepGoing, err := cmd.Flags().GetBool("keep-going")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	// The manifest fills in whatever the command line leaves out;
	// explicit flags and positional files win.
	files := args
	if len(files) == 0 || !cmd.Flags().Changed("opt") || triple == "" {
		manifest, found, manifestErr := loadProjectManifest(".")
		if manifestErr != nil {
			return manifestErr
		}
		if found {
			if len(files) == 0 {
				files = manifestFiles(manifest)
			}
			if !cmd.Flags().Changed("opt") && manifest.Config.Build.Opt != nil {
				opt = *manifest.Config.Build.Opt
			}
			if triple == "" {
				triple = manifest.Config.Build.Target
			}
		}
	}
	if len(files) == 0 {
		return errors.New(noManifestMessage)
	}

	// Settings and target resolve once, before any file is touched.
	if opt < 0 || opt > 3 {
		return fmt.Errorf("optimization level %d out of range [0, 3]", opt)
	}
	settings := driver.Settings{
		OptLevel:  uint8(opt),
		KeepGoing: keepGoing,
		Quiet:     quiet,
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	var tgt target.Descriptor
	if triple != "" {
		tgt, err = target.Parse(triple)
	} else {
		tgt, err = target.Native()
	}
	if err != nil {
		return err
	}

	useTUI := shouldUseTUI(uiModeValue) && len(files) > 1
	if useTUI {
		// The UI owns stdout; per-file success lines would tear it.
		settings.Quiet = true
	}

	d := driver.New(tgt, settings)
	d.Color = useColor(cmd, os.Stderr)
	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
		d.Timer = timer
	}

	var compileErr error
	if useTUI {
		compileErr = runCompileWithUI("hf compile", files, d)
	} else {
		compileErr = d.CompileBatch(files)
	}

	if timer != nil {
		fmt.Fprint(os.Stdout, timer.Summary())
	}
	return summarizeCompileError(compileErr)
}

// summarizeCompileError maps the batch result to what the CLI prints.
// Diagnostics were already rendered at the failure point, so only a
// short closing line remains for them.
func summarizeCompileError(err error) error {
	if err == nil {
		return nil
	}
	var dg diag.Diagnostic
	if errors.As(err, &dg) {
		return errors.New("compilation failed")
	}
	return err
}
