package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HF-Foundation/HF-CLI/internal/ast"
	"github.com/HF-Foundation/HF-CLI/internal/codegen"
	"github.com/HF-Foundation/HF-CLI/internal/diag"
	"github.com/HF-Foundation/HF-CLI/internal/diagfmt"
	"github.com/HF-Foundation/HF-CLI/internal/ir"
	"github.com/HF-Foundation/HF-CLI/internal/lexer"
	"github.com/HF-Foundation/HF-CLI/internal/objfile"
	"github.com/HF-Foundation/HF-CLI/internal/observ"
	"github.com/HF-Foundation/HF-CLI/internal/source"
	"github.com/HF-Foundation/HF-CLI/internal/target"
)

// Driver runs the compile pipeline. The target, settings, and the
// generator built from them are immutable for the driver's lifetime
// and shared read-only across files.
type Driver struct {
	// Stdout receives per-file success lines; Stderr receives
	// rendered diagnostics. Both default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
	// Color is passed through to the diagnostic renderer.
	Color bool
	// Progress, when set, receives stage events for every file.
	Progress ProgressSink
	// Timer, when set, records one phase per pipeline stage.
	Timer *observ.Timer

	target   target.Descriptor
	settings Settings
	gen      *codegen.Generator
}

// New builds a driver for one invocation's resolved target and
// validated settings.
func New(tgt target.Descriptor, settings Settings) *Driver {
	return &Driver{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		target:   tgt,
		settings: settings,
		gen:      codegen.New(tgt, codegen.Options{OptLevel: settings.OptLevel}),
	}
}

// Compile runs the pipeline for one file: read, tokenize, parse,
// lower, codegen, emit. Every stage runs to completion before the
// next begins. A failing stage renders its diagnostic to Stderr at
// the failure point and returns it; a failure writing the finished
// object returns a plain (non-diagnostic) error.
func (d *Driver) Compile(path string) error {
	stop := d.begin(path, StageRead)
	file, err := source.Load(path)
	stop()
	if err != nil {
		return d.fail(path, StageRead, diag.NewIOError(path, err), nil)
	}

	stop = d.begin(path, StageTokenize)
	tokens, tokErr := lexer.Tokenize(file)
	stop()
	if tokErr != nil {
		return d.fail(path, StageTokenize, tokErr, file.Content)
	}

	stop = d.begin(path, StageParse)
	prog, parseErr := ast.BuildAST(tokens)
	stop()
	if parseErr != nil {
		return d.fail(path, StageParse, parseErr, file.Content)
	}

	stop = d.begin(path, StageLower)
	module := ir.FromAST(prog)
	stop()

	stop = d.begin(path, StageCodegen)
	artifact, cgErr := d.gen.CompileToObject(module, moduleName(path))
	stop()
	if cgErr != nil {
		return d.fail(path, StageCodegen, cgErr, nil)
	}

	stop = d.begin(path, StageEmit)
	outPath, err := d.persist(path, artifact)
	stop()
	if err != nil {
		d.emit(Event{File: path, Stage: StageEmit, Status: StatusError, Err: err})
		return err
	}

	d.emit(Event{File: path, Stage: StageEmit, Status: StatusDone})
	if !d.settings.Quiet {
		fmt.Fprintf(d.Stdout, "compiled %s -> %s\n", path, outPath)
	}
	return nil
}

// BatchError summarizes a keep-going batch with failures.
type BatchError struct {
	Failed int
	Total  int
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d of %d files failed to compile", e.Failed, e.Total)
}

// CompileBatch compiles files strictly in the order supplied, one at
// a time. Under the default fail-fast policy the first per-file
// failure stops the batch; with KeepGoing every file is attempted and
// the failures are summarized. An object-write failure aborts
// unconditionally under either policy, since no diagnostic covers it.
func (d *Driver) CompileBatch(paths []string) error {
	for _, p := range paths {
		d.emit(Event{File: p, Stage: StageRead, Status: StatusQueued})
	}
	failed := 0
	for _, p := range paths {
		err := d.Compile(p)
		if err == nil {
			continue
		}
		var dg diag.Diagnostic
		if !errors.As(err, &dg) {
			return err
		}
		failed++
		if !d.settings.KeepGoing {
			return err
		}
	}
	if failed > 0 {
		return &BatchError{Failed: failed, Total: len(paths)}
	}
	return nil
}

// fail renders the diagnostic immediately and propagates it as the
// per-file result. Diagnostics without source content render as a
// single line.
func (d *Driver) fail(path string, stage Stage, dg diag.Diagnostic, content []byte) error {
	diagfmt.Render(d.Stderr, dg, path, content, diagfmt.Opts{Color: d.Color})
	d.emit(Event{File: path, Stage: stage, Status: StatusError, Err: dg})
	return dg
}

// persist writes the artifact beside the input file with the object
// extension.
func (d *Driver) persist(path string, artifact *objfile.Artifact) (string, error) {
	data, err := artifact.Write()
	if err != nil {
		return "", err
	}
	outPath := ObjectPath(path)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("cannot write object file: %w", err)
	}
	return outPath, nil
}

// begin emits the stage's working event and returns the closure that
// ends it. Intermediate stages do not emit Done events; the UI infers
// progress from the next stage's working event.
func (d *Driver) begin(path string, stage Stage) func() {
	d.emit(Event{File: path, Stage: stage, Status: StatusWorking})
	if d.Timer == nil {
		return func() {}
	}
	idx := d.Timer.Begin(string(stage))
	return func() {
		d.Timer.End(idx, path)
	}
}

func (d *Driver) emit(ev Event) {
	if d.Progress != nil {
		d.Progress.OnEvent(ev)
	}
}

// ObjectPath returns the output path for an input file: the same
// path with its extension replaced.
func ObjectPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + objfile.Extension
}

// moduleName derives the module name from the input file's stem.
func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
