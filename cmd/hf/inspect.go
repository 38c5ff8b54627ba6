package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HF-Foundation/HF-CLI/internal/objfile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] <file.o>",
	Short: "Show the header of a compiled object file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type inspectOutput struct {
	Module       string `json:"module"`
	Arch         string `json:"arch"`
	Convention   string `json:"convention"`
	PointerWidth uint8  `json:"pointer_width"`
	OptLevel     uint8  `json:"opt_level"`
	Entry        string `json:"entry"`
	CodeSize     int    `json:"code_size"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	artifact, err := objfile.Read(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	out := inspectOutput{
		Module:       artifact.Module,
		Arch:         artifact.Arch,
		Convention:   artifact.Convention,
		PointerWidth: artifact.PointerWidth,
		OptLevel:     artifact.OptLevel,
		Entry:        artifact.Entry,
		CodeSize:     len(artifact.Code),
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("module:        %s\n", out.Module)
	fmt.Printf("arch:          %s\n", out.Arch)
	fmt.Printf("convention:    %s\n", out.Convention)
	fmt.Printf("pointer width: %d\n", out.PointerWidth)
	fmt.Printf("opt level:     %d\n", out.OptLevel)
	fmt.Printf("entry:         %s\n", out.Entry)
	fmt.Printf("code size:     %d bytes\n", out.CodeSize)
	return nil
}
