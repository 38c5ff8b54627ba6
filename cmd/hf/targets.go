package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HF-Foundation/HF-CLI/internal/target"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List supported compilation targets",
	Long:  `Targets lists every supported architecture with its pointer width and the calling convention derived for each operating system.`,
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

func init() {
	targetsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type targetEntry struct {
	Arch         string            `json:"arch"`
	PointerWidth uint8             `json:"pointer_width"`
	Conventions  map[string]string `json:"conventions"`
}

func runTargets(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	systems := target.Systems()
	entries := make([]targetEntry, 0, len(target.Architectures()))
	for _, arch := range target.Architectures() {
		entry := targetEntry{
			Arch:         arch.String(),
			PointerWidth: arch.PointerWidth(),
			Conventions:  make(map[string]string, len(systems)),
		}
		for _, sys := range systems {
			desc, err := target.Parse(arch.String() + "-unknown-" + sys.String())
			if err != nil {
				return err
			}
			entry.Conventions[sys.String()] = desc.Convention.String()
		}
		entries = append(entries, entry)
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, entry := range entries {
		fmt.Printf("%-8s %2d-bit", entry.Arch, entry.PointerWidth)
		if uniform, ok := uniformConvention(entry.Conventions); ok {
			fmt.Printf("  %s\n", uniform)
			continue
		}
		fmt.Println()
		for _, sys := range systems {
			fmt.Printf("  %-8s %s\n", sys.String(), entry.Conventions[sys.String()])
		}
	}
	return nil
}

// uniformConvention reports the single convention an architecture uses
// across all systems, if there is one.
func uniformConvention(conventions map[string]string) (string, bool) {
	var first string
	for _, c := range conventions {
		if first == "" {
			first = c
		} else if c != first {
			return "", false
		}
	}
	return first, first != ""
}
