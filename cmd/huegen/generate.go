// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/huegen/huegen/internal/config"
	"github.com/huegen/huegen/internal/db"
	"github.com/huegen/huegen/internal/palette"
	"github.com/huegen/huegen/internal/preset"
	"github.com/huegen/huegen/internal/swatch"
)

var generateCmd = &cobra.Command{
	Use:   "generate [seed]",
	Short: "Generate a palette from a seed color",
	Long: `Generate derives the full palette from a seed hex color (with or
without a leading #) and writes it as CSS custom properties, JSON, or both.

Without --output the result is printed to stdout. With --format both,
--output names a directory that receives theme.css and palette.json.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		seed := config.GetString("generator.default_seed")
		if presetName, _ := cmd.Flags().GetString("preset"); presetName != "" {
			if err := initSystemDB(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			p, err := preset.GetPresetByName(db.GetDB(), presetName)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			seed = p.Seed
		}
		if len(args) == 1 {
			seed = args[0]
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = config.GetString("generator.format")
		}
		if format != "css" && format != "json" && format != "both" {
			fmt.Fprintf(os.Stderr, "Error: invalid format %q (want css, json or both)\n", format)
			os.Exit(1)
		}

		scheme, err := palette.Generate(seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		output, _ := cmd.Flags().GetString("output")
		if err := writeOutputs(scheme, format, output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if swatchPath, _ := cmd.Flags().GetString("swatch"); swatchPath != "" {
			w := config.GetInt("swatch.width")
			h := config.GetInt("swatch.height")
			if err := swatch.WritePNG(scheme, swatchPath, w, h); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %s\n", swatchPath)
		}
	},
}

// writeOutputs renders the requested formats to stdout or files.
func writeOutputs(scheme *palette.Scheme, format, output string) error {
	if output == "" {
		if format == "css" || format == "both" {
			fmt.Print(palette.GenerateCSS(scheme))
		}
		if format == "json" || format == "both" {
			fmt.Println(palette.GenerateJSON(scheme))
		}
		return nil
	}

	if format == "both" {
		// Output names a directory holding both files.
		if err := os.MkdirAll(output, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		cssPath := filepath.Join(output, "theme.css")
		jsonPath := filepath.Join(output, "palette.json")
		if err := os.WriteFile(cssPath, []byte(palette.GenerateCSS(scheme)), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", cssPath, err)
		}
		if err := os.WriteFile(jsonPath, []byte(palette.GenerateJSON(scheme)), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", jsonPath, err)
		}
		fmt.Printf("Wrote %s\n", cssPath)
		fmt.Printf("Wrote %s\n", jsonPath)
		return nil
	}

	var content string
	if format == "css" {
		content = palette.GenerateCSS(scheme)
	} else {
		content = palette.GenerateJSON(scheme)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Printf("Wrote %s\n", output)
	return nil
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "Output path (file, or directory for --format both)")
	generateCmd.Flags().StringP("format", "f", "", "Output format: css, json or both (default from config)")
	generateCmd.Flags().StringP("preset", "p", "", "Use a saved preset's seed")
	generateCmd.Flags().String("swatch", "", "Also render a PNG swatch to this path")
	rootCmd.AddCommand(generateCmd)
}
