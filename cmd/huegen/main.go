// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "huegen",
	Short: "huegen - derive a full design palette from one seed color",
	Long: `huegen turns a single seed color into a visually consistent palette:
light/dark primary variants, hue-shifted cyan and indigo accents, gradients
and glow effects, serialized as CSS custom properties or JSON.

It can also preview the palette in a browser, render PNG swatches, and keep
named seed presets.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
