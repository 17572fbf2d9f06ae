package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/huegen/huegen/internal/config"
	"github.com/huegen/huegen/internal/handlers"
	"github.com/huegen/huegen/internal/palette"
)

var previewCmd = &cobra.Command{
	Use:   "preview [seed]",
	Short: "Serve a browser preview of the palette",
	Long: `Preview starts a local HTTP server rendering the palette derived from
the seed: a demo page at /, the stylesheet at /theme.css, the structured
palette at /palette.json and a PNG swatch at /swatch.png.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		seed := config.GetString("generator.default_seed")
		if len(args) == 1 {
			seed = args[0]
		}

		scheme, err := palette.Generate(seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = config.GetString("preview.port")
		}
		host := config.GetString("preview.host")

		swatchWidth := config.GetInt("swatch.width")
		swatchHeight := config.GetInt("swatch.height")

		r := gin.Default()
		r.GET("/health", handlers.HealthHandler)
		r.GET("/", handlers.DemoPageHandler(scheme))
		r.GET("/theme.css", handlers.ThemeCSSHandler(scheme))
		r.GET("/palette.json", handlers.PaletteJSONHandler(scheme))
		r.GET("/swatch.png", handlers.SwatchHandler(scheme, swatchWidth, swatchHeight))

		addr := fmt.Sprintf("%s:%s", host, port)
		fmt.Printf("Previewing %s on http://%s\n", scheme.Primary, addr)
		if err := r.Run(addr); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	previewCmd.Flags().String("port", "", "Port to listen on (default from config)")
	rootCmd.AddCommand(previewCmd)
}
