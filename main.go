package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/skyyrose/showroom/pkg/app"
	"github.com/skyyrose/showroom/pkg/config"
	"github.com/skyyrose/showroom/pkg/embedded"
)

func main() {
	var (
		collection       string
		clientConfigPath string
		siteURL          string
		assetDir         string
		verbose          bool
	)

	rootCmd := &cobra.Command{
		Use:   "showroom",
		Short: "SKYY ROSE scroll-driven collection showroom",
		Long: `Showroom renders the SKYY ROSE collection experiences as a local
scroll-driven 3D viewer. Scroll with the mouse wheel or arrow keys,
click a product hotspot to add it to the cart. When a storefront is
configured the cart mirrors to WooCommerce; otherwise it stays local.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			embedded.Init(configFS)

			a, err := app.NewApp(app.Config{
				Verbose:          verbose,
				Collection:       collection,
				ClientConfigPath: clientConfigPath,
				SiteURL:          siteURL,
				AssetDir:         assetDir,
			})
			if err != nil {
				return err
			}

			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			ebiten.SetWindowTitle("SKYY ROSE Showroom")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			if err := ebiten.RunGame(a); err != nil {
				return fmt.Errorf("showroom exited: %w", err)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&collection, "collection", "c", string(config.CollectionBlackRose),
		"collection to open: black-rose, love-hurts, signature or preorder")
	rootCmd.Flags().StringVar(&clientConfigPath, "client-config", "client.yaml",
		"path to the storefront connection config (missing file means offline)")
	rootCmd.Flags().StringVar(&siteURL, "site-url", "",
		"override the storefront URL from the client config")
	rootCmd.Flags().StringVar(&assetDir, "asset-dir", "assets",
		"directory checked for product model files")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable detailed logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
