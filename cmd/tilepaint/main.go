package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tilepaint/internal/palette"
)

func fallbackPalette() palette.Palette {
	return palette.Palette{
		{ID: "ground", Name: "Ground"},
		{ID: "brick", Name: "Brick"},
		{ID: "water", Name: "Water"},
	}
}

func main() {
	configPath := flag.String("config", "tilepaint.yaml", "path to the config file")
	openPath := flag.String("open", "", "document to open at startup")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config %s: %v", *configPath, err)
	}

	pal, err := palette.LoadManifest(cfg.PaletteManifest)
	if err != nil {
		log.Printf("palette %s: %v (using builtin palette)", cfg.PaletteManifest, err)
		pal = fallbackPalette()
	}

	app := NewApp(cfg, pal)

	if *openPath != "" {
		data, err := os.ReadFile(*openPath)
		if err != nil {
			log.Fatalf("open %s: %v", *openPath, err)
		}
		app.importData(data, *openPath)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("tilepaint")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
