package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tilepaint/internal/editor"
	"tilepaint/internal/grid"
	"tilepaint/internal/palette"
	"tilepaint/internal/render"
	"tilepaint/internal/script"
)

// App is the Ebiten shell around the editor core: it translates input
// events into editor operations and draws the result every frame.
type App struct {
	cfg Config

	ed       *editor.Editor
	screen   *render.Screen
	textures render.Textures

	ui           *ebitenui.UI
	toolBar      *ToolBar
	palettePanel *PalettePanel
	prompt       *Prompt

	watcher *palette.Watcher
	macros  []script.Macro

	clipboardOK bool
	savePath    string
	status      string

	// canvas transform + interaction state
	zoom     float64
	panX     float64
	panY     float64
	panning  bool
	lastPanX int
	lastPanY int
	painting bool
	lastTool editor.Tool
}

func NewApp(cfg Config, pal palette.Palette) *App {
	a := &App{
		cfg:      cfg,
		ed:       editor.New(cfg.Grid.Cols, cfg.Grid.Rows, pal),
		screen:   render.NewScreen(cfg.TileSize),
		textures: make(render.Textures),
		prompt:   NewPrompt(),
		zoom:     1.0,
	}
	a.lastTool = a.ed.Tool()
	a.reloadTextures()
	a.rebuildUI()

	a.clipboardOK = initClipboard()

	if w, err := palette.NewWatcher(cfg.AssetsDir); err != nil {
		log.Printf("asset watcher disabled: %v", err)
	} else {
		a.watcher = w
	}

	if macros, err := script.Discover(cfg.MacrosDir); err == nil {
		a.macros = macros
	}

	return a
}

// rebuildUI reconstructs the ebitenui tree; called at startup and after
// an import swaps the palette.
func (a *App) rebuildUI() {
	a.ui, a.toolBar, a.palettePanel = BuildUI(
		a.ed.Palette(),
		func(tool editor.Tool) { a.ed.SetTool(tool) },
		func(id string) { a.ed.SelectTile(grid.TileID(id)) },
		a.ed.Tool(),
		string(a.ed.Selected()),
	)
}

// reloadTextures decodes every palette image reference from the assets
// dir. Tiles whose image is absent or unreadable keep no texture and the
// renderer draws its placeholder instead.
func (a *App) reloadTextures() {
	a.textures = make(render.Textures)
	a.screen.ClearTextures()
	for _, tile := range a.ed.Palette() {
		if tile.Data == nil || *tile.Data == "" {
			continue
		}
		path := filepath.Join(a.cfg.AssetsDir, *tile.Data)
		b, err := os.ReadFile(path)
		if err != nil {
			log.Printf("texture %s: %v", path, err)
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			log.Printf("texture %s: %v", path, err)
			continue
		}
		id := grid.TileID(tile.ID)
		a.textures[id] = img
		a.screen.SetTexture(id, img)
	}
}

func (a *App) mapper() grid.Mapper {
	return grid.Mapper{
		OriginX:  a.panX,
		OriginY:  a.panY,
		TileSize: a.cfg.TileSize,
		Zoom:     a.zoom,
	}
}

func (a *App) Update() error {
	// texture hot reload
	if a.watcher != nil {
		reload := false
	drain:
		for {
			select {
			case name, ok := <-a.watcher.Events:
				if !ok {
					a.watcher = nil
					break drain
				}
				log.Printf("asset changed: %s", name)
				reload = true
			case err := <-a.watcher.Errors:
				log.Printf("asset watcher: %v", err)
			default:
				break drain
			}
		}
		if reload {
			a.reloadTextures()
		}
	}

	if a.prompt.Update() {
		return nil
	}

	a.handleKeys()

	if a.ed.Tool() != a.lastTool {
		a.toolBar.SetTool(a.ed.Tool())
		a.lastTool = a.ed.Tool()
	}

	if a.ui != nil {
		a.ui.Update()
	}

	// Handle pan (middle mouse drag)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		a.panning = true
		a.lastPanX, a.lastPanY = ebiten.CursorPosition()
	}
	if a.panning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		cx, cy := ebiten.CursorPosition()
		a.panX += float64(cx - a.lastPanX)
		a.panY += float64(cy - a.lastPanY)
		a.lastPanX, a.lastPanY = cx, cy
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		a.panning = false
	}

	// Handle zoom (mouse wheel, centered on cursor)
	if _, wy := ebiten.Wheel(); wy != 0 {
		cx, cy := ebiten.CursorPosition()
		oldZoom := a.zoom
		if wy > 0 {
			a.zoom *= 1.1
		} else {
			a.zoom /= 1.1
		}
		if a.zoom < 0.25 {
			a.zoom = 0.25
		}
		if a.zoom > 8.0 {
			a.zoom = 8.0
		}
		if a.zoom != oldZoom {
			worldX := (float64(cx) - a.panX) / oldZoom
			worldY := (float64(cy) - a.panY) / oldZoom
			a.panX = float64(cx) - worldX*a.zoom
			a.panY = float64(cy) - worldY*a.zoom
		}
	}

	// pointer gesture surface: down starts a gesture, move continues it,
	// up ends it
	mx, my := ebiten.CursorPosition()
	gx, gy, inRange := a.mapper().Cell(float64(mx), float64(my), a.ed.Store().Cols(), a.ed.Store().Rows())

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.painting = false
		a.ed.PointerUp()
	}
	// Ignore clicks over UI widgets so toolbar presses don't also paint
	// the cell underneath.
	if !ebuiinput.UIHovered {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inRange {
			a.painting = true
			a.ed.PointerDown(gx, gy)
			if a.ed.Tool() != a.lastTool { // pick reverted to paint
				a.toolBar.SetTool(a.ed.Tool())
				a.lastTool = a.ed.Tool()
				a.palettePanel.SetSelected(string(a.ed.Selected()))
			}
		} else if a.painting && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			a.ed.PointerMove(gx, gy)
		}
	}

	return nil
}

func (a *App) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	// tool hotkeys 1-4
	hotkeys := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}
	for i, tool := range editor.Tools() {
		if i < len(hotkeys) && inpututil.IsKeyJustPressed(hotkeys[i]) {
			a.ed.SetTool(tool)
		}
	}

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		if !a.ed.Undo() {
			a.setStatus("nothing to undo")
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY) {
		if !a.ed.Redo() {
			a.setStatus("nothing to redo")
		}
	}

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copyToClipboard()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		a.pasteFromClipboard()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) && !ctrl {
		a.promptSave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		a.promptOpen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		a.promptExportImage()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.promptMacro()
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
	log.Print(msg)
}

func (a *App) copyToClipboard() {
	if !a.clipboardOK {
		a.setStatus("clipboard unavailable")
		return
	}
	data, err := a.ed.ExportJSON()
	if err != nil {
		a.setStatus(fmt.Sprintf("copy failed: %v", err))
		return
	}
	clipboardWrite(data)
	a.setStatus("document copied to clipboard")
}

func (a *App) pasteFromClipboard() {
	if !a.clipboardOK {
		a.setStatus("clipboard unavailable")
		return
	}
	data := clipboardRead()
	if len(data) == 0 {
		a.setStatus("clipboard is empty")
		return
	}
	a.importData(data, "clipboard")
}

func (a *App) importData(data []byte, source string) {
	if err := a.ed.ImportJSON(data); err != nil {
		a.setStatus(fmt.Sprintf("import from %s rejected: %v", source, err))
		return
	}
	a.reloadTextures()
	a.rebuildUI()
	a.setStatus(fmt.Sprintf("imported %s", source))
}

func (a *App) promptSave() {
	initial := a.savePath
	if initial == "" {
		initial = filepath.Join(a.cfg.DocumentsDir, fmt.Sprintf("grid_%d.json", time.Now().Unix()))
	}
	a.prompt.Open("Save to:", initial, func(path string) {
		if path == "" {
			return
		}
		if err := a.saveTo(path); err != nil {
			a.setStatus(fmt.Sprintf("save failed: %v", err))
			return
		}
		a.savePath = path
		a.setStatus(fmt.Sprintf("saved to %s", path))
	})
}

func (a *App) saveTo(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := a.ed.ExportJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (a *App) promptOpen() {
	a.prompt.Open("Open:", a.savePath, func(path string) {
		if path == "" {
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			a.setStatus(fmt.Sprintf("open failed: %v", err))
			return
		}
		a.importData(data, path)
		a.savePath = path
	})
}

func (a *App) promptExportImage() {
	initial := filepath.Join(a.cfg.DocumentsDir, fmt.Sprintf("grid_%d.png", time.Now().Unix()))
	a.prompt.Open("Export PNG to:", initial, func(path string) {
		if path == "" {
			return
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				a.setStatus(fmt.Sprintf("image export failed: %v", err))
				return
			}
		}
		if err := render.ExportPNG(path, a.ed.Store(), a.textures, a.cfg.TileSize, a.zoom); err != nil {
			a.setStatus(fmt.Sprintf("image export failed: %v", err))
			return
		}
		a.setStatus(fmt.Sprintf("image exported to %s", path))
	})
}

func (a *App) promptMacro() {
	if len(a.macros) == 0 {
		a.setStatus("no macros found in " + a.cfg.MacrosDir)
		return
	}
	names := make([]string, len(a.macros))
	for i, m := range a.macros {
		names[i] = m.Name
	}
	a.prompt.Open(fmt.Sprintf("Macro (%v):", names), "", func(name string) {
		for _, m := range a.macros {
			if m.Name != name {
				continue
			}
			src, err := os.ReadFile(m.Path)
			if err != nil {
				a.setStatus(fmt.Sprintf("macro %s: %v", name, err))
				return
			}
			if err := a.ed.RunMacro(src); err != nil {
				a.setStatus(fmt.Sprintf("macro %s: %v", name, err))
				return
			}
			a.setStatus(fmt.Sprintf("macro %s applied", name))
			return
		}
		a.setStatus(fmt.Sprintf("unknown macro %q", name))
	})
}

func (a *App) Draw(screen *ebiten.Image) {
	a.screen.Draw(screen, a.ed.Store(), a.zoom, a.panX, a.panY)

	// hover highlight
	if !ebuiinput.UIHovered && !a.prompt.IsOpen() {
		mx, my := ebiten.CursorPosition()
		if gx, gy, ok := a.mapper().Cell(float64(mx), float64(my), a.ed.Store().Cols(), a.ed.Store().Rows()); ok {
			a.screen.DrawHover(screen, gx, gy, a.zoom, a.panX, a.panY)
		}
	}

	if a.ui != nil {
		a.ui.Draw(screen)
	}

	undo, redo := a.ed.History()
	info := fmt.Sprintf(
		"Tool: %s   Tile: %s   Undo:%d Redo:%d   Zoom:%.2f\n1-4: tools   S: save   O: open   X: export PNG   M: macro   Ctrl+Z/Y: undo/redo   Ctrl+C/V: clipboard\n%s",
		a.ed.Tool(), a.ed.Selected(), undo, redo, a.zoom, a.status,
	)
	ebitenutil.DebugPrint(screen, info)

	a.prompt.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}
