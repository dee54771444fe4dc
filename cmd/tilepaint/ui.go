package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"tilepaint/internal/editor"
	"tilepaint/internal/palette"
)

type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
}

func (tb *ToolBar) SetTool(t editor.Tool) {
	idx := int(t)
	if tb == nil || tb.group == nil || idx < 0 || idx >= len(tb.buttons) {
		return
	}
	tb.group.SetActive(tb.buttons[idx])
}

// PalettePanel is the right-side tile selector.
type PalettePanel struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	ids     []string
}

func (pp *PalettePanel) SetSelected(id string) {
	if pp == nil || pp.group == nil {
		return
	}
	for i, bid := range pp.ids {
		if bid == id {
			pp.group.SetActive(pp.buttons[i])
			return
		}
	}
}

// BuildUI assembles the ebitenui tree: a tool bar anchored top-center and
// the palette panel anchored to the right edge.
func BuildUI(
	pal palette.Palette,
	onToolSelected func(tool editor.Tool),
	onTileSelected func(id string),
	initialTool editor.Tool,
	initialTile string,
) (*ebitenui.UI, *ToolBar, *PalettePanel) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, onToolSelected, initialTool)
	paletteContainer, palettePanel := buildPalettePanel(ui.PrimaryTheme, &fontFace, pal, onTileSelected, initialTile)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	paletteContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(toolbarContainer)
	root.AddChild(paletteContainer)
	ui.Container = root

	return ui, toolBar, palettePanel
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, onToolSelected func(tool editor.Tool), initialTool editor.Tool) (*widget.Container, *ToolBar) {
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	var toolButtons []*widget.Button
	for _, tool := range editor.Tools() {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(tool.String(), fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(48, 40),
			),
		)
		toolButtons = append(toolButtons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(toolButtons))
	for _, b := range toolButtons {
		elements = append(elements, b)
	}

	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onToolSelected == nil {
				return
			}
			for idx, b := range toolButtons {
				if args.Active == b {
					onToolSelected(editor.Tool(idx))
					return
				}
			}
		}),
	)

	if idx := int(initialTool); idx >= 0 && idx < len(toolButtons) {
		group.SetActive(toolButtons[idx])
	}

	return toolbar, &ToolBar{group: group, buttons: toolButtons}
}

func buildPalettePanel(theme *widget.Theme, fontFace *text.Face, pal palette.Palette, onTileSelected func(id string), initialTile string) (*widget.Container, *PalettePanel) {
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 0),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 56, Left: 8, Right: 8}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
	)

	var buttons []*widget.Button
	var ids []string
	for _, tile := range pal {
		label := tile.Name
		if label == "" {
			label = tile.ID
		}
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(140, 28),
			),
		)
		buttons = append(buttons, btn)
		ids = append(ids, tile.ID)
		panel.AddChild(btn)
	}

	pp := &PalettePanel{buttons: buttons, ids: ids}
	if len(buttons) == 0 {
		return panel, pp
	}

	elements := make([]widget.RadioGroupElement, 0, len(buttons))
	for _, b := range buttons {
		elements = append(elements, b)
	}
	pp.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onTileSelected == nil {
				return
			}
			for idx, b := range buttons {
				if args.Active == b {
					onTileSelected(ids[idx])
					return
				}
			}
		}),
	)
	pp.SetSelected(initialTile)

	return panel, pp
}
