package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/lumina/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI is the overlay shown while the run is paused.
type PauseUI struct {
	UI *ebitenui.UI

	// Callbacks, indexed like cfg.Pause.MenuOptions
	OnResume  func()
	OnRestart func()
	OnQuit    func()

	statsLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewPauseUI creates the pause menu with Resume, Restart and Quit buttons.
func NewPauseUI(onResume, onRestart, onQuit func()) *PauseUI {
	pui := &PauseUI{
		OnResume:  onResume,
		OnRestart: onRestart,
		OnQuit:    onQuit,
	}

	pui.loadFonts()
	pui.buildUI()

	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   32,
	}
	pui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	pui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
}

func (pui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Pause.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	pui.statsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.smallFace, &widget.LabelColor{
			Idle: cfg.Palette.Essence,
		}),
	)
	contentContainer.AddChild(pui.statsLabel)

	handlers := []func(){pui.OnResume, pui.OnRestart, pui.OnQuit}
	for i, label := range cfg.Pause.MenuOptions {
		if i >= len(handlers) {
			break
		}
		contentContainer.AddChild(pui.menuButton(label, handlers[i]))
	}

	rootContainer.AddChild(contentContainer)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) menuButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 36),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func (pui *PauseUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Pause.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Pause.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Pause.ButtonPress),
		Disabled: image.NewNineSliceColor(cfg.Grey),
	}
}

// SetStats updates the line under the title.
func (pui *PauseUI) SetStats(s string) {
	if pui.statsLabel != nil && pui.statsLabel.Label != s {
		pui.statsLabel.Label = s
	}
}

func (pui *PauseUI) Update() {
	pui.UI.Update()
}

func (pui *PauseUI) Draw(screen *ebiten.Image) {
	pui.UI.Draw(screen)
}
