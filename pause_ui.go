package main

import (
	"image/color"
	"strconv"

	"github.com/milk9111/simplezoom/common"
	"github.com/samber/lo"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	settingsFOVMin  = 60
	settingsFOVMax  = 120
	settingsFOVStep = 5
)

// pauseMenu is the pause screen with the settings FOV readout. The readout
// text is what the settings watcher polls while the game is paused.
type pauseMenu struct {
	ui  *ebitenui.UI
	fov *widget.Text

	value int
}

// widgetText exposes an ebitenui text widget as a component.TextSource.
type widgetText struct {
	text *widget.Text
}

func (w widgetText) Text() string {
	if w.text == nil {
		return ""
	}
	return w.text.Label
}

// newPauseMenu builds a centered pause menu. Buttons use colored nine-slices
// and the built-in basic font so no theme assets are needed.
func newPauseMenu(fov int, onResume func()) *pauseMenu {
	m := &pauseMenu{value: clampSettingsFOV(fov)}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
	)

	caption := widget.NewText(
		widget.TextOpts.Text("Field of view", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
	)

	m.fov = widget.NewText(
		widget.TextOpts.Text(strconv.Itoa(m.value), &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
	)
	row.AddChild(button("-", func() { m.step(-settingsFOVStep) }))
	row.AddChild(m.fov)
	row.AddChild(button("+", func() { m.step(settingsFOVStep) }))

	resumeBtn := button("Resume", onResume)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(caption)
	panel.AddChild(row)
	panel.AddChild(resumeBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	m.ui = &ebitenui.UI{Container: root}
	return m
}

// Source returns the FOV readout as a text source.
func (m *pauseMenu) Source() widgetText {
	return widgetText{text: m.fov}
}

func (m *pauseMenu) step(delta int) {
	m.value = clampSettingsFOV(m.value + delta)
	m.fov.Label = strconv.Itoa(m.value)
}

func clampSettingsFOV(v int) int {
	return lo.Clamp(v, settingsFOVMin, settingsFOVMax)
}
