package display

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"

	"auto-vat/src/price"
)

const (
	Title = "Auto-VAT-2"

	Width  = 600
	Height = 100

	numberTextSize = 32
	purpleHeart    = "\U0001F49C"
)

var (
	separatorColor = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
	noticeColor    = color.NRGBA{R: 0xff, A: 0xff}
	heartColor     = color.NRGBA{R: 0x80, B: 0x80, A: 0xff}
)

// Role says how a piece of rendered text is styled.
type Role int

const (
	RoleNumber Role = iota
	RoleSeparator
	RoleWarning
	RoleError
)

// Segment is one run of text in the rendered line.
type Segment struct {
	Text string
	Role Role
}

// Segments lays out a state as styled text runs.
func Segments(s price.State) []Segment {
	switch s.Kind {
	case price.Converted:
		return []Segment{
			{Text: s.Conversion.PriceText(), Role: RoleNumber},
			{Text: price.Separator(), Role: RoleSeparator},
			{Text: s.Conversion.TotalText(), Role: RoleNumber},
		}
	case price.NoClipboardText:
		return []Segment{{Text: price.NoClipboardTextMessage, Role: RoleWarning}}
	default:
		return []Segment{{Text: price.InvalidFormatMessage, Role: RoleError}}
	}
}

// Window is the fixed-size always-visible price window.
type Window struct {
	win fyne.Window

	priceText *canvas.Text
	sepText   *canvas.Text
	totalText *canvas.Text
	notice    *canvas.Text

	converted *fyne.Container
	message   *fyne.Container
}

// NewWindow builds the window on a; it starts with the empty-clipboard notice.
func NewWindow(a fyne.App) *Window {
	w := &Window{win: a.NewWindow(Title)}

	w.priceText = numberText()
	w.totalText = numberText()
	w.sepText = numberText()
	w.sepText.Color = separatorColor

	w.notice = canvas.NewText("", noticeColor)
	w.notice.TextSize = theme.TextHeadingSize()
	w.notice.Alignment = fyne.TextAlignCenter

	w.converted = container.NewCenter(container.NewHBox(w.priceText, w.sepText, w.totalText))
	w.message = container.NewCenter(w.notice)

	heart := canvas.NewText(purpleHeart, heartColor)
	heart.TextSize = theme.TextHeadingSize()
	footer := container.NewHBox(layout.NewSpacer(), heart)

	w.win.SetContent(container.NewBorder(nil, footer, nil, nil, container.NewStack(w.converted, w.message)))
	w.win.Resize(fyne.NewSize(Width, Height))
	w.win.SetFixedSize(true)

	w.apply(price.State{Kind: price.NoClipboardText})
	return w
}

func numberText() *canvas.Text {
	t := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	t.TextSize = numberTextSize
	t.TextStyle = fyne.TextStyle{Monospace: true}
	return t
}

// Render implements eventloop.Renderer and is safe to call from any goroutine.
func (w *Window) Render(s price.State) {
	fyne.Do(func() { w.apply(s) })
}

func (w *Window) apply(s price.State) {
	segs := Segments(s)
	if s.Kind == price.Converted {
		w.priceText.Text = segs[0].Text
		w.sepText.Text = segs[1].Text
		w.totalText.Text = segs[2].Text
		w.message.Hide()
		w.converted.Show()
		w.converted.Refresh()
		return
	}

	w.notice.Text = segs[0].Text
	w.converted.Hide()
	w.message.Show()
	w.notice.Refresh()
}

// SetOnClosed registers fn to run when the user closes the window.
func (w *Window) SetOnClosed(fn func()) { w.win.SetOnClosed(fn) }

// ShowAndRun shows the window and runs the fyne event loop until the app quits.
func (w *Window) ShowAndRun() { w.win.ShowAndRun() }
