package tray

import (
	"log"

	"github.com/getlantern/systray"

	"auto-vat/src/price"
)

const appTitle = "Auto-VAT"

// Config configures the tray icon.
type Config struct {
	OnExit func()
}

// Tray renders display states as the system tray title and tooltip.
type Tray struct {
	cfg   Config
	ready chan struct{}
	quit  func()
}

func New(cfg Config) *Tray {
	return &Tray{cfg: cfg, ready: make(chan struct{}), quit: systray.Quit}
}

// Text returns the tray title and tooltip for a state.
func Text(s price.State) (title, tooltip string) {
	switch s.Kind {
	case price.Converted:
		return s.Conversion.TotalText(), appTitle + ": " + s.Conversion.String()
	case price.NoClipboardText:
		return "-", appTitle + ": " + price.NoClipboardTextMessage
	default:
		return "?", appTitle + ": " + price.InvalidFormatMessage
	}
}

// Render implements eventloop.Renderer. States that arrive before the tray
// is ready wait for it.
func (t *Tray) Render(s price.State) {
	<-t.ready
	title, tooltip := Text(s)
	systray.SetTitle(title)
	systray.SetTooltip(tooltip)
}

// Run blocks on the systray main loop; it must be called from the main goroutine.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit stops Run. It waits until the tray is ready: quitting before the
// native tray exists is lost on Windows and Run would never return.
func (t *Tray) Quit() {
	<-t.ready
	t.quit()
}

func (t *Tray) onReady() {
	systray.SetIcon(Icon)
	systray.SetTitle(appTitle)
	systray.SetTooltip(appTitle)
	mQuit := systray.AddMenuItem("Quit", "Quit Auto-VAT")
	close(t.ready)
	log.Printf("Tray ready")

	go func() {
		<-mQuit.ClickedCh
		systray.Quit()
	}()
}

func (t *Tray) onExit() {
	log.Printf("Tray exiting")
	if t.cfg.OnExit != nil {
		t.cfg.OnExit()
	}
}
