//go:build !windows

package tray

import (
	_ "embed"
)

// Icon is the tray icon in the PNG format systray expects outside Windows.
//
//go:embed icon.png
var Icon []byte
