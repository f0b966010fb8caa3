//go:build windows

package tray

import (
	_ "embed"
)

// Icon is the tray icon; Windows trays need ICO data.
//
//go:embed icon.ico
var Icon []byte
