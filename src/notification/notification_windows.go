//go:build windows

package notification

import (
	"log"

	"golang.org/x/sys/windows"
)

func showDialog(title, message string) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		log.Printf("Failed to encode dialog title: %v", err)
		return
	}
	msgPtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		log.Printf("Failed to encode dialog message: %v", err)
		return
	}
	if _, err := windows.MessageBox(0, msgPtr, titlePtr, windows.MB_OK|windows.MB_ICONERROR|windows.MB_SYSTEMMODAL); err != nil {
		log.Printf("Failed to show error dialog: %v", err)
	}
}
