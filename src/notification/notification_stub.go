//go:build !windows

package notification

func showDialog(title, message string) {}
