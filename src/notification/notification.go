package notification

import (
	"fmt"
	"log"
	"os"
)

// ShowBlockingError reports a fatal error to the user before the process
// exits. It always logs and writes to stderr, then shows a platform dialog
// where one exists.
func ShowBlockingError(title, message string) {
	log.Printf("%s: %s", title, message)
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
	showDialog(title, message)
}
