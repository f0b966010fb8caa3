package clipboard

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"
)

const (
	BackendNative  = "native"
	BackendCommand = "command"
)

// ErrNoText means the clipboard holds no text, e.g. an image was copied.
// It is an expected condition, unlike every other error a Reader returns.
var ErrNoText = errors.New("clipboard holds no text")

// Reader reads the current clipboard text.
type Reader interface {
	ReadText() (string, error)
}

// Open initializes the named backend. Unknown names use the native backend.
func Open(backend string) (Reader, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendCommand:
		return NewCommand()
	default:
		return NewNative()
	}
}

// Native reads through the platform clipboard API.
type Native struct {
	mu sync.Mutex
}

var (
	initOnce sync.Once
	initErr  error
)

// NewNative initializes the platform clipboard once per process.
func NewNative() (*Native, error) {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("init native clipboard: %w", initErr)
	}
	return &Native{}, nil
}

func (n *Native) ReadText() (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	data := clipboard.Read(clipboard.FmtText)
	if data == nil {
		return "", ErrNoText
	}
	return string(data), nil
}

// Command reads through the OS clipboard utilities (xclip, xsel,
// wl-paste, pbpaste) or the Windows API.
type Command struct{}

func NewCommand() (*Command, error) {
	if atotto.Unsupported {
		return nil, errors.New("no clipboard utility available")
	}
	return &Command{}, nil
}

func (Command) ReadText() (string, error) {
	text, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
