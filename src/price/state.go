package price

// Kind tags the variant held by a State.
type Kind int

const (
	NoClipboardText Kind = iota
	InvalidFormat
	Converted
)

const (
	NoClipboardTextMessage = "Clipboard is empty or does not contain text."
	InvalidFormatMessage   = "Invalid price format in clipboard."
)

func (k Kind) String() string {
	switch k {
	case NoClipboardText:
		return "no-clipboard-text"
	case InvalidFormat:
		return "invalid-format"
	case Converted:
		return "converted"
	default:
		return "unknown"
	}
}

// State is what the display shows for one tick. Conversion is only
// meaningful when Kind is Converted.
type State struct {
	Kind       Kind
	Conversion Conversion
}

// Evaluate derives the display state from the clipboard contents.
// hasText is false when the clipboard holds no text at all.
func Evaluate(text string, hasText bool) State {
	if !hasText {
		return State{Kind: NoClipboardText}
	}
	p, ok := Parse(text)
	if !ok {
		return State{Kind: InvalidFormat}
	}
	return State{Kind: Converted, Conversion: Convert(p)}
}

// Equal reports whether two states would render identically.
func (s State) Equal(o State) bool {
	if s.Kind != o.Kind {
		return false
	}
	if s.Kind != Converted {
		return true
	}
	return s.Conversion.Price == o.Conversion.Price
}

// Message returns the notice text for non-converted states.
func (s State) Message() string {
	switch s.Kind {
	case NoClipboardText:
		return NoClipboardTextMessage
	case InvalidFormat:
		return InvalidFormatMessage
	default:
		return s.Conversion.String()
	}
}
