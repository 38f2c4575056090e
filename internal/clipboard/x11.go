package clipboard

import (
	atotto "github.com/atotto/clipboard"
)

// x11Clipboard delegates to atotto/clipboard, which drives xclip or xsel
// under X11.
type x11Clipboard struct{}

func (x11Clipboard) Name() string { return "x11" }

func (x11Clipboard) ReadText() (string, error) {
	return atotto.ReadAll()
}

func (x11Clipboard) WriteText(text string) error {
	return atotto.WriteAll(text)
}
