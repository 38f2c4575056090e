package clipboard

import (
	"fmt"
	"os/exec"
	"strings"
)

// waylandClipboard shells out to wl-paste/wl-copy from the wl-clipboard
// package, matching how Wayland compositors expect third parties to access
// selections.
type waylandClipboard struct{}

func newWaylandClipboard() (Clipboard, error) {
	if err := commandAvailable("wl-paste"); err != nil {
		return nil, fmt.Errorf("wl-paste not found: %w", err)
	}
	if err := commandAvailable("wl-copy"); err != nil {
		return nil, fmt.Errorf("wl-copy not found: %w", err)
	}
	return waylandClipboard{}, nil
}

func (waylandClipboard) Name() string { return "wayland" }

func (waylandClipboard) ReadText() (string, error) {
	out, err := exec.Command("wl-paste", "--no-newline").Output()
	if err != nil {
		return "", fmt.Errorf("wl-paste failed: %w", err)
	}
	return string(out), nil
}

func (waylandClipboard) WriteText(text string) error {
	cmd := exec.Command("wl-copy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wl-copy failed: %w", err)
	}
	return nil
}
