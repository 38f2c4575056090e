package clipboard

import "fmt"

// stubClipboard backs headless sessions where no clipboard exists.
type stubClipboard struct{}

func (stubClipboard) Name() string { return "none" }

func (stubClipboard) ReadText() (string, error) {
	return "", fmt.Errorf("no clipboard available in this session")
}

func (stubClipboard) WriteText(string) error {
	return fmt.Errorf("no clipboard available in this session")
}
