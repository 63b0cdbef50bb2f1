package common

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadInput resolves command input in precedence order: explicit file path,
// positional arguments (joined with spaces), then stdin. Trailing newlines
// from piped input are stripped so they never count as segmentable text.
func ReadInput(args []string, filePath string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return "", ErrNoInput
	}
	return text, nil
}
