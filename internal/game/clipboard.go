package game

import (
	"strings"

	"github.com/atotto/clipboard"
)

// setClipboardText places text on the system clipboard.
func setClipboardText(text string) error {
	if text == "" {
		text = " "
	}
	return clipboard.WriteAll(text)
}

// logTranscript joins every player-facing message of the match, oldest first.
func logTranscript(messages []string) string {
	return strings.Join(messages, "\n")
}
