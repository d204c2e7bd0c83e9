// pkg/interaction/prompt.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// PromptInput asks for user input with an optional default fallback.
func PromptInput(ctx context.Context, prompt, defaultVal string) string {
	reader := bufio.NewReader(os.Stdin)
	input, err := ReadLine(ctx, reader, prompt)
	if err != nil {
		return defaultVal
	}
	if input == "" {
		return defaultVal
	}
	return input
}

// PromptYesNo asks a yes/no question and returns true/false. Falls back to
// the default on unknown input.
func PromptYesNo(ctx context.Context, prompt string, defaultYes bool) bool {
	defPrompt := "Y/n"
	if !defaultYes {
		defPrompt = "y/N"
	}
	label := fmt.Sprintf("%s [%s]", prompt, defPrompt)

	reader := bufio.NewReader(os.Stdin)
	input, err := ReadLine(ctx, reader, label)
	if err != nil {
		return defaultYes
	}

	if answer, ok := NormalizeYesNoInput(input); ok {
		return answer
	}
	return defaultYes
}

// NormalizeYesNoInput returns true if the input is an affirmative response.
// The second return reports whether the input was recognized at all.
func NormalizeYesNoInput(input string) (bool, bool) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "y" || input == "yes" {
		return true, true
	}
	if input == "n" || input == "no" {
		return false, true
	}
	return false, false
}
