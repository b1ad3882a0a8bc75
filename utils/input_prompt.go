package utils

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"codescout/constants/lipgloss"
)

// InputPromptWithContext reads one line from the user, honoring context
// cancellation while the read is in flight. A closed stdin comes back as
// io.EOF so callers can tell it apart from an empty line.
func InputPromptWithContext(ctx context.Context, reader *bufio.Reader) (string, error) {
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		fmt.Print(lipgloss.BlueSky.Render("> "))

		userInput, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				errChan <- io.EOF
			} else {
				errChan <- fmt.Errorf("failed to read input: %v", err)
			}
			return
		}

		inputChan <- strings.TrimSpace(userInput)
	}()

	select {
	case <-ctx.Done():
		fmt.Println()
		return "", ctx.Err()
	case err := <-errChan:
		return "", err
	case input := <-inputChan:
		return input, nil
	}
}

// ConfirmPrompt asks a yes/no question and reads one line. Only "y" and
// "yes" count as consent, anything else declines.
func ConfirmPrompt(question string, reader *bufio.Reader) (bool, error) {
	fmt.Print(question)

	answer, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read input: %v", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
