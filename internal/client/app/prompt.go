package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ask prints prompt and reads one trimmed line. A partial last line before
// EOF is returned as input.
func (a *App) ask(prompt string) (string, error) {
	a.printf("%s\n> ", a.theme.Accent.Render(prompt))
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askDefault is ask where an empty answer keeps current.
func (a *App) askDefault(prompt, current string) (string, bool, error) {
	v, err := a.ask(fmt.Sprintf("%s [%s]", prompt, current))
	if err != nil {
		return "", false, err
	}
	if v == "" {
		return current, false, nil
	}
	return v, v != current, nil
}

// orAsk returns v, prompting when it is empty.
func (a *App) orAsk(v, prompt string) (string, error) {
	if strings.TrimSpace(v) != "" {
		return v, nil
	}
	return a.ask(prompt)
}

func (a *App) askPassword(prompt string) (string, error) {
	a.printf("%s: ", a.theme.Accent.Render(prompt))
	pw, err := a.readPassword()
	a.printf("\n")
	return pw, err
}

// terminalPassword reads without echo when stdin is a terminal and falls
// back to a plain line otherwise.
func (a *App) terminalPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := a.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	b, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
