package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Terminal is a plain-text Surface for running the workflows without a
// graphical front end. Regions render as titled blocks; Confirm reads a y/n
// answer from the input stream.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
	in  *bufio.Reader
}

// NewTerminal wraps in with a buffered reader unless it already is one, so a
// caller interleaving its own reads can share the buffer by passing the same
// *bufio.Reader.
func NewTerminal(out io.Writer, in io.Reader) *Terminal {
	return &Terminal{out: out, in: bufio.NewReader(in)}
}

func (t *Terminal) ShowPage(page string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "\n===== %s =====\n", page)
}

func (t *Terminal) ScrollToTop() {}

func (t *Terminal) Alert(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "[!] %s\n", message)
}

func (t *Terminal) Confirm(prompt string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s [y/n] ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (t *Terminal) ShowSuccess(title, message, returnPage string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "[ok] %s %s\n", title, message)
	if returnPage != "" {
		fmt.Fprintf(t.out, "     (continue to %s)\n", returnPage)
	}
}

func (t *Terminal) RenderList(region string, lines []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "--- %s ---\n", region)
	for _, line := range lines {
		fmt.Fprintf(t.out, "  %s\n", line)
	}
}

func (t *Terminal) RenderError(region, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "--- %s ---\n  [error] %s\n", region, message)
}

func (t *Terminal) OpenModal(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, ">>> %s opened\n", id)
}

func (t *Terminal) CloseModal(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "<<< %s closed\n", id)
}
