package manage

import (
	"bufio"
	"fmt"
	"io"
)

// Prompt is printed before every command read.
const Prompt = "> "

// Run drives m from line-oriented input until exit or end of input.
func (m *Manager) Run(in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Commands: %s\n", menu())
	if m.inv.Len() > 0 {
		fmt.Fprintln(out, m.describeCurrent())
	}

	sc := bufio.NewScanner(in)
	for !m.Done() {
		fmt.Fprint(out, Prompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		res := m.Handle(sc.Text())
		if res.Message != "" {
			fmt.Fprintln(out, res.Message)
		}
	}
	return nil
}
