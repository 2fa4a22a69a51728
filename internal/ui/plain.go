package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Plain is a line-based console over any reader and writer, used for
// piped input and terminals without cursor control.
type Plain struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPlain creates a console reading tokens from r and writing to w.
func NewPlain(r io.Reader, w io.Writer) *Plain {
	in := bufio.NewScanner(r)
	in.Split(bufio.ScanWords)
	return &Plain{in: in, out: w}
}

// ReadCommand writes prompt and returns the next whitespace-delimited
// token, or io.EOF when input ends.
func (p *Plain) ReadCommand(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// Print writes text followed by a newline.
func (p *Plain) Print(text string) {
	fmt.Fprintln(p.out, text)
}
