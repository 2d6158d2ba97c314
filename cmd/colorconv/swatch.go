package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/gogpu/colorenc"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeSwatch prints a block of c using a 24-bit background escape.
func writeSwatch(w io.Writer, c colorenc.SrgbU8) error {
	_, err := fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm        \x1b[0m %s\n", c.R, c.G, c.B, c.Hex())
	return err
}
