package cli

import (
	"bufio"
	"fmt"
	"io"
)

// ScannerReader is a LineReader over a plain stream, used when stdin is not a
// terminal (piped input, tests).
type ScannerReader struct {
	scanner *bufio.Scanner
	output  io.Writer
	prompt  string
}

func NewScannerReader(input io.Reader, output io.Writer) *ScannerReader {
	return &ScannerReader{
		scanner: bufio.NewScanner(input),
		output:  output,
	}
}

func (r *ScannerReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *ScannerReader) Readline() (string, error) {
	if r.prompt != "" {
		fmt.Fprint(r.output, r.prompt)
	}

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
