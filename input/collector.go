package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

const (
	collectorType  = "input-collector"
	invalidEntry   = "Sorry... it seems like you're not typing a correct entry. "
	tryAgain       = "Let's try again"
	chosenEntry    = "Great! the chosen entry is: %s\n\n"
	inputIssue     = "Seems like there is an issue with your input"
	endOfLineDelim = '\n'
)

// Collector asks questions through out and reads the answers, one per line, from in
type Collector struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// GetInput prints prompt and reads answers until one of them is a key of enumeration,
// then returns its value. Invalid answers are retried without limit.
// If the input can't be read an error wrapping ErrAborted is returned.
func GetInput[T any](c *Collector, prompt string, enumeration Enumeration[T]) (T, error) {
	var zero T
	for {
		fmt.Fprintln(c.out, prompt)
		answer, err := c.readLine()
		if err != nil {
			return zero, c.abort(prompt, err)
		}

		value, ok := enumeration.Lookup(answer)
		if ok {
			fmt.Fprintf(c.out, chosenEntry, normalize(answer))
			return value, nil
		}

		log.Debugf("[component: %s][method: GetInput] invalid answer %q", collectorType, answer)
		fmt.Fprintln(c.out, invalidEntry)
		fmt.Fprintln(c.out, tryAgain)
	}
}

// readLine returns the next line without its line break. A last line without
// line break is still returned.
func (c *Collector) readLine() (string, error) {
	line, err := c.reader.ReadString(endOfLineDelim)
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (c *Collector) abort(prompt string, err error) error {
	fmt.Fprintln(c.out, inputIssue)
	log.Debugf("[component: %s][method: GetInput][status: ERROR] error reading answer to %q: %s", collectorType, prompt, err.Error())
	return fmt.Errorf("%w: %w", ErrAborted, err)
}
