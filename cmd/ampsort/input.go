package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/amp-sort/logger"
)

const maxLineLength = 1 << 20

// item is one input value tagged with its line position, so that verify can
// check stability.
type item[T any] struct {
	value  T
	origin int
}

func readItems[T any](r io.Reader, name string, k kind[T]) ([]item[T], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)

	items := []item[T]{}
	line := 0

	for scanner.Scan() {
		line++

		text := k.clean(scanner.Text())
		if k.numeric && text == "" {
			continue
		}

		v, err := k.parse(text)
		if err != nil {
			return nil, logger.AnnotateError(fmt.Errorf("%s:%d: %w", name, line, err),
				"file", name, "line", line)
		}

		items = append(items, item[T]{value: v, origin: len(items)})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return items, nil
}

// readFile reads name, or stdin when name is "-".
func readFile[T any](stdin io.Reader, name string, k kind[T]) ([]item[T], error) {
	if name == "-" {
		return readItems(stdin, "stdin", k)
	}

	f, err := os.Open(name) // #nosec G304 -- reading user supplied inputs is the point
	if err != nil {
		return nil, err
	}

	defer f.Close() //nolint:errcheck

	return readItems(f, name, k)
}

func writeItems[T any](w io.Writer, items []item[T], k kind[T]) error {
	bw := bufio.NewWriter(w)

	for _, it := range items {
		if _, err := bw.WriteString(k.format(it.value)); err != nil {
			return err
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
