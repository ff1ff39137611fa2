package chainmap

import (
	"fmt"
	"io"
	"strings"
)

type entryIterator func(fn func(item *entry) bool)

// writeEntries writes "{'k0': 'v0', 'k1': 'v1'}" in the order given by iterate.
func writeEntries(w io.Writer, iterate entryIterator) (err error) {
	if _, err = io.WriteString(w, "{"); err != nil {
		return
	}
	isFirst := true
	iterate(func(item *entry) bool {
		if !isFirst {
			if _, err = io.WriteString(w, ", "); err != nil {
				return false
			}
		}
		isFirst = false
		_, err = fmt.Fprintf(w, "'%s': '%s'", item.key, item.value)
		return err == nil
	})
	if err != nil {
		return
	}
	_, err = io.WriteString(w, "}")
	return
}

func formatEntries(iterate entryIterator) string {
	var buf strings.Builder
	_ = writeEntries(&buf, iterate)
	return buf.String()
}

func printEntries(w io.Writer, iterate entryIterator) error {
	if err := writeEntries(w, iterate); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
