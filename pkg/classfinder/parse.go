package classfinder

import (
	"bufio"
	"io"
	"strings"
)

// parseIndex reads one index resource: UTF-8 text, one fully-qualified
// type name per line. Each line is trimmed of surrounding whitespace and
// blank lines are dropped, so runs of newlines and trailing newlines are
// harmless. Line order is preserved for the caller's first-seen ordering;
// it carries no other meaning.
func parseIndex(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// readResource opens res, parses it, and guarantees the stream is closed
// on every exit path. The returned op tags the failing stage for error
// wrapping ("open" or "read").
func readResource(res Resource) (names []string, op string, err error) {
	rc, err := res.Open()
	if err != nil {
		return nil, "open", err
	}
	defer rc.Close()

	names, err = parseIndex(rc)
	if err != nil {
		return nil, "read", err
	}
	return names, "", nil
}
