package stripeapi

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadIDs reads the IDs from the given io.Reader, one per line. Anything after
// a # is a comment, and blank lines are ignored. An ID that appears more than
// once is only returned the first time it is read. A line holding more than a
// single ID is an error.
func ReadIDs(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)

	ids := make([]string, 0)
	seen := make(map[string]struct{})

	for n := 1; sc.Scan(); n++ {
		line, _, _ := strings.Cut(sc.Text(), "#")

		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		if len(fields) > 1 {
			return nil, fmt.Errorf("line %d: expected one id, got %d", n, len(fields))
		}

		id := fields[0]

		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
