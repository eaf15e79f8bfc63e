package wpcli

import (
	"fmt"
	"strconv"
	"strings"
)

func trimOutput(s string) string {
	return strings.TrimSpace(s)
}

// parseID parses a single --porcelain ID from command output.
func parseID(stdout string) (int, error) {
	raw := trimOutput(stdout)
	if raw == "" {
		return 0, fmt.Errorf("expected an ID, got empty output")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("unexpected ID output %q: %w", raw, err)
	}
	return id, nil
}

// parseIDList parses --format=ids output, a space-separated ID list.
func parseIDList(stdout string) ([]int, error) {
	raw := trimOutput(stdout)
	if raw == "" {
		return []int{}, nil
	}
	fields := strings.Fields(raw)
	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("unexpected ID %q in listing: %w", f, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
