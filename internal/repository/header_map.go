package repository

import (
	"fmt"
	"strings"
)

// createHeaderMap maps the expected column names to their indices in the CSV
// header, matching case-insensitively
func createHeaderMap(header []string, expectedHeader []string) (map[string]int, error) {
	columnMap := make(map[string]int)

	for _, column := range expectedHeader {
		found := false
		for i, field := range header {
			if strings.EqualFold(column, field) {
				columnMap[column] = i
				found = true
				break
			}
		}

		if !found {
			return nil, fmt.Errorf("required field %q not found in CSV header", column)
		}
	}

	return columnMap, nil
}
