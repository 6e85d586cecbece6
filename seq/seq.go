package seq

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// NextID computes the next sequential identifier for a collection given every
// existing record. IDs are decimal strings; the Events kind carries a literal
// "A" prefix ("A1", "A2", ...). An empty collection starts at "1".
//
// Comparison is numeric, so "10" ranks above "2". Records whose ID field is
// missing or malformed are skipped.
func NextID(records []bson.M, idField, kind string) string {
	if len(records) == 0 {
		return "1"
	}

	max := 0
	for _, rec := range records {
		s, ok := rec[idField].(string)
		if !ok {
			continue
		}
		if isEvents(kind) {
			// keep the digits after the last "A"
			parts := strings.Split(s, "A")
			s = parts[len(parts)-1]
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	next := strconv.Itoa(max + 1)
	if isEvents(kind) {
		return "A" + next
	}
	return next
}

func isEvents(kind string) bool {
	return strings.EqualFold(kind, "events")
}
