package seq

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestNextIDEmpty(t *testing.T) {
	if got := NextID(nil, "UserID", "Users"); got != "1" {
		t.Fatalf("expected 1, got %s", got)
	}
	if got := NextID([]bson.M{}, "EventID", "Events"); got != "1" {
		t.Fatalf("expected 1, got %s", got)
	}
}

func TestNextIDUsers(t *testing.T) {
	records := []bson.M{
		{"UserID": "1"},
		{"UserID": "2"},
	}
	if got := NextID(records, "UserID", "Users"); got != "3" {
		t.Fatalf("expected 3, got %s", got)
	}
}

func TestNextIDNumericOrder(t *testing.T) {
	// "10" must rank above "2"
	records := []bson.M{
		{"UserID": "10"},
		{"UserID": "2"},
	}
	if got := NextID(records, "UserID", "Users"); got != "11" {
		t.Fatalf("expected 11, got %s", got)
	}
}

func TestNextIDEvents(t *testing.T) {
	records := []bson.M{{"EventID": "A1"}}
	if got := NextID(records, "EventID", "Events"); got != "A2" {
		t.Fatalf("expected A2, got %s", got)
	}

	records = []bson.M{
		{"EventID": "A9"},
		{"EventID": "A12"},
	}
	if got := NextID(records, "EventID", "Events"); got != "A13" {
		t.Fatalf("expected A13, got %s", got)
	}
}

func TestNextIDSkipsMalformed(t *testing.T) {
	records := []bson.M{
		{"FormID": "4"},
		{"FormID": 7},      // not a string
		{"Other": "9"},     // field missing
		{"FormID": "oops"}, // not numeric
	}
	if got := NextID(records, "FormID", "ContactUs"); got != "5" {
		t.Fatalf("expected 5, got %s", got)
	}
}
