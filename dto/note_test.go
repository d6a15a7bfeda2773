package dto

import (
	"encoding/json"
	"testing"
)

func TestUpdateNoteRequest_Empty(t *testing.T) {
	cases := []struct {
		body  string
		empty bool
	}{
		{`{}`, true},
		{`{"unknown":"field"}`, true},
		{`{"title":"t"}`, false},
		{`{"content":""}`, false}, // present but zero still counts as a change
		{`{"tags":[]}`, false},
		{`{"isPinned":false}`, false},
	}

	for _, tc := range cases {
		var req UpdateNoteRequest
		if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
			t.Fatalf("unmarshal %q: %v", tc.body, err)
		}
		if got := req.Empty(); got != tc.empty {
			t.Errorf("Empty() for %q = %v, want %v", tc.body, got, tc.empty)
		}
	}
}
