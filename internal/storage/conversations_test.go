package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// fakeRow feeds canned column values into scanConversation.
type fakeRow struct {
	values []interface{}
	err    error
}

func (f *fakeRow) Scan(dest ...interface{}) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.values[i].(string)
		case *[]byte:
			*p = f.values[i].([]byte)
		case *int:
			*p = f.values[i].(int)
		case *bool:
			*p = f.values[i].(bool)
		case *time.Time:
			*p = f.values[i].(time.Time)
		}
	}
	return nil
}

func TestScanConversation(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	messages := []ConversationMessage{
		{Role: RoleAssistant, Content: "welcome", Timestamp: now},
		{Role: RoleUser, Content: "find founders", Timestamp: now},
	}
	msgJSON, _ := json.Marshal(messages)

	row := &fakeRow{values: []interface{}{
		"conv-1", "user-1", "find founders", msgJSON, 3, 1, false, now, now,
	}}

	conv, err := scanConversation(row)
	if err != nil {
		t.Fatalf("scanConversation returned error: %v", err)
	}
	if conv.ID != "conv-1" || conv.UserID != "user-1" {
		t.Errorf("ids = %q/%q", conv.ID, conv.UserID)
	}
	if len(conv.Messages) != 2 || conv.Messages[1].Content != "find founders" {
		t.Errorf("messages = %+v", conv.Messages)
	}
	if conv.ContactCount != 3 || conv.FollowUpCount != 1 {
		t.Errorf("counters = %d/%d, want 3/1", conv.ContactCount, conv.FollowUpCount)
	}
}

func TestScanConversation_NoRowsIsNotFound(t *testing.T) {
	_, err := scanConversation(&fakeRow{err: sql.ErrNoRows})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScanConversation_NullMessagesBecomeEmptySlice(t *testing.T) {
	now := time.Now().UTC()
	row := &fakeRow{values: []interface{}{
		"conv-2", "user-1", "New Search", []byte("null"), 0, 0, false, now, now,
	}}

	conv, err := scanConversation(row)
	if err != nil {
		t.Fatalf("scanConversation returned error: %v", err)
	}
	if conv.Messages == nil || len(conv.Messages) != 0 {
		t.Errorf("messages = %#v, want empty non-nil slice", conv.Messages)
	}
}
