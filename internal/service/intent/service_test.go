package intent

import (
	"context"
	"errors"
	"testing"
)

func TestService_AddIntent(t *testing.T) {
	store := &mockIntentStore{}
	svc := NewService(store)

	created, err := svc.AddIntent(context.Background(), &AddIntentRequest{
		Tag:       "greeting",
		Patterns:  []string{"hi", "hello"},
		Responses: []string{"Hey there!"},
	})
	if err != nil {
		t.Fatalf("AddIntent() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("expected id to be assigned")
	}

	// 写入后立即可匹配
	resp, err := NewResolver(store, nil, DefaultCutoff).Resolve(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resp != "Hey there!" {
		t.Errorf("Resolve(hi) = %q, want %q", resp, "Hey there!")
	}
}

func TestService_AddIntent_MissingArrays(t *testing.T) {
	svc := NewService(&mockIntentStore{})

	created, err := svc.AddIntent(context.Background(), &AddIntentRequest{})
	if err != nil {
		t.Fatalf("AddIntent() error = %v", err)
	}
	if created.Patterns == nil || created.Responses == nil {
		t.Error("missing arrays should be stored as empty arrays")
	}
	if created.Tag != "" {
		t.Errorf("Tag = %q, want empty", created.Tag)
	}
}

func TestService_ListIntents(t *testing.T) {
	svc := NewService(&mockIntentStore{})

	intents, err := svc.ListIntents(context.Background())
	if err != nil {
		t.Fatalf("ListIntents() error = %v", err)
	}
	if intents == nil || len(intents) != 0 {
		t.Errorf("ListIntents() = %v, want empty non-nil slice", intents)
	}

	_, err = NewService(&mockIntentStore{listErr: errStore}).ListIntents(context.Background())
	if !errors.Is(err, errStore) {
		t.Errorf("ListIntents() error = %v, want %v", err, errStore)
	}
}
