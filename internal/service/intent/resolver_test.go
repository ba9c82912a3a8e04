package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/ashwinyue/next-support/internal/model"
	"github.com/ashwinyue/next-support/internal/testutil"
)

var newIntent = testutil.NewIntent

func TestResolver_Resolve(t *testing.T) {
	fallback := NewFallbackSet([]FallbackIntent{
		{Tag: "greeting", Patterns: []string{"hello"}, Responses: []string{"fallback hello"}},
	})

	stored := []*model.Intent{
		newIntent("greeting", []string{"hi", "hello"}, []string{"Hey there!", "Hello!"}),
		newIntent("status", []string{"how are you"}, []string{"I'm good."}),
		newIntent("silent", []string{"ping"}, nil),
		newIntent("dup", []string{"HI"}, []string{"shadowed"}),
	}

	tests := []struct {
		name    string
		intents []*model.Intent
		message string
		want    string
	}{
		{name: "exact", intents: stored, message: "hi", want: "Hey there!"},
		{name: "exact ignores case", intents: stored, message: "HeLLo", want: "Hey there!"},
		{name: "first intent wins", intents: stored, message: "Hi", want: "Hey there!"},
		{name: "exact with empty responses", intents: stored, message: "PING", want: NoResponse},
		{name: "fuzzy", intents: stored, message: "how r u", want: "I'm good."},
		{name: "no match", intents: stored, message: "completely unrelated text", want: FallbackResponse},
		{name: "fallback set ignored when store has intents", intents: []*model.Intent{
			newIntent("other", []string{"bye"}, []string{"Bye!"}),
		}, message: "hello", want: FallbackResponse},
		{name: "fallback set used when store empty", message: "HELLO", want: "fallback hello"},
		{name: "empty store and no fallback match", message: "anything", want: FallbackResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(&mockIntentStore{intents: tt.intents}, fallback, 0)
			got, err := r.Resolve(context.Background(), tt.message)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestResolver_FuzzyIsCaseSensitive(t *testing.T) {
	store := &mockIntentStore{intents: []*model.Intent{
		newIntent("status", []string{"how are you"}, []string{"I'm good."}),
	}}
	r := NewResolver(store, nil, DefaultCutoff)

	got, err := r.Resolve(context.Background(), "HOW R U")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != FallbackResponse {
		t.Errorf("Resolve() = %q, want %q", got, FallbackResponse)
	}
}

func TestResolver_StoreError(t *testing.T) {
	r := NewResolver(&mockIntentStore{listErr: errStore}, nil, DefaultCutoff)
	_, err := r.Resolve(context.Background(), "hi")
	if !errors.Is(err, errStore) {
		t.Errorf("Resolve() error = %v, want %v", err, errStore)
	}
}

func TestNewResolver_Cutoff(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: DefaultCutoff},
		{in: -1, want: DefaultCutoff},
		{in: 2, want: DefaultCutoff},
		{in: 0.8, want: 0.8},
	}
	for _, tt := range tests {
		if got := NewResolver(nil, nil, tt.in).cutoff; got != tt.want {
			t.Errorf("NewResolver(cutoff=%v).cutoff = %v, want %v", tt.in, got, tt.want)
		}
	}
}
