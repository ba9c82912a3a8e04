package model

import "testing"

func TestIntent_FirstResponse(t *testing.T) {
	tests := []struct {
		name      string
		responses []string
		want      string
		wantOK    bool
	}{
		{name: "single", responses: []string{"Hey there!"}, want: "Hey there!", wantOK: true},
		{name: "multiple keeps order", responses: []string{"a", "b"}, want: "a", wantOK: true},
		{name: "empty", responses: nil, want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := &Intent{Responses: tt.responses}
			got, ok := intent.FirstResponse()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FirstResponse() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIntent_HasPattern(t *testing.T) {
	intent := &Intent{Patterns: []string{"hi", "Hello"}}

	if !intent.HasPattern("Hello") {
		t.Error("HasPattern(Hello) = false, want true")
	}
	// 区分大小写
	if intent.HasPattern("hello") {
		t.Error("HasPattern(hello) = true, want false")
	}
	if intent.HasPattern("hey") {
		t.Error("HasPattern(hey) = true, want false")
	}
}

func TestSender_Valid(t *testing.T) {
	if !SenderUser.Valid() || !SenderBot.Valid() {
		t.Error("user/bot should be valid senders")
	}
	if Sender("assistant").Valid() || Sender("").Valid() {
		t.Error("only user and bot are valid senders")
	}
}
