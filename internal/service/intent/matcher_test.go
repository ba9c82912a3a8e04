package intent

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "hello", b: "hello", want: 1},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
		{name: "both empty", a: "", b: "", want: 1},
		// 匹配块 "ab" 与 "d"，2*3/8
		{name: "partial", a: "abcd", b: "abxd", want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCloseMatches(t *testing.T) {
	patterns := []string{"hello", "how are you", "goodbye", "what are your hours"}

	tests := []struct {
		name   string
		word   string
		cutoff float64
		want   string // 空表示无匹配
	}{
		{name: "abbreviated question", word: "how r u", cutoff: 0.6, want: "how are you"},
		{name: "typo", word: "helo", cutoff: 0.6, want: "hello"},
		{name: "unrelated", word: "completely unrelated text", cutoff: 0.6, want: ""},
		{name: "exact", word: "goodbye", cutoff: 1, want: "goodbye"},
		{name: "case is not normalized", word: "HELLO", cutoff: 0.6, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CloseMatches(tt.word, patterns, 1, tt.cutoff)
			if tt.want == "" {
				if len(got) != 0 {
					t.Errorf("CloseMatches(%q) = %v, want none", tt.word, got)
				}
				return
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("CloseMatches(%q) = %v, want [%q]", tt.word, got, tt.want)
			}
		})
	}
}

func TestCloseMatches_Ordering(t *testing.T) {
	// "abcd" 与 "abce"、"abcf" 相似度相同，取字典序大的
	got := CloseMatches("abcd", []string{"abce", "abcf", "abcd"}, 3, 0.6)
	want := []string{"abcd", "abcf", "abce"}
	if len(got) != len(want) {
		t.Fatalf("CloseMatches() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CloseMatches()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCloseMatches_InvalidArgs(t *testing.T) {
	if got := CloseMatches("hello", []string{"hello"}, 0, 0.6); got != nil {
		t.Errorf("n=0: got %v, want nil", got)
	}
	if got := CloseMatches("hello", []string{"hello"}, 1, 1.5); got != nil {
		t.Errorf("cutoff>1: got %v, want nil", got)
	}
	if got := CloseMatches("hello", nil, 1, 0.6); len(got) != 0 {
		t.Errorf("no possibilities: got %v", got)
	}
}
