package segmenter

import (
	"strings"
	"testing"
)

func TestGSE_Segment(t *testing.T) {
	g, err := NewGSE()
	if err != nil {
		t.Fatalf("NewGSE returned error: %v", err)
	}

	text := "我们在学习中文"
	tokens := g.Segment(text)

	if len(tokens) == 0 {
		t.Fatal("expected at least one token")
	}
	// Segmentation partitions the text: concatenating tokens restores it.
	if got := strings.Join(tokens, ""); got != text {
		t.Errorf("joined tokens = %q, want %q", got, text)
	}
	// "中文" is a dictionary word and should survive as one token.
	found := false
	for _, tok := range tokens {
		if tok == "中文" {
			found = true
		}
	}
	if !found {
		t.Errorf("tokens = %v, expected to contain 中文", tokens)
	}
}

func TestGSE_EmptyInput(t *testing.T) {
	g, err := NewGSE()
	if err != nil {
		t.Fatalf("NewGSE returned error: %v", err)
	}
	if tokens := g.Segment(""); len(tokens) != 0 {
		t.Errorf("Segment(\"\") = %v, want no tokens", tokens)
	}
}
