package problems

import (
	"math/rand"
	"testing"
)

func TestBankIntegrity(t *testing.T) {
	for i, p := range Bank {
		if len(p.Options) != 4 {
			t.Errorf("problem %d: %d options, want 4", i, len(p.Options))
		}
		if p.CorrectIndex() < 0 {
			t.Errorf("problem %d: answer %q matches no option", i, p.Answer)
		}
		if p.Explanation == "" {
			t.Errorf("problem %d: empty explanation", i)
		}
	}
}

func TestCheckAnswerByText(t *testing.T) {
	p := &Bank[0]
	if !CheckAnswer("f'(x) = cos(x)", p) {
		t.Fatal("exact text rejected")
	}
	if !CheckAnswer("  F'(X) = COS(X) ", p) {
		t.Fatal("case and whitespace should not matter")
	}
	if CheckAnswer("f'(x) = -sin(x)", p) {
		t.Fatal("wrong option accepted")
	}
	if CheckAnswer("", p) {
		t.Fatal("empty answer accepted")
	}
}

func TestCheckAnswerByIndex(t *testing.T) {
	p := &Bank[0] // correct option is the second
	if !CheckAnswer("2", p) {
		t.Fatal("correct index rejected")
	}
	if CheckAnswer("1", p) {
		t.Fatal("wrong index accepted")
	}
	if CheckAnswer("5", p) {
		t.Fatal("out-of-range index accepted")
	}
}

func TestRandomReturnsCopy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := Random(rng)
	p.Text = "mutated"
	for _, b := range Bank {
		if b.Text == "mutated" {
			t.Fatal("Random returned a pointer into the bank")
		}
	}
}
