package toml

import "testing"

func TestTokenizerAdvanceTracksLineCol(t *testing.T) {
	tz := NewTokenizer(NewBuffer([]byte("ab\ncd")))
	if tz.Line() != 1 || tz.Col() != 1 {
		t.Fatalf("start = %d:%d, want 1:1", tz.Line(), tz.Col())
	}
	tz.Advance() // consume 'a'
	if tz.Cur() != 'b' || tz.Col() != 2 {
		t.Fatalf("after one advance cur=%q col=%d, want 'b' col 2", tz.Cur(), tz.Col())
	}
	tz.Advance() // consume 'b'
	tz.Advance() // consume '\n'
	if tz.Line() != 2 || tz.Col() != 1 {
		t.Fatalf("after newline = %d:%d, want 2:1", tz.Line(), tz.Col())
	}
	if tz.Cur() != 'c' {
		t.Fatalf("cur = %q, want 'c'", tz.Cur())
	}
}

func TestTokenizerPrevPrevWindow(t *testing.T) {
	tz := NewTokenizer(NewBuffer([]byte("xyz")))
	tz.Advance()
	tz.Advance()
	if tz.Cur() != 'z' || tz.Prev() != 'y' || tz.PrevPrev() != 'x' {
		t.Fatalf("window = %q/%q/%q, want z/y/x", tz.Cur(), tz.Prev(), tz.PrevPrev())
	}
}

func TestTokenizerAtEOF(t *testing.T) {
	tz := NewTokenizer(NewBuffer([]byte("a")))
	if tz.AtEOF() {
		t.Fatal("should not be at EOF before consuming the only byte")
	}
	tz.Advance()
	if !tz.AtEOF() {
		t.Fatal("should be at EOF after consuming the only byte")
	}
	if tz.Cur() != 0 {
		t.Fatalf("Cur() at EOF = %d, want 0", tz.Cur())
	}
}

func TestTokenizerAdvancePastEOFIsNoop(t *testing.T) {
	tz := NewTokenizer(NewBuffer([]byte("a")))
	tz.Advance()
	pos := tz.Pos()
	tz.Advance()
	if tz.Pos() != pos {
		t.Fatalf("Advance past EOF moved pos from %d to %d", pos, tz.Pos())
	}
}

func TestTokenizerBacktrackRestoresPosition(t *testing.T) {
	tz := NewTokenizer(NewBuffer([]byte("1979-05-27")))
	for i := 0; i < 4; i++ {
		tz.Advance()
	}
	if tz.Cur() != '-' {
		t.Fatalf("cur before backtrack = %q, want '-'", tz.Cur())
	}
	tz.Backtrack(4)
	if tz.Cur() != '1' {
		t.Fatalf("cur after Backtrack(4) = %q, want '1'", tz.Cur())
	}
	if tz.Col() != 1 {
		t.Fatalf("col after backtrack = %d, want 1", tz.Col())
	}
}

func TestTokenizerBacktrackAcrossNewline(t *testing.T) {
	tz := NewTokenizer(NewBuffer([]byte("ab\ncd")))
	for i := 0; i < 4; i++ {
		tz.Advance() // consumes a,b,\n,c -> cur == 'd'
	}
	tz.Backtrack(3) // back to just after 'a'
	if tz.Line() != 1 {
		t.Fatalf("line after backtrack = %d, want 1", tz.Line())
	}
}

func TestTokenizerBacktrackClampsAtStart(t *testing.T) {
	tz := NewTokenizer(NewBuffer([]byte("ab")))
	tz.Advance()
	tz.Backtrack(100)
	if tz.Pos() != 0 && tz.Cur() != 'a' {
		t.Fatalf("over-backtrack should clamp to start, got pos=%d cur=%q", tz.Pos(), tz.Cur())
	}
}

func TestTokenizerFreshLine(t *testing.T) {
	tz := NewTokenizer(NewBuffer([]byte("  x\ny")))
	if !tz.FreshLine() {
		t.Fatal("freshLine should be true before any non-whitespace byte")
	}
	tz.Advance()
	tz.Advance()
	if !tz.FreshLine() {
		t.Fatal("freshLine should stay true through leading whitespace")
	}
	tz.Advance() // consumes 'x'
	if tz.FreshLine() {
		t.Fatal("freshLine should go false once a non-whitespace byte is consumed")
	}
}
