package fasta

import "testing"

func TestFindFirstMatchWins(t *testing.T) {
	recs := []Record{
		{ID: "dup", Seq: "AAAA"},
		{ID: "other", Seq: "CCCC"},
		{ID: "dup", Seq: "GGGG"},
	}
	r, ok := Find(recs, "dup")
	if !ok || r.Seq != "AAAA" {
		t.Fatalf("expected first duplicate, got %+v ok=%v", r, ok)
	}
}

func TestFindIsCaseSensitive(t *testing.T) {
	recs := []Record{{ID: "Seq1", Seq: "ACGT"}}
	if _, ok := Find(recs, "seq1"); ok {
		t.Fatalf("lookup must be case-sensitive")
	}
}

func TestFindMissing(t *testing.T) {
	if _, ok := Find(nil, "x"); ok {
		t.Fatalf("expected no match on empty input")
	}
}
