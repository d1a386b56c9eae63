package thread

import (
	"testing"
)

func TestSentinelID(t *testing.T) {
	var id ID

	if !id.IsZero() {
		t.Error("zero ID should be the sentinel")
	}
	if id.Native() != 0 {
		t.Errorf("sentinel native value should be 0, got %d", id.Native())
	}
	if id.String() != "id of a non-executing thread" {
		t.Errorf("sentinel should render the fixed literal, got %q", id.String())
	}
	if !id.Equal(ID{}) {
		t.Error("two sentinel IDs should compare equal")
	}
}

func TestCurrentID(t *testing.T) {
	id := Current()

	if id.IsZero() {
		t.Error("Current should never return the sentinel")
	}
	if id.String() == "id of a non-executing thread" {
		t.Error("a live thread's ID should render its native value")
	}
}

func TestIDStableAcrossReads(t *testing.T) {
	th, err := Spawn(func() {})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	first := th.ID()
	second := th.ID()
	if !first.Equal(second) {
		t.Errorf("IDs from the same handle should compare equal: %v != %v", first, second)
	}

	if err := th.Join(); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
}

func TestConcurrentThreadsHaveDistinctIDs(t *testing.T) {
	release := make(chan struct{})

	a, err := Spawn(func() { <-release })
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	b, err := Spawn(func() { <-release })
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	if a.ID().Equal(b.ID()) {
		t.Errorf("concurrently live threads should have distinct IDs, both are %v", a.ID())
	}

	close(release)
	if err := a.Join(); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if err := b.Join(); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
}

func TestIDOrdering(t *testing.T) {
	lo := ID{tid: 1}
	hi := ID{tid: 2}

	if !lo.Less(hi) {
		t.Error("1 should order before 2")
	}
	if hi.Less(lo) {
		t.Error("ordering should be antisymmetric")
	}
	if lo.Less(lo) {
		t.Error("ordering should be irreflexive")
	}
}

func TestIDHash(t *testing.T) {
	id := ID{tid: 42}

	if id.Hash() != id.Hash() {
		t.Error("hash should be stable for the lifetime of the value")
	}
	if id.Hash() == (ID{tid: 43}).Hash() {
		t.Error("distinct IDs should hash differently")
	}
}
