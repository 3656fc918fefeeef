package graph

import "testing"

func TestAddEdgeValence(t *testing.T) {
	g := New()
	o, err := g.NewSymbol('O', "", KindStandard, 2)
	if err != nil {
		t.Fatal(err)
	}
	h1, _ := g.NewSymbol('H', "", KindStandard, 1)
	h2, _ := g.NewSymbol('H', "", KindStandard, 1)

	if _, err := g.AddEdge(o, h1, 1, false); err != nil {
		t.Fatalf("first edge: %v", err)
	}
	if _, err := g.AddEdge(o, h2, 1, false); err != nil {
		t.Fatalf("second edge: %v", err)
	}

	h3, _ := g.NewSymbol('H', "", KindStandard, 1)
	if _, err := g.AddEdge(o, h3, 1, false); err == nil {
		t.Fatal("expected valence exceeded error")
	}
}

func TestDuplicateEdge(t *testing.T) {
	g := New()
	a, _ := g.NewSymbol('X', "", KindStandard, 4)
	b, _ := g.NewSymbol('X', "", KindStandard, 4)
	if _, err := g.AddEdge(a, b, 1, false); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge(a, b, 1, false); err == nil {
		t.Fatal("expected duplicate edge error")
	}
}

func TestUnsaturateRevalidates(t *testing.T) {
	g := New()
	a, _ := g.NewSymbol('Y', "", KindStandard, 2)
	b, _ := g.NewSymbol('Y', "", KindStandard, 2)
	eid, err := g.AddEdge(a, b, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Unsaturate(eid, 1); err != nil {
		t.Fatalf("order 2 should fit in cap 2: %v", err)
	}
	if err := g.Unsaturate(eid, 1); err == nil {
		t.Fatal("order 3 total should exceed cap 2")
	}
}

func TestGraphTooLarge(t *testing.T) {
	g := New(WithCap(2))
	if _, err := g.NewSymbol('1', "", KindStandard, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := g.NewSymbol('1', "", KindStandard, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := g.NewSymbol('1', "", KindStandard, 4); err == nil {
		t.Fatal("expected graph too large error")
	}
}
