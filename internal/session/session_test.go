package session

import "testing"

func TestCartTotal_Empty(t *testing.T) {
	s := New()
	if got := s.CartTotal(); got != 0 {
		t.Errorf("CartTotal = %d, want 0", got)
	}
}

func TestCartTotal_SumsAllItems(t *testing.T) {
	s := New()
	s.AddItem("사과", 1500, "")
	s.AddItem("우유", 2500, "")
	s.AddItem("사과", 1500, "") // duplicates are separate entries

	if got := s.CartTotal(); got != 5500 {
		t.Errorf("CartTotal = %d, want 5500", got)
	}
	if len(s.Cart) != 3 {
		t.Errorf("len(Cart) = %d, want 3", len(s.Cart))
	}
}

func TestCartTotal_OrderIndependent(t *testing.T) {
	a := New()
	a.AddItem("A", 100, "")
	a.AddItem("B", 250, "")
	a.AddItem("C", 4000, "")

	b := New()
	b.AddItem("C", 4000, "")
	b.AddItem("A", 100, "")
	b.AddItem("B", 250, "")

	if a.CartTotal() != b.CartTotal() {
		t.Errorf("totals differ by order: %d vs %d", a.CartTotal(), b.CartTotal())
	}
}

func TestRemaining(t *testing.T) {
	s := New()
	s.Budget = 10000

	s.AddItem("A", 8000, "")
	if got := s.Remaining(); got != 2000 {
		t.Errorf("Remaining = %d, want 2000", got)
	}

	s.AddItem("B", 4000, "")
	if got := s.Remaining(); got != -2000 {
		t.Errorf("Remaining = %d, want -2000 (over budget)", got)
	}
}

func TestAddItem_AllowsAnyPrice(t *testing.T) {
	s := New()
	s.AddItem("zero", 0, "")
	s.AddItem("neg", -100, "")

	if got := s.CartTotal(); got != -100 {
		t.Errorf("CartTotal = %d, want -100", got)
	}
}
