package session

import "testing"

var testMission = Mission{Label: "절약형 장보기 (예산 10,000원)", Budget: 10000}

func TestReduce_ChooseMission(t *testing.T) {
	s := Reduce(New(), ChooseMission{Mission: testMission})

	if s.Screen != ScreenShop {
		t.Errorf("Screen = %v, want shop", s.Screen)
	}
	if !s.HasMission() {
		t.Fatal("HasMission = false after ChooseMission")
	}
	if s.Mission.Label != testMission.Label {
		t.Errorf("Mission.Label = %q, want %q", s.Mission.Label, testMission.Label)
	}
	if s.Budget != 10000 {
		t.Errorf("Budget = %d, want 10000", s.Budget)
	}
}

func TestReduce_ChooseMission_ReplacesBudget(t *testing.T) {
	s := Reduce(New(), ChooseMission{Mission: testMission})
	s = Reduce(s, GoMission{})
	s = Reduce(s, ChooseMission{Mission: Mission{Label: "풍성한 장보기 (예산 30,000원)", Budget: 30000}})

	if s.Budget != 30000 {
		t.Errorf("Budget = %d, want 30000 after re-choosing", s.Budget)
	}
}

func TestReduce_GoShop_GuardedWithoutMission(t *testing.T) {
	s := Reduce(New(), GoShop{})
	if s.Screen != ScreenMission {
		t.Errorf("Screen = %v, want mission (guard)", s.Screen)
	}
}

func TestReduce_Checkout_BlockedWithEmptyCart(t *testing.T) {
	s := Reduce(New(), ChooseMission{Mission: testMission})
	s = Reduce(s, Checkout{})

	if s.Screen != ScreenShop {
		t.Errorf("Screen = %v, want shop (empty cart blocks checkout)", s.Screen)
	}
}

func TestReduce_Checkout_WithItems(t *testing.T) {
	s := Reduce(New(), ChooseMission{Mission: testMission})
	s = Reduce(s, AddToCart{Item: CartItem{Name: "사과", Price: 1500}})
	s = Reduce(s, Checkout{})

	if s.Screen != ScreenResult {
		t.Errorf("Screen = %v, want result", s.Screen)
	}
}

func TestReduce_BackAndForthKeepsCart(t *testing.T) {
	s := Reduce(New(), ChooseMission{Mission: testMission})
	s = Reduce(s, AddToCart{Item: CartItem{Name: "우유", Price: 2500}})
	s = Reduce(s, GoMission{})
	s = Reduce(s, GoShop{})

	if s.Screen != ScreenShop {
		t.Errorf("Screen = %v, want shop", s.Screen)
	}
	if len(s.Cart) != 1 {
		t.Errorf("len(Cart) = %d, want 1 (cart survives navigation)", len(s.Cart))
	}
}

func TestReduce_SetReason(t *testing.T) {
	s := Reduce(New(), SetReason{Text: "필요한 것만 샀습니다"})
	if s.Reason != "필요한 것만 샀습니다" {
		t.Errorf("Reason = %q", s.Reason)
	}
}

func TestReduce_UnknownScreenFallsBack(t *testing.T) {
	s := New()
	s.Screen = Screen(99)
	s = Reduce(s, SetReason{Text: "x"})

	if s.Screen != ScreenMission {
		t.Errorf("Screen = %v, want mission fallback", s.Screen)
	}
}

func TestReduce_OverBudgetAllowed(t *testing.T) {
	s := Reduce(New(), ChooseMission{Mission: testMission})
	s = Reduce(s, AddToCart{Item: CartItem{Name: "한우", Price: 12000}})
	s = Reduce(s, Checkout{})

	// Over budget is a displayed warning, never a blocked transition.
	if s.Screen != ScreenResult {
		t.Errorf("Screen = %v, want result (over budget is not blocking)", s.Screen)
	}
	if s.Remaining() != -2000 {
		t.Errorf("Remaining = %d, want -2000", s.Remaining())
	}
}
