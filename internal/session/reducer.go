package session

// Action is a user interaction fed to Reduce. Each screen handler maps key
// presses and form completions onto one of these.
type Action interface{ isAction() }

// ChooseMission confirms a mission choice: sets the mission and budget and
// moves to the shop screen.
type ChooseMission struct {
	Mission Mission
}

// GoMission returns to the mission screen. Budget and cart are untouched.
type GoMission struct{}

// GoShop moves to the shop screen. Guarded: ignored until a mission is chosen.
type GoShop struct{}

// Checkout moves from shop to result. Guarded: ignored while the cart is
// empty and ignored without a mission.
type Checkout struct{}

// AddToCart appends one purchase to the cart.
type AddToCart struct {
	Item CartItem
}

// SetReason replaces the justification text.
type SetReason struct {
	Text string
}

func (ChooseMission) isAction() {}
func (GoMission) isAction()     {}
func (GoShop) isAction()        {}
func (Checkout) isAction()      {}
func (AddToCart) isAction()     {}
func (SetReason) isAction()     {}

// Reduce applies one action to the state and returns the next state. It is
// pure: guards that fail leave the state unchanged, and the caller decides
// what warning to show. Screens only ever change through explicit actions,
// except that an out-of-range screen value falls back to mission.
func Reduce(s State, a Action) State {
	if s.Screen < ScreenMission || s.Screen > ScreenResult {
		s.Screen = ScreenMission
	}

	switch a := a.(type) {
	case ChooseMission:
		m := a.Mission
		s.Mission = &m
		s.Budget = m.Budget
		s.Screen = ScreenShop

	case GoMission:
		s.Screen = ScreenMission

	case GoShop:
		if !s.HasMission() {
			return s
		}
		s.Screen = ScreenShop

	case Checkout:
		if !s.HasMission() || len(s.Cart) == 0 {
			return s
		}
		s.Screen = ScreenResult

	case AddToCart:
		s.Cart = append(s.Cart, a.Item)

	case SetReason:
		s.Reason = a.Text
	}

	return s
}
