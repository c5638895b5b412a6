// Package session holds the per-run shopping session state and the pure
// transition function that drives the three-screen flow.
package session

// Screen identifies which of the three screens is active.
type Screen int

const (
	ScreenMission Screen = iota
	ScreenShop
	ScreenResult
)

// String returns the screen name used in status output.
func (s Screen) String() string {
	switch s {
	case ScreenMission:
		return "mission"
	case ScreenShop:
		return "shop"
	case ScreenResult:
		return "result"
	default:
		return "unknown"
	}
}

// Mission is a named budget tier the student commits to for one session.
type Mission struct {
	Label  string
	Budget int64 // whole won
}

// CartItem is one purchased product. Items are never edited or removed;
// buying the same product twice produces two entries.
type CartItem struct {
	Name     string
	Price    int64
	ImageURL string
}

// State is the complete session record. One instance per run, passed
// explicitly through the screen handlers, never a package global.
type State struct {
	Screen  Screen
	Mission *Mission
	Budget  int64
	Cart    []CartItem
	Reason  string
}

// New returns the initial state: mission screen, nothing selected.
func New() State {
	return State{Screen: ScreenMission}
}

// AddItem appends a purchase to the cart. It always succeeds.
func (s *State) AddItem(name string, price int64, imageURL string) {
	s.Cart = append(s.Cart, CartItem{Name: name, Price: price, ImageURL: imageURL})
}

// CartTotal returns the sum of all cart item prices, 0 for an empty cart.
func (s State) CartTotal() int64 {
	var total int64
	for _, it := range s.Cart {
		total += it.Price
	}
	return total
}

// Remaining returns budget minus cart total. Negative means over budget;
// going over is a warning, not an error.
func (s State) Remaining() int64 {
	return s.Budget - s.CartTotal()
}

// HasMission reports whether a mission has been chosen. The shop and result
// screens are guarded on this.
func (s State) HasMission() bool {
	return s.Mission != nil
}
