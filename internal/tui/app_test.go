package tui

import (
	"os"
	"path/filepath"
	"testing"

	"jangbogo/internal/session"
)

var appMissions = []session.Mission{
	{Label: "절약형 장보기 (예산 10,000원)", Budget: 10000},
	{Label: "균형 잡힌 장보기 (예산 20,000원)", Budget: 20000},
}

// newTestApp builds an App with a real temp catalog and output dir, sized
// and already past mission selection.
func newTestApp(t *testing.T) App {
	t.Helper()

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "products.csv")
	csv := "name,price,image_url\nApple,1500,\nMilk,2500,\n"
	if err := os.WriteFile(catalogPath, []byte(csv), 0o600); err != nil {
		t.Fatal(err)
	}

	a := NewApp(appMissions, catalogPath, filepath.Join(dir, "submissions"), 30)
	a.width = 80
	a.height = 30
	a.dispatch(session.ChooseMission{Mission: appMissions[0]})
	return a
}

func TestShop_LoadsCatalogOnEntry(t *testing.T) {
	a := newTestApp(t)

	if a.st.Screen != session.ScreenShop {
		t.Fatalf("Screen = %v, want shop", a.st.Screen)
	}
	if len(a.products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(a.products))
	}
	if a.catalogErr != nil {
		t.Fatalf("catalogErr = %v", a.catalogErr)
	}
}

func TestShop_AddToCart(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.updateShop("a")
	a = m.(App)

	if len(a.st.Cart) != 1 {
		t.Fatalf("len(Cart) = %d, want 1", len(a.st.Cart))
	}
	if a.st.Cart[0].Name != "Apple" || a.st.Cart[0].Price != 1500 {
		t.Errorf("Cart[0] = %+v", a.st.Cart[0])
	}
}

func TestShop_CheckoutBlockedWithEmptyCart(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.updateShop("c")
	a = m.(App)

	if a.st.Screen != session.ScreenShop {
		t.Errorf("Screen = %v, want shop (blocked)", a.st.Screen)
	}
	if a.notice == "" || !a.noticeBad {
		t.Errorf("expected warning notice, got %q (warn=%v)", a.notice, a.noticeBad)
	}
}

func TestShop_CheckoutWithItem(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.updateShop("a")
	a = m.(App)
	m, _ = a.updateShop("c")
	a = m.(App)

	if a.st.Screen != session.ScreenResult {
		t.Errorf("Screen = %v, want result", a.st.Screen)
	}
}

func TestShop_MissingCatalogBlocksAdd(t *testing.T) {
	a := newTestApp(t)
	a.catalogPath = filepath.Join(t.TempDir(), "nope.csv")
	a.loadCatalog()

	if a.catalogErr == nil {
		t.Fatal("catalogErr = nil, want missing-file error")
	}

	m, _ := a.updateShop("a")
	a = m.(App)
	if len(a.st.Cart) != 0 {
		t.Errorf("len(Cart) = %d, want 0 with missing catalog", len(a.st.Cart))
	}
}

func TestResult_SubmitBlockedWithEmptyReason(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.updateShop("a")
	a = m.(App)
	m, _ = a.updateShop("c")
	a = m.(App)

	a.st = session.Reduce(a.st, session.SetReason{Text: "   \n  "})
	m, _ = a.updateResult("s")
	a = m.(App)

	if a.st.Screen != session.ScreenResult {
		t.Errorf("Screen = %v, want result", a.st.Screen)
	}
	if a.savedPath != "" {
		t.Errorf("savedPath = %q, want empty (submission blocked)", a.savedPath)
	}
	if entries, err := os.ReadDir(a.outputDir); err == nil && len(entries) > 0 {
		t.Errorf("output dir has %d files, want none", len(entries))
	}
}

func TestResult_SubmitWritesPNG(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.updateShop("a")
	a = m.(App)
	m, _ = a.updateShop("c")
	a = m.(App)

	a.st = session.Reduce(a.st, session.SetReason{Text: "필요한 것만 샀습니다"})
	m, _ = a.updateResult("s")
	a = m.(App)

	if a.savedPath == "" {
		t.Fatal("savedPath empty after submit")
	}
	if _, err := os.Stat(a.savedPath); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}

func TestGuard_ResultWithoutMission(t *testing.T) {
	a := NewApp(appMissions, "products.csv", t.TempDir(), 30)
	a.width = 80
	a.height = 30
	a.st.Screen = session.ScreenResult // simulate a stale screen value

	m, _ := a.updateResult("b")
	a = m.(App)

	if a.st.Screen != session.ScreenMission {
		t.Errorf("Screen = %v, want mission (guard escape)", a.st.Screen)
	}
}
