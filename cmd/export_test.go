package cmd

import (
	"testing"

	"jangbogo/internal/session"
)

func TestParseItems(t *testing.T) {
	items, err := parseItems([]string{"사과=1500", "우유=2,500"})
	if err != nil {
		t.Fatalf("parseItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Name != "사과" || items[0].Price != 1500 {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Price != 2500 {
		t.Errorf("items[1].Price = %d, want 2500 (comma-grouped)", items[1].Price)
	}
}

func TestParseItems_Malformed(t *testing.T) {
	for _, spec := range []string{"사과", "=1500", "사과=abc"} {
		if _, err := parseItems([]string{spec}); err == nil {
			t.Errorf("parseItems(%q) succeeded, want error", spec)
		}
	}
}

func TestFindMission(t *testing.T) {
	missions := []session.Mission{
		{Label: "절약형 장보기 (예산 10,000원)", Budget: 10000},
	}

	m, err := findMission(missions, "절약형 장보기 (예산 10,000원)")
	if err != nil {
		t.Fatalf("findMission: %v", err)
	}
	if m.Budget != 10000 {
		t.Errorf("Budget = %d, want 10000", m.Budget)
	}

	if _, err := findMission(missions, "없는 미션"); err == nil {
		t.Error("findMission succeeded for unknown label, want error")
	}
}
