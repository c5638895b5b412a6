package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1500, "1,500"},
		{10000, "10,000"},
		{1234567, "1,234,567"},
		{-2000, "-2,000"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatWon(t *testing.T) {
	if got := FormatWon(10000); got != "10,000원" {
		t.Errorf("FormatWon(10000) = %q, want 10,000원", got)
	}
	if got := FormatWon(0); got != "0원" {
		t.Errorf("FormatWon(0) = %q, want 0원", got)
	}
}
