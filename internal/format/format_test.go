package format

import "testing"

func TestCurrency(t *testing.T) {
	cases := []struct {
		minor int64
		cur   string
		want  string
	}{
		{9900, "BRL", "R$ 99,00"},
		{4990, "brl", "R$ 49,90"},
		{123456, "BRL", "R$ 1.234,56"},
		{5, "BRL", "R$ 0,05"},
		{-19900, "BRL", "-R$ 199,00"},
		{123456789, "USD", "$1,234,567.89"},
		{1500, "JPY", "JPY 1,500"},
	}
	for _, c := range cases {
		if got := Currency(c.minor, c.cur); got != c.want {
			t.Fatalf("Currency(%d, %s) = %q, want %q", c.minor, c.cur, got, c.want)
		}
	}
}

func TestPriceParts(t *testing.T) {
	whole, cents := PriceParts(19900, "BRL")
	if whole != "R$ 199" || cents != ",00" {
		t.Fatalf("got %q %q", whole, cents)
	}
	whole, cents = PriceParts(1500, "JPY")
	if whole != "JPY 1,500" || cents != "" {
		t.Fatalf("got %q %q", whole, cents)
	}
}
