package currency

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFormatEnUSGrouping(t *testing.T) {
	f := NewFormatter([]string{"en-US"}, nil)

	got := f.Format(1234567.89)
	if got != "1,234,567.89" {
		t.Errorf("expected \"1,234,567.89\", got %q", got)
	}
}

func TestFormatDeDEGrouping(t *testing.T) {
	f := NewFormatter([]string{"de-DE"}, nil)

	got := f.Format(1234567.89)
	if got != "1.234.567,89" {
		t.Errorf("expected \"1.234.567,89\", got %q", got)
	}
}

func TestFormatAlwaysTwoDecimals(t *testing.T) {
	f := NewFormatter([]string{"en-US"}, nil)

	if got := f.Format(5); got != "5.00" {
		t.Errorf("expected \"5.00\", got %q", got)
	}
	if got := f.Format(0); got != "0.00" {
		t.Errorf("expected \"0.00\", got %q", got)
	}
}

func TestFallbackChainSkipsInvalidLocale(t *testing.T) {
	warnings := 0
	f := NewFormatter([]string{"!!", "en-US"}, func(format string, a ...interface{}) {
		warnings++
	})

	if f.Tag() != language.AmericanEnglish {
		t.Errorf("expected en-US tag, got %v", f.Tag())
	}
	if warnings != 1 {
		t.Errorf("expected 1 fallback warning, got %d", warnings)
	}
}

func TestFallbackChainExhaustedUsesNeutral(t *testing.T) {
	f := NewFormatter([]string{"!!"}, nil)

	if f.Tag() != language.Und {
		t.Errorf("expected neutral tag, got %v", f.Tag())
	}
}

func TestEmptyChainUsesDefault(t *testing.T) {
	f := NewFormatter(nil, nil)

	want := language.MustParse(DefaultLocaleChain[0])
	if f.Tag() != want {
		t.Errorf("expected %v, got %v", want, f.Tag())
	}
}
