package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocaleChain é a cadeia de fallback padrão: alemão (os valores são
// CHF), depois inglês americano. O último recurso é o locale neutro.
var DefaultLocaleChain = []string{"de-CH", "en-US"}

// Formatter formats monetary amounts with locale-aware thousands grouping
// and exactly two decimal digits. It is a pure value: no process-wide locale
// state is touched, and two Formatters with different chains can coexist.
type Formatter struct {
	printer *message.Printer
	tag     language.Tag
}

// NewFormatter builds a Formatter from the first parseable locale in chain.
// Rejected entries are reported through warn; when the whole chain is
// exhausted the language-neutral root locale is used. A nil warn disables
// the fallback diagnostics.
func NewFormatter(chain []string, warn func(format string, a ...interface{})) *Formatter {
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	if len(chain) == 0 {
		chain = DefaultLocaleChain
	}

	tag := language.Und
	for i, candidate := range chain {
		parsed, err := language.Parse(candidate)
		if err != nil {
			if i+1 < len(chain) {
				warn("Locale '%s' not available. Using '%s' for formatting.", candidate, chain[i+1])
			} else {
				warn("Locale '%s' not available. Using default locale for formatting.", candidate)
			}
			continue
		}
		tag = parsed
		break
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		tag:     tag,
	}
}

// Format renders the amount with grouping and two decimal digits, e.g.
// "1,234,567.89" under en-US.
func (f *Formatter) Format(amount float64) string {
	return f.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Tag devolve o locale em que o Formatter se fixou.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}
