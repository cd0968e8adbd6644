package correction

import (
	"strings"

	"github.com/AlexandreDecan/pcorr/domain/core"
)

// Func is the common signature of every correction procedure
type Func func(pv []float64, alpha float64, sortInput bool) (Threshold, error)

// Method pairs a display name with its procedure
type Method struct {
	Name    string
	Fn      Func
	adjust  adjustFunc
	aliases []string
}

// Display names, in report order
const (
	NameNone              = "None"
	NameBonferroni        = "Bonferroni"
	NameHolm              = "Holm"
	NameHochberg          = "Hochberg"
	NameBenjaminiHochberg = "Benjamini-Hochberg"
)

var methods = []Method{
	{Name: NameNone, Fn: NoCorrection, adjust: adjustNone, aliases: []string{"none", "uncorrected", "no-correction"}},
	{Name: NameBonferroni, Fn: Bonferroni, adjust: adjustBonferroni, aliases: []string{"bonferroni"}},
	{Name: NameHolm, Fn: Holm, adjust: adjustHolm, aliases: []string{"holm"}},
	{Name: NameHochberg, Fn: Hochberg, adjust: adjustHochberg, aliases: []string{"hochberg"}},
	{Name: NameBenjaminiHochberg, Fn: BenjaminiHochberg, adjust: adjustBH, aliases: []string{"benjamini-hochberg", "bh", "fdr"}},
}

// Methods returns the closed set of procedures in report order
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// Names returns the display names in report order
func Names() []string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.Name
	}
	return names
}

// Lookup resolves a display name or alias, case-insensitively
func Lookup(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, m := range methods {
		if strings.ToLower(m.Name) == key {
			return m, nil
		}
		for _, alias := range m.aliases {
			if alias == key {
				return m, nil
			}
		}
	}
	return Method{}, core.NewUnknownMethodError(name)
}
