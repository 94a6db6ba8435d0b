package species

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MissingStat is rendered for a stat the source omitted.
const MissingStat = "N/A"

// Meters formats a height given in tenths of a meter, e.g. 10 -> "1.0 m".
func Meters(tenths int) string {
	return formatTenths(tenths) + " m"
}

// Kilograms formats a weight given in tenths of a kilogram, e.g. 60 -> "6.0 kg".
func Kilograms(tenths int) string {
	return formatTenths(tenths) + " kg"
}

func formatTenths(v int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// AbilityName turns an upstream slug into a display name: "solar-power" -> "Solar Power".
func AbilityName(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

// Format renders the multi-line text block shown next to the artwork.
func Format(r *Record) string {
	if r == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", r.Name)
	fmt.Fprintf(&sb, "Pokédex #: %d\n", r.Index)
	fmt.Fprintf(&sb, "Height: %s\n", r.Height)
	fmt.Fprintf(&sb, "Weight: %s\n\n", r.Weight)
	fmt.Fprintf(&sb, "Types: %s\n", strings.Join(r.Types, ", "))
	fmt.Fprintf(&sb, "Abilities: %s\n\n", strings.Join(r.Abilities, ", "))
	sb.WriteString("Stats:")
	for _, s := range r.Stats {
		value := MissingStat
		if s.Value != nil {
			value = fmt.Sprintf("%d", *s.Value)
		}
		fmt.Fprintf(&sb, "\n%s: %s", s.Label, value)
	}
	return sb.String()
}
