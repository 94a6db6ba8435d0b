// Package species holds the display-ready projection of a single Pokémon
// lookup and the text block the shells render from it.
package species

// Stat keys as they appear in the upstream stats list.
const (
	StatKeyHP             = "hp"
	StatKeyAttack         = "attack"
	StatKeyDefense        = "defense"
	StatKeySpecialAttack  = "special-attack"
	StatKeySpecialDefense = "special-defense"
	StatKeySpeed          = "speed"
)

// StatLabel pairs a display label with the upstream stat key.
type StatLabel struct {
	Label string
	Key   string
}

// StatLabels lists the six fixed stats in display order.
var StatLabels = []StatLabel{
	{Label: "HP", Key: StatKeyHP},
	{Label: "Attack", Key: StatKeyAttack},
	{Label: "Defense", Key: StatKeyDefense},
	{Label: "Special Attack", Key: StatKeySpecialAttack},
	{Label: "Special Defense", Key: StatKeySpecialDefense},
	{Label: "Speed", Key: StatKeySpeed},
}

// Stat is one fixed stat. Value is nil when the source omitted it.
type Stat struct {
	Label string
	Key   string
	Value *int
}

// Record is the flat projection of one API response.
type Record struct {
	Name      string
	Index     int
	Height    string
	Weight    string
	Types     []string
	Abilities []string
	ImageURL  string
	Stats     []Stat
}

// NewStats builds the six fixed stats from a key→value map. Keys missing from
// values produce a nil Value.
func NewStats(values map[string]int) []Stat {
	stats := make([]Stat, 0, len(StatLabels))
	for _, sl := range StatLabels {
		stat := Stat{Label: sl.Label, Key: sl.Key}
		if v, ok := values[sl.Key]; ok {
			v := v
			stat.Value = &v
		}
		stats = append(stats, stat)
	}
	return stats
}

// Stat returns the stat with the given display label.
func (r *Record) Stat(label string) (Stat, bool) {
	for _, s := range r.Stats {
		if s.Label == label {
			return s, true
		}
	}
	return Stat{}, false
}
