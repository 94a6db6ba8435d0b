package pokeapi

// Pokemon mirrors the subset of /pokemon/{name} this application reads.
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Types     []TypeSlot    `json:"types"`
	Abilities []AbilitySlot `json:"abilities"`
	Sprites   Sprites       `json:"sprites"`
	Stats     []StatEntry   `json:"stats"`
}

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type AbilitySlot struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// Sprites holds image URLs; any of them may be null upstream.
type Sprites struct {
	FrontDefault *string      `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

type OtherSprites struct {
	OfficialArtwork SpriteSet `json:"official-artwork"`
}

type SpriteSet struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
}
