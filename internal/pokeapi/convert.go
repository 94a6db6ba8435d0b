package pokeapi

import (
	"github.com/pokeapi-desk/pokemon-viewer/internal/species"
)

func pokemonToRecord(p *Pokemon) *species.Record {
	if p == nil {
		return nil
	}

	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, species.Capitalize(t.Type.Name))
	}

	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, species.AbilityName(a.Ability.Name))
	}

	stats := make(map[string]int, len(p.Stats))
	for _, s := range p.Stats {
		stats[s.Stat.Name] = s.BaseStat
	}

	return &species.Record{
		Name:      species.Capitalize(p.Name),
		Index:     p.ID,
		Height:    species.Meters(p.Height),
		Weight:    species.Kilograms(p.Weight),
		Types:     types,
		Abilities: abilities,
		ImageURL:  artworkURL(p.Sprites),
		Stats:     species.NewStats(stats),
	}
}

// artworkURL prefers the official artwork and falls back to the default sprite.
func artworkURL(s Sprites) string {
	if u := s.Other.OfficialArtwork.FrontDefault; u != nil && *u != "" {
		return *u
	}
	if s.FrontDefault != nil {
		return *s.FrontDefault
	}
	return ""
}
