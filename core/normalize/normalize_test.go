package normalize

import (
	"testing"

	"arcade-catalog/core/catalog"

	"github.com/stretchr/testify/assert"
)

func TestManufacturer(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Midway (licensed from Namco)", "Midway"},
		{"Namco", "Namco"},
		{"Sega / Gremlin", "Sega"},
		{"Midway Games, Inc.", "Midway"},
		{"Taito America Corporation", "Taito"},
		{"Konami of America", "Konami"},
		{"Capcom Co., Ltd.", "Capcom"},
		{"<unknown>", "Unknown"},
		{"bootleg?", "bootleg"},
		{"Nintendo", "Nintendo"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Manufacturer(tt.raw))
		})
	}
}

func TestManufacturer_Idempotent(t *testing.T) {
	inputs := []string{
		"Midway (licensed from Namco)",
		"Atari Games Corp.",
		"Williams Electronics Games, Inc.",
		"Sega of America, Inc. / Gremlin",
		"Data East USA",
		"S.A. of Co Inc Ltd",
		"Games Games Games",
		"Konami Industries Co. Ltd. -",
		"<unknown>",
		"???",
		", , ,",
	}
	for _, in := range inputs {
		once := Manufacturer(in)
		assert.Equal(t, once, Manufacturer(once), "input %q", in)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Pac-Man", DisplayName("Pac-Man (Midway)"))
	assert.Equal(t, "Tom & Jerry", DisplayName("tom &amp; jerry"))
	assert.Equal(t, "Who Dunit", DisplayName("Who Dunit? (version 1.2)"))
	assert.Equal(t, "Street Fighter II: The World Warrior", DisplayName("street fighter II: the World Warrior"))
	assert.Equal(t, "", DisplayName(""))
}

func TestPlayers(t *testing.T) {
	assert.Equal(t, "Simultaneous two-player mode, Alternate two-player mode", Players("2P sim / 2P alt"))
	assert.Equal(t, "Single-player game", Players("1P"))
	assert.Equal(t, "Unknown or unspecified number of players", Players("???"))
	assert.Equal(t, "Non-playable device", Players("Device"))
	assert.Equal(t, "7P weird, Single-player game", Players("7P weird/1P"))
	assert.Equal(t, UnknownPlayers, Players(""))
}

func TestYear(t *testing.T) {
	assert.Equal(t, "Unknown", Year("198?"))
	assert.Equal(t, "1981", Year("1981"))
	assert.Equal(t, "", Year(""))
}

func TestApply(t *testing.T) {
	s := catalog.NewStore()
	m := s.Create("pacman")
	m.Description = "Pac-Man (Midway)"
	m.Manufacturer = "Namco (Midway license)"
	m.Players = "2P alt"
	m.Year = "1980"
	s.Create("blank")

	assert.Equal(t, 2, Apply(s))
	assert.Equal(t, catalog.Derived{
		Name:         "Pac-Man",
		Manufacturer: "Namco",
		Players:      "Alternate two-player mode",
		Year:         "1980",
	}, m.Derived)

	blank, _ := s.Get("blank")
	assert.Equal(t, UnknownPlayers, blank.Derived.Players)
	assert.Empty(t, blank.Derived.Manufacturer)

	// Second run leaves derived values unchanged.
	before := m.Derived
	Apply(s)
	assert.Equal(t, before, m.Derived)
	assert.Equal(t, "Namco (Midway license)", m.Manufacturer)
}
