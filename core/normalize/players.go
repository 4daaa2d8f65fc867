package normalize

import "strings"

// UnknownPlayers is the value used when no player information exists.
const UnknownPlayers = "Unknown"

// playerModes translates nplayers tokens into readable descriptions.
var playerModes = map[string]string{
	"1P":         "Single-player game",
	"2P alt":     "Alternate two-player mode",
	"2P sim":     "Simultaneous two-player mode",
	"3P alt":     "Alternate three-player mode",
	"3P sim":     "Simultaneous three-player mode",
	"4P alt":     "Alternate four-player mode",
	"4P sim":     "Simultaneous four-player mode",
	"5P alt":     "Alternate five-player mode",
	"6P alt":     "Alternate six-player mode",
	"6P sim":     "Simultaneous six-player mode",
	"8P alt":     "Alternate eight-player mode",
	"8P sim":     "Simultaneous eight-player mode",
	"9P alt":     "Alternate nine-player mode",
	"???":        "Unknown or unspecified number of players",
	"BIOS":       "BIOS",
	"Device":     "Non-playable device",
	"Non-arcade": "Non-arcade game",
}

// Players turns a raw nplayers value such as "2P sim / 2P alt" into a
// comma-separated list of readable modes. Unknown tokens are kept as is.
func Players(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return UnknownPlayers
	}
	tokens := strings.Split(raw, "/")
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if mode, ok := playerModes[tok]; ok {
			tok = mode
		}
		tokens[i] = tok
	}
	return strings.Join(tokens, ", ")
}
