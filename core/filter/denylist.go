package filter

// CategoryDenylist holds the catver categories that never describe an
// arcade game.
var CategoryDenylist = []string{
	"Board Game",
	"Calculator",
	"Card Games",
	"Casino",
	"Computer",
	"Computer Graphic Workstation",
	"Digital Camera",
	"Digital Simulator",
	"Electromechanical",
	"Game",
	"Game Console",
	"Game Console/Computer",
	"Handheld",
	"Medical Equipment",
	"Misc.",
	"MultiGame",
	"Multiplay",
	"Music",
	"Player",
	"Printer",
	"Radio",
	"Rhythm",
	"Simulation",
	"Slot Machine",
	"System",
	"Tablet",
	"Tabletop",
	"Telephone",
	"Touchscreen",
	"TTL * Ball & Paddle",
	"TTL * Driving",
	"TTL * Maze",
	"TTL * Quiz",
	"TTL * Shooter",
	"TTL * Sports",
	"TV Bundle",
	"Utilities",
	"Watch",
}

var categoryDenylist = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CategoryDenylist))
	for _, c := range CategoryDenylist {
		set[c] = struct{}{}
	}
	return set
}()
