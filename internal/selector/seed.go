package selector

// DefaultSeed is the built-in collection used when the caller has no list
// of their own. New copies it, so callers may modify the returned slice.
func DefaultSeed() []string {
	return append([]string(nil), defaultShows...)
}

var defaultShows = []string{
	"The Sopranos",
	"Breaking Bad",
	"Oz",
	"Better Call Saul",
	"The Wire",
	"Game of Thrones",
	"House of Cards",
	"Boardwalk Empire",
	"Justified",
	"Dexter",
	"The Leftovers",
	"Homeland",
	"Rome",
	"Mad Men",
	"Sons of Anarchy",
	"Lost",
	"Hannibal",
	"Six Feet Under",
	"The Office",
	"MINDHUNTER",
	"Louie",
	"Deadwood",
	"Twin Peaks",
	"Person of Interest",
	"House",
	"True Detective",
	"Seinfeld",
	"Mr. Robot",
	"Silicon Valley",
	"Severance",
	"Fringe",
	"Curb Your Enthusiasm",
	"Succession",
	"The Americans",
	"Treme",
	"Fargo",
	"BoJack Horseman",
	"Narcos",
	"Atlanta",
	"Mr Inbetween",
	"The Crown",
	"Black Mirror",
	"Dark",
	"The Newsroom",
	"It's Always Sunny in Philadelphia",
	"Prison Break",
	"The White Lotus",
	"Fleabag",
	"Rick and Morty",
	"House of the Dragon",
}
