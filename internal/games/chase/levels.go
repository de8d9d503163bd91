package chase

// Level is a named maze layout selectable from the menu or the --map flag.
type Level struct {
	ID     string
	Name   string
	Layout []string
}

// Levels holds the built-in maps. Layouts use the legend documented on
// NewMaze. Every floor cell is reachable from the player spawn.
var Levels = []Level{
	{
		ID:   "classic",
		Name: "Classic",
		Layout: []string{
			"#########################",
			"#P...........#..........#",
			"#.###.#####.###.#####.#.#",
			"#o#.......#.....#.....#o#",
			"#.#.#####.#####.#.#####.#",
			"#...#...................#",
			"#.###.##.#########.##.#.#",
			"#.....#......H.....#..#.#",
			"#.#####.####...####.##..#",
			"#.....#.R..C.C..R...#...#",
			"#.###.#.##########.##.#.#",
			"#.#...#.....#......#..#.#",
			"#.#.#####.#.#.####.#.##.#",
			"#o........#....#......#o#",
			"#########################",
		},
	},
	{
		ID:   "compact",
		Name: "Compact",
		Layout: []string{
			"###################",
			"#P.......#.......o#",
			"#.##.###.#.###.##.#",
			"#.................#",
			"#.##.#.#####.#.##.#",
			"#....#...H...#....#",
			"#.##.#.#C.R#.#.##.#",
			"#.##.#.#####.#.##.#",
			"#....#.......#....#",
			"#.##.###.#.###.##.#",
			"#o.......#.......o#",
			"###################",
		},
	},
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index, clamped into range.
func GetLevel(index int) Level {
	if index < 0 {
		index = 0
	}
	if index >= len(Levels) {
		index = len(Levels) - 1
	}
	return Levels[index]
}

// GetLevelByID returns the level with the given ID, or the first level
// if no such ID exists.
func GetLevelByID(id string) Level {
	for _, l := range Levels {
		if l.ID == id {
			return l
		}
	}
	return Levels[0]
}

// LevelNames returns the display names in order, for menus.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, l := range Levels {
		names[i] = l.Name
	}
	return names
}
