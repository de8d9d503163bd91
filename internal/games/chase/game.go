package chase

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-chomp/internal/config"
	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/registry"
)

// ghostColors are assigned to ghosts in spawn order, cycling.
var ghostColors = []core.Color{
	core.ColorRed,
	core.ColorCyan,
	core.ColorOrange,
	core.ColorPink,
}

// Game implements the maze-chase round: one player, a pack of ghosts,
// pellets, a power window, lives, and win/lose resolution.
type Game struct {
	cfg      config.ChaseConfig
	rng      *rand.Rand
	tick     uint64
	tickRate int

	maze      *Maze
	player    *Player
	ghosts    []*Ghost
	levelName string

	// powerTicks counts down the vulnerability window. Zero means closed.
	powerTicks    int
	powerDuration int

	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	screenW    int
	screenH    int

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
	loadErr  error
}

// Package-level variables set by CLI flags before Reset (breakout pattern).
var (
	configPath  string
	selectedMap string
)

// SetConfigPath sets the gameplay config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetMap selects the map by ID for the next Reset.
func SetMap(id string) {
	selectedMap = id
}

// New creates a new maze-chase game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chase", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chase"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Chase"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.tooSmall = false
	g.loadErr = nil
	g.powerTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	chaseCfg, err := config.LoadChase(configPath)
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}
	g.cfg = chaseCfg
	g.powerDuration = int(chaseCfg.Power.DurationSec * float64(g.tickRate))

	level := GetLevelByID(selectedMap)
	g.levelName = level.Name
	g.loadLevel(level.Layout)
}

// loadLevel parses the layout and spawns entities. Speeds in the config
// are tiles per second; the simulation runs in tiles per tick.
func (g *Game) loadLevel(layout []string) {
	maze, err := NewMaze(layout)
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}
	g.maze = maze

	requiredW := maze.Width + 2
	requiredH := maze.Height + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
	}
	g.mapOffsetX = (g.screenW - maze.Width) / 2
	g.mapOffsetY = g.hudHeight

	rate := float64(g.tickRate)
	g.player = NewPlayer(maze.PlayerStart, g.cfg.Speeds.Player/rate, g.cfg.Gameplay.Lives)

	speeds := ghostSpeeds{
		normal:     g.cfg.Speeds.Ghost / rate,
		vulnerable: g.cfg.Speeds.Vulnerable / rate,
		eaten:      g.cfg.Speeds.Eaten / rate,
	}
	g.ghosts = g.ghosts[:0]
	for i, spawn := range maze.GhostSpawns {
		color := ghostColors[i%len(ghostColors)]
		g.ghosts = append(g.ghosts, NewGhost(spawn, color, speeds, g.rng))
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	// Player moves first so pellet pickup and the power window apply
	// before ghosts decide their directions this tick.
	g.player.Advance(g.maze)
	pellets, power := g.player.CollectPellets(g.maze)
	g.player.Score += pellets * g.cfg.Scoring.Pellet
	g.player.Score += power * g.cfg.Scoring.PowerPellet

	if power > 0 {
		// A fresh power pellet restarts the window; it never stacks.
		g.powerTicks = g.powerDuration
		for _, gh := range g.ghosts {
			gh.SetVulnerable()
		}
	}

	playerTile := g.player.Tile()
	for _, gh := range g.ghosts {
		gh.Update(g.maze, playerTile, g.rng)
	}

	if g.powerTicks > 0 {
		g.powerTicks--
		if g.powerTicks == 0 {
			for _, gh := range g.ghosts {
				if gh.State == GhostVulnerable {
					gh.State = GhostNormal
				}
			}
		}
	}

	g.resolveCollisions()

	if !g.gameOver && g.maze.Cleared() {
		g.won = true
	}

	return core.StepResult{State: g.State()}
}

// processInput latches the desired direction onto the player.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.player.SetIntent(DirUp)
	case input.Has(core.ActionDown):
		g.player.SetIntent(DirDown)
	case input.Has(core.ActionLeft):
		g.player.SetIntent(DirLeft)
	case input.Has(core.ActionRight):
		g.player.SetIntent(DirRight)
	}
}

// resolveCollisions checks every ghost against the player's position at
// the end of the tick. The position is captured once so that every ghost
// is compared against the same point even after a life-loss reset.
func (g *Game) resolveCollisions() {
	px, py := g.player.X, g.player.Y
	radius := g.cfg.Gameplay.CollisionRadius

	for _, gh := range g.ghosts {
		if math.Hypot(gh.X-px, gh.Y-py) >= radius {
			continue
		}

		switch gh.State {
		case GhostVulnerable:
			gh.SetEaten()
			g.player.Score += g.cfg.Scoring.Capture
		case GhostEaten:
			// Harmless while returning home.
		default:
			g.loseLife()
			return
		}
	}
}

// loseLife decrements lives and either ends the game or resets all
// entities to their spawns. Pellets already eaten stay eaten.
func (g *Game) loseLife() {
	g.player.Lives--
	if g.player.Lives <= 0 {
		g.gameOver = true
		return
	}

	g.player.ResetTo(g.maze.PlayerStart)
	for _, gh := range g.ghosts {
		gh.ResetHome(g.rng)
	}
	g.powerTicks = 0
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.loadErr != nil:
		g.renderOverlay(dst, "Map failed to load", g.loadErr.Error())
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderGhosts(dst)
	g.renderPlayer(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.player.Score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	score, lives := 0, 0
	if g.player != nil {
		score, lives = g.player.Score, g.player.Lives
	}
	hud := fmt.Sprintf(" %s  |  Score: %d  Lives: %d", g.levelName, score, lives)
	if g.powerTicks > 0 {
		hud += fmt.Sprintf("  Power: %.1fs", float64(g.powerTicks)/float64(g.tickRate))
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls and the remaining pellets.
func (g *Game) renderMaze(dst *core.Screen) {
	for y := 0; y < g.maze.Height; y++ {
		for x := 0; x < g.maze.Width; x++ {
			p := Point{X: x, Y: y}
			sx, sy := g.mapOffsetX+x, g.mapOffsetY+y
			switch {
			case g.maze.IsWall(p):
				dst.SetCell(sx, sy, '█', core.ColorBlue)
			case g.maze.Pellets[p]:
				dst.Set(sx, sy, '·')
			case g.maze.PowerPellets[p]:
				dst.SetCell(sx, sy, '●', core.ColorBrightWhite)
			}
		}
	}
}

func (g *Game) renderGhosts(dst *core.Screen) {
	for _, gh := range g.ghosts {
		t := gh.Tile()
		sx, sy := g.mapOffsetX+t.X, g.mapOffsetY+t.Y
		switch gh.State {
		case GhostVulnerable:
			dst.SetCell(sx, sy, 'M', core.ColorGray)
		case GhostEaten:
			dst.SetCell(sx, sy, '"', core.ColorBrightWhite)
		default:
			dst.SetCell(sx, sy, 'M', gh.Color)
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	t := g.player.Tile()
	dst.SetCell(g.mapOffsetX+t.X, g.mapOffsetY+t.Y, '@', core.ColorBrightYellow)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.player != nil {
		score = g.player.Score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}
