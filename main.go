package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/automoto/sweeper/assets"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/scenes"
	"github.com/automoto/sweeper/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	appName    = "sweeper"
	sampleRate = 44100
	windowZoom = 3
)

var backgroundColor = color.RGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff}

type Game struct {
	scene *scenes.Scene
	clock scenes.FrameClock

	paused    bool
	prevPause bool
}

func NewGame(level string, store systems.ItemStore) (*Game, error) {
	g, err := assets.LoadLevel(level)
	if err != nil {
		return nil, err
	}

	sfx := assets.NewSFXPlayer(audio.NewContext(sampleRate))
	sfx.Preload()

	scene, err := scenes.NewScene(g, scenes.Options{
		Permanent: systems.LoadPermanentState(store),
		Store:     store,
		Sound:     sfx.Play,
	})
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", level, err)
	}
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	buttons := systems.PollButtons()

	pause := buttons&cfg.ButtonPause != 0
	if pause && !g.prevPause {
		g.paused = !g.paused
	}
	g.prevPause = pause

	elapsed, ok := g.clock.Step(time.Now())
	if !ok || g.paused {
		return nil
	}
	g.scene.Update(elapsed, buttons&^cfg.ButtonPause)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	canvas := systems.NewScreenCanvas(screen, g.scene.Camera())
	g.scene.Render(canvas)

	if hero := g.scene.Hero(); hero != nil {
		systems.DrawHUD(screen, systems.HUDStatus{
			Selected: hero.SelectedItem(),
			Active:   hero.Item() != "",
			Deaths:   hero.Deaths,
		})
	}
	if cfg.Debug.Hitboxes {
		systems.DrawDebug(canvas, g.scene, g.scene.Terrain())
	}
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(cfg.Camera.Width)/2-18, int(cfg.Camera.Height)/2-8)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(cfg.Camera.Width), int(cfg.Camera.Height)
}

func main() {
	level := flag.String("level", cfg.Debug.Level, "Level to start")
	debug := flag.Bool("debug", cfg.Debug.Hitboxes, "Draw hit-boxes and the terrain probe space")
	list := flag.Bool("list", false, "List bundled levels and exit")
	flag.Parse()

	if *list {
		names, err := assets.LevelNames()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(strings.Join(names, "\n"))
		return
	}

	cfg.Debug.Level = *level
	cfg.Debug.Hitboxes = *debug

	game, err := NewGame(cfg.Debug.Level, systems.OpenStore(appName))
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.Camera.Width)*windowZoom, int(cfg.Camera.Height)*windowZoom)
	ebiten.SetWindowTitle(appName)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
