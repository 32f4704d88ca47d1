package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jwhan/coinrush/internal/application/game"
	"github.com/jwhan/coinrush/internal/application/replay"
	"github.com/jwhan/coinrush/internal/application/scene/playing"
	"github.com/jwhan/coinrush/internal/application/state"
	"github.com/jwhan/coinrush/internal/application/system"
	"github.com/jwhan/coinrush/internal/infrastructure/config"
)

func main() {
	levelFlag := flag.String("level", "meadow", "Level to play")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	physCfg, err := loader.LoadPhysics()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var replayer *replay.Replayer
	levelName := *levelFlag
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		// A replay is only valid on the level it was recorded on.
		if replayer.Level() != "" {
			levelName = replayer.Level()
		}
		log.Printf("Replaying %s (%d frames)", *replayFlag, replayer.TotalFrames())
	}

	levelCfg, err := loader.LoadLevel(levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	level, err := system.LoadLevel(physCfg, levelCfg)
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}

	sess := state.NewSession(physCfg, level)
	playingScene := playing.New(physCfg, sess, *recordFlag, replayer)
	g := game.New(playingScene, physCfg.Display.ScreenWidth, physCfg.Display.ScreenHeight)

	ebiten.SetWindowSize(physCfg.Display.ScreenWidth*physCfg.Display.Scale,
		physCfg.Display.ScreenHeight*physCfg.Display.Scale)
	ebiten.SetWindowTitle("Coin Rush")
	ebiten.SetTPS(physCfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
