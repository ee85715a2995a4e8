package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/decker502/pvzemu/pkg/config"
	"github.com/decker502/pvzemu/pkg/game"
)

var (
	configPath = flag.String("config", "data/simulation.yaml", "模拟配置文件路径")
	quiet      = flag.Bool("quiet", false, "不输出最终快照")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadSimulationConfig(*configPath)
	if err != nil {
		log.Fatalf("[Main] Failed to load config: %v", err)
	}

	rec := game.NewRecorder(cfg.SceneType(), cfg.Seed)
	w := rec.World()
	w.SetDebug(cfg.Debug)

	log.Printf("[Main] Running %s (seed=%d) for %d ticks with %d actions",
		cfg.Scene, cfg.Seed, cfg.Ticks, len(cfg.Actions))

	failed, err := rec.RunScript(cfg.Actions, cfg.Ticks)
	if err != nil {
		log.Fatalf("[Main] Script failed: %v", err)
	}
	if failed > 0 {
		log.Printf("[Main] %d action(s) rejected", failed)
	}
	if err := w.Err(); err != nil {
		log.Fatalf("[Main] World corrupted: %v", err)
	}
	if w.Scene().IsGameOver {
		log.Printf("[Main] Zombies reached the house at tick %d", w.Scene().Clock)
	}

	if cfg.Replay.Name != "" {
		saveReplay(cfg.Replay, rec.Recording())
	}

	if *quiet {
		return
	}
	out, err := w.ToJSON()
	if err != nil {
		log.Fatalf("[Main] Failed to serialize snapshot: %v", err)
	}
	fmt.Println(out)
}

// saveReplay 保存录像，存储不可用时只记录警告
func saveReplay(rc config.ReplayConfig, rec *game.Recording) {
	store, err := game.OpenReplayStore(rc.AppName)
	if err != nil {
		log.Printf("[Main] Warning: %v", err)
		return
	}
	if err := store.Save(rc.Name, rec); err != nil {
		log.Printf("[Main] Warning: Failed to save replay %s: %v", rc.Name, err)
		return
	}
	log.Printf("[Main] Replay %s saved (%d actions, %d ticks)", rc.Name, len(rec.Actions), rec.Ticks)
}
