package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/config"
	"github.com/decker502/pvzemu/pkg/game"
	"github.com/decker502/pvzemu/pkg/types"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	seed    = flag.Int64("seed", 1, "随机种子")
)

type scenario struct {
	name string
	run  func() error
}

var scenarios = []scenario{
	{"pea_shooter_fires", peaShooterFires},
	{"sunflower_round_trip", sunflowerRoundTrip},
	{"instant_kill_radius", instantKillRadius},
	{"gargantuar_two_cobs", gargantuarTwoCobs},
	{"crater_blocks_planting", craterBlocksPlanting},
	{"twin_sunflower_upgrade", twinSunflowerUpgrade},
	{"determinism", determinism},
	{"replay_round_trip", replayRoundTrip},
}

func main() {
	flag.Parse()

	failed := 0
	for _, sc := range scenarios {
		err := sc.run()
		if err != nil {
			failed++
			fmt.Printf("  ❌ %-26s %v\n", sc.name, err)
			continue
		}
		fmt.Printf("  ✅ %-26s\n", sc.name)
	}

	fmt.Printf("\n%d/%d scenarios passed\n", len(scenarios)-failed, len(scenarios))
	if failed > 0 {
		os.Exit(1)
	}
}

func newWorld(st types.SceneType) *game.World {
	w := game.New(st, *seed)
	w.SetDebug(*verbose)
	w.Scene().StopSpawn = true
	return w
}

// placeHitBox 移动僵尸使判定框左边缘位于 left、垂直中心位于 centerY
func placeHitBox(z *components.Zombie, left, centerY int) {
	r := z.HitBoxRect()
	dx, dy := left-r.X, centerY-(r.Y+r.Height/2)
	z.X += float64(dx)
	z.IntX += dx
	z.Y += float64(dy)
	z.IntY += dy
}

func peaShooterFires() error {
	w := newWorld(types.SceneDay)
	p := w.Plant(types.PlantPeaShooter, 2, 0)
	if p == nil {
		return fmt.Errorf("peashooter rejected")
	}
	p.Countdown.Generate = 0
	z := w.Spawn(types.ZombieBasic, 2, 700)
	z.DX = 0

	for i := 0; i < 40 && w.Scene().Projectiles.Len() == 0; i++ {
		w.Update()
	}

	projs := w.Snapshot().Projectiles
	if len(projs) != 1 {
		return fmt.Errorf("expected 1 projectile, got %d", len(projs))
	}
	if projs[0].Row != 2 || int(projs[0].X) <= p.X {
		return fmt.Errorf("unexpected projectile row=%d x=%.1f", projs[0].Row, projs[0].X)
	}
	if *verbose {
		log.Printf("[verify] pea fired at tick %d, x=%.1f", w.Scene().Clock, projs[0].X)
	}
	return nil
}

func sunflowerRoundTrip() error {
	w := newWorld(types.SceneNight)
	p := w.Plant(types.PlantSunflower, 2, 0)
	if p == nil {
		return fmt.Errorf("sunflower rejected")
	}
	w.Scene().Sun.Sun = 0

	w.Step(p.Countdown.Generate)
	if sun := w.Scene().Sun.Sun; sun != 25 {
		return fmt.Errorf("expected sun 25, got %d", sun)
	}
	if cd := p.Countdown.Generate; cd < 2350 || cd > 2500 {
		return fmt.Errorf("expected countdown in [2350, 2500], got %d", cd)
	}
	return nil
}

func instantKillRadius() error {
	w := newWorld(types.SceneDay)
	near := w.Spawn(types.ZombieBasic, 2, 600)
	far := w.Spawn(types.ZombieBasic, 2, 600)
	placeHitBox(near, 500, 280)
	placeHitBox(far, 550, 280)

	w.Systems().Damage.TakeInstantKill(2, 400, 280, 115, 1, false, types.AttackGround)

	if !near.IsDead {
		return fmt.Errorf("zombie at distance 100 survived with hp %d", near.HP)
	}
	if far.IsDead || far.HP != far.MaxHP {
		return fmt.Errorf("zombie at distance 150 was hit (hp %d)", far.HP)
	}
	return nil
}

func gargantuarTwoCobs() error {
	w := newWorld(types.SceneDay)
	z := w.Spawn(types.ZombieGargantuar, 2, 600)
	placeHitBox(z, 450, 280)

	damage := w.Systems().Damage
	damage.TakeInstantKill(2, 400, 280, 115, 1, false, types.AttackGround)
	if z.HP != 1200 {
		return fmt.Errorf("expected hp 1200 after first hit, got %d", z.HP)
	}
	damage.TakeInstantKill(2, 400, 280, 115, 1, false, types.AttackGround)
	if z.HP > 0 {
		return fmt.Errorf("expected hp <= 0 after second hit, got %d", z.HP)
	}
	return nil
}

func craterBlocksPlanting() error {
	w := newWorld(types.SceneDay)
	if w.AddGridItem(types.GridItemCrater, 1, 1) == nil {
		return fmt.Errorf("crater rejected")
	}
	if w.Plant(types.PlantPeaShooter, 1, 1) != nil {
		return fmt.Errorf("planted on a crater")
	}
	return nil
}

func twinSunflowerUpgrade() error {
	w := newWorld(types.SceneDay)
	base := w.Plant(types.PlantSunflower, 3, 3)
	if base == nil {
		return fmt.Errorf("sunflower rejected")
	}
	if w.Plant(types.PlantTwinSunflower, 3, 3) == nil {
		return fmt.Errorf("twin sunflower rejected over sunflower")
	}
	if !base.IsDead {
		return fmt.Errorf("sunflower not replaced")
	}
	if w.Plant(types.PlantTwinSunflower, 3, 4) != nil {
		return fmt.Errorf("twin sunflower planted on empty cell")
	}
	return nil
}

func determinism() error {
	run := func() (string, error) {
		w := game.New(types.SceneDay, *seed)
		for row := 0; row < 5; row++ {
			w.Plant(types.PlantPeaShooter, row, 0)
			w.Plant(types.PlantSunflower, row, 1)
		}
		w.Step(3000)
		return w.ToJSON()
	}

	a, err := run()
	if err != nil {
		return err
	}
	b, err := run()
	if err != nil {
		return err
	}
	if a != b {
		return fmt.Errorf("snapshots differ")
	}
	return nil
}

func replayRoundTrip() error {
	r := game.NewRecorder(types.SceneDay, *seed)
	actions := []config.ActionConfig{
		{Kind: config.ActionPlant, Type: "pea_shooter", Row: 2, Col: 0},
		{Kind: config.ActionSpawn, Type: "cone_head", Row: 2, X: 700},
	}
	for _, a := range actions {
		if err := r.Do(a); err != nil {
			return err
		}
		r.Step(200)
	}

	replayed, err := game.Replay(r.Recording())
	if err != nil {
		return err
	}
	a, err := r.World().ToJSON()
	if err != nil {
		return err
	}
	b, err := replayed.ToJSON()
	if err != nil {
		return err
	}
	if a != b {
		return fmt.Errorf("replayed snapshot differs")
	}
	return nil
}
