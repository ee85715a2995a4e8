package types

// ReanimType 动画播放模式
type ReanimType int

const (
	ReanimRepeat ReanimType = 0 // 循环播放
	ReanimOnce   ReanimType = 1 // 播放一次后停在最后一帧
)

// PlantReanimName 植物动画名（与数据表键名一致）
type PlantReanimName string

const (
	PlantAnimCharge            PlantReanimName = "anim_charge"
	PlantAnimUnarmedIdle       PlantReanimName = "anim_unarmed_idle"
	PlantAnimBlock             PlantReanimName = "anim_block"
	PlantAnimCrumble           PlantReanimName = "anim_crumble"
	PlantAnimLoop              PlantReanimName = "anim_loop"
	PlantAnimAttack            PlantReanimName = "anim_attack"
	PlantAnimShoot             PlantReanimName = "anim_shoot"
	PlantAnimIdle              PlantReanimName = "anim_idle"
	PlantAnimBigIdle           PlantReanimName = "anim_bigidle"
	PlantAnimScared            PlantReanimName = "anim_scared"
	PlantAnimScaredIdle        PlantReanimName = "anim_scaredidle"
	PlantAnimSleep             PlantReanimName = "anim_sleep"
	PlantAnimExplode           PlantReanimName = "anim_explode"
	PlantAnimGrow              PlantReanimName = "anim_grow"
	PlantAnimGlow              PlantReanimName = "anim_glow"
	PlantAnimArmed             PlantReanimName = "anim_armed"
	PlantAnimLand              PlantReanimName = "anim_land"
	PlantAnimBite              PlantReanimName = "anim_bite"
	PlantAnimChew              PlantReanimName = "anim_chew"
	PlantAnimSwallow           PlantReanimName = "anim_swallow"
	PlantAnimIdleHigh          PlantReanimName = "anim_idlehigh"
	PlantAnimLower             PlantReanimName = "anim_lower"
	PlantAnimRise              PlantReanimName = "anim_rise"
	PlantAnimLookLeft          PlantReanimName = "anim_lookleft"
	PlantAnimLookRight         PlantReanimName = "anim_lookright"
	PlantAnimJumpUp            PlantReanimName = "anim_jumpup"
	PlantAnimJumpDown          PlantReanimName = "anim_jumpdown"
	PlantAnimSplitPeaShooting  PlantReanimName = "anim_splitpea_shooting"
	PlantAnimNonactiveIdle2    PlantReanimName = "anim_nonactive_idle2"
	PlantAnimShooting          PlantReanimName = "anim_shooting"
	PlantAnimShootingHigh      PlantReanimName = "anim_shootinghigh"
)

// ZombieReanimName 僵尸动画名（与数据表键名一致）
type ZombieReanimName string

const (
	ZombieAnimSmash          ZombieReanimName = "anim_smash"
	ZombieAnimDolphinJump    ZombieReanimName = "anim_dolphinjump"
	ZombieAnimRide           ZombieReanimName = "anim_ride"
	ZombieAnimJumpInPool     ZombieReanimName = "anim_jumpinpool"
	ZombieAnimIdle           ZombieReanimName = "anim_idle"
	ZombieAnimGrab           ZombieReanimName = "anim_grab"
	ZombieAnimLadderWalk     ZombieReanimName = "anim_ladderwalk"
	ZombieAnimLadderEat      ZombieReanimName = "anim_laddereat"
	ZombieAnimWalkNoPaper    ZombieReanimName = "anim_walk_nopaper"
	ZombieAnimSwim           ZombieReanimName = "anim_swim"
	ZombieAnimUpToEat        ZombieReanimName = "anim_uptoeat"
	ZombieAnimDrill          ZombieReanimName = "anim_drill"
	ZombieAnimDizzy          ZombieReanimName = "anim_dizzy"
	ZombieAnimWalk2          ZombieReanimName = "anim_walk2"
	ZombieAnimWalk           ZombieReanimName = "anim_walk"
	ZombieAnimDance          ZombieReanimName = "anim_dance"
	ZombieAnimDrop           ZombieReanimName = "anim_drop"
	ZombieAnimRun            ZombieReanimName = "anim_run"
	ZombieAnimWalkDolphin    ZombieReanimName = "anim_walkdolphin"
	ZombieAnimDig            ZombieReanimName = "anim_dig"
	ZombieAnimDrive          ZombieReanimName = "anim_drive"
	ZombieAnimPogo           ZombieReanimName = "anim_pogo"
	ZombieAnimMoonwalk       ZombieReanimName = "anim_moonwalk"
	ZombieAnimRaise          ZombieReanimName = "anim_raise"
	ZombieAnimPop            ZombieReanimName = "anim_pop"
	ZombieAnimGasp           ZombieReanimName = "anim_gasp"
	ZombieAnimEat            ZombieReanimName = "anim_eat"
	ZombieAnimEatNoPaper     ZombieReanimName = "anim_eat_nopaper"
	ZombieAnimPoint          ZombieReanimName = "anim_point"
	ZombieAnimArmraise       ZombieReanimName = "anim_armraise"
	ZombieAnimWheelie1       ZombieReanimName = "anim_wheelie1"
	ZombieAnimWheelie2       ZombieReanimName = "anim_wheelie2"
	ZombieAnimBounce         ZombieReanimName = "anim_bounce"
	ZombieAnimDeath          ZombieReanimName = "anim_death"
	ZombieAnimDeath2         ZombieReanimName = "anim_death2"
	ZombieAnimSuperLongDeath ZombieReanimName = "anim_superlongdeath"
	ZombieAnimWaterDeath     ZombieReanimName = "anim_waterdeath"
	ZombieAnimThrow          ZombieReanimName = "anim_throw"
	ZombieAnimJump           ZombieReanimName = "anim_jump"
	ZombieAnimShoot          ZombieReanimName = "anim_shoot"
	ZombieAnimLand           ZombieReanimName = "anim_land"
	ZombieAnimLanding        ZombieReanimName = "anim_landing"
	ZombieAnimThrown         ZombieReanimName = "anim_thrown"
	ZombieAnimPlaceLadder    ZombieReanimName = "anim_placeladder"
)
