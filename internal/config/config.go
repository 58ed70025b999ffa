package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// World holds world-generation and scenery collision parameters.
type World struct {
	Size          float64 `yaml:"size"` // half-width of the square arena
	WallBlockSize float64 `yaml:"wall_block_size"`
	TreeSize      float64 `yaml:"tree_size"`
	ShrubSize     float64 `yaml:"shrub_size"`
	RockSize      float64 `yaml:"rock_size"`
	Trees         int     `yaml:"trees"`
	Rocks         int     `yaml:"rocks"`
	Shrubs        int     `yaml:"shrubs"`
	RandomWalls   int     `yaml:"random_walls"`
	CellSize      float64 `yaml:"cell_size"`
}

// Player holds warrior movement, physics and ability tuning.
type Player struct {
	MaxHealth        int           `yaml:"max_health"`
	MoveSpeed        float64       `yaml:"move_speed"`     // units/s
	VerticalSpeed    float64       `yaml:"vertical_speed"` // units/s
	GroundHeight     float64       `yaml:"ground_height"`
	Radius           float64       `yaml:"radius"`
	JumpStrength     float64       `yaml:"jump_strength"` // units/s
	Gravity          float64       `yaml:"gravity"`       // units/s²
	ShieldDuration   time.Duration `yaml:"shield_duration"`
	ShieldMaxAlpha   float64       `yaml:"shield_max_alpha"`
	ShieldFadeRate   float64       `yaml:"shield_fade_rate"` // alpha/s
	BlastPose        time.Duration `yaml:"blast_pose"`
	ShieldPose       time.Duration `yaml:"shield_pose"`
	RunAnimationRate float64       `yaml:"run_animation_rate"` // rad/s
	SpawnClearance   float64       `yaml:"spawn_clearance"`
	SpawnRange       float64       `yaml:"spawn_range"` // fraction of world size
}

// Projectile holds player blast tuning.
type Projectile struct {
	Speed     float64       `yaml:"speed"`
	Lifetime  time.Duration `yaml:"lifetime"`
	HitRadius float64       `yaml:"hit_radius"`
	Damage    int           `yaml:"damage"`
}

// Dragon holds dragon health, movement and AI tuning.
type Dragon struct {
	MaxHealth         int           `yaml:"max_health"`
	RespawnDelay      time.Duration `yaml:"respawn_delay"`
	OrbitRadius       float64       `yaml:"orbit_radius"`
	OrbitAltitude     float64       `yaml:"orbit_altitude"`
	OrbitSpeed        float64       `yaml:"orbit_speed"` // rad/s
	FlipChance        float64       `yaml:"flip_chance"` // per tick
	CruiseSpeed       float64       `yaml:"cruise_speed"`
	EvadeSpeed        float64       `yaml:"evade_speed"`
	EvadeRadius       float64       `yaml:"evade_radius"`
	EvadeDuration     time.Duration `yaml:"evade_duration"`
	EvadeClimb        float64       `yaml:"evade_climb"`
	EvadeSideOffset   float64       `yaml:"evade_side_offset"`
	YawBlend          float64       `yaml:"yaw_blend"` // per 1/60 s
	AttackCooldownMin time.Duration `yaml:"attack_cooldown_min"`
	AttackCooldownMax time.Duration `yaml:"attack_cooldown_max"`
	RespawnAltMin     float64       `yaml:"respawn_alt_min"`
	RespawnAltMax     float64       `yaml:"respawn_alt_max"`
	JawOpen           float64       `yaml:"jaw_open"`  // degrees
	JawClose          float64       `yaml:"jaw_close"` // degrees/s
	NeckForward       float64       `yaml:"neck_forward"`
	NeckUp            float64       `yaml:"neck_up"`
	StartX            float64       `yaml:"start_x"`
	StartY            float64       `yaml:"start_y"`
	StartZ            float64       `yaml:"start_z"`
}

// Fireball holds dragon attack tuning.
type Fireball struct {
	Speed             float64       `yaml:"speed"`
	Gravity           float64       `yaml:"gravity"`
	Lifetime          time.Duration `yaml:"lifetime"`
	Size              float64       `yaml:"size"`
	HitRadius         float64       `yaml:"hit_radius"`
	DirectDamage      int           `yaml:"direct_damage"`
	ExplosionDuration time.Duration `yaml:"explosion_duration"`
	SplashRadius      float64       `yaml:"splash_radius"`
	SplashDamage      int           `yaml:"splash_damage"`
	EmberChance       float64       `yaml:"ember_chance"`
}

// Ember holds cosmetic fireball trail tuning.
type Ember struct {
	Lifetime time.Duration `yaml:"lifetime"`
	Inherit  float64       `yaml:"inherit"` // share of fireball velocity
	Jitter   float64       `yaml:"jitter"`  // units/s per axis
	Gravity  float64       `yaml:"gravity"`
}

// Bomb holds ground hazard tuning.
type Bomb struct {
	Count             int           `yaml:"count"`
	TriggerRadius     float64       `yaml:"trigger_radius"`
	Fuse              time.Duration `yaml:"fuse"`
	ExplosionDuration time.Duration `yaml:"explosion_duration"`
	MaxRadius         float64       `yaml:"max_radius"`
	SplashDamage      int           `yaml:"splash_damage"`
	Height            float64       `yaml:"height"`
}

// Heart holds healing pickup tuning.
type Heart struct {
	Count         int     `yaml:"count"`
	TriggerRadius float64 `yaml:"trigger_radius"`
	HealAmount    int     `yaml:"heal_amount"`
	Height        float64 `yaml:"height"`
}

// Wall holds temporary blocking wall tuning.
type Wall struct {
	CheckInterval time.Duration `yaml:"check_interval"`
	SpawnChance   float64       `yaml:"spawn_chance"`
	Distance      float64       `yaml:"distance"`
	Lifetime      time.Duration `yaml:"lifetime"`
	Segments      int           `yaml:"segments"`
}

// Game holds all configuration for a warrior-vs-dragon session.
type Game struct {
	LogLevel    string        `yaml:"log_level"`
	TickRate    int           `yaml:"tick_rate"` // ticks per second
	MaxTickStep time.Duration `yaml:"max_tick_step"`
	Seed        uint64        `yaml:"seed"` // 0 = seed from wall clock
	DragonCount int           `yaml:"dragon_count"`

	World      World      `yaml:"world"`
	Player     Player     `yaml:"player"`
	Projectile Projectile `yaml:"projectile"`
	Dragon     Dragon     `yaml:"dragon"`
	Fireball   Fireball   `yaml:"fireball"`
	Ember      Ember      `yaml:"ember"`
	Bomb       Bomb       `yaml:"bomb"`
	Heart      Heart      `yaml:"heart"`
	Wall       Wall       `yaml:"wall"`
}

// DefaultGame returns Game config with the tuned defaults.
// Per-frame values of the reference build (~60 Hz) are converted to per-second.
func DefaultGame() Game {
	return Game{
		LogLevel:    "info",
		TickRate:    60,
		MaxTickStep: 100 * time.Millisecond,
		DragonCount: 1,
		World: World{
			Size:          100,
			WallBlockSize: 1.5,
			TreeSize:      1.0,
			ShrubSize:     2.0,
			RockSize:      1.0,
			Trees:         150,
			Rocks:         70,
			Shrubs:        800,
			RandomWalls:   30,
			CellSize:      8,
		},
		Player: Player{
			MaxHealth:        100,
			MoveSpeed:        12,
			VerticalSpeed:    12,
			GroundHeight:     1.0,
			Radius:           0.5,
			JumpStrength:     42,
			Gravity:          90,
			ShieldDuration:   5 * time.Second,
			ShieldMaxAlpha:   0.6,
			ShieldFadeRate:   3,
			BlastPose:        500 * time.Millisecond,
			ShieldPose:       667 * time.Millisecond,
			RunAnimationRate: 9,
			SpawnClearance:   2.0,
			SpawnRange:       0.8,
		},
		Projectile: Projectile{
			Speed:     150,
			Lifetime:  2 * time.Second,
			HitRadius: 3.1623, // √10
			Damage:    10,
		},
		Dragon: Dragon{
			MaxHealth:         150,
			RespawnDelay:      5 * time.Second,
			OrbitRadius:       40,
			OrbitAltitude:     30,
			OrbitSpeed:        0.6,
			FlipChance:        0.01,
			CruiseSpeed:       6,
			EvadeSpeed:        12,
			EvadeRadius:       10,
			EvadeDuration:     2 * time.Second,
			EvadeClimb:        10,
			EvadeSideOffset:   20,
			YawBlend:          0.05,
			AttackCooldownMin: 2 * time.Second,
			AttackCooldownMax: 4 * time.Second,
			RespawnAltMin:     30,
			RespawnAltMax:     50,
			JawOpen:           25,
			JawClose:          50,
			NeckForward:       3.0,
			NeckUp:            3.5,
			StartX:            0,
			StartY:            30,
			StartZ:            -30,
		},
		Fireball: Fireball{
			Speed:             25,
			Gravity:           9.8,
			Lifetime:          5 * time.Second,
			Size:              1.0,
			HitRadius:         2.0,
			DirectDamage:      20,
			ExplosionDuration: time.Second,
			SplashRadius:      6.0,
			SplashDamage:      10,
			EmberChance:       0.8,
		},
		Ember: Ember{
			Lifetime: 800 * time.Millisecond,
			Inherit:  0.1,
			Jitter:   12,
			Gravity:  4.9,
		},
		Bomb: Bomb{
			Count:             5,
			TriggerRadius:     5.0,
			Fuse:              time.Second,
			ExplosionDuration: 1500 * time.Millisecond,
			MaxRadius:         15.0,
			SplashDamage:      25,
			Height:            0.5,
		},
		Heart: Heart{
			Count:         3,
			TriggerRadius: 2.0,
			HealAmount:    25,
			Height:        1.0,
		},
		Wall: Wall{
			CheckInterval: 5 * time.Second,
			SpawnChance:   0.40,
			Distance:      10,
			Lifetime:      8 * time.Second,
			Segments:      3,
		},
	}
}

// TickInterval returns the runner period derived from TickRate.
func (g Game) TickInterval() time.Duration {
	if g.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(g.TickRate)
}

// Validate checks values the simulation divides by or loops over.
func (g Game) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positiveDur := func(name string, d time.Duration) {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, d))
		}
	}

	positive("world.size", g.World.Size)
	positive("world.wall_block_size", g.World.WallBlockSize)
	positive("world.cell_size", g.World.CellSize)
	positive("player.max_health", float64(g.Player.MaxHealth))
	positive("dragon.max_health", float64(g.Dragon.MaxHealth))
	positive("dragon_count", float64(g.DragonCount))
	positive("tick_rate", float64(g.TickRate))
	positiveDur("player.shield_duration", g.Player.ShieldDuration)
	positiveDur("fireball.explosion_duration", g.Fireball.ExplosionDuration)
	positiveDur("bomb.explosion_duration", g.Bomb.ExplosionDuration)
	positiveDur("wall.check_interval", g.Wall.CheckInterval)
	positive("wall.segments", float64(g.Wall.Segments))
	if g.Dragon.AttackCooldownMax < g.Dragon.AttackCooldownMin {
		errs = append(errs, fmt.Errorf("dragon.attack_cooldown_max (%v) < attack_cooldown_min (%v)",
			g.Dragon.AttackCooldownMax, g.Dragon.AttackCooldownMin))
	}
	if g.Bomb.Count < 0 || g.Heart.Count < 0 {
		errs = append(errs, errors.New("bomb.count and heart.count must not be negative"))
	}

	return errors.Join(errs...)
}

// LoadGame loads game config from a YAML file on top of DefaultGame.
// If the file doesn't exist, returns defaults.
func LoadGame(path string) (Game, error) {
	cfg := DefaultGame()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
