package game

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/udisondev/dragonwar/internal/ai"
	"github.com/udisondev/dragonwar/internal/clock"
	"github.com/udisondev/dragonwar/internal/config"
	"github.com/udisondev/dragonwar/internal/game/combat"
	"github.com/udisondev/dragonwar/internal/model"
	"github.com/udisondev/dragonwar/internal/spawn"
	"github.com/udisondev/dragonwar/internal/world"
)

// Stats are running session totals.
type Stats struct {
	Ticks             uint64
	Elapsed           time.Duration
	Restarts          int
	DragonsDefeated   int
	DamageTaken       int
	HealthRestored    int
	HeartsCollected   int
	BombsDetonated    int
	BlastsFired       int
	FireballsLaunched int
	WallsSpawned      int
}

// Session owns every piece of mutable simulation state for one game.
// It is not safe for concurrent use: the runner drives it from one goroutine.
type Session struct {
	cfg   config.Game
	world *world.SpatialWorld
	rng   *rand.Rand
	clock *clock.Sim
	ids   *world.IDAllocator

	spawner  *spawn.Spawner
	resolver *combat.Resolver
	dragons  *ai.Manager

	player      *model.Player
	projectiles []model.Projectile
	fireballs   []model.Fireball
	embers      []model.Ember
	bombs       []model.Bomb
	hearts      []model.Heart

	camera        CameraMode
	cameraYaw     float64
	cameraPitch   float64
	lastWallCheck time.Time
	gameOver      bool

	stats Stats
}

// New creates a session over a generated world and populates it.
func New(cfg config.Game, w *world.SpatialWorld, rng *rand.Rand) *Session {
	ids := world.NewIDAllocator()
	spawner := spawn.NewSpawner(w, cfg, rng, ids)

	s := &Session{
		cfg:      cfg,
		world:    w,
		rng:      rng,
		clock:    clock.NewSim(),
		ids:      ids,
		spawner:  spawner,
		resolver: combat.NewResolver(cfg, rng, ids, spawner),
		dragons:  ai.NewManager(),
	}
	s.reset()

	slog.Info("game session created",
		"dragons", s.dragons.Count(),
		"bombs", len(s.bombs),
		"hearts", len(s.hearts),
		"player", s.player.Position())

	return s
}

// reset puts every entity back to its starting state and restarts ID
// allocation. Simulation time keeps running.
func (s *Session) reset() {
	now := s.clock.Now()

	s.gameOver = false
	s.camera = CameraThirdPerson
	s.lastWallCheck = now
	s.ids.Reset()

	s.player = model.NewPlayer(s.ids.Next(world.KindPlayer), s.spawner.SafePoint(), s.cfg.Player)
	s.projectiles = nil
	s.fireballs = nil
	s.embers = nil
	s.bombs = s.spawner.Bombs(s.cfg.Bomb.Count)
	s.hearts = s.spawner.Hearts(s.cfg.Heart.Count)
	s.world.ClearTempWalls()

	s.dragons.Clear()
	n := max(1, s.cfg.DragonCount)
	for i := range n {
		d := s.spawner.Dragon(i, n)
		s.dragons.Register(ai.NewDragonAI(d, s.cfg.Dragon, s.cfg.Fireball, s.rng, s.launchFireball, s.spawner.DragonPoint))
	}
}

// Restart resets the game after defeat or on demand.
func (s *Session) Restart() {
	s.reset()
	s.stats.Restarts++
	slog.Info("game restarted", "restarts", s.stats.Restarts)
}

// GameOver reports whether the player has been defeated.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Stats returns running totals.
func (s *Session) Stats() Stats {
	st := s.stats
	st.Elapsed = s.clock.Elapsed()
	return st
}

// Now returns the current simulation time.
func (s *Session) Now() time.Time {
	return s.clock.Now()
}

// Tick advances the simulation by dt.
// Input actions apply first, then hearts, bombs, temporary walls, player
// blasts, fireballs, embers, dragon AI and finally player physics.
// After defeat only a restart request is honoured.
func (s *Session) Tick(dt time.Duration, in Input) {
	if in.Restart {
		s.Restart()
		return
	}
	if s.gameOver {
		return
	}

	now := s.clock.Advance(dt)
	dt = max(0, dt)
	s.stats.Ticks++

	s.applyInput(in)

	var res combat.Result
	var r combat.Result

	s.hearts, r = s.resolver.CollectHearts(s.hearts, s.player)
	res.Add(r)

	s.bombs, r = s.resolver.AdvanceBombs(s.bombs, s.player, now)
	res.Add(r)

	s.updateWalls(now)

	s.projectiles, r = s.resolver.AdvanceProjectiles(s.projectiles, s.dragons.Dragons(), now, dt)
	res.Add(r)

	var sparks []model.Ember
	s.fireballs, sparks, r = s.resolver.AdvanceFireballs(s.fireballs, s.player, now, dt)
	res.Add(r)
	s.embers = append(s.embers, sparks...)
	s.embers = s.resolver.AdvanceEmbers(s.embers, dt)

	s.dragons.UpdateAll(now, dt, s.player.Position(), s.projectiles)

	s.player.Update(in.movement(), dt, s.world)

	s.record(res)

	if s.player.IsDead() {
		s.gameOver = true
		slog.Info("game over",
			"elapsed", s.clock.Elapsed(),
			"dragons_defeated", s.stats.DragonsDefeated,
			"damage_taken", s.stats.DamageTaken)
	}
}

func (s *Session) applyInput(in Input) {
	s.cameraYaw = in.CameraYaw
	s.cameraPitch = in.CameraPitch

	if in.ToggleCamera {
		s.toggleCamera()
	}
	if in.ControlsLocked {
		return
	}

	if in.Jump {
		s.player.Jump()
	}
	if in.Shield {
		s.player.ActivateShield()
	}
	if in.Fire != nil {
		blast := s.player.FireBlast(s.ids.Next(world.KindProjectile), in.Fire.Origin, in.Fire.Direction, s.cfg.Projectile)
		s.projectiles = append(s.projectiles, blast)
		s.stats.BlastsFired++
		// aiming happens over the shoulder of the first-person view
		if s.camera == CameraThirdPerson {
			s.camera = CameraFirstPerson
		}
	}
}

func (s *Session) toggleCamera() {
	if s.camera == CameraThirdPerson {
		s.camera = CameraFirstPerson
	} else {
		s.camera = CameraThirdPerson
	}
}

// updateWalls prunes expired temporary walls and, every check interval,
// may raise a new group across the player's line of sight.
func (s *Session) updateWalls(now time.Time) {
	s.world.PruneTempWalls(now)

	if !now.After(s.lastWallCheck.Add(s.cfg.Wall.CheckInterval)) {
		return
	}
	s.lastWallCheck = now
	if s.rng.Float64() >= s.cfg.Wall.SpawnChance {
		return
	}

	walls := s.spawner.WallGroup(s.player.Position(), s.cameraYaw, now)
	if len(walls) == 0 {
		return
	}
	s.world.AddTempWalls(walls...)
	s.stats.WallsSpawned++
	slog.Info("blocking wall spawned", "segments", len(walls), "despawn_at", walls[0].DespawnAt)
}

// launchFireball is the dragons' FireFunc.
func (s *Session) launchFireball(_ *model.Dragon, origin, velocity model.Vec3) {
	cfg := s.cfg.Fireball
	s.fireballs = append(s.fireballs, model.Fireball{
		ID:        s.ids.Next(world.KindFireball),
		Position:  origin,
		Velocity:  velocity,
		Remaining: cfg.Lifetime,
		Lifetime:  cfg.Lifetime,
		Size:      cfg.Size,
		State:     model.FireballFlying,
	})
	s.stats.FireballsLaunched++
}

func (s *Session) record(res combat.Result) {
	s.stats.DragonsDefeated += res.DragonsKilled
	s.stats.DamageTaken += res.PlayerDamage
	s.stats.HealthRestored += res.Healed
	s.stats.HeartsCollected += res.HeartsCollected
	s.stats.BombsDetonated += res.BombsDetonated

	if res.PlayerDamage > 0 {
		slog.Info("player hit", "damage", res.PlayerDamage, "health", s.player.Health())
	}
}
