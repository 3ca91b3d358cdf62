package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/entities"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/systems"
	"github.com/gonewx/bobmelting/pkg/types"
	"github.com/gonewx/bobmelting/pkg/utils"
)

// secondEpsilon lets 60 steps of 1/60 s count as a full second.
const secondEpsilon = 1e-9

// Option customizes a session.
type Option func(*sessionOptions)

type sessionOptions struct {
	rng  utils.RandomSource
	seed int64
}

// WithSeed seeds the session's random source.
func WithSeed(seed int64) Option {
	return func(o *sessionOptions) { o.seed = seed }
}

// WithRandomSource replaces the session's random source.
func WithRandomSource(rng utils.RandomSource) Option {
	return func(o *sessionOptions) { o.rng = rng }
}

// Session is one run of the game, from the first tick until Bob melts. It
// owns the physics world, the entities and every system, and is rebuilt
// wholesale for the next run.
//
// A session is not safe for concurrent use. Separate sessions share nothing.
type Session struct {
	id    uuid.UUID
	cfg   *config.GameConfig
	level *config.LevelMap

	em       *ecs.EntityManager
	world    *physics.World
	registry *entities.BodyRegistry
	factory  *entities.BodyFactory

	movement     *systems.MovementStateSystem
	players      *systems.PlayerSystem
	enemyAI      *systems.EnemyAISystem
	contacts     *systems.ContactSystem
	difficulty   *systems.DifficultySystem
	collectibles *systems.CollectibleSpawnSystem
	health       *systems.HealthPool

	player  ecs.EntityID
	goal    ecs.EntityID
	enemies []ecs.EntityID
	tiles   []ecs.EntityID

	elapsed    float64 // seconds not yet counted by worldTimer
	worldTimer int
	closed     bool
}

// NewSession builds a ready-to-run session: tiles, Bob, the player, the
// initial enemies, empty snowball slots and a shuffled spawn queue.
//
// Parameters:
//   - cfg: validated game tuning
//   - level: validated level map
//   - opts: seed or random source; the default seed is the current time
//
// Returns:
//   - *Session: the new session
//   - error: invalid input or a failure to realize a required entity
func NewSession(cfg *config.GameConfig, level *config.LevelMap, opts ...Option) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if level == nil {
		return nil, fmt.Errorf("level map cannot be nil")
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level map: %w", err)
	}

	o := sessionOptions{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.rng
	if rng == nil {
		rng = utils.NewRandomSource(o.seed)
	}

	s := &Session{
		id:       uuid.New(),
		cfg:      cfg,
		level:    level,
		em:       ecs.NewEntityManager(),
		world:    physics.NewWorld(physics.V(cfg.Physics.Gravity.X, cfg.Physics.Gravity.Y)),
		registry: entities.NewBodyRegistry(),
		health:   systems.NewHealthPool(cfg.Goal.InitialHealth, cfg.Goal.MaxHealth),
	}

	factory, err := entities.NewBodyFactory(s.em, s.world, s.registry, cfg, rng)
	if err != nil {
		s.world.Close()
		return nil, err
	}
	s.factory = factory

	s.movement = systems.NewMovementStateSystem(s.em)
	s.players = systems.NewPlayerSystem(s.em, cfg.Player)
	s.enemyAI = systems.NewEnemyAISystem(s.em, rng)
	s.contacts = systems.NewContactSystem(s.em, s.registry, s.players, s.enemyAI, s.health, cfg.Goal.DeliveryBonus)
	s.difficulty = systems.NewDifficultySystem(cfg.Difficulty.Stages, factory, cfg.Goal.BaseDecayRate)
	s.collectibles = systems.NewCollectibleSpawnSystem(s.em, factory, rng, factory.SpawnPoints(level),
		cfg.Collectibles.MaxCount, cfg.Collectibles.SpawnInterval)
	s.world.SetContactListener(s.contacts)

	if err := s.populate(); err != nil {
		s.world.Close()
		return nil, err
	}

	log.Printf("[Session] %s started on level %q: %d tiles, %d enemies, %d spawn points",
		s.id, level.Name, len(s.tiles), len(s.enemies), len(factory.SpawnPoints(level)))
	return s, nil
}

func (s *Session) populate() error {
	tiles, err := s.factory.CreateTiles(s.level)
	if err != nil {
		return err
	}
	s.tiles = tiles

	if s.goal, err = s.factory.CreateGoal(); err != nil {
		return err
	}
	if s.player, err = s.factory.CreatePlayer(); err != nil {
		return err
	}

	for _, spawn := range s.cfg.InitialEnemies {
		id, err := s.factory.CreateEnemy(spawn.Kind, spawn.X, spawn.Y)
		if err != nil {
			log.Printf("[Session] Skipping initial enemy: %v", err)
			continue
		}
		s.enemies = append(s.enemies, id)
	}
	return nil
}

// Update advances the session by one tick of deltaTime seconds. The physics
// world always advances by the configured fixed timestep. Once Bob has
// melted, Update does nothing.
func (s *Session) Update(deltaTime float64) {
	if s.closed || s.IsGameOver() {
		return
	}

	p := s.cfg.Physics
	s.world.Step(p.TimeStep, p.VelocityIterations, p.PositionIterations)

	s.players.Update(deltaTime)
	s.enemyAI.Update(deltaTime)
	s.movement.Update(deltaTime)

	s.collectibles.Sweep()

	s.elapsed += deltaTime
	for s.elapsed+secondEpsilon >= 1 {
		s.elapsed--
		s.tickSecond()
	}

	s.collectibles.Update(deltaTime)
}

func (s *Session) tickSecond() {
	s.worldTimer++
	health := s.health.AddHealth(-s.difficulty.DecayRate())
	s.enemies = append(s.enemies, s.difficulty.OnSecond(s.worldTimer)...)

	if s.health.Depleted() {
		log.Printf("[Session] %s: Bob melted after %d seconds", s.id, s.worldTimer)
		return
	}
	if s.worldTimer%10 == 0 {
		log.Printf("[Session] %s: t=%ds health=%d decay=%d enemies=%d",
			s.id, s.worldTimer, health, s.difficulty.DecayRate(), len(s.enemies))
	}
}

// Jump asks the player to jump. It reports whether the impulse was applied.
func (s *Session) Jump() bool {
	if s.IsGameOver() {
		return false
	}
	ok, err := s.players.Jump(s.player)
	if err != nil {
		log.Printf("[Session] Jump: %v", err)
	}
	return ok
}

// Move asks the player to run one impulse in dir.
func (s *Session) Move(dir types.Direction) bool {
	if s.IsGameOver() {
		return false
	}
	ok, err := s.players.Move(s.player, dir)
	if err != nil {
		log.Printf("[Session] Move: %v", err)
	}
	return ok
}

// Close releases the physics world. The session must not be used afterwards.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.world.Close()
}

// ID identifies the session in logs and batch results.
func (s *Session) ID() string {
	return s.id.String()
}

// WorldTimer returns the whole seconds survived.
func (s *Session) WorldTimer() int {
	return s.worldTimer
}

// Health returns Bob's health.
func (s *Session) Health() int {
	return s.health.Value()
}

// DecayRate returns the health lost per second.
func (s *Session) DecayRate() int {
	return s.difficulty.DecayRate()
}

// Stage returns the number of difficulty stages reached.
func (s *Session) Stage() int {
	return s.difficulty.Stage()
}

// IsGameOver reports whether Bob has melted.
func (s *Session) IsGameOver() bool {
	return s.health.Depleted()
}

// Player returns the player entity.
func (s *Session) Player() ecs.EntityID {
	return s.player
}

// Goal returns Bob's entity.
func (s *Session) Goal() ecs.EntityID {
	return s.goal
}

// Enemies returns the enemy entities in spawn order.
func (s *Session) Enemies() []ecs.EntityID {
	return append([]ecs.EntityID(nil), s.enemies...)
}

// CollectibleSlots returns a copy of the snowball slots; 0 marks an empty
// slot.
func (s *Session) CollectibleSlots() []ecs.EntityID {
	return append([]ecs.EntityID(nil), s.collectibles.Slots()...)
}

// Level returns the level map the session runs on.
func (s *Session) Level() *config.LevelMap {
	return s.level
}
