package game

import (
	"math"
	"time"

	"github.com/simukka/swarm-survivor/common"
)

// Step advances the session by one tick and returns the resulting snapshot.
// The stages run in a fixed order; later stages see positions written by
// earlier ones. After GAME_OVER it is a no-op returning the frozen snapshot.
func (s *Session) Step() Snapshot {
	if s.state == GameOver {
		return s.Snapshot()
	}

	s.elapsed += FrameStep
	s.stats.Ticks++
	now := s.clock.Now()
	s.World.Bounds = s.viewport.Bounds()

	sig := s.input.Signals(&s.World)
	if sig.Aim.Len() > 0 {
		s.aim = sig.Aim
	}

	s.movePlayer(sig.Move)
	s.fire(now)
	s.advanceProjectiles()
	s.spawnEnemy(now)
	s.advanceEnemies()
	s.resolveCollisions()

	return s.Snapshot()
}

// movePlayer applies the move vector and clamps the player inside the bounds
// minus its half-extent.
func (s *Session) movePlayer(move common.Vec) {
	p := &s.World.Player
	b := s.World.Bounds
	x := p.X + move.X*p.Speed
	y := p.Y + move.Y*p.Speed
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	half := p.Size / 2
	p.X = common.Clamp(x, half, b.Width-half)
	p.Y = common.Clamp(y, half, b.Height-half)
}

// fire spawns a pair of parallel projectiles offset by a quarter of the
// player size, if the fire interval has passed. With a fire poll configured,
// only a tick that follows RequestFire evaluates.
func (s *Session) fire(now time.Time) {
	if s.tuning.FirePoll > 0 {
		if !s.fireArmed {
			return
		}
		s.fireArmed = false
	}
	interval := s.difficulty.FireInterval(s.elapsed)
	if !s.lastShot.IsZero() && now.Sub(s.lastShot) <= interval {
		return
	}
	dir, ok := s.aim.Normalize()
	if !ok {
		return
	}
	s.lastShot = now

	p := &s.World.Player
	offset := p.Size / 4
	vel := dir.Scale(s.tuning.Projectile.Speed)
	fired := 0
	for _, sign := range [2]float64{-1, 1} {
		b := s.World.Projectiles.Acquire()
		if b == nil {
			break // Pool exhausted
		}
		b.X = p.X + sign*offset
		b.Y = p.Y + sign*offset
		b.XAcc = vel.X
		b.YAcc = vel.Y
		b.Size = s.tuning.Projectile.Size
		fired++
	}
	s.stats.ShotsFired += fired
	s.logVolley(fired)
}

// advanceProjectiles moves every projectile and drops those leaving the bounds.
func (s *Session) advanceProjectiles() {
	pool := s.World.Projectiles
	pool.ForEachReverse(func(b *Projectile, i int) {
		if !b.Advance(s.World.Bounds) {
			pool.Release(i)
		}
	})
}

// spawnEnemy adds one enemy on the left or right edge if the spawn interval
// has passed. Its speed is fixed here for its whole life.
func (s *Session) spawnEnemy(now time.Time) {
	interval := s.difficulty.SpawnInterval(s.elapsed)
	if !s.lastSpawn.IsZero() && now.Sub(s.lastSpawn) <= interval {
		return
	}
	s.lastSpawn = now

	b := s.World.Bounds
	e := &Enemy{
		Y:     s.rng.Random() * b.Height,
		Size:  s.rng.RandomFloat(s.tuning.Enemy.MinSize, s.tuning.Enemy.MaxSize),
		Speed: s.tuning.Enemy.BaseSpeed * s.difficulty.SpeedMultiplier(s.elapsed),
	}
	if s.rng.Bool() {
		e.X = b.Width
	}
	s.World.Enemies = append(s.World.Enemies, e)
	s.stats.EnemiesSpawned++
	s.logSpawn(e)
}

// advanceEnemies moves each enemy straight at the player. An enemy sitting
// exactly on the player has no direction and stays put this tick.
func (s *Session) advanceEnemies() {
	p := &s.World.Player
	for _, e := range s.World.Enemies {
		dir, ok := common.Vec{X: p.X - e.X, Y: p.Y - e.Y}.Normalize()
		if !ok {
			continue
		}
		e.X += dir.X * e.Speed
		e.Y += dir.Y * e.Speed
	}
}

// resolveCollisions checks each enemy in order: first against the player,
// otherwise against the live projectiles. Removals are collected during the
// scan and applied after it. Health reaching zero ends the session at once.
func (s *Session) resolveCollisions() {
	w := &s.World
	if cap(s.deadEnemies) < len(w.Enemies) {
		s.deadEnemies = make([]bool, len(w.Enemies))
	}
	dead := s.deadEnemies[:len(w.Enemies)]
	for i := range dead {
		dead[i] = false
	}

	if s.grid != nil {
		s.grid.Resize(w.Bounds.Width, w.Bounds.Height)
		s.grid.Clear()
		for _, b := range w.Projectiles.Active() {
			s.grid.Insert(b)
		}
	}

	for i, e := range w.Enemies {
		if overlaps(&w.Player, e) {
			dead[i] = true
			w.Player.Health--
			s.stats.HealthLost++
			s.log.Info().Int("health", w.Player.Health).Msg("player hit")
			if w.Player.Health <= 0 {
				w.Player.Health = 0
				s.state = GameOver
				break
			}
			continue
		}

		if b := s.firstHit(e); b != nil {
			b.Spent = true
			dead[i] = true
			s.stats.Kills++
		}
	}

	kept := w.Enemies[:0]
	for i, e := range w.Enemies {
		if !dead[i] {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
	w.Projectiles.ReleaseSpent()

	if s.state == GameOver {
		s.log.Info().
			Float64("elapsed", s.elapsed.Seconds()).
			Int("kills", s.stats.Kills).
			Int("ticks", s.stats.Ticks).
			Msg("game over")
	}
}

// firstHit returns the live projectile with the lowest pool index that
// overlaps e, or nil.
func (s *Session) firstHit(e *Enemy) *Projectile {
	if s.grid == nil {
		for _, b := range s.World.Projectiles.Active() {
			if !b.Spent && overlaps(b, e) {
				return b
			}
		}
		return nil
	}

	var hit *Projectile
	s.grid.ForEachNearby(e.X, e.Y, func(b *Projectile) {
		if b.Spent || (hit != nil && b.PoolIndex > hit.PoolIndex) {
			return
		}
		if overlaps(b, e) {
			hit = b
		}
	})
	return hit
}
