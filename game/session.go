package game

import (
	"time"

	"VoxelGolang/physics"
	"VoxelGolang/player"
	"VoxelGolang/world"
)

// ActionCooldown is the minimum wall-clock gap between block edits, so
// one held button does not strobe edits every tick.
const ActionCooldown = 200 * time.Millisecond

// Action names what the player's click asks for this tick.
type Action uint8

const (
	ActionNone Action = iota
	// ActionBreak removes the block under the crosshair.
	ActionBreak
	// ActionPlace puts the selected block against the face under the
	// crosshair.
	ActionPlace
)

// Input is everything the outside world feeds one tick: movement intent
// along the player's basis, look deltas in degrees, an optional
// material selection (Air means keep the current one) and an optional
// click.
type Input struct {
	Forward float32
	Strafe  float32
	Jump    bool
	LookX   float64
	LookY   float64
	Select  world.BlockType
	Act     Action
}

// Session owns one running world and the player in it, and advances
// both one tick at a time. It is single-threaded: nothing in here locks
// and exactly one goroutine may call Step.
type Session struct {
	World    *world.Store
	Player   *player.Player
	Resolver physics.Resolver

	// Now is the clock used for the action cooldown; tests swap it out.
	Now func() time.Time

	lastAction time.Time
}

// NewSession wires a session around an existing world.
func NewSession(store *world.Store) *Session {
	return &Session{
		World:    store,
		Player:   player.New(),
		Resolver: physics.NewResolver(),
		Now:      time.Now,
	}
}

// Step advances the simulation one tick: apply the input to the player,
// integrate, resolve against the world, then carry out the click if the
// cooldown allows. Given the same starting state and inputs it always
// produces the same result.
func (s *Session) Step(in Input) {
	p := s.Player
	p.Look(in.LookX, in.LookY)
	if in.Select != world.Air {
		p.Selected = in.Select
	}
	p.Move(in.Forward, in.Strafe)
	if in.Jump {
		p.Jump()
	}
	p.Integrate()
	s.Resolver.Resolve(&p.Body, s.World)
	if in.Act != ActionNone {
		s.act(in.Act)
	}
}

// act aims a ray from the eye and edits the world at whatever it hits.
// The cooldown is consumed by the attempt, hit or miss.
func (s *Session) act(a Action) {
	now := s.Now()
	if !s.lastAction.IsZero() && now.Sub(s.lastAction) <= ActionCooldown {
		return
	}
	s.lastAction = now

	hit, ok := physics.Raycast(s.World, s.Player.Eye(), s.Player.ViewDir(), physics.Reach)
	if !ok {
		return
	}
	switch a {
	case ActionBreak:
		s.World.Remove(hit.Coord)
	case ActionPlace:
		target, ok := physics.AdjacentCoord(hit)
		if !ok {
			return
		}
		if physics.BlockBox(target).Intersects(physics.PlayerBox(s.Player.Position)) {
			return
		}
		s.World.Add(target, s.Player.Selected)
	}
}
