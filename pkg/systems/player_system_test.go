package systems

import (
	"errors"
	"testing"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/types"
)

func TestPlayerSystem_InvincibilityWindow(t *testing.T) {
	tests := []struct {
		name           string
		elapsed        []float64
		wantInvincible bool
	}{
		{"just hit", nil, true},
		{"3.99 seconds", []float64{3.99}, true},
		{"4.0 seconds", []float64{4.0}, false},
		{"240 fixed steps", repeat(1.0/60, 240), false},
		{"239 fixed steps", repeat(1.0/60, 239), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			player := tw.mustPlayer(t)
			ps := NewPlayerSystem(tw.em, tw.cfg.Player)

			if err := ps.OnEnemyHit(player); err != nil {
				t.Fatalf("OnEnemyHit() error = %v", err)
			}
			for _, dt := range tt.elapsed {
				ps.Update(dt)
			}

			pc, _ := ecs.GetComponent[*components.PlayerComponent](tw.em, player)
			if pc.Invincible != tt.wantInvincible {
				t.Errorf("Invincible = %v, want %v", pc.Invincible, tt.wantInvincible)
			}
			wantFilter := types.PlayerNormalFilter
			if tt.wantInvincible {
				wantFilter = types.PlayerInvincibleFilter
			}
			if got := tw.body(t, player).Filter(); got != wantFilter {
				t.Errorf("filter = %+v, want %+v", got, wantFilter)
			}
			if !tt.wantInvincible && pc.Alpha != 1 {
				t.Errorf("Alpha = %v after the window, want 1", pc.Alpha)
			}
		})
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestPlayerSystem_Flicker(t *testing.T) {
	tw := newTestWorld(t)
	player := tw.mustPlayer(t)
	ps := NewPlayerSystem(tw.em, tw.cfg.Player)
	_ = ps.OnEnemyHit(player)
	pc, _ := ecs.GetComponent[*components.PlayerComponent](tw.em, player)

	wantAlphas := []float64{1, 0.2, 1, 0.2}
	for i, want := range wantAlphas {
		if pc.Alpha != want {
			t.Errorf("after %d intervals Alpha = %v, want %v", i, pc.Alpha, want)
		}
		ps.Update(0.25)
	}
}

func TestPlayerSystem_CarryingTransitions(t *testing.T) {
	tw := newTestWorld(t)
	player := tw.mustPlayer(t)
	ps := NewPlayerSystem(tw.em, tw.cfg.Player)
	body := tw.body(t, player)
	pc, _ := ecs.GetComponent[*components.PlayerComponent](tw.em, player)

	if err := ps.CollectItem(player); err != nil {
		t.Fatalf("CollectItem() error = %v", err)
	}
	if !pc.Carrying || body.Filter() != types.PlayerCarryingFilter {
		t.Fatalf("after pickup: carrying=%v filter=%+v", pc.Carrying, body.Filter())
	}

	if err := ps.DeliverItem(player); err != nil {
		t.Fatalf("DeliverItem() error = %v", err)
	}
	if pc.Carrying || body.Filter() != types.PlayerNormalFilter {
		t.Fatalf("after delivery: carrying=%v filter=%+v", pc.Carrying, body.Filter())
	}

	_ = ps.CollectItem(player)
	_ = ps.OnEnemyHit(player)
	if pc.Carrying {
		t.Error("hit while carrying kept the snowball")
	}
	if body.Filter() != types.PlayerInvincibleFilter {
		t.Errorf("filter after hit = %+v, want PlayerInvincibleFilter", body.Filter())
	}
}

func TestPlayerSystem_NotAPlayer(t *testing.T) {
	tw := newTestWorld(t)
	enemy := tw.mustEnemy(t, "bear")
	ps := NewPlayerSystem(tw.em, tw.cfg.Player)

	if err := ps.OnEnemyHit(enemy); err == nil {
		t.Error("OnEnemyHit() on an enemy expected error")
	}

	orphan := tw.em.CreateEntity()
	tw.em.AddComponent(orphan, &components.PlayerComponent{})
	if _, err := ps.Jump(orphan); !errors.Is(err, ErrBodyNotRealized) {
		t.Errorf("Jump() on a bodiless player error = %v, want ErrBodyNotRealized", err)
	}
}

func TestPlayerSystem_Jump(t *testing.T) {
	tests := []struct {
		name       string
		velocity   physics.Vec
		invincible bool
		wantOK     bool
		wantVY     float64
	}{
		{"standing", physics.V(0, 0), false, true, 3.2},
		{"running", physics.V(1, 0), false, true, 3.2},
		{"invincible", physics.V(0, 0), true, true, 2.2},
		{"rising", physics.V(0, 1), false, false, 1},
		{"falling", physics.V(0, -1), false, false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			player := tw.mustPlayer(t)
			ps := NewPlayerSystem(tw.em, tw.cfg.Player)
			if tt.invincible {
				_ = ps.OnEnemyHit(player)
			}
			body := tw.body(t, player)
			body.SetLinearVelocity(tt.velocity)

			ok, err := ps.Jump(player)
			if err != nil {
				t.Fatalf("Jump() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("Jump() = %v, want %v", ok, tt.wantOK)
			}
			if got := body.LinearVelocity().Y; got < tt.wantVY-1e-9 || got > tt.wantVY+1e-9 {
				t.Errorf("vy = %v, want %v", got, tt.wantVY)
			}
		})
	}
}

func TestPlayerSystem_Move(t *testing.T) {
	tests := []struct {
		name       string
		vx         float64
		dir        types.Direction
		invincible bool
		wantOK     bool
		wantVX     float64
	}{
		{"right from rest", 0, types.Right, false, true, 0.1},
		{"left from rest", 0, types.Left, false, true, -0.1},
		{"right at the limit", 2, types.Right, false, true, 2.1},
		{"right beyond the limit", 2.5, types.Right, false, false, 2.5},
		{"left beyond the limit", -2.5, types.Left, false, false, -2.5},
		{"braking is always allowed", 2.5, types.Left, false, true, 2.4},
		{"invincible", 0, types.Right, true, true, 0.04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			player := tw.mustPlayer(t)
			ps := NewPlayerSystem(tw.em, tw.cfg.Player)
			if tt.invincible {
				_ = ps.OnEnemyHit(player)
			}
			body := tw.body(t, player)
			body.SetLinearVelocity(physics.V(tt.vx, 0))

			ok, err := ps.Move(player, tt.dir)
			if err != nil {
				t.Fatalf("Move() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("Move() = %v, want %v", ok, tt.wantOK)
			}
			if got := body.LinearVelocity().X; got < tt.wantVX-1e-9 || got > tt.wantVX+1e-9 {
				t.Errorf("vx = %v, want %v", got, tt.wantVX)
			}
		})
	}
}
