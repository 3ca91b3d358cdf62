package systems

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/utils/mocks"
)

func TestEnemyAISystem_ReverseHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		roll     bool
		wantTurn bool
		wantX    float64
	}{
		{"bounce succeeds", true, true, -0.05},
		{"bounce fails", false, false, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rng := mocks.NewMockRandomSource(ctrl)
			rng.EXPECT().Chance(0.8).Return(tt.roll)

			tw := newTestWorld(t)
			bear := tw.mustEnemy(t, "bear")
			ai := NewEnemyAISystem(tw.em, rng)

			turned, err := ai.ReverseHorizontal(bear)
			if err != nil {
				t.Fatalf("ReverseHorizontal() error = %v", err)
			}
			if turned != tt.wantTurn {
				t.Errorf("ReverseHorizontal() = %v, want %v", turned, tt.wantTurn)
			}
			ec, _ := ecs.GetComponent[*components.EnemyComponent](tw.em, bear)
			if ec.MoveVelocity.X != tt.wantX {
				t.Errorf("MoveVelocity.X = %v, want %v", ec.MoveVelocity.X, tt.wantX)
			}
		})
	}
}

func TestEnemyAISystem_ReverseHorizontalNotAnEnemy(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandomSource(ctrl)

	tw := newTestWorld(t)
	player := tw.mustPlayer(t)

	if _, err := NewEnemyAISystem(tw.em, rng).ReverseHorizontal(player); err == nil {
		t.Error("ReverseHorizontal() on the player expected error")
	}
}

func TestEnemyAISystem_Decide(t *testing.T) {
	tests := []struct {
		name       string
		jump       bool
		wantMove   physics.Vec
		wantRising bool
	}{
		{"jump", true, physics.V(0.05, 0), true},
		{"stop", false, physics.Vec{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rng := mocks.NewMockRandomSource(ctrl)
			rng.EXPECT().Chance(0.5).Return(tt.jump).Times(1)

			tw := newTestWorld(t)
			bear := tw.mustEnemy(t, "bear")
			ec, _ := ecs.GetComponent[*components.EnemyComponent](tw.em, bear)
			ec.MoveVelocity = physics.V(-0.05, 0)
			ec.DecideTimer = ec.DecideDuration

			ai := NewEnemyAISystem(tw.em, rng)
			ai.Update(0.01)

			if ec.MoveVelocity != tt.wantMove {
				t.Errorf("MoveVelocity = %+v, want %+v", ec.MoveVelocity, tt.wantMove)
			}
			if ec.DecideTimer != 0 {
				t.Errorf("DecideTimer = %v, want reset to 0", ec.DecideTimer)
			}
			vy := tw.body(t, bear).LinearVelocity().Y
			if (vy > 0) != tt.wantRising {
				t.Errorf("vy = %v, rising want %v", vy, tt.wantRising)
			}
		})
	}
}

func TestEnemyAISystem_RunRespectsMaxVelocity(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandomSource(ctrl)

	tw := newTestWorld(t)
	bear := tw.mustEnemy(t, "bear")
	ec, _ := ecs.GetComponent[*components.EnemyComponent](tw.em, bear)
	ec.DecideDuration = 100
	body := tw.body(t, bear)

	ai := NewEnemyAISystem(tw.em, rng)

	body.SetLinearVelocity(physics.V(1, 0))
	ai.Update(0.01)
	if got := body.LinearVelocity().X; got < 1.05-1e-9 || got > 1.05+1e-9 {
		t.Errorf("vx below the limit = %v, want 1.05", got)
	}

	body.SetLinearVelocity(physics.V(2.5, 0))
	ai.Update(0.01)
	if got := body.LinearVelocity().X; got != 2.5 {
		t.Errorf("vx above the limit = %v, want unchanged 2.5", got)
	}
}
