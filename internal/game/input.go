package game

import "github.com/udisondev/dragonwar/internal/model"

// CameraMode selects the player's view.
type CameraMode int32

const (
	CameraThirdPerson CameraMode = iota
	CameraFirstPerson
)

// String returns human-readable camera mode
func (m CameraMode) String() string {
	switch m {
	case CameraThirdPerson:
		return "THIRD_PERSON"
	case CameraFirstPerson:
		return "FIRST_PERSON"
	default:
		return "UNKNOWN"
	}
}

// FireCommand asks for an energy blast from Origin along Direction.
type FireCommand struct {
	Origin    model.Vec3
	Direction model.Vec3
}

// Input is the player intent sampled once per tick.
// Strafe and Forward are camera-relative in [-1, 1]; Vertical is the
// fly up/down intent. Camera angles are in degrees.
type Input struct {
	Strafe   float64
	Forward  float64
	Vertical float64

	CameraYaw   float64
	CameraPitch float64

	Jump         bool
	Shield       bool
	Fire         *FireCommand
	ToggleCamera bool
	Restart      bool

	// ControlsLocked suppresses movement and abilities but not AI or physics.
	ControlsLocked bool
}

func (in Input) movement() model.Movement {
	if in.ControlsLocked {
		return model.Movement{CameraYaw: in.CameraYaw}
	}
	return model.Movement{
		Strafe:    in.Strafe,
		Forward:   in.Forward,
		Vertical:  in.Vertical,
		CameraYaw: in.CameraYaw,
	}
}
