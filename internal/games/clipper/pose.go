package clipper

import "math"

// PoseInput is everything the rig needs. It is a pure function of these.
type PoseInput struct {
	Phase  float64 // Animation accumulator, +0.1 per frame
	State  PlayerState
	VY     float64
	Facing float64 // -1 or 1
}

// Pose is the cosmetic rig for one frame. Angles are radians, 0 pointing
// straight down from the joint, positive swinging toward the facing side.
type Pose struct {
	Bob      float64 // Vertical offset in world units
	Rotation float64 // Body tilt
	ArmFront float64
	ArmBack  float64
	LegFront float64
	LegBack  float64
}

// Rig angles.
const (
	runSwing     = 0.6
	armSwingGain = 0.8
	idleSway     = 0.08
	riseArms     = 2.4
	riseKnee     = 0.5
	fallArms     = 1.2
	fallLegs     = 0.25
)

// PoseFor returns the limb angles and body offset for a frame.
func PoseFor(in PoseInput) Pose {
	facing := in.Facing
	if facing == 0 {
		facing = 1
	}

	switch in.State {
	case StateRunning:
		wave := math.Sin(in.Phase * 10)
		swing := wave * runSwing
		return Pose{
			Bob:      wave * 5,
			Rotation: wave * 0.05,
			ArmFront: -swing * armSwingGain,
			ArmBack:  swing * armSwingGain,
			LegFront: swing,
			LegBack:  -swing,
		}
	case StateRising:
		return Pose{
			Rotation: in.VY * 0.02 * facing,
			ArmFront: riseArms,
			ArmBack:  riseArms,
			LegFront: riseKnee,
			LegBack:  -riseKnee * 0.6,
		}
	case StateFalling:
		return Pose{
			Rotation: in.VY * 0.02 * facing,
			ArmFront: fallArms,
			ArmBack:  -fallArms,
			LegFront: fallLegs,
			LegBack:  -fallLegs,
		}
	default:
		wave := math.Sin(in.Phase * 2)
		return Pose{
			Bob:      wave * 2,
			ArmFront: wave * idleSway,
			ArmBack:  -wave * idleSway,
		}
	}
}
