// Package controller implements the per-frame logic that drives a scrolling
// obstacle course: layer scrolling with segment recycling, obstacle spawning
// and removal, and the tap-driven flight controller.
//
// Controllers are single-threaded. They run to completion inside the host's
// frame callback, never block and never perform I/O. Configuration problems
// are rejected by the constructors; per-frame methods never fail.
package controller

import (
	"errors"
	"math"

	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/scene"
)

// Configuration errors returned (wrapped) by the constructors.
var (
	ErrMissingNode      = errors.New("missing node")
	ErrInvalidRange     = errors.New("invalid range")
	ErrInvalidInterval  = errors.New("invalid interval")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// timeEpsilon absorbs float drift when accumulated frame deltas land on a
// threshold (e.g. 90 * 1/60 vs 1.5).
const timeEpsilon = 1e-9

// maxSubSteps bounds the work a single OnFrame call may do after a host
// stall. Time beyond maxSubSteps*MaxStep is dropped.
const maxSubSteps = 120

// usableDelta reports whether dt is a positive, finite frame delta.
func usableDelta(dt float64) bool {
	return dt > 0 && !math.IsInf(dt, 1)
}

// Host is the node capability shared by the scroll and spawn controllers.
type Host interface {
	Alive(id scene.NodeID) bool
	Position(id scene.NodeID) core.Vec2
	SetPosition(id scene.NodeID, p core.Vec2)
	ViewportPosition(id scene.NodeID) core.Vec2
	Size(id scene.NodeID) core.Vec2
	Children(id scene.NodeID) []scene.NodeID
}

// ScrollHost is what ScrollController needs from the scene graph.
type ScrollHost interface {
	Host
}

// SpawnHost is what ObstacleSpawner needs from the scene graph.
type SpawnHost interface {
	Host
	ToLocal(parent scene.NodeID, p core.Vec2) core.Vec2
	Duplicate(template, parent scene.NodeID) scene.NodeID
	Destroy(id scene.NodeID)
}

// Body is the physics-body capability FlightController drives.
// Rotation is in radians; impulses add to the current velocities.
type Body interface {
	Velocity() core.Vec2
	SetVelocity(v core.Vec2)
	AngularVelocity() float64
	SetAngularVelocity(w float64)
	Rotation() float64
	SetRotation(rad float64)
	ApplyImpulse(impulse core.Vec2)
	ApplyAngularImpulse(impulse float64)
}

var (
	_ SpawnHost  = (*scene.Arena)(nil)
	_ ScrollHost = (*scene.Arena)(nil)
	_ Body       = (*scene.BodyHandle)(nil)
)
