package scene

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/flapper/internal/core"
)

// NodeID is a stable handle to a node in an Arena.
// Handles of destroyed nodes are never reused for live nodes while the
// arena reports them dead.
type NodeID struct {
	entity ecs.Entity
}

// NoNode is the zero handle. It never names a live node.
var NoNode NodeID

// IsZero reports whether the handle is NoNode.
func (id NodeID) IsZero() bool {
	return id == NoNode
}

func (id NodeID) String() string {
	if id.IsZero() {
		return "node#none"
	}
	return fmt.Sprintf("node#%d", id.entity.ID())
}

// Transform is a node's placement relative to its parent.
type Transform struct {
	Position core.Vec2
	Rotation float64 // radians, counter-clockwise positive
}

// Extent is a node's on-screen size. Nodes are centre-anchored.
type Extent struct {
	Size core.Vec2
}

// Body is the physics state of a node that takes part in the host physics step.
type Body struct {
	Velocity        core.Vec2
	AngularVelocity float64
	Mass            float64
	Inertia         float64
}

// Obstacle marks a node as a gap obstacle (two columns with a passable gap
// centred on the node position).
type Obstacle struct {
	Gap    float64
	Passed bool
}

// hierarchy stores parent/child relations as handle lists.
type hierarchy struct {
	parent   NodeID
	children []NodeID
}

type label struct {
	name string
}
