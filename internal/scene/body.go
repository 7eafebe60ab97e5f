package scene

import (
	"github.com/vovakirdan/flapper/internal/core"
)

// AddBody gives a node a physics body and returns its handle.
// Non-positive mass or inertia are treated as 1.
func (a *Arena) AddBody(id NodeID, mass, inertia float64) *BodyHandle {
	a.mustAlive(id, "AddBody")
	if mass <= 0 {
		mass = 1
	}
	if inertia <= 0 {
		inertia = 1
	}
	b := Body{Mass: mass, Inertia: inertia}
	if a.bodies.Has(id.entity) {
		*a.bodies.Get(id.entity) = b
	} else {
		a.bodies.Add(id.entity, &b)
	}
	return &BodyHandle{arena: a, id: id}
}

// Body returns the handle of a node's physics body.
// Panics if the node has no body.
func (a *Arena) Body(id NodeID) *BodyHandle {
	a.mustAlive(id, "Body")
	if !a.bodies.Has(id.entity) {
		panic("scene: Body on node without a body: " + id.String())
	}
	return &BodyHandle{arena: a, id: id}
}

// Step is the host physics step: gravity is added to every body's velocity,
// then velocities are integrated into positions and rotations.
func (a *Arena) Step(dt float64, gravity core.Vec2) {
	if dt <= 0 {
		return
	}
	query := a.bodyFilter.Query()
	for query.Next() {
		t, b := query.Get()
		b.Velocity = b.Velocity.Add(gravity.Scale(dt))
		t.Position = t.Position.Add(b.Velocity.Scale(dt))
		t.Rotation += b.AngularVelocity * dt
	}
}

// BodyHandle reads and writes the physics state of one node.
// It looks the body up on every call, so it stays valid while the node lives.
type BodyHandle struct {
	arena *Arena
	id    NodeID
}

// Node returns the node the body belongs to.
func (h *BodyHandle) Node() NodeID {
	return h.id
}

func (h *BodyHandle) body() *Body {
	h.arena.mustAlive(h.id, "body access")
	return h.arena.bodies.Get(h.id.entity)
}

// Velocity returns the linear velocity in points per second.
func (h *BodyHandle) Velocity() core.Vec2 {
	return h.body().Velocity
}

// SetVelocity overwrites the linear velocity.
func (h *BodyHandle) SetVelocity(v core.Vec2) {
	h.body().Velocity = v
}

// AngularVelocity returns the angular velocity in radians per second.
func (h *BodyHandle) AngularVelocity() float64 {
	return h.body().AngularVelocity
}

// SetAngularVelocity overwrites the angular velocity.
func (h *BodyHandle) SetAngularVelocity(w float64) {
	h.body().AngularVelocity = w
}

// Rotation returns the node's rotation in radians.
func (h *BodyHandle) Rotation() float64 {
	return h.arena.Rotation(h.id)
}

// SetRotation sets the node's rotation in radians.
func (h *BodyHandle) SetRotation(rad float64) {
	h.arena.SetRotation(h.id, rad)
}

// ApplyImpulse adds impulse/mass to the linear velocity.
func (h *BodyHandle) ApplyImpulse(impulse core.Vec2) {
	b := h.body()
	b.Velocity = b.Velocity.Add(impulse.Scale(1 / b.Mass))
}

// ApplyAngularImpulse adds impulse/inertia to the angular velocity.
func (h *BodyHandle) ApplyAngularImpulse(impulse float64) {
	b := h.body()
	b.AngularVelocity += impulse / b.Inertia
}
