// Package scene implements the scene-graph host the controllers drive: an
// arena of nodes addressed by stable handles, backed by an ark entity world.
// Parent/child relations are kept as handle lists, so no node owns another
// through a reference.
//
// An Arena is not safe for concurrent use. Using a handle of a destroyed node
// is a programming error and panics.
package scene

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/flapper/internal/core"
)

// Arena owns every node of one scene.
type Arena struct {
	world *ecs.World

	transforms *ecs.Map[Transform]
	extents    *ecs.Map[Extent]
	links      *ecs.Map[hierarchy]
	labels     *ecs.Map[label]
	bodies     *ecs.Map[Body]
	obstacles  *ecs.Map[Obstacle]

	bodyFilter *ecs.Filter2[Transform, Body]

	root  NodeID
	count int
}

// NewArena creates an empty scene with a single root node at the origin.
func NewArena() *Arena {
	w := ecs.NewWorld()
	a := &Arena{
		world:      &w,
		transforms: ecs.NewMap[Transform](&w),
		extents:    ecs.NewMap[Extent](&w),
		links:      ecs.NewMap[hierarchy](&w),
		labels:     ecs.NewMap[label](&w),
		bodies:     ecs.NewMap[Body](&w),
		obstacles:  ecs.NewMap[Obstacle](&w),
		bodyFilter: ecs.NewFilter2[Transform, Body](&w),
	}
	a.root = a.create("root", Transform{}, Extent{})
	return a
}

// Root returns the root node. Every other node descends from it.
func (a *Arena) Root() NodeID {
	return a.root
}

// Len returns the number of live nodes, root included.
func (a *Arena) Len() int {
	return a.count
}

// NewNode creates a node under parent at the given local position.
func (a *Arena) NewNode(parent NodeID, name string, pos, size core.Vec2) NodeID {
	a.mustAlive(parent, "NewNode")
	id := a.create(name, Transform{Position: pos}, Extent{Size: size})
	a.attach(parent, id)
	return id
}

// create allocates an entity with the base components, detached.
func (a *Arena) create(name string, t Transform, e Extent) NodeID {
	entity := a.world.NewEntity()
	a.transforms.Add(entity, &t)
	a.extents.Add(entity, &e)
	a.links.Add(entity, &hierarchy{})
	a.labels.Add(entity, &label{name: name})
	a.count++
	return NodeID{entity: entity}
}

// Alive reports whether the handle names a live node.
func (a *Arena) Alive(id NodeID) bool {
	return !id.IsZero() && a.world.Alive(id.entity)
}

func (a *Arena) mustAlive(id NodeID, op string) {
	if !a.Alive(id) {
		panic(fmt.Sprintf("scene: %s on dead node %v", op, id))
	}
}

// Name returns the node's label.
func (a *Arena) Name(id NodeID) string {
	a.mustAlive(id, "Name")
	return a.labels.Get(id.entity).name
}

// Find returns the first node with the given name in depth-first order.
func (a *Arena) Find(name string) (NodeID, bool) {
	stack := []NodeID{a.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if a.labels.Get(id.entity).name == name {
			return id, true
		}
		children := a.links.Get(id.entity).children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return NoNode, false
}

// Parent returns the node's parent, or NoNode for the root.
func (a *Arena) Parent(id NodeID) NodeID {
	a.mustAlive(id, "Parent")
	return a.links.Get(id.entity).parent
}

// Children returns a snapshot of the node's children in insertion order.
func (a *Arena) Children(id NodeID) []NodeID {
	a.mustAlive(id, "Children")
	children := a.links.Get(id.entity).children
	out := make([]NodeID, len(children))
	copy(out, children)
	return out
}

func (a *Arena) attach(parent, child NodeID) {
	a.links.Get(child.entity).parent = parent
	p := a.links.Get(parent.entity)
	p.children = append(p.children, child)
}

func (a *Arena) detach(child NodeID) {
	h := a.links.Get(child.entity)
	parent := h.parent
	h.parent = NoNode
	if parent.IsZero() || !a.Alive(parent) {
		return
	}
	p := a.links.Get(parent.entity)
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}

// Reparent moves a node under a new parent, keeping its local position.
func (a *Arena) Reparent(id, parent NodeID) {
	a.mustAlive(id, "Reparent")
	a.mustAlive(parent, "Reparent")
	if id == a.root {
		panic("scene: cannot reparent root")
	}
	a.detach(id)
	a.attach(parent, id)
}

// Position returns the node's position in its parent's space.
func (a *Arena) Position(id NodeID) core.Vec2 {
	a.mustAlive(id, "Position")
	return a.transforms.Get(id.entity).Position
}

// SetPosition sets the node's position in its parent's space.
func (a *Arena) SetPosition(id NodeID, p core.Vec2) {
	a.mustAlive(id, "SetPosition")
	a.transforms.Get(id.entity).Position = p
}

// Rotation returns the node's rotation in radians.
func (a *Arena) Rotation(id NodeID) float64 {
	a.mustAlive(id, "Rotation")
	return a.transforms.Get(id.entity).Rotation
}

// SetRotation sets the node's rotation in radians.
func (a *Arena) SetRotation(id NodeID, rad float64) {
	a.mustAlive(id, "SetRotation")
	a.transforms.Get(id.entity).Rotation = rad
}

// Size returns the node's on-screen size.
func (a *Arena) Size(id NodeID) core.Vec2 {
	a.mustAlive(id, "Size")
	return a.extents.Get(id.entity).Size
}

// ViewportPosition returns the node's position in viewport space: its own
// position plus the positions of all its ancestors.
func (a *Arena) ViewportPosition(id NodeID) core.Vec2 {
	a.mustAlive(id, "ViewportPosition")
	var p core.Vec2
	for cur := id; !cur.IsZero(); cur = a.links.Get(cur.entity).parent {
		p = p.Add(a.transforms.Get(cur.entity).Position)
	}
	return p
}

// ToLocal converts a viewport-space point into parent's local space.
func (a *Arena) ToLocal(parent NodeID, p core.Vec2) core.Vec2 {
	return p.Sub(a.ViewportPosition(parent))
}

// Duplicate deep-copies template (its components and its whole subtree) and
// parents the copy under parent. The copy's own position is reset to the
// origin of parent; descendants keep their local positions.
func (a *Arena) Duplicate(template, parent NodeID) NodeID {
	a.mustAlive(template, "Duplicate")
	a.mustAlive(parent, "Duplicate")
	id := a.clone(template)
	a.transforms.Get(id.entity).Position = core.Vec2{}
	a.attach(parent, id)
	return id
}

func (a *Arena) clone(src NodeID) NodeID {
	// Copy values out before creating entities: component pointers are not
	// stable across structural changes.
	t := *a.transforms.Get(src.entity)
	e := *a.extents.Get(src.entity)
	name := a.labels.Get(src.entity).name
	children := a.Children(src)

	var body *Body
	if a.bodies.Has(src.entity) {
		cp := *a.bodies.Get(src.entity)
		body = &cp
	}
	var obstacle *Obstacle
	if a.obstacles.Has(src.entity) {
		cp := *a.obstacles.Get(src.entity)
		obstacle = &cp
	}

	id := a.create(name, t, e)
	if body != nil {
		a.bodies.Add(id.entity, body)
	}
	if obstacle != nil {
		a.obstacles.Add(id.entity, obstacle)
	}
	for _, c := range children {
		cc := a.clone(c)
		a.attach(id, cc)
	}
	return id
}

// Destroy detaches the node from its parent and frees it with its subtree.
func (a *Arena) Destroy(id NodeID) {
	a.mustAlive(id, "Destroy")
	if id == a.root {
		panic("scene: cannot destroy root")
	}
	a.detach(id)
	a.free(id)
}

func (a *Arena) free(id NodeID) {
	for _, c := range a.Children(id) {
		a.free(c)
	}
	a.world.RemoveEntity(id.entity)
	a.count--
}

// SetObstacle attaches or replaces the node's obstacle data.
func (a *Arena) SetObstacle(id NodeID, o Obstacle) {
	a.mustAlive(id, "SetObstacle")
	if a.obstacles.Has(id.entity) {
		*a.obstacles.Get(id.entity) = o
		return
	}
	a.obstacles.Add(id.entity, &o)
}

// Obstacle returns the node's obstacle data, or nil if it has none.
// The pointer is valid until the next node is created or destroyed.
func (a *Arena) Obstacle(id NodeID) *Obstacle {
	a.mustAlive(id, "Obstacle")
	if !a.obstacles.Has(id.entity) {
		return nil
	}
	return a.obstacles.Get(id.entity)
}
