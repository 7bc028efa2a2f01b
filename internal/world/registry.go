package world

import (
	"slices"

	"go.uber.org/zap"

	"github.com/hackgame/arena/internal/core/ecs"
)

// Batch is one draw group: entities sharing a batch key, in insertion order.
type Batch struct {
	Key      BatchKey
	Entities []Entity
}

// partition keeps batches ordered by key.
type partition struct {
	keys    []BatchKey
	batches map[BatchKey][]Entity
}

func newPartition() partition {
	return partition{batches: make(map[BatchKey][]Entity)}
}

func (p *partition) insert(key BatchKey, e Entity) {
	if _, ok := p.batches[key]; !ok {
		i, _ := slices.BinarySearch(p.keys, key)
		p.keys = slices.Insert(p.keys, i, key)
	}
	p.batches[key] = append(p.batches[key], e)
}

func (p *partition) remove(key BatchKey, e Entity) bool {
	list := p.batches[key]
	i := slices.Index(list, e)
	if i < 0 {
		return false
	}
	p.batches[key] = slices.Delete(list, i, i+1)
	return true
}

func (p *partition) snapshot() []Batch {
	out := make([]Batch, 0, len(p.keys))
	for _, k := range p.keys {
		if list := p.batches[k]; len(list) > 0 {
			out = append(out, Batch{Key: k, Entities: list})
		}
	}
	return out
}

func (p *partition) count() int {
	n := 0
	for _, list := range p.batches {
		n += len(list)
	}
	return n
}

// Registry owns the live entity set.
//
// Live entities sit in exactly one of two partitions (opaque, transparent),
// grouped by batch key. Add and Remove only stage changes; Flush applies
// them once per frame after the tick pass, removals first. The damage
// target index is the exception: it follows Add and Remove immediately so
// a projectile spawned this frame can already be hit this frame.
//
// Every live entity gets a generational id, usable in events and lookups.
// Accessed only from the game loop goroutine, no locks.
type Registry struct {
	opaque      partition
	transparent partition

	toAdd    []Entity
	toRemove []Entity

	targets []Damageable

	pool *ecs.EntityPool
	ids  map[Entity]ecs.EntityID
	byID *ecs.Store[Entity]

	log *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		opaque:      newPartition(),
		transparent: newPartition(),
		toAdd:       make([]Entity, 0, 64),
		toRemove:    make([]Entity, 0, 64),
		pool:        ecs.NewEntityPool(),
		ids:         make(map[Entity]ecs.EntityID, 256),
		byID:        ecs.NewStore[Entity](256),
		log:         log,
	}
}

// partitionFor is the single placement rule for both insertion paths.
func (r *Registry) partitionFor(e Entity) (*partition, BatchKey) {
	if e.Transparent() {
		return &r.transparent, e.BatchKey()
	}
	return &r.opaque, e.BatchKey()
}

// InsertDirect makes e live immediately. Only for level construction,
// before any tick has run; insertion order is preserved within a batch.
func (r *Registry) InsertDirect(e Entity) {
	if e == nil {
		return
	}
	r.index(e)
	r.makeLive(e)
}

// Add stages e for the next Flush and indexes it as a damage target now.
func (r *Registry) Add(e Entity) {
	if e == nil {
		return
	}
	r.toAdd = append(r.toAdd, e)
	r.index(e)
}

// Remove stages e for removal and drops it from the damage target index now.
// An entity still waiting in the add queue is withdrawn and never goes live.
func (r *Registry) Remove(e Entity) {
	if e == nil {
		return
	}
	r.toRemove = append(r.toRemove, e)
	r.toAdd = slices.DeleteFunc(r.toAdd, func(x Entity) bool { return x == e })
	r.evict(e)
}

// Flush applies staged removals, then staged additions, then clears both
// queues. Must not be called during a tick pass.
func (r *Registry) Flush() {
	if len(r.toRemove) == 0 && len(r.toAdd) == 0 {
		return
	}
	removed, added := 0, 0

	for _, e := range r.toRemove {
		id, live := r.ids[e]
		if !live {
			continue
		}
		p, key := r.partitionFor(e)
		p.remove(key, e)
		delete(r.ids, e)
		r.byID.Remove(id)
		r.pool.Release(id)
		removed++
	}

	for _, e := range r.toAdd {
		if r.makeLive(e) {
			added++
		}
	}

	clear(r.toRemove)
	clear(r.toAdd)
	r.toRemove = r.toRemove[:0]
	r.toAdd = r.toAdd[:0]

	r.log.Debug("registry flush",
		zap.Int("added", added),
		zap.Int("removed", removed),
		zap.Int("live", len(r.ids)),
	)
}

func (r *Registry) makeLive(e Entity) bool {
	if _, live := r.ids[e]; live {
		return false
	}
	p, key := r.partitionFor(e)
	p.insert(key, e)
	id := r.pool.Create()
	r.ids[e] = id
	r.byID.Set(id, e)
	return true
}

// index adds enemy-side, non-invulnerable damageables to the target index.
func (r *Registry) index(e Entity) {
	d, ok := e.(Damageable)
	if !ok || d.Side() != SideEnemy || d.Invulnerable() {
		return
	}
	if slices.Contains(r.targets, d) {
		return
	}
	r.targets = append(r.targets, d)
}

// evict rebuilds the index without e. The previous backing array is left
// untouched so a caller ranging over Targets keeps a consistent view.
func (r *Registry) evict(e Entity) {
	d, ok := e.(Damageable)
	if !ok {
		return
	}
	i := slices.Index(r.targets, d)
	if i < 0 {
		return
	}
	next := make([]Damageable, 0, len(r.targets)-1)
	next = append(next, r.targets[:i]...)
	r.targets = append(next, r.targets[i+1:]...)
}

// Targets returns the damage targets for player-side projectiles.
func (r *Registry) Targets() []Damageable {
	return r.targets
}

// Opaque returns the opaque batches in key order. The slices alias live
// storage and stay valid until the next Flush.
func (r *Registry) Opaque() []Batch { return r.opaque.snapshot() }

// Transparent returns the transparent batches in key order.
func (r *Registry) Transparent() []Batch { return r.transparent.snapshot() }

// Each visits every live entity: opaque batches, then transparent ones.
func (r *Registry) Each(fn func(Entity)) {
	for _, b := range r.Opaque() {
		for _, e := range b.Entities {
			fn(e)
		}
	}
	for _, b := range r.Transparent() {
		for _, e := range b.Entities {
			fn(e)
		}
	}
}

// Live reports whether e currently sits in a partition.
func (r *Registry) Live(e Entity) bool {
	_, ok := r.ids[e]
	return ok
}

// ID returns the id assigned to e when it went live.
func (r *Registry) ID(e Entity) (ecs.EntityID, bool) {
	id, ok := r.ids[e]
	return id, ok
}

// Lookup resolves an id back to its entity while it is live.
func (r *Registry) Lookup(id ecs.EntityID) (Entity, bool) {
	if !r.pool.Alive(id) {
		return nil, false
	}
	return r.byID.Get(id)
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return r.opaque.count() + r.transparent.count()
}

// Pending returns the staged addition and removal counts.
func (r *Registry) Pending() (adds, removes int) {
	return len(r.toAdd), len(r.toRemove)
}
