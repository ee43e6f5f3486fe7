package types

import (
	"errors"
	"sync"
)

// DefaultEffectiveness is the multiplier for any pair without an explicit
// entry. An unset pair and a pair explicitly set to 1.0 read the same.
const DefaultEffectiveness = 1.0

// Type registry errors.
var (
	ErrTypeNotFound  = errors.New("type not found")
	ErrAmbiguousType = errors.New("type name is ambiguous")
)

// TypeID identifies a Type node within the Registry that issued it. IDs are
// arena indices: stable for the registry's lifetime and never reused.
//
// An ID is only meaningful to the Registry that issued it. Registries number
// their nodes independently, so an ID passed to another Registry either is
// unknown there or names an unrelated node.
type TypeID int

// typeNode is one arena slot. against holds the multipliers of attacking
// types on this node, keyed by attacker ID.
type typeNode struct {
	name    string
	against map[TypeID]float64
}

// Registry owns every Type node and the effectiveness relation between
// them. Relations are stored as ID-to-ID entries, so self and mutual
// match-ups hold no references to the nodes themselves.
//
// A Registry is safe for concurrent use; the expected pattern is to build it
// once at startup and read it afterwards.
type Registry struct {
	mu    sync.RWMutex
	nodes []typeNode
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewType adds a node with the given display name and returns its ID.
// Names need not be unique; two nodes with the same name are unrelated.
func (r *Registry) NewType(name string) TypeID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nodes = append(r.nodes, typeNode{name: name})
	return TypeID(len(r.nodes) - 1)
}

// SetEffectiveness records how strongly attacker acts on defender,
// overwriting any earlier value for the pair. The multiplier is stored as
// given; no range is enforced. defender and attacker may be the same node.
// Returns ErrTypeNotFound if either ID was not issued by this registry.
func (r *Registry) SetEffectiveness(defender, attacker TypeID, multiplier float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.validLocked(defender) || !r.validLocked(attacker) {
		return ErrTypeNotFound
	}
	node := &r.nodes[defender]
	if node.against == nil {
		node.against = make(map[TypeID]float64)
	}
	node.against[attacker] = multiplier
	return nil
}

// Effectiveness returns the multiplier of attacker on defender, or
// DefaultEffectiveness when none was set. It never fails: an ID this
// registry did not issue has no relations and reads as the default.
func (r *Registry) Effectiveness(defender, attacker TypeID) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.validLocked(defender) {
		return DefaultEffectiveness
	}
	if m, ok := r.nodes[defender].against[attacker]; ok {
		return m
	}
	return DefaultEffectiveness
}

// Relations returns a copy of the explicit entries for defender, keyed by
// attacker. Returns an empty map (not nil) when there are none.
func (r *Registry) Relations(defender TypeID) map[TypeID]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.validLocked(defender) {
		return map[TypeID]float64{}
	}
	against := r.nodes[defender].against
	result := make(map[TypeID]float64, len(against))
	for k, v := range against {
		result[k] = v
	}
	return result
}

// Name returns the display name of the node.
func (r *Registry) Name(id TypeID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.validLocked(id) {
		return "", ErrTypeNotFound
	}
	return r.nodes[id].name, nil
}

// Rename changes the display name of the node. Relations are unaffected.
func (r *Registry) Rename(id TypeID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.validLocked(id) {
		return ErrTypeNotFound
	}
	r.nodes[id].name = name
	return nil
}

// Lookup returns the first node (lowest ID) with the given name.
// Returns ErrTypeNotFound if no node has that name.
func (r *Registry) Lookup(name string) (TypeID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.nodes {
		if r.nodes[i].name == name {
			return TypeID(i), nil
		}
	}
	return 0, ErrTypeNotFound
}

// LookupAll returns every node with the given name in creation order.
func (r *Registry) LookupAll(name string) []TypeID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []TypeID
	for i := range r.nodes {
		if r.nodes[i].name == name {
			ids = append(ids, TypeID(i))
		}
	}
	return ids
}

// Types returns the IDs of all nodes in creation order.
func (r *Registry) Types() []TypeID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]TypeID, len(r.nodes))
	for i := range ids {
		ids[i] = TypeID(i)
	}
	return ids
}

// Len returns the number of nodes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// validLocked reports whether id was issued by this registry.
// The caller must hold r.mu.
func (r *Registry) validLocked(id TypeID) bool {
	return id >= 0 && int(id) < len(r.nodes)
}
