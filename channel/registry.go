package channel

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Registry holds the process-wide channel metadata: the immutable brother
// group table and the name-to-channel table.
//
// The group table is built when the registry is created and never changes.
// The name table grows on Lookup of unseen names and is guarded by a mutex.
type Registry struct {
	groups [groupCount]GroupInfo

	mu     sync.Mutex
	fold   cases.Caser
	byName map[string]Channel
	names  [MaxChannels]string
	next   Channel
}

// NewRegistry returns a registry holding the built-in groups and channel
// names. Most callers want Default instead.
func NewRegistry() *Registry {
	r := &Registry{
		groups: buildGroupTable(),
		fold:   cases.Fold(),
		byName: make(map[string]Channel),
		next:   firstUser,
	}
	for c := Red; c < firstUser; c++ {
		r.names[c] = builtinNames[c]
		r.byName[builtinNames[c]] = c
	}
	for alias, c := range map[string]Channel{"r": Red, "g": Green, "b": Blue, "a": Alpha, "z": Depth} {
		r.byName[alias] = c
	}
	return r
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry() }

// Group returns the description of g.
func (r *Registry) Group(g Group) (GroupInfo, error) {
	if g >= groupCount {
		return GroupInfo{}, fmt.Errorf("%w: %d", ErrUnknownGroup, uint8(g))
	}
	return r.groups[g], nil
}

// Groups returns every registered group except GroupNone.
func (r *Registry) Groups() []GroupInfo {
	out := make([]GroupInfo, 0, groupCount-1)
	for _, g := range r.groups[GroupNone+1:] {
		out = append(out, g)
	}
	return out
}

// key normalizes a channel name. The caller must hold r.mu.
func (r *Registry) key(name string) string {
	return r.fold.String(strings.TrimSpace(name))
}

// Find returns the channel registered under name without creating one.
func (r *Registry) Find(name string) (Channel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byName[r.key(name)]
	return c, ok
}

// Lookup returns the channel registered under name, allocating a new
// channel id for names not seen before.
func (r *Registry) Lookup(name string) (Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := r.key(name)
	if k == "" {
		return None, ErrEmptyName
	}
	if c, ok := r.byName[k]; ok {
		return c, nil
	}
	if r.next >= MaxChannels {
		return None, fmt.Errorf("%w: cannot register %q", ErrTooManyChannels, name)
	}
	c := r.next
	r.next++
	r.byName[k] = c
	r.names[c] = strings.TrimSpace(name)
	return c, nil
}

// Name returns the name a channel was registered under.
func (r *Registry) Name(c Channel) (string, bool) {
	if c >= MaxChannels {
		return "", false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	name := r.names[c]
	return name, name != ""
}

// Len returns the number of channel ids in use, None excluded.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int(r.next) - 1
}

// Lookup resolves name through the default registry.
func Lookup(name string) (Channel, error) { return Default().Lookup(name) }

// Find resolves name through the default registry without allocating.
func Find(name string) (Channel, bool) { return Default().Find(name) }
