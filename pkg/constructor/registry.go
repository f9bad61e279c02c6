package constructor

import (
	"fmt"
	"sort"
	"sync"

	"github.com/utopianit-base/recgen/pkg/model"
)

// Registry stores constructors by name so later, unrelated code can look
// them up and invoke them. Registration is overwrite-not-additive:
// regenerating a type replaces its constructor, which makes repeated
// generation idempotent. Map access is safe for concurrent use, but two
// concurrent registrations under the same name resolve to whichever lands
// last; callers needing a stronger ordering must serialise generation
// themselves.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]*Constructor
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]*Constructor),
	}
}

// Register installs a constructor under its name, replacing any previous
// registration.
func (r *Registry) Register(c *Constructor) error {
	if c == nil {
		return fmt.Errorf("constructor: registry requires a constructor")
	}
	if c.Name() == "" {
		return fmt.Errorf("constructor: registry requires a named constructor")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.constructors[c.Name()] = c
	return nil
}

// Get retrieves a constructor by name.
func (r *Registry) Get(name string) (*Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.constructors[name]
	if !ok {
		return nil, fmt.Errorf("constructor: %q not registered", name)
	}
	return c, nil
}

// MustGet panics if the constructor is missing.
func (r *Registry) MustGet(name string) *Constructor {
	c, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Has reports whether a constructor is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.constructors[name]
	return ok
}

// List returns the sorted names of all registered constructors.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke looks up a constructor by name and builds a record from the given
// positional arguments.
func (r *Registry) Invoke(name string, args ...any) (*model.Record, error) {
	c, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return c.NewRecord(args...)
}
