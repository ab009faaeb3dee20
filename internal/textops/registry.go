package textops

import (
	"fmt"
	"sort"
	"sync"
)

// Global operation registry. Populated by init functions in this package;
// read-only afterwards unless tests register extras.
var (
	registry   = make(map[string]Operation)
	registryMu sync.RWMutex
)

// Register adds an operation to the global registry. Names must be unique.
func Register(op Operation) error {
	if op == nil {
		return fmt.Errorf("cannot register nil operation")
	}
	name := op.Name()
	if name == "" {
		return fmt.Errorf("operation name cannot be empty")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("operation %s is already registered", name)
	}
	registry[name] = op
	return nil
}

// mustRegister panics on a duplicate registration. Used only from init
// functions, where a duplicate is a programming error.
func mustRegister(op Operation) {
	if err := Register(op); err != nil {
		panic(err)
	}
}

// Lookup retrieves an operation by name.
func Lookup(name string) (Operation, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	op, ok := registry[name]
	return op, ok
}

// List returns all registered operations sorted by name.
func List() []Operation {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ops := make([]Operation, 0, len(registry))
	for _, op := range registry {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name() < ops[j].Name() })
	return ops
}

// ListByType returns registered operations of the given type, sorted by name.
func ListByType(opType OperationType) []Operation {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ops := make([]Operation, 0)
	for _, op := range registry {
		if op.Type() == opType {
			ops = append(ops, op)
		}
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name() < ops[j].Name() })
	return ops
}

// Unregister removes an operation from the registry (mainly for testing).
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, name)
}
