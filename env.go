package natrix

// envCell is one binding in the environment chain — spec.md §3's
// "{name, value, next}" cell.
type envCell struct {
	name  string
	value Value
	next  *envCell
}

// Environment is natrix's single flat namespace: there are no nested
// scopes or functions in the grammar (spec.md Non-goals), so one
// linked list of cells, searched linearly, is the whole story.
// New names are inserted at the head on their first assignment;
// existing names are mutated in place, matching spec.md §4.8's
// "assignment either updates an existing binding or introduces a new
// one at the front of the chain."
type Environment struct {
	head *envCell
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment { return &Environment{} }

// Lookup returns the value bound to name, or ok == false if it has
// never been assigned — the source of spec.md §7's "undefined
// variable" fault.
func (e *Environment) Lookup(name string) (Value, bool) {
	for c := e.head; c != nil; c = c.next {
		if c.name == name {
			return c.value, true
		}
	}
	return nil, false
}

// Assign binds name to v, reusing an existing cell if name is already
// bound.
func (e *Environment) Assign(name string, v Value) {
	for c := e.head; c != nil; c = c.next {
		if c.name == name {
			c.value = v
			return
		}
	}
	e.head = &envCell{name: name, value: v, next: e.head}
}

// trace marks every value currently bound, as the GC's permanent root
// over and above the transient root stack — spec.md §4.6: bindings
// outlive any single allocation and so can't be expressed as a
// root/unroot pair.
func (e *Environment) trace(gc *GC) {
	for c := e.head; c != nil; c = c.next {
		gc.markValue(c.value)
	}
}
