package refcount

import (
	"fmt"

	"github.com/buildbarn/bb-atomic/pkg/atomic"
)

// Invalid is the value of a reference count that belongs to an object
// that must never be released, such as a statically allocated error
// object that is shared by all callers.
const Invalid = -1

// ReferenceCount of a shared object. Objects are released by the
// caller that drops the last reference, as indicated by Dec().
type ReferenceCount struct {
	count atomic.Int
}

// Init sets the initial reference count. This must be done before the
// object is shared with other goroutines.
func (rc *ReferenceCount) Init(v int32) {
	rc.count.Initialize(v)
}

// Get the current reference count.
func (rc *ReferenceCount) Get() int32 {
	return rc.count.Get()
}

// IsInvalid returns whether the object is not subject to reference
// counting.
func (rc *ReferenceCount) IsInvalid() bool {
	return rc.count.Get() == Invalid
}

// HasReference returns whether at least one reference to the object
// is held.
func (rc *ReferenceCount) HasReference() bool {
	return rc.count.Get() > 0
}

// Inc acquires an additional reference. The caller must already hold
// a reference.
func (rc *ReferenceCount) Inc() {
	if !rc.HasReference() {
		panic(fmt.Sprintf("Attempted to acquire a reference on an object with reference count %d", rc.count.Get()))
	}
	rc.count.Inc()
}

// Dec releases a reference, returning true if it was the last one.
// In that case the caller is responsible for releasing the object.
func (rc *ReferenceCount) Dec() bool {
	if !rc.HasReference() {
		panic(fmt.Sprintf("Attempted to release a reference on an object with reference count %d", rc.count.Get()))
	}
	return rc.count.DecAndTest()
}
