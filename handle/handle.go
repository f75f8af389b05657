// Package handle provides move-only ownership of raw operating system
// resource values. A Unique holds at most one native value at a time and
// releases it exactly once, no matter how ownership is reset, transferred,
// or exchanged.
package handle

// Traits describes a class of native resource: the value that marks an empty
// owner and the syscall that releases an owned value.
//
// Implementations should be zero-size value types. A Unique instantiates its
// traits on demand, which keeps the zero value of Unique usable as an empty
// owner whenever InvalidValue is the zero value of T.
type Traits[T comparable] interface {
	// InvalidValue returns the value that marks an empty owner.
	InvalidValue() T

	// CloseHandle releases an owned value.
	CloseHandle(value T) error
}

// Unique owns at most one native resource value of type T. Ownership moves
// only through explicit operations (Reset, Release, Swap); copying a Unique
// duplicates ownership and is a caller error.
//
// Unique is not synchronized. Mutating the same owner from multiple
// goroutines without external synchronization is a caller error.
type Unique[T comparable, TR Traits[T]] struct {
	value T
}

// New adopts value into a fresh owner. The value is not validated.
func New[T comparable, TR Traits[T]](value T) Unique[T, TR] {
	return Unique[T, TR]{value: value}
}

// NativeHandle returns the owned value without transferring ownership.
func (u *Unique[T, TR]) NativeHandle() T {
	return u.value
}

// Valid reports whether the owner holds something other than the invalid
// value.
func (u *Unique[T, TR]) Valid() bool {
	var tr TR
	return u.value != tr.InvalidValue()
}

// Reset releases the currently owned value, if any, and adopts value in its
// place. Resetting to the value already held is a no-op. Reports whether the
// owner is valid afterwards.
func (u *Unique[T, TR]) Reset(value T) bool {
	if u.value != value {
		u.closeCurrent()
		u.value = value
	}
	return u.Valid()
}

// Clear releases the owned value and leaves the owner empty. Clearing an
// empty owner is a no-op.
func (u *Unique[T, TR]) Clear() {
	var tr TR
	u.closeCurrent()
	u.value = tr.InvalidValue()
}

// Release transfers the owned value to the caller without releasing it. The
// owner is left empty; the caller becomes responsible for the value.
func (u *Unique[T, TR]) Release() T {
	var tr TR
	value := u.value
	u.value = tr.InvalidValue()
	return value
}

// Equal reports whether both owners hold the same raw value.
func (u *Unique[T, TR]) Equal(other *Unique[T, TR]) bool {
	return u.value == other.value
}

// Swap exchanges the owned values of u and other.
func (u *Unique[T, TR]) Swap(other *Unique[T, TR]) {
	u.value, other.value = other.value, u.value
}

func (u *Unique[T, TR]) closeCurrent() {
	var tr TR
	if u.value == tr.InvalidValue() {
		return
	}
	// Teardown has nowhere to surface a close failure.
	_ = tr.CloseHandle(u.value)
}
