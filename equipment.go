package funcdemo

import (
	"fmt"
	"io"
)

// Equipment is anything with an equipment type.
//
// It has a single method, so any func() string can stand in for it through
// EquipmentFunc. Optional behavior lives in separate interfaces (Exister)
// with package-level helpers supplying the default, so adding a capability
// never breaks existing implementations.
type Equipment interface {
	EquipmentType() string
}

// Exister is implemented by equipment that knows whether it already exists.
type Exister interface {
	IsExisting() bool
}

// IsExisting reports whether e already exists. Equipment that does not
// implement Exister is new.
func IsExisting(e Equipment) bool {
	if x, ok := e.(Exister); ok {
		return x.IsExisting()
	}
	return false
}

// Print writes "<type> (<existing>)" and a newline to w.
func Print(w io.Writer, e Equipment) error {
	_, err := fmt.Fprintf(w, "%s (%t)\n", e.EquipmentType(), IsExisting(e))
	return err
}

// CreateEquipment returns the equipment produced by supplier.
// Construction is deferred until this call.
func CreateEquipment(supplier Supplier[Equipment]) Equipment {
	return supplier.Get()
}

// EquipmentFunc is a functional binding for Equipment.
//
// Example:
//
//	valve := EquipmentFunc(func() string { return "Valve" })
//	Print(os.Stdout, valve) // Valve (false)
type EquipmentFunc func() string

// EquipmentType implements Equipment.
func (f EquipmentFunc) EquipmentType() string {
	return f()
}

// Closure is new equipment that closes off a line.
type Closure struct{}

// EquipmentType implements Equipment.
func (Closure) EquipmentType() string {
	return "Closure"
}

// ExistingManHole is a manhole that is already in place.
type ExistingManHole struct{}

// EquipmentType implements Equipment.
func (ExistingManHole) EquipmentType() string {
	return "ManHole"
}

// IsExisting implements Exister.
func (ExistingManHole) IsExisting() bool {
	return true
}
