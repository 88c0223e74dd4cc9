package view

import "github.com/arloliu/sbekit/format"

// Kind classification is closed: every view and field wrapper reports
// exactly one of the format.Kind values, and KindOf recognizes nothing
// else. Generic code dispatches on it instead of probing for methods.

// Kinded is implemented by every classifiable view and field wrapper.
type Kinded interface {
	Kind() format.Kind
}

func (Composite) Kind() format.Kind { return format.KindComposite }
func (Message) Kind() format.Kind   { return format.KindMessage }

func (StaticArray[T]) Kind() format.Kind  { return format.KindArray }
func (DynamicArray[T]) Kind() format.Kind { return format.KindData }

func (FlatGroup[E]) Kind() format.Kind   { return format.KindGroup }
func (NestedGroup[E]) Kind() format.Kind { return format.KindGroup }

// KindOf classifies x, reporting ok=false for types outside the closed set.
func KindOf(x any) (format.Kind, bool) {
	k, ok := x.(Kinded)
	if !ok {
		return 0, false
	}
	return k.Kind(), true
}
