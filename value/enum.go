package value

import "github.com/arloliu/sbekit/prim"

// EnumName looks up the declared name of an enum value. Generated code
// supplies the names table; unknown values report ok == false.
func EnumName[E comparable](e E, names map[E]string) (string, bool) {
	name, ok := names[e]
	return name, ok
}

// Choice is one named bit of a bitset, in schema declaration order.
type Choice struct {
	Name  string
	Index uint8
}

// VisitChoices reports every choice of b to fn in declaration order, each as
// (name, set).
func VisitChoices[T prim.Unsigned](b Bitset[T], choices []Choice, fn func(name string, set bool)) {
	for _, c := range choices {
		fn(c.Name, b.Test(c.Index))
	}
}
