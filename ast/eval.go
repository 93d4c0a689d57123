package ast

// Assignment is a total function from variable name to boolean, realised as
// a map: a name absent from the map evaluates to false. This is a
// deliberate, documented default that tests depend on.
type Assignment map[string]bool

// Get returns a's value for name, defaulting to false when name is absent.
func (a Assignment) Get(name string) bool {
	return a[name]
}

// Evaluate computes n's classical truth value under assignment a.
func Evaluate(n *Node, a Assignment) bool {
	switch n.Kind {
	case VarKind:
		return a.Get(n.Name)
	case NotKind:
		return !Evaluate(n.Left, a)
	case AndKind:
		return Evaluate(n.Left, a) && Evaluate(n.Right, a)
	case OrKind:
		return Evaluate(n.Left, a) || Evaluate(n.Right, a)
	case XorKind:
		return Evaluate(n.Left, a) != Evaluate(n.Right, a)
	case ImpliesKind:
		return !Evaluate(n.Left, a) || Evaluate(n.Right, a)
	case IffKind:
		return Evaluate(n.Left, a) == Evaluate(n.Right, a)
	default:
		panic("ast: unknown node kind in Evaluate")
	}
}
