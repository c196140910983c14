package entity

type PrincipalKind string

const (
	KindStudent   PrincipalKind = "student"
	KindCounselor PrincipalKind = "counselor"
)

// Principal is the one authenticated-actor type the whole API works with.
// Every handler receives it from the auth middleware and every
// authorization decision consumes it; nothing else inspects concrete
// user types.
type Principal struct {
	Kind PrincipalKind
	ID   uint
}

func (p Principal) IsStudent() bool   { return p.Kind == KindStudent }
func (p Principal) IsCounselor() bool { return p.Kind == KindCounselor }
