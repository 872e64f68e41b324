package domain

// Actor identifies who performs an operation, for permission checks
// and the audit trail. EntityID is set only for business actors and
// names the entity their session is bound to.
type Actor struct {
	Name     string
	Role     Role
	EntityID string
}

// MayActOn reports whether the actor may mutate the given entity:
// admins may act on any entity, business actors only on their own.
func (a Actor) MayActOn(entityID string) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleBusiness:
		return a.EntityID == entityID
	default:
		return false
	}
}
