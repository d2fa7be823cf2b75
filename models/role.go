package models

type Role string

const (
	RoleAnonymous  Role = ""
	RoleMember     Role = "member"
	RoleEditor     Role = "editor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Has reports whether the role is one of the required roles.
func (r Role) Has(required ...Role) bool {
	for _, req := range required {
		if r == req {
			return true
		}
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r.Has(RoleAdmin, RoleSuperAdmin)
}

func (r Role) CanEdit() bool {
	return r.Has(RoleEditor, RoleAdmin, RoleSuperAdmin)
}

func (r Role) Valid() bool {
	return r.Has(RoleMember, RoleEditor, RoleAdmin, RoleSuperAdmin)
}
