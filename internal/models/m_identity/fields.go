package m_identity

// Tables backing roles, principals and their assignments.
const (
	RolesTable          = "roles"
	PrincipalsTable     = "principals"
	PrincipalRolesTable = "principal_roles"

	ColRoleID      = "role_id"
	ColRoleName    = "name"
	ColPrincipalID = "principal_id"
	ColIdentifier  = "identifier"
	ColSecretHash  = "secret_hash"
	ColCreatedAt   = "created_at"
)
