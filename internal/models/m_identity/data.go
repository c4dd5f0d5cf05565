package m_identity

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertRoleMutation builds the Spanner insert for a role.
func InsertRoleMutation(roleID, name string) *spanner.Mutation {
	return spanner.Insert(RolesTable, []string{ColRoleID, ColRoleName}, []interface{}{roleID, name})
}

// InsertPrincipalMutation builds the Spanner insert for a principal.
func InsertPrincipalMutation(principalID, identifier, secretHash string, createdAt time.Time) *spanner.Mutation {
	return spanner.Insert(PrincipalsTable,
		[]string{ColPrincipalID, ColIdentifier, ColSecretHash, ColCreatedAt},
		[]interface{}{principalID, identifier, secretHash, createdAt})
}

// InsertAssignmentMutation links a principal to a role.
func InsertAssignmentMutation(principalID, roleID string) *spanner.Mutation {
	return spanner.Insert(PrincipalRolesTable, []string{ColPrincipalID, ColRoleID}, []interface{}{principalID, roleID})
}
