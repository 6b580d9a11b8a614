package proto

import "fmt"

// Role is the governance role enum carried by rules container users.
type Role int32

const (
	RoleUnspecified     Role = 0
	RoleSuperAdmin      Role = 1
	RoleHSMSlot         Role = 2
	RoleRequestApprover Role = 3
	RoleUser            Role = 4
	RoleOperator        Role = 5
)

var roleNames = map[Role]string{
	RoleUnspecified:     "UNSPECIFIED",
	RoleSuperAdmin:      "SUPERADMIN",
	RoleHSMSlot:         "HSMSLOT",
	RoleRequestApprover: "REQUESTAPPROVER",
	RoleUser:            "USER",
	RoleOperator:        "OPERATOR",
}

var roleValues = map[string]Role{
	"UNSPECIFIED":     RoleUnspecified,
	"SUPERADMIN":      RoleSuperAdmin,
	"HSMSLOT":         RoleHSMSlot,
	"REQUESTAPPROVER": RoleRequestApprover,
	"USER":            RoleUser,
	"OPERATOR":        RoleOperator,
}

// String returns the role name. Values outside the known range render as
// "UNKNOWN_<n>" so that new platform roles survive a decode and encode
// round trip.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_%d", int32(r))
}

// RoleFromString parses a role name, accepting the "UNKNOWN_<n>" form
// produced by String for unknown values.
func RoleFromString(name string) Role {
	if role, ok := roleValues[name]; ok {
		return role
	}
	var n int32
	if _, err := fmt.Sscanf(name, "UNKNOWN_%d", &n); err == nil {
		return Role(n)
	}
	return RoleUnspecified
}
