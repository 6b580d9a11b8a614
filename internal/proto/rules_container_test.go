package proto

import (
	"bytes"
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func testContainer() *RulesContainer {
	return &RulesContainer{
		Users: []*User{
			{
				Id:        "superadmin1@bank.com",
				PublicKey: []byte{0x30, 0x59, 0x01, 0x02},
				Roles:     []Role{RoleSuperAdmin, RoleUser},
				Properties: map[string]string{
					"department": "treasury",
					"desk":       "otc",
				},
			},
			{Id: "approver1@bank.com", Roles: []Role{RoleRequestApprover}},
		},
		Groups: []*Group{
			{Id: "approvers", UserIds: []string{"approver1@bank.com", "superadmin1@bank.com"}},
		},
		MinimumDistinctUserSignatures:  2,
		MinimumDistinctGroupSignatures: 1,
		TransactionRules: []*TransactionRules{
			{
				Key: "default",
				Lines: []*TransactionRules_Line{
					{
						Cells: [][]byte{[]byte("ETH"), []byte("1000")},
						ParallelThresholds: []*SequentialThresholds{
							{Thresholds: []*GroupThreshold{{GroupId: "approvers", MinimumSignatures: 1}}},
						},
					},
				},
			},
		},
		AddressWhitelistingRules: []*AddressWhitelistingRules{
			{
				Currency: "ALGO",
				Network:  "mainnet",
				ParallelThresholds: []*SequentialThresholds{
					{Thresholds: []*GroupThreshold{{GroupId: "approvers", MinimumSignatures: 2}}},
				},
			},
		},
		ContractAddressWhitelistingRules: []*ContractAddressWhitelistingRules{
			{
				Blockchain: "ETH",
				Network:    "mainnet",
				ParallelThresholds: []*SequentialThresholds{
					{Thresholds: []*GroupThreshold{{GroupId: "approvers", MinimumSignatures: 1}}},
				},
			},
		},
		EnforcedRulesHash:           "deadbeef",
		Properties:                  map[string]string{"version": "4"},
		Timestamp:                   1721980800,
		MinimumCommitmentSignatures: 1,
		EngineIdentities:            []string{"engine-a", "engine-b"},
		HsmSlotId:                   7,
	}
}

func TestRulesContainerRoundTrip(t *testing.T) {
	original := testContainer()

	data := original.Marshal()
	if len(data) == 0 {
		t.Fatal("Marshal returned no bytes")
	}

	decoded := &RulesContainer{}
	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch:\noriginal: %+v\ndecoded:  %+v", original, decoded)
	}
}

func TestRulesContainerMarshalDeterministic(t *testing.T) {
	c := testContainer()
	first := c.Marshal()
	for i := 0; i < 8; i++ {
		if !bytes.Equal(first, c.Marshal()) {
			t.Fatal("Marshal is not deterministic")
		}
	}
}

func TestRulesContainerUnmarshalSkipsUnknownFields(t *testing.T) {
	data := testContainer().Marshal()

	// A future schema revision may add fields. They must be skipped.
	data = protowire.AppendTag(data, 99, protowire.VarintType)
	data = protowire.AppendVarint(data, 42)
	data = protowire.AppendTag(data, 100, protowire.BytesType)
	data = protowire.AppendString(data, "future")

	decoded := &RulesContainer{}
	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal failed on unknown fields: %v", err)
	}
	if len(decoded.Users) != 2 {
		t.Errorf("expected 2 users, got %d", len(decoded.Users))
	}
}

func TestUserRolesUnpackedDecode(t *testing.T) {
	// Roles written one varint field at a time instead of packed.
	var data []byte
	data = protowire.AppendTag(data, 1, protowire.BytesType)
	data = protowire.AppendString(data, "user@bank.com")
	for _, r := range []Role{RoleSuperAdmin, RoleOperator} {
		data = protowire.AppendTag(data, 3, protowire.VarintType)
		data = protowire.AppendVarint(data, uint64(r))
	}

	u := &User{}
	if err := u.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := []Role{RoleSuperAdmin, RoleOperator}
	if !reflect.DeepEqual(u.Roles, want) {
		t.Errorf("roles = %v, want %v", u.Roles, want)
	}
}

func TestRulesContainerUnmarshalGarbage(t *testing.T) {
	// 0xFF opens a varint tag that never terminates.
	garbage := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	decoded := &RulesContainer{}
	if err := decoded.Unmarshal(garbage); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestRulesContainerUnmarshalEmpty(t *testing.T) {
	decoded := &RulesContainer{}
	if err := decoded.Unmarshal(nil); err != nil {
		t.Fatalf("Unmarshal failed on empty input: %v", err)
	}
	if len(decoded.Users) != 0 || len(decoded.Groups) != 0 {
		t.Error("empty input should decode to an empty container")
	}
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUnspecified, "UNSPECIFIED"},
		{RoleSuperAdmin, "SUPERADMIN"},
		{RoleHSMSlot, "HSMSLOT"},
		{RoleRequestApprover, "REQUESTAPPROVER"},
		{RoleUser, "USER"},
		{RoleOperator, "OPERATOR"},
		{Role(12), "UNKNOWN_12"},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("Role(%d).String() = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestRoleFromString(t *testing.T) {
	for _, r := range []Role{RoleUnspecified, RoleSuperAdmin, RoleHSMSlot, RoleRequestApprover, RoleUser, RoleOperator, Role(12)} {
		if got := RoleFromString(r.String()); got != r {
			t.Errorf("RoleFromString(%q) = %d, want %d", r.String(), got, r)
		}
	}
	if got := RoleFromString("no-such-role"); got != RoleUnspecified {
		t.Errorf("RoleFromString of unknown name = %d, want %d", got, RoleUnspecified)
	}
}

func TestUserSignaturesRoundTrip(t *testing.T) {
	original := &UserSignatures{
		Signatures: []*UserSignature{
			{UserId: "superadmin1@bank.com", Signature: []byte{0x30, 0x45, 0x02, 0x21}},
			{UserId: "superadmin2@bank.com", Signature: []byte{0x30, 0x44, 0x02, 0x20}},
		},
	}

	data := original.Marshal()
	decoded := &UserSignatures{}
	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch:\noriginal: %+v\ndecoded:  %+v", original, decoded)
	}
}

func TestNilMessageGetters(t *testing.T) {
	var c *RulesContainer
	if c.GetUsers() != nil || c.GetGroups() != nil || c.GetHsmSlotId() != 0 {
		t.Error("nil container getters should return zero values")
	}
	var u *User
	if u.GetId() != "" || u.GetPublicKey() != nil || u.GetRoles() != nil {
		t.Error("nil user getters should return zero values")
	}
	var s *UserSignatures
	if s.GetSignatures() != nil {
		t.Error("nil signatures getter should return zero values")
	}
}
