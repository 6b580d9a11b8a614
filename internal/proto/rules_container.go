package proto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// RulesContainer is the wire form of a governance rules container.
type RulesContainer struct {
	Users                            []*User
	Groups                           []*Group
	MinimumDistinctUserSignatures    uint32
	MinimumDistinctGroupSignatures   uint32
	TransactionRules                 []*TransactionRules
	AddressWhitelistingRules         []*AddressWhitelistingRules
	ContractAddressWhitelistingRules []*ContractAddressWhitelistingRules
	EnforcedRulesHash                string
	Properties                       map[string]string
	Timestamp                        int64
	MinimumCommitmentSignatures      uint32
	EngineIdentities                 []string
	HsmSlotId                        uint32
}

// User is one governance user entry. The public key travels as PKIX DER
// bytes; roles travel as enum values.
type User struct {
	Id         string
	PublicKey  []byte
	Roles      []Role
	Properties map[string]string
}

// Group is one governance group entry.
type Group struct {
	Id         string
	UserIds    []string
	Properties map[string]string
}

// GroupThreshold requires MinimumSignatures members of the referenced
// group.
type GroupThreshold struct {
	GroupId           string
	MinimumSignatures uint32
}

// SequentialThresholds is an ordered conjunction of group thresholds.
type SequentialThresholds struct {
	Thresholds []*GroupThreshold
}

// AddressWhitelistingRules is the approval rule for one currency and
// network pair.
type AddressWhitelistingRules struct {
	Currency           string
	Network            string
	ParallelThresholds []*SequentialThresholds
}

// ContractAddressWhitelistingRules is the approval rule for one blockchain
// and network pair.
type ContractAddressWhitelistingRules struct {
	Blockchain         string
	Network            string
	ParallelThresholds []*SequentialThresholds
}

// TransactionRules is one transaction governance rule table.
type TransactionRules struct {
	Key   string
	Lines []*TransactionRules_Line
}

// TransactionRules_Line is one row of a transaction rule table.
type TransactionRules_Line struct {
	Cells              [][]byte
	ParallelThresholds []*SequentialThresholds
}

func (m *RulesContainer) GetUsers() []*User {
	if m == nil {
		return nil
	}
	return m.Users
}

func (m *RulesContainer) GetGroups() []*Group {
	if m == nil {
		return nil
	}
	return m.Groups
}

func (m *RulesContainer) GetMinimumDistinctUserSignatures() uint32 {
	if m == nil {
		return 0
	}
	return m.MinimumDistinctUserSignatures
}

func (m *RulesContainer) GetMinimumDistinctGroupSignatures() uint32 {
	if m == nil {
		return 0
	}
	return m.MinimumDistinctGroupSignatures
}

func (m *RulesContainer) GetTransactionRules() []*TransactionRules {
	if m == nil {
		return nil
	}
	return m.TransactionRules
}

func (m *RulesContainer) GetAddressWhitelistingRules() []*AddressWhitelistingRules {
	if m == nil {
		return nil
	}
	return m.AddressWhitelistingRules
}

func (m *RulesContainer) GetContractAddressWhitelistingRules() []*ContractAddressWhitelistingRules {
	if m == nil {
		return nil
	}
	return m.ContractAddressWhitelistingRules
}

func (m *RulesContainer) GetEnforcedRulesHash() string {
	if m == nil {
		return ""
	}
	return m.EnforcedRulesHash
}

func (m *RulesContainer) GetProperties() map[string]string {
	if m == nil {
		return nil
	}
	return m.Properties
}

func (m *RulesContainer) GetTimestamp() int64 {
	if m == nil {
		return 0
	}
	return m.Timestamp
}

func (m *RulesContainer) GetMinimumCommitmentSignatures() uint32 {
	if m == nil {
		return 0
	}
	return m.MinimumCommitmentSignatures
}

func (m *RulesContainer) GetEngineIdentities() []string {
	if m == nil {
		return nil
	}
	return m.EngineIdentities
}

func (m *RulesContainer) GetHsmSlotId() uint32 {
	if m == nil {
		return 0
	}
	return m.HsmSlotId
}

// Marshal encodes the container in protobuf wire form.
func (m *RulesContainer) Marshal() []byte {
	if m == nil {
		return nil
	}
	var b []byte
	for _, u := range m.Users {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, u.Marshal())
	}
	for _, g := range m.Groups {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, g.Marshal())
	}
	if m.MinimumDistinctUserSignatures != 0 {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.MinimumDistinctUserSignatures))
	}
	if m.MinimumDistinctGroupSignatures != 0 {
		b = protowire.AppendTag(b, 4, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.MinimumDistinctGroupSignatures))
	}
	for _, r := range m.TransactionRules {
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendBytes(b, r.Marshal())
	}
	for _, r := range m.AddressWhitelistingRules {
		b = protowire.AppendTag(b, 6, protowire.BytesType)
		b = protowire.AppendBytes(b, r.Marshal())
	}
	for _, r := range m.ContractAddressWhitelistingRules {
		b = protowire.AppendTag(b, 7, protowire.BytesType)
		b = protowire.AppendBytes(b, r.Marshal())
	}
	if m.EnforcedRulesHash != "" {
		b = protowire.AppendTag(b, 8, protowire.BytesType)
		b = protowire.AppendString(b, m.EnforcedRulesHash)
	}
	b = appendStringMap(b, 9, m.Properties)
	if m.Timestamp != 0 {
		b = protowire.AppendTag(b, 10, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.Timestamp))
	}
	if m.MinimumCommitmentSignatures != 0 {
		b = protowire.AppendTag(b, 11, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.MinimumCommitmentSignatures))
	}
	for _, id := range m.EngineIdentities {
		b = protowire.AppendTag(b, 12, protowire.BytesType)
		b = protowire.AppendString(b, id)
	}
	if m.HsmSlotId != 0 {
		b = protowire.AppendTag(b, 13, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.HsmSlotId))
	}
	return b
}

// Unmarshal decodes protobuf wire bytes into the container. Unknown fields
// are skipped; fields with an unexpected wire type are treated as unknown.
func (m *RulesContainer) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			u := &User{}
			if err := u.Unmarshal(v); err != nil {
				return err
			}
			m.Users = append(m.Users, u)
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			g := &Group{}
			if err := g.Unmarshal(v); err != nil {
				return err
			}
			m.Groups = append(m.Groups, g)
			data = data[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.MinimumDistinctUserSignatures = uint32(v)
			data = data[n:]
		case num == 4 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.MinimumDistinctGroupSignatures = uint32(v)
			data = data[n:]
		case num == 5 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			r := &TransactionRules{}
			if err := r.Unmarshal(v); err != nil {
				return err
			}
			m.TransactionRules = append(m.TransactionRules, r)
			data = data[n:]
		case num == 6 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			r := &AddressWhitelistingRules{}
			if err := r.Unmarshal(v); err != nil {
				return err
			}
			m.AddressWhitelistingRules = append(m.AddressWhitelistingRules, r)
			data = data[n:]
		case num == 7 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			r := &ContractAddressWhitelistingRules{}
			if err := r.Unmarshal(v); err != nil {
				return err
			}
			m.ContractAddressWhitelistingRules = append(m.ContractAddressWhitelistingRules, r)
			data = data[n:]
		case num == 8 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.EnforcedRulesHash = v
			data = data[n:]
		case num == 9 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			key, value, err := consumeStringMapEntry(v)
			if err != nil {
				return err
			}
			if m.Properties == nil {
				m.Properties = make(map[string]string)
			}
			m.Properties[key] = value
			data = data[n:]
		case num == 10 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Timestamp = int64(v)
			data = data[n:]
		case num == 11 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.MinimumCommitmentSignatures = uint32(v)
			data = data[n:]
		case num == 12 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.EngineIdentities = append(m.EngineIdentities, v)
			data = data[n:]
		case num == 13 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.HsmSlotId = uint32(v)
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *User) GetId() string {
	if m == nil {
		return ""
	}
	return m.Id
}

func (m *User) GetPublicKey() []byte {
	if m == nil {
		return nil
	}
	return m.PublicKey
}

func (m *User) GetRoles() []Role {
	if m == nil {
		return nil
	}
	return m.Roles
}

func (m *User) GetProperties() map[string]string {
	if m == nil {
		return nil
	}
	return m.Properties
}

// Marshal encodes the user in protobuf wire form. Roles are packed.
func (m *User) Marshal() []byte {
	if m == nil {
		return nil
	}
	var b []byte
	if m.Id != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.Id)
	}
	if len(m.PublicKey) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, m.PublicKey)
	}
	if len(m.Roles) > 0 {
		var packed []byte
		for _, r := range m.Roles {
			packed = protowire.AppendVarint(packed, uint64(r))
		}
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	b = appendStringMap(b, 4, m.Properties)
	return b
}

// Unmarshal decodes protobuf wire bytes into the user. Roles are accepted
// in both packed and unpacked form.
func (m *User) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Id = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.PublicKey = append([]byte(nil), v...)
			data = data[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Roles = append(m.Roles, Role(v))
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			for len(packed) > 0 {
				v, vn := protowire.ConsumeVarint(packed)
				if vn < 0 {
					return protowire.ParseError(vn)
				}
				m.Roles = append(m.Roles, Role(v))
				packed = packed[vn:]
			}
			data = data[n:]
		case num == 4 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			key, value, err := consumeStringMapEntry(v)
			if err != nil {
				return err
			}
			if m.Properties == nil {
				m.Properties = make(map[string]string)
			}
			m.Properties[key] = value
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Group) GetId() string {
	if m == nil {
		return ""
	}
	return m.Id
}

func (m *Group) GetUserIds() []string {
	if m == nil {
		return nil
	}
	return m.UserIds
}

func (m *Group) GetProperties() map[string]string {
	if m == nil {
		return nil
	}
	return m.Properties
}

// Marshal encodes the group in protobuf wire form.
func (m *Group) Marshal() []byte {
	if m == nil {
		return nil
	}
	var b []byte
	if m.Id != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.Id)
	}
	for _, id := range m.UserIds {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, id)
	}
	b = appendStringMap(b, 3, m.Properties)
	return b
}

// Unmarshal decodes protobuf wire bytes into the group.
func (m *Group) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Id = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.UserIds = append(m.UserIds, v)
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			key, value, err := consumeStringMapEntry(v)
			if err != nil {
				return err
			}
			if m.Properties == nil {
				m.Properties = make(map[string]string)
			}
			m.Properties[key] = value
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *GroupThreshold) GetGroupId() string {
	if m == nil {
		return ""
	}
	return m.GroupId
}

func (m *GroupThreshold) GetMinimumSignatures() uint32 {
	if m == nil {
		return 0
	}
	return m.MinimumSignatures
}

// Marshal encodes the threshold in protobuf wire form.
func (m *GroupThreshold) Marshal() []byte {
	if m == nil {
		return nil
	}
	var b []byte
	if m.GroupId != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.GroupId)
	}
	if m.MinimumSignatures != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.MinimumSignatures))
	}
	return b
}

// Unmarshal decodes protobuf wire bytes into the threshold.
func (m *GroupThreshold) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.GroupId = v
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.MinimumSignatures = uint32(v)
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *SequentialThresholds) GetThresholds() []*GroupThreshold {
	if m == nil {
		return nil
	}
	return m.Thresholds
}

// Marshal encodes the sequence in protobuf wire form.
func (m *SequentialThresholds) Marshal() []byte {
	if m == nil {
		return nil
	}
	var b []byte
	for _, t := range m.Thresholds {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, t.Marshal())
	}
	return b
}

// Unmarshal decodes protobuf wire bytes into the sequence.
func (m *SequentialThresholds) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			t := &GroupThreshold{}
			if err := t.Unmarshal(v); err != nil {
				return err
			}
			m.Thresholds = append(m.Thresholds, t)
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *AddressWhitelistingRules) GetCurrency() string {
	if m == nil {
		return ""
	}
	return m.Currency
}

func (m *AddressWhitelistingRules) GetNetwork() string {
	if m == nil {
		return ""
	}
	return m.Network
}

func (m *AddressWhitelistingRules) GetParallelThresholds() []*SequentialThresholds {
	if m == nil {
		return nil
	}
	return m.ParallelThresholds
}

// Marshal encodes the rule in protobuf wire form.
func (m *AddressWhitelistingRules) Marshal() []byte {
	if m == nil {
		return nil
	}
	var b []byte
	if m.Currency != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.Currency)
	}
	if m.Network != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, m.Network)
	}
	for _, s := range m.ParallelThresholds {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, s.Marshal())
	}
	return b
}

// Unmarshal decodes protobuf wire bytes into the rule.
func (m *AddressWhitelistingRules) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Currency = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Network = v
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			s := &SequentialThresholds{}
			if err := s.Unmarshal(v); err != nil {
				return err
			}
			m.ParallelThresholds = append(m.ParallelThresholds, s)
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *ContractAddressWhitelistingRules) GetBlockchain() string {
	if m == nil {
		return ""
	}
	return m.Blockchain
}

func (m *ContractAddressWhitelistingRules) GetNetwork() string {
	if m == nil {
		return ""
	}
	return m.Network
}

func (m *ContractAddressWhitelistingRules) GetParallelThresholds() []*SequentialThresholds {
	if m == nil {
		return nil
	}
	return m.ParallelThresholds
}

// Marshal encodes the rule in protobuf wire form.
func (m *ContractAddressWhitelistingRules) Marshal() []byte {
	if m == nil {
		return nil
	}
	var b []byte
	if m.Blockchain != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.Blockchain)
	}
	if m.Network != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, m.Network)
	}
	for _, s := range m.ParallelThresholds {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, s.Marshal())
	}
	return b
}

// Unmarshal decodes protobuf wire bytes into the rule.
func (m *ContractAddressWhitelistingRules) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Blockchain = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Network = v
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			s := &SequentialThresholds{}
			if err := s.Unmarshal(v); err != nil {
				return err
			}
			m.ParallelThresholds = append(m.ParallelThresholds, s)
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *TransactionRules) GetKey() string {
	if m == nil {
		return ""
	}
	return m.Key
}

func (m *TransactionRules) GetLines() []*TransactionRules_Line {
	if m == nil {
		return nil
	}
	return m.Lines
}

// Marshal encodes the rule table in protobuf wire form.
func (m *TransactionRules) Marshal() []byte {
	if m == nil {
		return nil
	}
	var b []byte
	if m.Key != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.Key)
	}
	for _, l := range m.Lines {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, l.Marshal())
	}
	return b
}

// Unmarshal decodes protobuf wire bytes into the rule table.
func (m *TransactionRules) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Key = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			l := &TransactionRules_Line{}
			if err := l.Unmarshal(v); err != nil {
				return err
			}
			m.Lines = append(m.Lines, l)
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *TransactionRules_Line) GetCells() [][]byte {
	if m == nil {
		return nil
	}
	return m.Cells
}

func (m *TransactionRules_Line) GetParallelThresholds() []*SequentialThresholds {
	if m == nil {
		return nil
	}
	return m.ParallelThresholds
}

// Marshal encodes the line in protobuf wire form.
func (m *TransactionRules_Line) Marshal() []byte {
	if m == nil {
		return nil
	}
	var b []byte
	for _, c := range m.Cells {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, c)
	}
	for _, s := range m.ParallelThresholds {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, s.Marshal())
	}
	return b
}

// Unmarshal decodes protobuf wire bytes into the line.
func (m *TransactionRules_Line) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Cells = append(m.Cells, append([]byte(nil), v...))
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			s := &SequentialThresholds{}
			if err := s.Unmarshal(v); err != nil {
				return err
			}
			m.ParallelThresholds = append(m.ParallelThresholds, s)
			data = data[n:]
		default:
			var err error
			data, err = skipField(num, typ, data)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
