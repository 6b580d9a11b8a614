package proto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// UserSignatures is the wire form of a rules signature blob.
type UserSignatures struct {
	Signatures []*UserSignature
}

// UserSignature is one user signature over the rules container bytes. The
// signature travels as raw DER bytes.
type UserSignature struct {
	UserId    string
	Signature []byte
}

func (m *UserSignatures) GetSignatures() []*UserSignature {
	if m == nil {
		return nil
	}
	return m.Signatures
}

// Marshal encodes the signature blob in protobuf wire form.
func (m *UserSignatures) Marshal() []byte {
	if m == nil {
		return nil
	}
	var b []byte
	for _, s := range m.Signatures {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, s.Marshal())
	}
	return b
}

// Unmarshal decodes protobuf wire bytes into the signature blob.
func (m *UserSignatures) Unmarshal(data []byte) error {
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
			s := &UserSignature{}
			if err := s.Unmarshal(v); err != nil {
				return err
			}
			m.Signatures = append(m.Signatures, s)
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

func (m *UserSignature) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

func (m *UserSignature) GetSignature() []byte {
	if m == nil {
		return nil
	}
	return m.Signature
}

// Marshal encodes the signature in protobuf wire form.
func (m *UserSignature) Marshal() []byte {
	if m == nil {
		return nil
	}
	var b []byte
	if m.UserId != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.UserId)
	}
	if len(m.Signature) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Signature)
	}
	return b
}

// Unmarshal decodes protobuf wire bytes into the signature.
func (m *UserSignature) Unmarshal(data []byte) error {
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
			m.UserId = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Signature = append([]byte(nil), v...)
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
