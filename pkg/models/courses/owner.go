package courses

// OwnerKind discriminates the variants of an OwnerID.
type OwnerKind int

const (
	// OwnerUnset is the zero OwnerID; it encodes as empty text.
	OwnerUnset OwnerKind = iota
	OwnerEmail
	OwnerNumericID
	OwnerMe
)

const meAlias = "me"

// OwnerID identifies the owner of a course: an email address, a numeric user
// ID, or the alias "me" for the requesting user. Emails are not validated and
// numeric IDs are only checked when parsed.
//
// Encoding is lossy: an Email holding "me" or only digits decodes back as Me
// or an ID.
type OwnerID struct {
	kind  OwnerKind
	value string
}

// Me is the requesting user.
var Me = OwnerID{kind: OwnerMe}

// Email builds an owner identified by email address.
func Email(address string) OwnerID {
	return OwnerID{kind: OwnerEmail, value: address}
}

// ID builds an owner identified by numeric user ID. The text is not checked;
// an ID holding non-digits encodes unchanged but decodes as an Email.
func ID(id string) OwnerID {
	return OwnerID{kind: OwnerNumericID, value: id}
}

// ParseOwnerID resolves text in a fixed order: the literal "me", then one or
// more ASCII digits, then anything else as an email. It never fails.
func ParseOwnerID(text string) OwnerID {
	if text == meAlias {
		return Me
	}
	if isDigits(text) {
		return ID(text)
	}
	return Email(text)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Kind returns the active variant.
func (o OwnerID) Kind() OwnerKind { return o.kind }

// IsZero reports whether no variant is set.
func (o OwnerID) IsZero() bool { return o.kind == OwnerUnset }

// IsMe reports whether o is the requesting-user alias.
func (o OwnerID) IsMe() bool { return o.kind == OwnerMe }

// Email returns the address for the Email variant.
func (o OwnerID) Email() (string, bool) {
	return o.value, o.kind == OwnerEmail
}

// NumericID returns the user ID for the ID variant.
func (o OwnerID) NumericID() (string, bool) {
	return o.value, o.kind == OwnerNumericID
}

// String returns the wire text.
func (o OwnerID) String() string {
	if o.kind == OwnerMe {
		return meAlias
	}
	return o.value
}

// MarshalText implements encoding.TextMarshaler.
func (o OwnerID) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OwnerID) UnmarshalText(text []byte) error {
	*o = ParseOwnerID(string(text))
	return nil
}
