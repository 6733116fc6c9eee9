package domain

import "strings"

// GuestIDPrefix marks locally generated, unauthenticated user ids. The
// prefix convention exists only at the parsing boundary; everything past
// ParseIdentity works with the tagged Identity value.
const GuestIDPrefix = "anon_"

type IdentityKind int

const (
	Anonymous IdentityKind = iota
	Authenticated
)

// Identity is a user id tagged with whether it is backed by an external
// identity provider. Anonymous identities may browse but not claim.
type Identity struct {
	Kind IdentityKind
	ID   string
}

func NewAnonymous(id string) Identity {
	return Identity{Kind: Anonymous, ID: id}
}

func NewAuthenticated(id string) Identity {
	return Identity{Kind: Authenticated, ID: id}
}

// ParseIdentity classifies a raw user id string from a request.
func ParseIdentity(raw string) (Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}, ErrInvalidArgument
	}
	if strings.HasPrefix(raw, GuestIDPrefix) {
		return NewAnonymous(raw), nil
	}
	return NewAuthenticated(raw), nil
}

func (i Identity) IsAnonymous() bool {
	return i.Kind == Anonymous
}
