package auth

// RoleUser is the single capability every authenticated principal carries.
const RoleUser = "USER"

// Principal is the in-memory identity attached to a request after a
// successful credential or token validation. It is a plain value derived
// from a User at resolution time and is never cached across requests.
type Principal struct {
	id          int64
	username    string
	displayName string
	active      bool
	roles       []string
}

// NewPrincipal builds a Principal from a stored identity.
func NewPrincipal(user *User) *Principal {
	if user == nil {
		return nil
	}
	return &Principal{
		id:          user.ID,
		username:    user.Username,
		displayName: user.DisplayName,
		active:      user.Active,
		roles:       []string{RoleUser},
	}
}

// ID returns the stable numeric identifier.
func (p *Principal) ID() int64 {
	return p.id
}

// Username returns the unique login name.
func (p *Principal) Username() string {
	return p.username
}

// DisplayName returns the human readable name.
func (p *Principal) DisplayName() string {
	return p.displayName
}

// IsActive reports whether the account may authenticate.
func (p *Principal) IsActive() bool {
	return p.active
}

// Roles returns a copy of the capability set.
func (p *Principal) Roles() []string {
	out := make([]string, len(p.roles))
	copy(out, p.roles)
	return out
}

// HasRole checks membership in the capability set.
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.roles {
		if r == role {
			return true
		}
	}
	return false
}
