package shared

// Vendor holds the seller-facing profile attached to a user account
type Vendor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserProfile represents the viewer profile as persisted by the login flow.
// The profile is server-owned; the client only projects it.
type UserProfile struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	IsVendor string  `json:"is_vendor"`
	Vendor   *Vendor `json:"vendor,omitempty"`
}

// VendorComplete reports whether the user may list new items
func (u *UserProfile) VendorComplete() bool {
	return u != nil && u.IsVendor == "Yes"
}

// VendorName returns the display name used when attributing comments
func (u *UserProfile) VendorName() string {
	if u == nil || u.Vendor == nil {
		return ""
	}
	return u.Vendor.Name
}

// Session mirrors the persisted login state. Every field is nullable:
// an absent store yields the anonymous session, never an error.
type Session struct {
	IsLoggedIn bool
	User       *UserProfile
	Token      string
}

// Anonymous returns the session used when nothing is persisted
func Anonymous() Session {
	return Session{}
}

// Authenticated reports whether the viewer can take the authenticated fetch path
func (s Session) Authenticated() bool {
	return s.IsLoggedIn && s.Token != ""
}

// HasIdentity reports whether a viewer identity resolved from storage
func (s Session) HasIdentity() bool {
	return s.IsLoggedIn && s.User != nil
}
