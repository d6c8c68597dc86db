package models

// Document is the full persisted state: every user, in creation order.
// It is loaded whole before each operation and saved whole after each
// mutation.
type Document struct {
	Users []*User `json:"users"`
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{Users: make([]*User, 0)}
}

// FindByName returns the user with the exact, case-sensitive name, or nil.
// Linear scan; the uniqueness invariant means at most one user matches.
func (d *Document) FindByName(name string) *User {
	for _, u := range d.Users {
		if u.UserName == name {
			return u
		}
	}
	return nil
}

// Exists reports whether a user with the given name is registered
func (d *Document) Exists(name string) bool {
	return d.FindByName(name) != nil
}

// Add appends a user, preserving creation order
func (d *Document) Add(u *User) {
	d.Users = append(d.Users, u)
}

// Clone returns a deep copy of the document
func (d *Document) Clone() *Document {
	clone := &Document{Users: make([]*User, 0, len(d.Users))}
	for _, u := range d.Users {
		copied := *u
		clone.Users = append(clone.Users, &copied)
	}
	return clone
}
