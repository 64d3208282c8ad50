package domain

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	IsAdmin bool   `json:"isAdmin"`
}

// PublicUser is the shape returned by auth endpoints; the admin flag
// travels only inside the token claims.
type PublicUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Mobile: u.Mobile}
}
