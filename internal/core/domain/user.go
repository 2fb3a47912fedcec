package domain

// User models an account owning zero or more places. Places lists the ids of
// every place whose Creator field equals this user's id; both sides are kept
// in sync inside a single database transaction.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Image        string   `json:"image"`
	Places       []string `json:"places"`
}
