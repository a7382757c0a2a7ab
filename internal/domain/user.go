package domain

// User is the read model of the externally managed account record. The
// admission engine only needs it to address notifications.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
