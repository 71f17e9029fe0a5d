package manage_clients

// FindOrCreateClientRequest HTTP request model
type FindOrCreateClientRequest struct {
	Name string `json:"name"`
}
