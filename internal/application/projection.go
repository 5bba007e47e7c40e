package application

import (
	"encoding/json"
)

// UserProjection is the external view of a user returned by the API and
// stored in the cache. Addresses are deliberately absent.
type UserProjection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Cached values carry an explicit version tag so that consumers can reject
// entries written in a shape they do not understand instead of guessing.
const projectionCodecVersion = 1

type cachedProjection struct {
	V     int    `json:"v"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func encodeProjection(p *UserProjection) ([]byte, error) {
	return json.Marshal(cachedProjection{
		V:     projectionCodecVersion,
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
	})
}

// decodeProjection rejects anything that is not a well-formed, current
// version entry with a non-empty id. Callers treat a failure as a corrupt
// cache entry, fatal for the request.
func decodeProjection(raw []byte) (*UserProjection, error) {
	var c cachedProjection
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, ErrCorruptCache
	}
	if c.V != projectionCodecVersion || c.ID == "" {
		return nil, ErrCorruptCache
	}
	return &UserProjection{ID: c.ID, Name: c.Name, Email: c.Email}, nil
}
