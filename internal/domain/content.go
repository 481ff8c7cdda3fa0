package domain

import (
	"encoding/json"
	"time"
)

// Fields are the identifying attributes of a catalog item.
type Fields struct {
	ID         int64
	Name       string
	Duration   int64 // seconds
	Provider   string
	MediaType  string
	ProviderID string
	ExpiresAt  int64 // epoch milliseconds
}

type Content struct {
	id         int64
	Name       string
	Duration   int64
	Provider   string
	MediaType  string
	ProviderID string
	ExpiresAt  int64
	watched    bool
}

func NewContent(f Fields) *Content {
	return &Content{
		id:         f.ID,
		Name:       f.Name,
		Duration:   f.Duration,
		Provider:   f.Provider,
		MediaType:  f.MediaType,
		ProviderID: f.ProviderID,
		ExpiresAt:  f.ExpiresAt,
	}
}

func (c *Content) ID() int64 {
	return c.id
}

func (c *Content) Fields() Fields {
	return Fields{
		ID:         c.id,
		Name:       c.Name,
		Duration:   c.Duration,
		Provider:   c.Provider,
		MediaType:  c.MediaType,
		ProviderID: c.ProviderID,
		ExpiresAt:  c.ExpiresAt,
	}
}

func (c *Content) IsWatched() bool {
	return c.watched
}

// MarkWatched is one-way: there is no way to clear the flag.
func (c *Content) MarkWatched() {
	c.watched = true
}

// IsExpired compares against the wall clock on every call.
func (c *Content) IsExpired() bool {
	return c.expiredAt(time.Now())
}

func (c *Content) expiredAt(now time.Time) bool {
	return c.ExpiresAt < now.UnixMilli()
}

type contentJSON struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Duration   int64  `json:"duration"`
	Provider   string `json:"provider"`
	MediaType  string `json:"media_type"`
	ProviderID string `json:"provider_id"`
	ExpiresAt  int64  `json:"expires_at"`
	Watched    bool   `json:"watched"`
	Expired    bool   `json:"expired"`
}

func (c *Content) MarshalJSON() ([]byte, error) {
	return json.Marshal(contentJSON{
		ID:         c.id,
		Name:       c.Name,
		Duration:   c.Duration,
		Provider:   c.Provider,
		MediaType:  c.MediaType,
		ProviderID: c.ProviderID,
		ExpiresAt:  c.ExpiresAt,
		Watched:    c.watched,
		Expired:    c.IsExpired(),
	})
}

// UnmarshalJSON restores the watched flag; expired is derived and ignored.
func (c *Content) UnmarshalJSON(data []byte) error {
	var v contentJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Content{
		id:         v.ID,
		Name:       v.Name,
		Duration:   v.Duration,
		Provider:   v.Provider,
		MediaType:  v.MediaType,
		ProviderID: v.ProviderID,
		ExpiresAt:  v.ExpiresAt,
		watched:    v.Watched,
	}
	return nil
}
