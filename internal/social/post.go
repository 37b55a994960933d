// Package social serves the fixed social feed shown on the dashboard.
package social

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/2beens/befit/internal/screen"

	"github.com/google/uuid"
)

const CommandChat = "chat"

type Post struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Workout  string    `json:"workout"`
	PostedAt time.Time `json:"postedAt"`
	Avatar   string    `json:"avatar"`
}

type FeedItem struct {
	ID       uuid.UUID     `json:"id"`
	Username string        `json:"username"`
	Workout  string        `json:"workout"`
	TimeAgo  string        `json:"timeAgo"`
	Avatar   string        `json:"avatar"`
	Chat     screen.Action `json:"chat"`
}

// RelativeLabel describes how long ago t was, seen from now.
func RelativeLabel(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	case d < 48*time.Hour:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", int(d/(24*time.Hour)))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

type Catalog struct {
	mu     sync.RWMutex
	posts  []Post
	assets screen.Assets
}

func NewCatalog(posts []Post, assets screen.Assets) *Catalog {
	c := &Catalog{assets: assets}
	for _, p := range posts {
		c.Add(p)
	}
	return c
}

func (c *Catalog) Add(p Post) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	c.mu.Lock()
	c.posts = append(c.posts, p)
	c.mu.Unlock()
}

// Feed lists the posts newest first with labels relative to now.
func (c *Catalog) Feed(now time.Time) []FeedItem {
	c.mu.RLock()
	posts := make([]Post, len(c.posts))
	copy(posts, c.posts)
	c.mu.RUnlock()

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PostedAt.After(posts[j].PostedAt)
	})

	items := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, FeedItem{
			ID:       p.ID,
			Username: p.Username,
			Workout:  p.Workout,
			TimeAgo:  RelativeLabel(p.PostedAt, now),
			Avatar:   c.assets.Resolve(p.Avatar),
			Chat: screen.Action{
				Label:   "Chat",
				Command: CommandChat,
				Icon:    "message.fill",
				Payload: map[string]any{"username": p.Username},
			},
		})
	}
	return items
}
