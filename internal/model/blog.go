package model

import "time"

// BlogPost is an authored article in the `blog_posts` table. The slug
// is unique; only published posts are visible on the public surface.
type BlogPost struct {
	ID          uint64     // blog_posts.id
	Title       string     // blog_posts.title
	Slug        string     // blog_posts.slug
	Content     string     // blog_posts.content
	Excerpt     string     // blog_posts.excerpt
	Category    string     // blog_posts.category
	AuthorID    uint64     // blog_posts.author_id
	IsPublished bool       // blog_posts.is_published
	PublishedAt *time.Time // blog_posts.published_at (nullable)
	CreatedAt   time.Time  // blog_posts.created_at
	UpdatedAt   time.Time  // blog_posts.updated_at
}
