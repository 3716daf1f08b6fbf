package article

import "time"

// Article is an editorial piece identified publicly by Number.
type Article struct {
	ID        string
	Number    int
	Title     string
	Content   string
	Author    string
	Photo     string
	CreatedAt *time.Time
}
