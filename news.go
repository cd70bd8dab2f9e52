package cryptodash

import (
	"fmt"
	"time"
)

// NewsItem is a headline of the news feed.
type NewsItem struct {
	id       int
	headline string
	category string
	age      time.Duration
}

func (n NewsItem) ID() int            { return n.id }
func (n NewsItem) Headline() string   { return n.headline }
func (n NewsItem) Category() string   { return n.category }
func (n NewsItem) Age() time.Duration { return n.age }
func (n NewsItem) AgeLabel() string   { return RelativeLabel(n.age) }

// DefaultNews returns the static news feed, most recent first.
func DefaultNews() []NewsItem {
	return []NewsItem{
		{1, "Quantum computers are revolutionizing blockchain technology", "Technology", 2 * time.Hour},
		{2, "Martian colony launches its own crypto economy", "Space", 5 * time.Hour},
		{3, "AI algorithms predict a 300% rise of Bitcoin", "Forecast", 8 * time.Hour},
		{4, "Neural interfaces let traders trade by the power of thought", "Innovation", 12 * time.Hour},
	}
}

// RelativeLabel renders an age as a short relative timestamp such as
// "2 hours ago".
func RelativeLabel(age time.Duration) string {
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return plural(int(age/time.Minute), "minute") + " ago"
	case age < 24*time.Hour:
		return plural(int(age/time.Hour), "hour") + " ago"
	default:
		return plural(int(age/(24*time.Hour)), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
