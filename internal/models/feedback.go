package models

import "time"

// FeedbackOption is one of the reactions offered after witnessing a moment.
// Which option is chosen does not affect the witnessed-count policy.
type FeedbackOption struct {
	ID       string
	Label    string
	IsAction bool
}

// DefaultFeedbackOptions mirrors the four reactions of the feedback screen.
func DefaultFeedbackOptions() []FeedbackOption {
	return []FeedbackOption{
		{ID: "1", Label: "唤醒了某些时刻"},
		{ID: "2", Label: "感受到一种陪伴"},
		{ID: "3", Label: "只是路过这段时间"},
		{ID: "4", Label: "我也想去使用时间了", IsAction: true},
	}
}

// Post is a user-authored 10-minute record at the moment of archiving.
// Session-local: it is shown with its reflection and then discarded, no
// creation path wires it into the feed.
type Post struct {
	Content    string
	Public     bool
	AllowComic bool
	Reflection string
	ArchivedAt time.Time
}
