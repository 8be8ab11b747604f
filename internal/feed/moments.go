// Package feed supplies the moments shown on the feed screen and the
// AI-generated comic tab.
package feed

import (
	"math/rand"

	"github.com/sunyue-dev/time-exchange/internal/models"
)

// Source supplies witnessable moments.
type Source interface {
	// Moments returns the feed content in display order.
	Moments() []models.Moment

	// Pick returns one moment for the "exchange another 10 minutes" path.
	Pick() models.Moment
}

// StaticSource serves the fixed seeded moments; there is no creation path for
// user-posted moments in this version.
type StaticSource struct {
	moments []models.Moment
}

var _ Source = (*StaticSource)(nil)

// NewStaticSource returns the seeded mock feed.
func NewStaticSource() *StaticSource {
	return &StaticSource{
		moments: []models.Moment{
			{
				ID:          "0001",
				Author:      "时间使者 #0001",
				Avatar:      "https://picsum.photos/seed/user1/100/100",
				Location:    "1.2km away",
				ContentURL:  "https://picsum.photos/seed/moment1/600/800",
				Description: "午后茶歇，看茶叶在杯中舒展。",
				Timestamp:   "10:00",
				Type:        models.MomentTypeVideo,
			},
			{
				ID:          "0042",
				Author:      "时间使者 #0042",
				Avatar:      "https://picsum.photos/seed/user2/100/100",
				Location:    "0.5km away",
				ContentURL:  "https://picsum.photos/seed/moment2/600/800",
				Description: "窗边的一束阳光，落在老旧的书脊上。",
				Timestamp:   "05:23",
				Type:        models.MomentTypeImage,
			},
		},
	}
}

func (s *StaticSource) Moments() []models.Moment {
	out := make([]models.Moment, len(s.moments))
	copy(out, s.moments)
	return out
}

func (s *StaticSource) Pick() models.Moment {
	return s.moments[rand.Intn(len(s.moments))]
}
