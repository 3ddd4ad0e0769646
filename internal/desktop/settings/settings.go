package settings

const maxRecentPages = 10

var Defaults = Settings{
	RecentPages: []string{},
}

// Settings are the desktop preferences persisted between runs. They never
// hold page content nor credentials.
type Settings struct {
	LastPageID  string   `json:"lastPageId"`
	RecentPages []string `json:"recentPages"`
}

// Remember marks pageID as the last used page and moves it to the front of
// the recent pages.
func (s *Settings) Remember(pageID string) {
	recent := make([]string, 0, maxRecentPages)
	recent = append(recent, pageID)

	for _, id := range s.RecentPages {
		if id == pageID {
			continue
		}

		if len(recent) == maxRecentPages {
			break
		}

		recent = append(recent, id)
	}

	s.LastPageID = pageID
	s.RecentPages = recent
}
