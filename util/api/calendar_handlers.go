package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/seanchosc/Life-Platforms-Suite/service"
)

const feedTimeLayout = "2006-01-02T15:04:05"

// CalendarFeedHandler returns the caller's events as a calendar feed, the
// flat shape fullcalendar consumes. Optional ?from=YYYY-MM-DD&to=YYYY-MM-DD
// window.
// GET /api/events/feed
func CalendarFeedHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	feed, err := service.CalendarFeed(profile.ID, from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, feed)
}

// CalendarICSHandler serves the same feed as an iCalendar file, so the
// calendar can be subscribed to from external clients.
// GET /api/events/feed.ics
func CalendarICSHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	feed, err := service.CalendarFeed(profile.ID, r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//Life Platforms Suite//Calendar//EN")

	now := time.Now()
	for _, entry := range feed {
		start, err := time.ParseInLocation(feedTimeLayout, entry.Start, time.Local)
		if err != nil {
			log.Printf("Skipping feed entry %d with bad start %q: %v", entry.ID, entry.Start, err)
			continue
		}
		end, err := time.ParseInLocation(feedTimeLayout, entry.End, time.Local)
		if err != nil {
			end = start
		}

		ev := cal.AddEvent(fmt.Sprintf("event-%d@life-platforms", entry.ID))
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(entry.Title)
		ev.SetURL(entry.URL)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
	if _, err := fmt.Fprint(w, cal.Serialize()); err != nil {
		log.Printf("Error writing ICS feed for profile %d: %v", profile.ID, err)
	}
}
