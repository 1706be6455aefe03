package server

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/pfrederiksen/gridiron-ical/internal/logger"
	"github.com/pfrederiksen/gridiron-ical/internal/storage"
)

type handler struct {
	store *storage.Store
	team  string
}

var landingTmpl = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Team}} Football Calendar</title></head>
<body>
  <h1>{{.Team}} Football Calendar</h1>
  <p>Add this calendar to your favorite calendar app using this URL:</p>
  <pre>http://YOUR_SERVER_URL/calendar.ics</pre>
  <p><a href="/calendar.ics">Download Calendar</a> &middot; <a href="/debug">Parsed schedule</a></p>
</body>
</html>
`))

var debugTmpl = template.Must(template.New("debug").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Team}} Football - Parsed Schedule</title></head>
<body>
  <h1>Parsed Schedule (season {{.SeasonYear}})</h1>
  <p>Last updated: {{.UpdatedAt}}</p>
  <table border="1" cellpadding="4">
    <tr>
      <th>Title</th><th>Start</th><th>End</th><th>Location</th>
      <th>Broadcast</th><th>Home</th><th>Raw date text</th><th>Raw time text</th>
    </tr>
    {{range .Games}}
    <tr>
      <td>{{.Title}}</td>
      <td>{{.Start.Format "2006-01-02 15:04 MST"}}</td>
      <td>{{.End.Format "2006-01-02 15:04 MST"}}</td>
      <td>{{.Location}}</td>
      <td>{{.Broadcast}}</td>
      <td>{{if .IsHome}}home{{else}}away{{end}}</td>
      <td>{{.RawDateText}}</td>
      <td>{{.RawTimeText}}</td>
    </tr>
    {{end}}
  </table>
</body>
</html>
`))

func (h *handler) landing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := landingTmpl.Execute(w, struct{ Team string }{h.team}); err != nil {
		logger.Error("rendering landing page", nil, err)
	}
}

func (h *handler) calendar(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Calendar()
	if err != nil {
		http.Error(w, "calendar not available", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="football.ics"`)
	w.Write([]byte(data))
}

func (h *handler) debug(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.LoadSnapshot()
	if err != nil {
		http.Error(w, "snapshot not available", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = debugTmpl.Execute(w, struct {
		Team string
		*storage.Snapshot
	}{h.team, snap})
	if err != nil {
		logger.Error("rendering debug page", nil, err)
	}
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":       "ok",
		"has_calendar": h.store.HasCalendar(),
	})
}

func (h *handler) metrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(logger.MetricsSnapshot())
}
