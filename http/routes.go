package http

import (
	"net/http"

	"github.com/rs/zerolog"
)

type Handlers struct {
	SLA      *SLAHandler
	Downtime *DowntimeHandler
	RTO      *RTOHandler
	State    *StateHandler
	Partials *PartialHandler
	Leads    *LeadHandler
}

// NewRouter mounts every route. Calculations and trial signups are rate
// limited per client IP; all requests are logged.
func NewRouter(h Handlers, limiter *RateLimiter, log zerolog.Logger) http.Handler {
	limited := func(f http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, log, f)
	}

	mux := http.NewServeMux()
	mux.Handle("/sla/calculate", limited(h.SLA.Calculate))
	mux.Handle("/sla/summary.txt", limited(h.SLA.Summary))
	mux.HandleFunc("/sla/tiers/default", h.SLA.DefaultTiers)

	mux.Handle("/downtime/calculate", limited(h.Downtime.Calculate))
	mux.Handle("/downtime/export.csv", limited(h.Downtime.ExportCSV))
	mux.Handle("/downtime/summary.txt", limited(h.Downtime.Summary))

	mux.Handle("/rto-rpo/calculate", limited(h.RTO.Calculate))
	mux.Handle("/rto-rpo/export.csv", limited(h.RTO.ExportCSV))
	mux.Handle("/rto-rpo/summary.txt", limited(h.RTO.Summary))

	mux.HandleFunc("/state/{token}", h.State.Decode)
	mux.HandleFunc("/partials/{name}", h.Partials.Get)
	mux.Handle("/trial", limited(h.Leads.Submit))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return RequestLogger(log, mux)
}
