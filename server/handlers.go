package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/urban-mobility-tools/bikeflow/formatter"
	"github.com/urban-mobility-tools/bikeflow/utils"
)

type healthResponse struct {
	Status    string `json:"status"`
	Stations  int    `json:"stations"`
	Trips     int    `json:"trips"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:    "ok",
		Stations:  len(s.idx.Stations),
		Trips:     len(s.idx.Trips),
		Timestamp: utils.Iso8601Now(),
	})
}

func (s *Server) handleMarkersJSON(w http.ResponseWriter, r *http.Request) {
	s.serveMarkers(w, r, "json")
}

func (s *Server) handleMarkersGeoJSON(w http.ResponseWriter, r *http.Request) {
	s.serveMarkers(w, r, "geojson")
}

func (s *Server) serveMarkers(w http.ResponseWriter, r *http.Request, format string) {
	w.Header().Set("Content-Type", "application/json")
	rb := formatter.NewResponseBuilder()
	buf, err := s.render(lowercaseParams(r.URL.Query()), format)
	if err != nil {
		status := http.StatusInternalServerError
		var qe *QueryError
		if errors.As(err, &qe) {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		_, _ = w.Write(rb.BuildErrorJSON(err.Error()))
		return
	}
	_, _ = w.Write(buf)
}

// render applies the request's filter and viewport events in pipeline order
// (the filter redraw first, then the cheap viewport reposition) and
// serializes the resulting snapshot. The server lock spans the whole
// sequence: events from two requests must not interleave between event
// application, cache-key computation and snapshot capture.
func (s *Server) render(params map[string]string, format string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filter, filterPresent, err := parseFilterParam(params["filter"])
	if err != nil {
		return nil, err
	}
	vp, vpPresent, err := parseViewportParams(params, s.merc.Viewport())
	if err != nil {
		return nil, err
	}

	if filterPresent {
		if err := s.orch.SetTimeFilter(filter); err != nil {
			return nil, err
		}
	}
	if vpPresent {
		s.merc.SetViewport(vp)
		s.orch.OnViewportChange()
	}

	effective := s.merc.Viewport()
	key := s.cache.memoKey(
		format,
		itoa(s.orch.TimeFilter()),
		ftoa(effective.CenterLon), ftoa(effective.CenterLat), ftoa(effective.Zoom),
		itoa(effective.Width), itoa(effective.Height),
	)
	if buf, ok := s.cache.get(key); ok {
		return buf, nil
	}

	snap := s.orch.Snapshot()
	rb := formatter.NewResponseBuilder()
	var buf []byte
	if format == "geojson" {
		buf = rb.BuildGeoJSON(snap)
	} else {
		buf = rb.BuildJSON(snap)
	}
	s.cache.put(key, buf)
	return buf, nil
}
