package server

import (
	"net/http"

	"github.com/cadencehq/cadence/internal/analytics"
)

func (s server) getOverview(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /analytics/overview Analytics GetOverview
	//
	// Returns KPI overview of posts published within the range.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: startDate
	//   description: inclusive lower bound of publishedAt, ISO 8601
	//   in: query
	//   required: false
	//   example: 2024-01-01
	// - name: endDate
	//   description: inclusive upper bound of publishedAt, ISO 8601
	//   in: query
	//   required: false
	//   example: 2024-01-31T23:59:59Z
	// - name: platform
	//   in: query
	//   required: false
	//   type: string
	//   enum: [twitter, linkedin, instagram, facebook, blog]
	// responses:
	//   '200':
	//     description: Overview
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	f, err := extractFilter(r.URL.Query())
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	o, err := s.s.GetOverview(r.Context(), f)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "get overview")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: o})
}

func (s server) getHeatmap(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /analytics/heatmap Analytics GetHeatmap
	//
	// Returns day of week by hour of day heatmap of weighted engagement.
	// Empty cells are omitted.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Heatmap
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	f, err := extractFilter(r.URL.Query())
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	h, err := s.s.GetHeatmap(r.Context(), f)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "get heatmap")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: h})
}

func (s server) getTimeSeries(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /analytics/timeseries Analytics GetTimeSeries
	//
	// Returns engagement trend.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: granularity
	//   in: query
	//   required: false
	//   default: day
	//   type: string
	//   enum: [hour, day, week]
	// responses:
	//   '200':
	//     description: Time series
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	q := r.URL.Query()

	f, err := extractFilter(q)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	g, err := analytics.ParseGranularity(q.Get("granularity"))
	if err != nil {
		writeValidationError(w, []FieldError{{Field: "granularity", Message: "Invalid granularity"}})
		return
	}

	points, err := s.s.GetTimeSeries(r.Context(), f, g)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "get time series")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: points})
}

func (s server) getTopPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /analytics/top-posts Analytics GetTopPosts
	//
	// Returns posts with the highest weighted score.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: limit
	//   in: query
	//   required: false
	//   default: 10
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Posts
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	q := r.URL.Query()

	f, err := extractFilter(q)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	limit, err := extractLimit(q, defaultTopPostsLimit)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	posts, err := s.s.GetTopPosts(r.Context(), f, limit)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "get top posts")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: toAPIPosts(posts)})
}

func (s server) getBestSlots(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /analytics/best-slots Analytics GetBestSlots
	//
	// Returns recommended publishing slots. Slots with less than 2 posts are never returned.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: limit
	//   in: query
	//   required: false
	//   default: 5
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Slots
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	q := r.URL.Query()

	f, err := extractFilter(q)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	limit, err := extractLimit(q, defaultBestSlotsLimit)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	slots, err := s.s.GetBestSlots(r.Context(), f, limit)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "get best slots")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: slots})
}

func (s server) getPlatformBreakdown(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /analytics/platforms Analytics GetPlatformBreakdown
	//
	// Returns per platform statistics sorted by average engagement.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Platforms
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	f, err := extractFilter(r.URL.Query())
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	p, err := s.s.GetPlatformBreakdown(r.Context(), f)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "get platform breakdown")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: p})
}
