package server

import (
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/cadencehq/cadence/internal/analytics"
	"github.com/cadencehq/cadence/internal/insights"
	"github.com/cadencehq/cadence/internal/service"
)

const timingSlotsLimit = 5

func (s server) generateHeadlines(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /ai/headlines AI GenerateHeadlines
	//
	// Generates headline candidates for the content.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Headlines
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '429':
	//     description: too many requests
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req HeadlinesRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	count := insights.DefaultHeadlinesCount
	if req.Count != nil {
		count = *req.Count
	}

	in := insights.HeadlinesRequest{
		Content:   req.Content,
		Tone:      optTone(req.Tone),
		Count:     count,
		MaxLength: req.MaxLength,
	}
	if platform := optPlatform(req.Platform); platform != nil {
		in.Platform = *platform
	}

	res, err := s.a.GenerateHeadlines(r.Context(), in)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "generate headlines")
		return
	}

	writeOK(w, http.StatusOK, Response{
		Data:   res.Headlines,
		Cached: cached(res.Cached),
	})
}

func (s server) rewrite(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /ai/rewrite AI Rewrite
	//
	// Rewrites the content in the target tone.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Rewritten content
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req RewriteRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	in := insights.RewriteRequest{
		Content:        req.Content,
		TargetTone:     optTone(req.TargetTone),
		ReferenceStyle: req.ReferenceStyle,
	}
	if platform := optPlatform(req.Platform); platform != nil {
		in.Platform = *platform
	}

	res, err := s.a.Rewrite(r.Context(), in)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "rewrite content")
		return
	}

	writeOK(w, http.StatusOK, Response{
		Data:   res,
		Cached: cached(res.Cached),
	})
}

func (s server) explainTiming(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /ai/explain-timing AI ExplainTiming
	//
	// Explains why the best slots perform well.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Explanation
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ExplainTimingRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	f := service.Filter{
		Range: analytics.Range{
			From: optTime(req.StartDate),
			To:   optTime(req.EndDate),
		},
		Platform: optPlatform(req.Platform),
	}

	var (
		slots   []analytics.Slot
		heatmap *analytics.Heatmap
	)

	gr, ctx := errgroup.WithContext(r.Context())
	gr.Go(func() (err error) {
		slots, err = s.s.GetBestSlots(ctx, f, timingSlotsLimit)
		return err
	})
	gr.Go(func() (err error) {
		heatmap, err = s.s.GetHeatmap(ctx, f)
		return err
	})

	if err := gr.Wait(); err != nil {
		writeServiceError(r.Context(), w, err, "", "get timing analytics")
		return
	}

	res, err := s.a.ExplainTiming(r.Context(), insights.NewTimingRequest(slots, heatmap, f.Platform, f.Range))
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "explain timing")
		return
	}

	writeOK(w, http.StatusOK, Response{
		Data:   res,
		Cached: cached(res.Cached),
	})
}

func (s server) classifyTone(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /ai/classify-tone AI ClassifyTone
	//
	// Classifies the tone of the content.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Tone
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ClassifyToneRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	res, err := s.a.ClassifyTone(r.Context(), req.Content)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "classify tone")
		return
	}

	writeOK(w, http.StatusOK, Response{
		Data:   res,
		Cached: cached(res.Cached),
	})
}

func (s server) getUsage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /ai/usage AI GetUsage
	//
	// Returns AI usage statistics.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: days
	//   in: query
	//   required: false
	//   default: 30
	// responses:
	//   '200':
	//     description: Usage
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	days := insights.DefaultUsageDays
	if q := r.URL.Query().Get("days"); q != "" {
		v, err := strconv.ParseUint(q, 10, 16)
		if err != nil || v == 0 {
			writeValidationError(w, []FieldError{{Field: "days", Message: "Invalid days"}})
			return
		}
		days = int(v)
	}

	stats, err := s.a.UsageStats(r.Context(), days)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "get usage stats")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: stats})
}
