package server

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/service"
	"github.com/cadencehq/cadence/internal/storage"
)

const scheduledNotFound = "Scheduled content not found"

func (s server) listScheduled(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /scheduled Scheduled ListScheduled
	//
	// Returns scheduled content page sorted by scheduledAt.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: status
	//   in: query
	//   required: false
	//   type: string
	//   enum: [draft, scheduled, published, failed]
	// - name: limit
	//   in: query
	//   required: false
	//   default: 50
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Scheduled content
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, page, err := extractListScheduledParams(r.URL.Query())
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	items, total, err := s.s.ListScheduled(r.Context(), params)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "list scheduled content")
		return
	}

	writeOK(w, http.StatusOK, Response{
		Data:       toAPIScheduledList(items),
		Pagination: newPagination(page, int(params.Limit), total),
	})
}

func (s server) getCalendar(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /scheduled/calendar Scheduled GetCalendar
	//
	// Returns scheduled content as calendar events.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: start
	//   in: query
	//   required: false
	// - name: end
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: Events
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var v validation

	q := r.URL.Query()
	from := v.time(q.Get("start"), "start", "Invalid start date format")
	to := v.time(q.Get("end"), "end", "Invalid end date format")
	if err := v.err(); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	items, _, err := s.s.ListScheduled(r.Context(), &storage.ListScheduledParams{From: from, To: to})
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "list scheduled content")
		return
	}

	events := make([]CalendarEvent, len(items))
	for i, v := range items {
		events[i] = toCalendarEvent(v)
	}

	writeOK(w, http.StatusOK, Response{Data: events})
}

func (s server) getScheduled(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /scheduled/{id} Scheduled GetScheduled
	//
	// Returns scheduled content by id.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Scheduled content
	//   '404':
	//     description: not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	c, err := s.s.GetScheduled(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, scheduledNotFound, "get scheduled content")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: toAPIScheduled(c)})
}

func (s server) createScheduled(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /scheduled Scheduled CreateScheduled
	//
	// Creates scheduled content, status defaults to draft.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// responses:
	//   '201':
	//     description: Created
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreateScheduledRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	c := &entities.ScheduledContent{
		Content:     req.Content,
		Headline:    req.Headline,
		Platform:    *optPlatform(req.Platform),
		ScheduledAt: *optTime(req.ScheduledAt),
		Status:      entities.DraftStatus,
		Tags:        req.Tags,
	}
	if status := optStatus(req.Status); status != nil {
		c.Status = *status
	}

	c, err := s.s.CreateScheduled(r.Context(), c)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "create scheduled content")
		return
	}

	writeOK(w, http.StatusCreated, Response{Data: toAPIScheduled(c)})
}

func (s server) updateScheduled(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /scheduled/{id} Scheduled UpdateScheduled
	//
	// Updates scheduled content. Changing scheduledAt stores the previous time for undo.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Updated
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req UpdateScheduledRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	patch := service.ScheduledPatch{
		Content:     req.Content,
		Headline:    req.Headline,
		Tags:        req.Tags,
		Suggestions: req.AISuggestions,
	}

	if req.Platform != nil {
		patch.Platform = optPlatform(*req.Platform)
	}
	if req.ScheduledAt != nil {
		patch.ScheduledAt = optTime(*req.ScheduledAt)
	}
	if req.Status != nil {
		patch.Status = optStatus(*req.Status)
	}

	c, err := s.s.UpdateScheduled(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		writeServiceError(r.Context(), w, err, scheduledNotFound, "update scheduled content")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: toAPIScheduled(c)})
}

func (s server) undoReschedule(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /scheduled/{id}/undo-reschedule Scheduled UndoReschedule
	//
	// Swaps scheduledAt with previous scheduled time.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Restored
	//   '400':
	//     description: nothing to restore
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	c, err := s.s.UndoReschedule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, scheduledNotFound, "undo reschedule")
		return
	}

	writeOK(w, http.StatusOK, Response{
		Data:    toAPIScheduled(c),
		Message: "Schedule restored to previous time",
	})
}

func (s server) applySuggestion(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /scheduled/{id}/apply-suggestion Scheduled ApplySuggestion
	//
	// Sets headline from AI suggestion and marks it applied.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Applied
	//   '400':
	//     description: invalid suggestion index
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ApplySuggestionRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	if req.SuggestionIndex == nil {
		writeError(w, http.StatusBadRequest, "Invalid suggestion index")
		return
	}

	c, err := s.s.ApplySuggestion(r.Context(), chi.URLParam(r, "id"), *req.SuggestionIndex)
	if err != nil {
		writeServiceError(r.Context(), w, err, scheduledNotFound, "apply suggestion")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: toAPIScheduled(c)})
}

func (s server) deleteScheduled(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /scheduled/{id} Scheduled DeleteScheduled
	//
	// Deletes scheduled content.
	//
	// ---
	// responses:
	//   '200':
	//     description: Deleted
	//   '404':
	//     description: not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := s.s.DeleteScheduled(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(r.Context(), w, err, scheduledNotFound, "delete scheduled content")
		return
	}

	writeOK(w, http.StatusOK, Response{Message: "Scheduled content deleted"})
}
