package server

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"
)

const defaultWebhookEvent = "content.published"

func (s server) publish(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /publish/{id} Publish Publish
	//
	// Publishes scheduled content immediately.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Published content and publisher result
	//   '400':
	//     description: content already published
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	c, err := s.s.Publish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, scheduledNotFound, "publish")
		return
	}

	writeOK(w, http.StatusOK, Response{
		Data:          toAPIScheduled(c),
		PublishResult: toAPIPublishResult(c.PublishResult),
	})
}

func (s server) bulkPublish(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /publish/bulk Publish BulkPublish
	//
	// Publishes several items. Missing and already published items are reported as failed.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Per item results and summary
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req BulkPublishRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "IDs array is required")
		return
	}

	results, err := s.s.BulkPublish(r.Context(), req.IDs)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "bulk publish")
		return
	}

	summary := BulkSummary{Total: len(results)}
	items := make([]BulkPublishItem, len(results))
	for i, v := range results {
		item := BulkPublishItem{
			ID:      v.ID,
			Success: v.Success,
			Reason:  v.Reason,
		}
		if v.Result != nil {
			item.Message = v.Result.Message
			item.ExternalID = v.Result.ExternalID
			item.Platform = v.Result.Platform
			ts := v.Result.Timestamp
			item.Timestamp = &ts
		}

		if v.Success {
			summary.Published++
		} else {
			summary.Failed++
		}
		items[i] = item
	}

	writeOK(w, http.StatusOK, Response{
		Data:    items,
		Summary: &summary,
	})
}

func (s server) simulateWebhook(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /webhook/simulate Publish SimulateWebhook
	//
	// Builds webhook payload for the content and logs it instead of delivering.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Payload
	//   '404':
	//     description: not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req WebhookRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	c, err := s.s.GetScheduled(r.Context(), req.ID)
	if err != nil {
		writeServiceError(r.Context(), w, err, "Content not found", "get scheduled content")
		return
	}

	event := req.Event
	if event == "" {
		event = defaultWebhookEvent
	}

	payload := WebhookPayload{
		Event:     event,
		Timestamp: s.now().UTC(),
		Data: WebhookData{
			ID:          c.ID,
			Content:     c.Content,
			Headline:    c.Headline,
			Platform:    c.Platform,
			ScheduledAt: c.ScheduledAt,
			Status:      c.Status,
			PublishedAt: c.PublishedAt,
		},
	}

	log.WithFields(logrus.Fields{
		"event":    event,
		"id":       c.ID,
		"platform": c.Platform,
	}).Info("webhook simulated")

	writeOK(w, http.StatusOK, Response{
		Message: "Webhook simulated successfully",
		Payload: payload,
	})
}
