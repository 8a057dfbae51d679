package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const exportTimeLayout = "2006-01-02T15:04:05.000Z"

var csvHeader = []string{"id", "content", "headline", "platform", "scheduledAt", "status", "publishedAt", "tags", "createdAt"}

func (s server) exportCSV(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /export/csv Export ExportCSV
	//
	// Exports scheduled content as csv attachment.
	//
	// ---
	// produces:
	// - text/csv
	// responses:
	//   '200':
	//     description: CSV file
	//   '404':
	//     description: nothing to export
	//     schema:
	//       "$ref": "#/definitions/Error"

	f, err := extractScheduledFilter(r.URL.Query())
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	items, _, err := s.s.ListScheduled(r.Context(), f)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "list scheduled content")
		return
	}

	if len(items) == 0 {
		writeError(w, http.StatusNotFound, "No content found for export")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", s.attachment("csv"))
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, csvHeader)
	for _, v := range items {
		publishedAt := ""
		if v.PublishedAt != nil {
			publishedAt = v.PublishedAt.UTC().Format(exportTimeLayout)
		}

		rows = append(rows, []string{
			v.ID,
			v.Content,
			v.Headline,
			string(v.Platform),
			v.ScheduledAt.UTC().Format(exportTimeLayout),
			string(v.Status),
			publishedAt,
			strings.Join(v.Tags, ", "),
			v.CreatedAt.UTC().Format(exportTimeLayout),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		log.WithError(err).Error("failed to write csv")
	}
}

func (s server) exportJSON(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /export/json Export ExportJSON
	//
	// Exports scheduled content as json attachment.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: JSON file
	//     schema:
	//       "$ref": "#/definitions/ExportResponse"

	f, err := extractScheduledFilter(r.URL.Query())
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	items, _, err := s.s.ListScheduled(r.Context(), f)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "list scheduled content")
		return
	}

	w.Header().Set("Content-Disposition", s.attachment("json"))
	writeJSON(w, http.StatusOK, ExportResponse{
		ExportedAt: s.now().UTC(),
		Count:      len(items),
		Data:       toAPIScheduledList(items),
	})
}

func (s server) attachment(ext string) string {
	return fmt.Sprintf("attachment; filename=scheduled-content-%d.%s", s.now().UnixNano()/int64(time.Millisecond), ext)
}
