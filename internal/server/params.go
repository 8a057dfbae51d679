package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cadencehq/cadence/internal/analytics"
	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/insights"
	"github.com/cadencehq/cadence/internal/service"
	"github.com/cadencehq/cadence/internal/storage"
)

var errInvalidRequest = errors.New("invalid request")

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTime parses ISO 8601 date or datetime, dates without zone are treated as UTC.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// validation collects field errors of query params and request bodies.
type validation []FieldError

func (v *validation) check(ok bool, field, message string) bool {
	if !ok {
		*v = append(*v, FieldError{Field: field, Message: message})
	}
	return ok
}

func (v validation) Error() string {
	msg := make([]string, len(v))
	for i, e := range v {
		msg[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return strings.Join(msg, "; ")
}

func (v validation) err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v *validation) time(s, field, message string) *time.Time {
	if s == "" {
		return nil
	}

	t, err := parseTime(s)
	if !v.check(err == nil, field, message) {
		return nil
	}

	return &t
}

func (v *validation) platform(s, field string) *entities.Platform {
	if s == "" {
		return nil
	}

	p, err := entities.ParsePlatform(s)
	if !v.check(err == nil, field, "Invalid platform") {
		return nil
	}

	return &p
}

func (v *validation) status(s, field string) *entities.Status {
	if s == "" {
		return nil
	}

	st, err := entities.ParseStatus(s)
	if !v.check(err == nil, field, "Invalid status") {
		return nil
	}

	return &st
}

// decode decodes json body into v and validates it.
func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body", errInvalidRequest)
	}
	return validateRequest(v)
}

func extractRange(q url.Values, v *validation) analytics.Range {
	return analytics.Range{
		From: v.time(q.Get("startDate"), "startDate", "Invalid start date format"),
		To:   v.time(q.Get("endDate"), "endDate", "Invalid end date format"),
	}
}

func extractFilter(q url.Values) (service.Filter, error) {
	var v validation

	f := service.Filter{
		Range:    extractRange(q, &v),
		Platform: v.platform(q.Get("platform"), "platform"),
	}

	return f, v.err()
}

func extractLimit(q url.Values, def int) (int, error) {
	s := q.Get("limit")
	if s == "" {
		return def, nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
	}

	if v > maxLimit {
		return 0, fmt.Errorf("%w: limit is too big", errInvalidRequest)
	}

	return int(v), nil
}

func extractPage(q url.Values) (int, error) {
	s := q.Get("page")
	if s == "" {
		return 1, nil
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: failed to parse page", errInvalidRequest)
	}

	return int(v), nil
}

// nolint: gocyclo
func extractListPostsParams(q url.Values) (*storage.ListPostsParams, int, error) {
	out := storage.ListPostsParams{
		SortBy:  storage.PublishedAtSortType,
		OrderBy: storage.DescendingOrder,
	}

	switch q.Get("sortBy") {
	case "publishedAt", "":
	case "engagementScore":
		out.SortBy = storage.EngagementSortType
	case "weightedScore":
		out.SortBy = storage.WeightedSortType
	case "impressions", "metrics.impressions":
		out.SortBy = storage.ImpressionsSortType
	default:
		return nil, 0, fmt.Errorf("%w: invalid sortBy", errInvalidRequest)
	}

	orderBy := storage.OrderType(q.Get("sortOrder"))
	switch orderBy {
	case storage.AscendingOrder, storage.DescendingOrder:
		out.OrderBy = orderBy
	case "":
	default:
		return nil, 0, fmt.Errorf("%w: invalid sortOrder", errInvalidRequest)
	}

	limit, err := extractLimit(q, defaultPostsLimit)
	if err != nil {
		return nil, 0, err
	}

	page, err := extractPage(q)
	if err != nil {
		return nil, 0, err
	}

	f, err := extractFilter(q)
	if err != nil {
		return nil, 0, err
	}

	out.Limit = uint16(limit)
	out.Offset = uint32((page - 1) * limit)
	out.Platform = f.Platform
	out.From = f.From
	out.To = f.To

	return &out, page, nil
}

func extractScheduledFilter(q url.Values) (*storage.ListScheduledParams, error) {
	var v validation

	r := extractRange(q, &v)
	out := storage.ListScheduledParams{
		Status:   v.status(q.Get("status"), "status"),
		Platform: v.platform(q.Get("platform"), "platform"),
		From:     r.From,
		To:       r.To,
	}

	return &out, v.err()
}

func extractListScheduledParams(q url.Values) (*storage.ListScheduledParams, int, error) {
	out, err := extractScheduledFilter(q)
	if err != nil {
		return nil, 0, err
	}

	limit, err := extractLimit(q, defaultScheduledLimit)
	if err != nil {
		return nil, 0, err
	}

	page, err := extractPage(q)
	if err != nil {
		return nil, 0, err
	}

	out.Limit = uint16(limit)
	out.Offset = uint32((page - 1) * limit)

	return out, page, nil
}

// writeServiceError maps known errors to responses, unknown errors are internal.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, notFound string, op string) {
	var v validation

	switch {
	case errors.As(err, &v):
		writeValidationError(w, v)
	case errors.Is(err, errInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, storage.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "Already exists")
	case errors.Is(err, service.ErrAlreadyPublished):
		writeError(w, http.StatusBadRequest, "Content already published")
	case errors.Is(err, service.ErrNoPreviousSchedule):
		writeError(w, http.StatusBadRequest, "No previous schedule to restore")
	case errors.Is(err, service.ErrInvalidSuggestion):
		writeError(w, http.StatusBadRequest, "Invalid suggestion index")
	case errors.Is(err, insights.ErrMalformedResponse):
		log.WithError(err).Warn("ai returned malformed response")
		writeError(w, http.StatusBadGateway, "AI service returned an invalid response")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "Request timed out")
	default:
		writeInternalErrorf(ctx, w, "failed to %s: %s", op, err.Error())
	}
}
