package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/service"
	"github.com/cadencehq/cadence/internal/storage"
)

var scheduledAt = time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

func Test_createScheduled(t *testing.T) {
	router, s, _ := newTestRouter(t, Options{})

	s.EXPECT().CreateScheduled(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *entities.ScheduledContent) (*entities.ScheduledContent, error) {
		assert.Equal(t, "launch", c.Content)
		assert.Equal(t, entities.LinkedInPlatform, c.Platform)
		assert.Equal(t, scheduledAt, c.ScheduledAt)
		assert.Equal(t, entities.DraftStatus, c.Status)

		c.ID = "s1"
		return c, nil
	})

	w := serve(router, http.MethodPost, "/api/scheduled", `{"content":"launch","platform":"linkedin","scheduledAt":"2024-02-01T09:30:00Z"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
	"success": true,
	"data": {
		"id": "s1",
		"content": "launch",
		"platform": "linkedin",
		"scheduledAt": "2024-02-01T09:30:00Z",
		"previousScheduledAt": null,
		"status": "draft",
		"aiSuggestions": [],
		"publishedAt": null,
		"tags": [],
		"createdAt": "0001-01-01T00:00:00Z",
		"updatedAt": "0001-01-01T00:00:00Z"
	}
}`, w.Body.String())
}

func Test_createScheduled_Invalid(t *testing.T) {
	tt := []struct {
		name string
		body string
		rsp  string
	}{
		{
			name: "required",
			body: `{}`,
			rsp: `{"success":false,"error":"Validation failed","details":[
				{"field":"content","message":"Content is required"},
				{"field":"platform","message":"Platform is required"},
				{"field":"scheduledAt","message":"Scheduled time is required"}
			]}`,
		},
		{
			name: "invalid",
			body: `{"content":"c","platform":"tiktok","scheduledAt":"tomorrow","status":"archived"}`,
			rsp: `{"success":false,"error":"Validation failed","details":[
				{"field":"platform","message":"Invalid platform"},
				{"field":"scheduledAt","message":"Invalid date format"},
				{"field":"status","message":"Invalid status"}
			]}`,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			router, _, _ := newTestRouter(t, Options{})

			w := serve(router, http.MethodPost, "/api/scheduled", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tc.rsp, w.Body.String())
		})
	}
}

func Test_listScheduled(t *testing.T) {
	router, s, _ := newTestRouter(t, Options{})

	s.EXPECT().ListScheduled(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *storage.ListScheduledParams) ([]*entities.ScheduledContent, int, error) {
		require.NotNil(t, p.Status)
		assert.Equal(t, entities.ScheduledStatus, *p.Status)
		assert.EqualValues(t, defaultScheduledLimit, p.Limit)
		assert.EqualValues(t, 0, p.Offset)

		return []*entities.ScheduledContent{}, 0, nil
	})

	w := serve(router, http.MethodGet, "/api/scheduled?status=scheduled", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[],"pagination":{"page":1,"limit":50,"total":0,"pages":0}}`, w.Body.String())
}

func Test_getCalendar(t *testing.T) {
	router, s, _ := newTestRouter(t, Options{})

	s.EXPECT().ListScheduled(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *storage.ListScheduledParams) ([]*entities.ScheduledContent, int, error) {
		require.NotNil(t, p.From)
		require.NotNil(t, p.To)
		assert.Zero(t, p.Limit)

		return []*entities.ScheduledContent{
			{
				ID:          "s1",
				Content:     "a very long piece of content that will not fit into the calendar title",
				Platform:    entities.TwitterPlatform,
				ScheduledAt: scheduledAt,
				Status:      entities.ScheduledStatus,
			},
			{
				ID:          "s2",
				Content:     "c",
				Headline:    "Headline",
				Platform:    entities.BlogPlatform,
				ScheduledAt: scheduledAt,
				Status:      entities.FailedStatus,
			},
		}, 2, nil
	})

	w := serve(router, http.MethodGet, "/api/scheduled/calendar?start=2024-02-01&end=2024-03-01", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"success": true,
	"data": [
		{
			"id": "s1",
			"title": "a very long piece of content that will not fit int...",
			"start": "2024-02-01T09:30:00Z",
			"extendedProps": {
				"content": "a very long piece of content that will not fit into the calendar title",
				"platform": "twitter",
				"status": "scheduled"
			},
			"backgroundColor": "#3B82F6",
			"borderColor": "#3B82F6"
		},
		{
			"id": "s2",
			"title": "Headline",
			"start": "2024-02-01T09:30:00Z",
			"extendedProps": {"content": "c", "platform": "blog", "status": "failed"},
			"backgroundColor": "#EF4444",
			"borderColor": "#EF4444"
		}
	]
}`, w.Body.String())
}

func Test_updateScheduled(t *testing.T) {
	router, s, _ := newTestRouter(t, Options{})

	s.EXPECT().UpdateScheduled(gomock.Any(), "s1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, patch *service.ScheduledPatch) (*entities.ScheduledContent, error) {
		require.NotNil(t, patch.ScheduledAt)
		assert.Equal(t, scheduledAt, *patch.ScheduledAt)
		require.NotNil(t, patch.Status)
		assert.Equal(t, entities.ScheduledStatus, *patch.Status)
		require.NotNil(t, patch.Suggestions)
		assert.Len(t, *patch.Suggestions, 1)
		assert.Nil(t, patch.Content)

		return &entities.ScheduledContent{ID: "s1", ScheduledAt: scheduledAt, Status: entities.ScheduledStatus}, nil
	})

	w := serve(router, http.MethodPut, "/api/scheduled/s1", `{
		"scheduledAt": "2024-02-01T09:30",
		"status": "scheduled",
		"aiSuggestions": [{"headline": "h", "score": 80, "reasoning": "r"}]
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_undoReschedule(t *testing.T) {
	tt := []struct {
		name string
		err  error
		code int
		rsp  string
	}{
		{
			name: "ok",
			code: http.StatusOK,
		},
		{
			name: "nothing to restore",
			err:  service.ErrNoPreviousSchedule,
			code: http.StatusBadRequest,
			rsp:  `{"success":false,"error":"No previous schedule to restore"}`,
		},
		{
			name: "not found",
			err:  storage.ErrNotFound,
			code: http.StatusNotFound,
			rsp:  `{"success":false,"error":"Scheduled content not found"}`,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			router, s, _ := newTestRouter(t, Options{})

			var c *entities.ScheduledContent
			if tc.err == nil {
				c = &entities.ScheduledContent{ID: "s1", ScheduledAt: scheduledAt}
			}
			s.EXPECT().UndoReschedule(gomock.Any(), "s1").Return(c, tc.err)

			w := serve(router, http.MethodPost, "/api/scheduled/s1/undo-reschedule", "")

			assert.Equal(t, tc.code, w.Code)
			if tc.rsp != "" {
				assert.JSONEq(t, tc.rsp, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"message":"Schedule restored to previous time"`)
			}
		})
	}
}

func Test_applySuggestion(t *testing.T) {
	tt := []struct {
		name   string
		body   string
		expect bool
		err    error
		code   int
	}{
		{name: "ok", body: `{"suggestionIndex":1}`, expect: true, code: http.StatusOK},
		{name: "missing index", body: `{}`, code: http.StatusBadRequest},
		{name: "out of range", body: `{"suggestionIndex":5}`, expect: true, err: service.ErrInvalidSuggestion, code: http.StatusBadRequest},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			router, s, _ := newTestRouter(t, Options{})

			if tc.expect {
				var c *entities.ScheduledContent
				if tc.err == nil {
					c = &entities.ScheduledContent{ID: "s1", Headline: "applied"}
				}
				s.EXPECT().ApplySuggestion(gomock.Any(), "s1", gomock.Any()).Return(c, tc.err)
			}

			w := serve(router, http.MethodPost, "/api/scheduled/s1/apply-suggestion", tc.body)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_deleteScheduled(t *testing.T) {
	router, s, _ := newTestRouter(t, Options{})

	s.EXPECT().DeleteScheduled(gomock.Any(), "s1").Return(nil)

	w := serve(router, http.MethodDelete, "/api/scheduled/s1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Scheduled content deleted"}`, w.Body.String())
}
