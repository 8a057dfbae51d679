package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadencehq/cadence/internal/analytics"
	"github.com/cadencehq/cadence/internal/entities"
	publisher "github.com/cadencehq/cadence/internal/publisher/mock"
	"github.com/cadencehq/cadence/internal/service"
	storageinterface "github.com/cadencehq/cadence/internal/storage"
	storage "github.com/cadencehq/cadence/internal/storage/mock"
)

var now = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

func newSrv(t *testing.T) (srv, *storage.MockStorage, *publisher.MockPublisher) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	p := publisher.NewMockPublisher(ctrl)

	return srv{s: s, p: p, now: func() time.Time { return now }}, s, p
}

func expectTx(s *storage.MockStorage) {
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f func(s storageinterface.Storage) error) error {
			return f(s)
		},
	)
}

func TestSrv_GetOverview(t *testing.T) {
	srv, s, _ := newSrv(t)

	platform := entities.TwitterPlatform
	from := now.Add(-24 * time.Hour)

	s.EXPECT().ListPosts(gomock.Any(), &storageinterface.ListPostsParams{
		Platform: &platform,
		From:     &from,
	}).Return([]*entities.Post{
		{
			Platform:        entities.TwitterPlatform,
			PublishedAt:     time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
			Metrics:         entities.Metrics{Likes: 5, Impressions: 100},
			EngagementScore: 5,
			WeightedScore:   4,
		},
	}, nil)

	o, err := srv.GetOverview(context.Background(), service.Filter{Platform: &platform, Range: analytics.Range{From: &from}})
	require.NoError(t, err)
	require.Equal(t, 1, o.TotalPosts)
	require.NotNil(t, o.BestHour)
	assert.Equal(t, 10, *o.BestHour)

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

	_, err = srv.GetOverview(context.Background(), service.Filter{})
	require.True(t, errors.Is(err, context.Canceled))
}

func TestSrv_GetTopPosts(t *testing.T) {
	srv, s, _ := newSrv(t)

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.ListPostsParams) ([]*entities.Post, error) {
			assert.Equal(t, storageinterface.WeightedSortType, p.SortBy)
			assert.Equal(t, storageinterface.DescendingOrder, p.OrderBy)
			assert.EqualValues(t, 10, p.Limit)

			return []*entities.Post{{ID: "1", WeightedScore: 1}, {ID: "2", WeightedScore: 2}}, nil
		},
	)

	posts, err := srv.GetTopPosts(context.Background(), service.Filter{}, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "2", posts[0].ID)
}

func TestSrv_ImportPosts(t *testing.T) {
	srv, s, _ := newSrv(t)

	posts := []*entities.Post{
		{
			ID:          "given",
			Content:     "a",
			Platform:    entities.BlogPlatform,
			PublishedAt: now.Add(-30 * 24 * time.Hour),
			Metrics:     entities.Metrics{Likes: 10, Comments: 5},
			Tags:        []string{" Go ", ""},
		},
		{
			Content:     "b",
			Platform:    entities.TwitterPlatform,
			PublishedAt: now,
			Metrics:     entities.Metrics{Likes: 1, Impressions: 10},
			Tone:        entities.UrgentTone,
		},
	}

	expectTx(s)
	s.EXPECT().CreatePosts(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p ...*entities.Post) error {
			require.Len(t, p, 2)

			assert.Equal(t, "given", p[0].ID)
			assert.Equal(t, entities.NeutralTone, p[0].Tone)
			assert.EqualValues(t, 1, p[0].Metrics.Impressions)
			assert.Equal(t, []string{"go"}, p[0].Tags)
			assert.InDelta(t, 2000, p[0].EngagementScore, 1e-9)
			assert.InDelta(t, 2000/2.718281828459045, p[0].WeightedScore, 1e-6)
			assert.Equal(t, now, p[0].CreatedAt)

			assert.NotEmpty(t, p[1].ID)
			assert.Equal(t, entities.UrgentTone, p[1].Tone)
			assert.InDelta(t, 10, p[1].EngagementScore, 1e-9)
			assert.InDelta(t, 10, p[1].WeightedScore, 1e-9)

			return nil
		},
	)

	n, err := srv.ImportPosts(context.Background(), posts)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSrv_UpdatePost(t *testing.T) {
	srv, s, _ := newSrv(t)

	expectTx(s)
	s.EXPECT().GetPost(gomock.Any(), "1").Return(&entities.Post{
		ID:          "1",
		PublishedAt: now,
		Metrics:     entities.Metrics{Likes: 1, Impressions: 100},
	}, nil)
	s.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).Return(nil)

	likes := uint64(10)
	p, err := srv.UpdatePost(context.Background(), "1", &service.PostPatch{Likes: &likes})
	require.NoError(t, err)
	assert.EqualValues(t, 10, p.Metrics.Likes)
	assert.InDelta(t, 10, p.EngagementScore, 1e-9)
	assert.Equal(t, now, p.UpdatedAt)

	expectTx(s)
	s.EXPECT().GetPost(gomock.Any(), "2").Return(nil, storageinterface.ErrNotFound)

	_, err = srv.UpdatePost(context.Background(), "2", &service.PostPatch{Likes: &likes})
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))
}

func TestSrv_ListPosts(t *testing.T) {
	srv, s, _ := newSrv(t)

	p := &storageinterface.ListPostsParams{Limit: 20}
	s.EXPECT().ListPosts(gomock.Any(), p).Return([]*entities.Post{{ID: "1"}}, nil)
	s.EXPECT().CountPosts(gomock.Any(), p).Return(41, nil)

	posts, total, err := srv.ListPosts(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, 41, total)
}

func TestSrv_CreateScheduled(t *testing.T) {
	srv, s, _ := newSrv(t)

	s.EXPECT().CreateScheduled(gomock.Any(), gomock.Any()).Return(nil)

	c, err := srv.CreateScheduled(context.Background(), &entities.ScheduledContent{
		Content:     "content",
		Platform:    entities.TwitterPlatform,
		ScheduledAt: now.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, entities.DraftStatus, c.Status)
	assert.Equal(t, now, c.CreatedAt)
}

func TestSrv_UpdateScheduled(t *testing.T) {
	original := now.Add(time.Hour)
	later := now.Add(2 * time.Hour)

	tt := []struct {
		name        string
		scheduledAt *time.Time
		previous    *time.Time
		expected    time.Time
	}{
		{
			name:        "rescheduled",
			scheduledAt: &later,
			previous:    &original,
			expected:    later,
		},
		{
			name:        "same time",
			scheduledAt: &original,
			expected:    original,
		},
		{
			name:     "not changed",
			expected: original,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			srv, s, _ := newSrv(t)

			expectTx(s)
			s.EXPECT().GetScheduled(gomock.Any(), "1").Return(&entities.ScheduledContent{
				ID:          "1",
				ScheduledAt: original,
			}, nil)
			s.EXPECT().UpdateScheduled(gomock.Any(), gomock.Any()).Return(nil)

			headline := "new"
			c, err := srv.UpdateScheduled(context.Background(), "1", &service.ScheduledPatch{
				ScheduledAt: tc.scheduledAt,
				Headline:    &headline,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c.ScheduledAt)
			assert.Equal(t, tc.previous, c.PreviousScheduledAt)
			assert.Equal(t, "new", c.Headline)
		})
	}
}

func TestSrv_UndoReschedule(t *testing.T) {
	srv, s, _ := newSrv(t)

	current := now.Add(2 * time.Hour)
	previous := now.Add(time.Hour)
	item := &entities.ScheduledContent{ID: "1", ScheduledAt: current, PreviousScheduledAt: &previous}

	for i := 0; i < 2; i++ {
		expectTx(s)
		s.EXPECT().GetScheduled(gomock.Any(), "1").Return(item, nil)
		s.EXPECT().UpdateScheduled(gomock.Any(), item).Return(nil)
	}

	c, err := srv.UndoReschedule(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, previous, c.ScheduledAt)
	assert.Equal(t, current, *c.PreviousScheduledAt)

	c, err = srv.UndoReschedule(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, current, c.ScheduledAt)
	assert.Equal(t, previous, *c.PreviousScheduledAt)

	expectTx(s)
	s.EXPECT().GetScheduled(gomock.Any(), "2").Return(&entities.ScheduledContent{ID: "2"}, nil)

	_, err = srv.UndoReschedule(context.Background(), "2")
	require.True(t, errors.Is(err, service.ErrNoPreviousSchedule))
}

func TestSrv_ApplySuggestion(t *testing.T) {
	srv, s, _ := newSrv(t)

	item := func() *entities.ScheduledContent {
		return &entities.ScheduledContent{
			ID: "1",
			Suggestions: []entities.Suggestion{
				{Headline: "first"},
				{Headline: "second"},
			},
		}
	}

	expectTx(s)
	s.EXPECT().GetScheduled(gomock.Any(), "1").Return(item(), nil)
	s.EXPECT().UpdateScheduled(gomock.Any(), gomock.Any()).Return(nil)

	c, err := srv.ApplySuggestion(context.Background(), "1", 1)
	require.NoError(t, err)
	assert.Equal(t, "second", c.Headline)
	assert.True(t, c.Suggestions[1].Applied)
	assert.False(t, c.Suggestions[0].Applied)

	for _, idx := range []int{-1, 2} {
		expectTx(s)
		s.EXPECT().GetScheduled(gomock.Any(), "1").Return(item(), nil)

		_, err = srv.ApplySuggestion(context.Background(), "1", idx)
		require.True(t, errors.Is(err, service.ErrInvalidSuggestion))
	}
}

func TestSrv_Publish(t *testing.T) {
	tt := []struct {
		name   string
		status entities.Status
		result *entities.PublishResult
		err    error

		expectedStatus entities.Status
		expectedErr    error
	}{
		{
			name:           "success",
			status:         entities.ScheduledStatus,
			result:         &entities.PublishResult{Success: true, Timestamp: now},
			expectedStatus: entities.PublishedStatus,
		},
		{
			name:           "failure",
			status:         entities.DraftStatus,
			result:         &entities.PublishResult{Success: false, Timestamp: now},
			expectedStatus: entities.FailedStatus,
		},
		{
			name:           "retry failed",
			status:         entities.FailedStatus,
			result:         &entities.PublishResult{Success: true, Timestamp: now},
			expectedStatus: entities.PublishedStatus,
		},
		{
			name:        "already published",
			status:      entities.PublishedStatus,
			expectedErr: service.ErrAlreadyPublished,
		},
		{
			name:        "publisher error",
			status:      entities.ScheduledStatus,
			err:         context.DeadlineExceeded,
			expectedErr: context.DeadlineExceeded,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			srv, s, p := newSrv(t)

			item := &entities.ScheduledContent{ID: "1", Status: tc.status, Platform: entities.BlogPlatform}

			expectTx(s)
			s.EXPECT().GetScheduled(gomock.Any(), "1").Return(item, nil)

			if tc.status != entities.PublishedStatus {
				p.EXPECT().Publish(gomock.Any(), item).Return(tc.result, tc.err)
			}

			if tc.expectedErr == nil {
				s.EXPECT().UpdateScheduled(gomock.Any(), item).Return(nil)
			}

			c, err := srv.Publish(context.Background(), "1")
			if tc.expectedErr != nil {
				require.True(t, errors.Is(err, tc.expectedErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, c.Status)
			assert.Equal(t, tc.result, c.PublishResult)

			if tc.result.Success {
				require.NotNil(t, c.PublishedAt)
				assert.Equal(t, now, *c.PublishedAt)
			} else {
				assert.Nil(t, c.PublishedAt)
			}
		})
	}
}

func TestSrv_BulkPublish(t *testing.T) {
	srv, s, p := newSrv(t)

	ok := &entities.ScheduledContent{ID: "1", Status: entities.ScheduledStatus}
	failed := &entities.ScheduledContent{ID: "2", Status: entities.ScheduledStatus}
	published := &entities.ScheduledContent{ID: "3", Status: entities.PublishedStatus}

	for i := 0; i < 4; i++ {
		expectTx(s)
	}

	s.EXPECT().GetScheduled(gomock.Any(), "1").Return(ok, nil)
	s.EXPECT().GetScheduled(gomock.Any(), "2").Return(failed, nil)
	s.EXPECT().GetScheduled(gomock.Any(), "3").Return(published, nil)
	s.EXPECT().GetScheduled(gomock.Any(), "4").Return(nil, storageinterface.ErrNotFound)

	p.EXPECT().Publish(gomock.Any(), ok).Return(&entities.PublishResult{Success: true, Timestamp: now}, nil)
	p.EXPECT().Publish(gomock.Any(), failed).Return(&entities.PublishResult{Success: false, Timestamp: now}, nil)

	s.EXPECT().UpdateScheduled(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res, err := srv.BulkPublish(context.Background(), []string{"1", "2", "3", "4"})
	require.NoError(t, err)
	require.Len(t, res, 4)

	assert.True(t, res[0].Success)
	assert.False(t, res[1].Success)
	assert.NotNil(t, res[1].Result)
	assert.Equal(t, "Not found or already published", res[2].Reason)
	assert.Equal(t, "Not found or already published", res[3].Reason)
}

func TestSrv_PublishDue(t *testing.T) {
	srv, s, p := newSrv(t)

	s.EXPECT().ListScheduled(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params *storageinterface.ListScheduledParams) ([]*entities.ScheduledContent, error) {
			require.NotNil(t, params.Status)
			assert.Equal(t, entities.ScheduledStatus, *params.Status)
			assert.Equal(t, now, *params.To)
			assert.Nil(t, params.From)

			return []*entities.ScheduledContent{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil
		},
	)

	for i := 0; i < 3; i++ {
		expectTx(s)
	}

	s.EXPECT().GetScheduled(gomock.Any(), "1").Return(&entities.ScheduledContent{ID: "1", Status: entities.ScheduledStatus}, nil)
	s.EXPECT().GetScheduled(gomock.Any(), "2").Return(&entities.ScheduledContent{ID: "2", Status: entities.ScheduledStatus}, nil)
	s.EXPECT().GetScheduled(gomock.Any(), "3").Return(nil, errors.New("connection reset"))

	p.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(&entities.PublishResult{Success: true, Timestamp: now}, nil)
	p.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(&entities.PublishResult{Success: false, Timestamp: now}, nil)

	s.EXPECT().UpdateScheduled(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	n, err := srv.PublishDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSrv_DeleteAllPosts(t *testing.T) {
	srv, s, _ := newSrv(t)

	s.EXPECT().DeleteAllPosts(gomock.Any()).Return(int64(7), nil)

	n, err := srv.DeleteAllPosts(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
}
