// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const uniqueViolation = "23505"

// insertBatchSize keeps a multi-row insert under postgres's 65535 bind parameters limit.
const insertBatchSize = 1000

type pg struct {
	ext sqlx.ExtContext
}

type postDTO struct {
	ID              string         `db:"id"`
	Content         string         `db:"content"`
	Headline        string         `db:"headline"`
	Platform        string         `db:"platform"`
	PublishedAt     time.Time      `db:"published_at"`
	Likes           int64          `db:"likes"`
	Comments        int64          `db:"comments"`
	Shares          int64          `db:"shares"`
	Clicks          int64          `db:"clicks"`
	Impressions     int64          `db:"impressions"`
	Tags            pq.StringArray `db:"tags"`
	Tone            string         `db:"tone"`
	EngagementScore float64        `db:"engagement_score"`
	WeightedScore   float64        `db:"weighted_score"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type scheduledDTO struct {
	ID                  string                         `db:"id"`
	Content             string                         `db:"content"`
	Headline            string                         `db:"headline"`
	Platform            string                         `db:"platform"`
	ScheduledAt         time.Time                      `db:"scheduled_at"`
	PreviousScheduledAt sql.NullTime                   `db:"previous_scheduled_at"`
	Status              string                         `db:"status"`
	Suggestions         jsonb[[]entities.Suggestion]   `db:"suggestions"`
	TimingInsight       jsonb[*entities.TimingInsight] `db:"timing_insight"`
	PublishedAt         sql.NullTime                   `db:"published_at"`
	PublishResult       jsonb[*entities.PublishResult] `db:"publish_result"`
	Tags                pq.StringArray                 `db:"tags"`
	CreatedAt           time.Time                      `db:"created_at"`
	UpdatedAt           time.Time                      `db:"updated_at"`
}

type aiUsageDTO struct {
	Date             time.Time `db:"date"`
	Operation        string    `db:"operation"`
	Model            string    `db:"model"`
	PromptTokens     int64     `db:"prompt_tokens"`
	CompletionTokens int64     `db:"completion_tokens"`
	TotalTokens      int64     `db:"total_tokens"`
	RequestCount     int64     `db:"request_count"`
	CacheHits        int64     `db:"cache_hits"`
	EstimatedCost    float64   `db:"estimated_cost"`
}

// jsonb stores a value as json document.
type jsonb[T any] struct {
	V T
}

func (j jsonb[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.V)
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (j *jsonb[T]) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		var zero T
		j.V = zero
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source %T", src)
	}

	return json.Unmarshal(b, &j.V)
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) Ping(ctx context.Context) error {
	var v int
	if err := sqlx.GetContext(ctx, s.ext, &v, `SELECT 1`); err != nil {
		return fmt.Errorf("failed to ping: %w", err)
	}

	return nil
}

func (s pg) CreatePosts(ctx context.Context, p ...*entities.Post) error {
	for len(p) > 0 {
		n := len(p)
		if n > insertBatchSize {
			n = insertBatchSize
		}

		if err := s.createPosts(ctx, p[:n]); err != nil {
			return err
		}

		p = p[n:]
	}

	return nil
}

func (s pg) createPosts(ctx context.Context, p []*entities.Post) error {
	posts := make([]postDTO, len(p))
	for i, v := range p {
		posts[i] = toPostDTO(v)
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(id, content, headline, platform, published_at, likes, comments, shares, clicks,
				impressions, tags, tone, engagement_score, weighted_score, created_at, updated_at)
			VALUES(:id, :content, :headline, :platform, :published_at, :likes, :comments, :shares, :clicks,
				:impressions, :tags, :tone, :engagement_score, :weighted_score, :created_at, :updated_at)
		`, posts,
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `SELECT * FROM post WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return p.toEntity(), nil
}

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	where, args := postsFilter(p)

	sortBy := storage.PublishedAtSortType
	if p.SortBy != "" {
		sortBy = p.SortBy
	}

	orderBy := storage.AscendingOrder
	if p.OrderBy != "" {
		orderBy = p.OrderBy
	}

	query := fmt.Sprintf(`SELECT * FROM post %s ORDER BY %s %s, id %s`, where, sortBy, orderBy, orderBy)
	query, args = paginate(query, args, p.Limit, p.Offset)

	var posts []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(posts))
	for i, v := range posts {
		out[i] = v.toEntity()
	}

	return out, nil
}

func (s pg) CountPosts(ctx context.Context, p *storage.ListPostsParams) (int, error) {
	where, args := postsFilter(p)

	var c int
	if err := sqlx.GetContext(ctx, s.ext, &c, `SELECT COUNT(*) FROM post `+where, args...); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) UpdatePost(ctx context.Context, p *entities.Post) error {
	res, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			UPDATE post SET content=:content, headline=:headline, platform=:platform, published_at=:published_at,
				likes=:likes, comments=:comments, shares=:shares, clicks=:clicks, impressions=:impressions,
				tags=:tags, tone=:tone, engagement_score=:engagement_score, weighted_score=:weighted_score,
				updated_at=:updated_at
			WHERE id=:id
		`, toPostDTO(p),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeletePost(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM post WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeleteAllPosts(ctx context.Context) (int64, error) {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM post`)
	if err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	c, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return c, nil
}

func (s pg) CreateScheduled(ctx context.Context, c *entities.ScheduledContent) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO scheduled_content(id, content, headline, platform, scheduled_at, previous_scheduled_at,
				status, suggestions, timing_insight, published_at, publish_result, tags, created_at, updated_at)
			VALUES(:id, :content, :headline, :platform, :scheduled_at, :previous_scheduled_at,
				:status, :suggestions, :timing_insight, :published_at, :publish_result, :tags, :created_at, :updated_at)
		`, toScheduledDTO(c),
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetScheduled(ctx context.Context, id string) (*entities.ScheduledContent, error) {
	var c scheduledDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, `SELECT * FROM scheduled_content WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return c.toEntity(), nil
}

func (s pg) ListScheduled(ctx context.Context, p *storage.ListScheduledParams) ([]*entities.ScheduledContent, error) {
	where, args := scheduledFilter(p)

	query, args := paginate(`SELECT * FROM scheduled_content `+where+` ORDER BY scheduled_at, id`, args, p.Limit, p.Offset)

	var items []*scheduledDTO
	if err := sqlx.SelectContext(ctx, s.ext, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.ScheduledContent, len(items))
	for i, v := range items {
		out[i] = v.toEntity()
	}

	return out, nil
}

func (s pg) CountScheduled(ctx context.Context, p *storage.ListScheduledParams) (int, error) {
	where, args := scheduledFilter(p)

	var c int
	if err := sqlx.GetContext(ctx, s.ext, &c, `SELECT COUNT(*) FROM scheduled_content `+where, args...); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) UpdateScheduled(ctx context.Context, c *entities.ScheduledContent) error {
	res, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			UPDATE scheduled_content SET content=:content, headline=:headline, platform=:platform,
				scheduled_at=:scheduled_at, previous_scheduled_at=:previous_scheduled_at, status=:status,
				suggestions=:suggestions, timing_insight=:timing_insight, published_at=:published_at,
				publish_result=:publish_result, tags=:tags, updated_at=:updated_at
			WHERE id=:id
		`, toScheduledDTO(c),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeleteScheduled(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM scheduled_content WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) TrackAIUsage(ctx context.Context, u *entities.AIUsage) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO ai_usage(date, operation, model, prompt_tokens, completion_tokens, total_tokens,
				request_count, cache_hits, estimated_cost)
			VALUES(:date, :operation, :model, :prompt_tokens, :completion_tokens, :total_tokens,
				:request_count, :cache_hits, :estimated_cost)
			ON CONFLICT(date, operation, model) DO UPDATE SET
				prompt_tokens=ai_usage.prompt_tokens+excluded.prompt_tokens,
				completion_tokens=ai_usage.completion_tokens+excluded.completion_tokens,
				total_tokens=ai_usage.total_tokens+excluded.total_tokens,
				request_count=ai_usage.request_count+excluded.request_count,
				cache_hits=ai_usage.cache_hits+excluded.cache_hits,
				estimated_cost=ai_usage.estimated_cost+excluded.estimated_cost
		`, aiUsageDTO{
			Date:             truncateDay(u.Date),
			Operation:        string(u.Operation),
			Model:            u.Model,
			PromptTokens:     u.PromptTokens,
			CompletionTokens: u.CompletionTokens,
			TotalTokens:      u.TotalTokens,
			RequestCount:     u.RequestCount,
			CacheHits:        u.CacheHits,
			EstimatedCost:    u.EstimatedCost,
		},
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetAIUsage(ctx context.Context, since time.Time) ([]*entities.AIUsage, error) {
	var items []*aiUsageDTO
	if err := sqlx.SelectContext(ctx, s.ext, &items,
		`SELECT * FROM ai_usage WHERE date >= $1 ORDER BY date, operation, model`, truncateDay(since),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.AIUsage, len(items))
	for i, v := range items {
		out[i] = &entities.AIUsage{
			Date:             v.Date.UTC(),
			Operation:        entities.Operation(v.Operation),
			Model:            v.Model,
			PromptTokens:     v.PromptTokens,
			CompletionTokens: v.CompletionTokens,
			TotalTokens:      v.TotalTokens,
			RequestCount:     v.RequestCount,
			CacheHits:        v.CacheHits,
			EstimatedCost:    v.EstimatedCost,
		}
	}

	return out, nil
}

type conditions struct {
	where []string
	args  []interface{}
}

func (c *conditions) add(cond string, arg interface{}) {
	c.args = append(c.args, arg)
	c.where = append(c.where, fmt.Sprintf(cond, len(c.args)))
}

func (c *conditions) String() string {
	if len(c.where) == 0 {
		return ""
	}

	return "WHERE " + strings.Join(c.where, " AND ")
}

func postsFilter(p *storage.ListPostsParams) (string, []interface{}) {
	var c conditions

	if p.Platform != nil {
		c.add("platform = $%d", string(*p.Platform))
	}

	if p.From != nil {
		c.add("published_at >= $%d", p.From.UTC())
	}

	if p.To != nil {
		c.add("published_at <= $%d", p.To.UTC())
	}

	return c.String(), c.args
}

func scheduledFilter(p *storage.ListScheduledParams) (string, []interface{}) {
	var c conditions

	if p.Status != nil {
		c.add("status = $%d", string(*p.Status))
	}

	if p.Platform != nil {
		c.add("platform = $%d", string(*p.Platform))
	}

	if p.From != nil {
		c.add("scheduled_at >= $%d", p.From.UTC())
	}

	if p.To != nil {
		c.add("scheduled_at <= $%d", p.To.UTC())
	}

	return c.String(), c.args
}

func paginate(query string, args []interface{}, limit uint16, offset uint32) (string, []interface{}) {
	if limit > 0 {
		args = append(args, limit)
		query = fmt.Sprintf("%s LIMIT $%d", query, len(args))
	}

	if offset > 0 {
		args = append(args, offset)
		query = fmt.Sprintf("%s OFFSET $%d", query, len(args))
	}

	return query, args
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func truncateDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	v := t.Time.UTC()
	return &v
}

func toPostDTO(p *entities.Post) postDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return postDTO{
		ID:              p.ID,
		Content:         p.Content,
		Headline:        p.Headline,
		Platform:        string(p.Platform),
		PublishedAt:     p.PublishedAt.UTC(),
		Likes:           int64(p.Metrics.Likes),
		Comments:        int64(p.Metrics.Comments),
		Shares:          int64(p.Metrics.Shares),
		Clicks:          int64(p.Metrics.Clicks),
		Impressions:     int64(p.Metrics.Impressions),
		Tags:            tags,
		Tone:            string(p.Tone),
		EngagementScore: p.EngagementScore,
		WeightedScore:   p.WeightedScore,
		CreatedAt:       p.CreatedAt.UTC(),
		UpdatedAt:       p.UpdatedAt.UTC(),
	}
}

func (p postDTO) toEntity() *entities.Post {
	return &entities.Post{
		ID:          p.ID,
		Content:     p.Content,
		Headline:    p.Headline,
		Platform:    entities.Platform(p.Platform),
		PublishedAt: p.PublishedAt.UTC(),
		Metrics: entities.Metrics{
			Likes:       uint64(p.Likes),
			Comments:    uint64(p.Comments),
			Shares:      uint64(p.Shares),
			Clicks:      uint64(p.Clicks),
			Impressions: uint64(p.Impressions),
		},
		Tags:            []string(p.Tags),
		Tone:            entities.Tone(p.Tone),
		EngagementScore: p.EngagementScore,
		WeightedScore:   p.WeightedScore,
		CreatedAt:       p.CreatedAt.UTC(),
		UpdatedAt:       p.UpdatedAt.UTC(),
	}
}

func toScheduledDTO(c *entities.ScheduledContent) scheduledDTO {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	suggestions := c.Suggestions
	if suggestions == nil {
		suggestions = []entities.Suggestion{}
	}

	return scheduledDTO{
		ID:                  c.ID,
		Content:             c.Content,
		Headline:            c.Headline,
		Platform:            string(c.Platform),
		ScheduledAt:         c.ScheduledAt.UTC(),
		PreviousScheduledAt: nullTime(c.PreviousScheduledAt),
		Status:              string(c.Status),
		Suggestions:         jsonb[[]entities.Suggestion]{V: suggestions},
		TimingInsight:       jsonb[*entities.TimingInsight]{V: c.TimingInsight},
		PublishedAt:         nullTime(c.PublishedAt),
		PublishResult:       jsonb[*entities.PublishResult]{V: c.PublishResult},
		Tags:                tags,
		CreatedAt:           c.CreatedAt.UTC(),
		UpdatedAt:           c.UpdatedAt.UTC(),
	}
}

func (c scheduledDTO) toEntity() *entities.ScheduledContent {
	return &entities.ScheduledContent{
		ID:                  c.ID,
		Content:             c.Content,
		Headline:            c.Headline,
		Platform:            entities.Platform(c.Platform),
		ScheduledAt:         c.ScheduledAt.UTC(),
		PreviousScheduledAt: timePtr(c.PreviousScheduledAt),
		Status:              entities.Status(c.Status),
		Suggestions:         c.Suggestions.V,
		TimingInsight:       c.TimingInsight.V,
		PublishedAt:         timePtr(c.PublishedAt),
		PublishResult:       c.PublishResult.V,
		Tags:                []string(c.Tags),
		CreatedAt:           c.CreatedAt.UTC(),
		UpdatedAt:           c.UpdatedAt.UTC(),
	}
}
