package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/service"
)

const postNotFound = "Post not found"

func (s server) importPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/import Posts ImportPosts
	//
	// Imports historical posts. Scores are computed on import.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Import result
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ImportPostsRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	if len(req.Posts) == 0 {
		writeError(w, http.StatusBadRequest, "Posts array is required")
		return
	}

	n, err := s.s.ImportPosts(r.Context(), toEntityPosts(req.Posts))
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "import posts")
		return
	}

	writeOK(w, http.StatusOK, Response{
		Message: fmt.Sprintf("Successfully imported %d posts", n),
		Data: ImportPostsResponse{
			Imported: n,
			Total:    len(req.Posts),
		},
	})
}

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Posts ListPosts
	//
	// Returns posts page.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: sortBy
	//   in: query
	//   required: false
	//   default: publishedAt
	//   type: string
	//   enum: [publishedAt, engagementScore, weightedScore, impressions]
	// - name: sortOrder
	//   in: query
	//   required: false
	//   default: desc
	//   type: string
	//   enum: [asc, desc]
	// - name: page
	//   in: query
	//   required: false
	//   default: 1
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Posts
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, page, err := extractListPostsParams(r.URL.Query())
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	posts, total, err := s.s.ListPosts(r.Context(), params)
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "list posts")
		return
	}

	writeOK(w, http.StatusOK, Response{
		Data:       toAPIPosts(posts),
		Pagination: newPagination(page, int(params.Limit), total),
	})
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id} Posts GetPost
	//
	// Returns post by id.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Post
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	p, err := s.s.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, postNotFound, "get post")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: toAPIPost(p)})
}

func (s server) updatePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /posts/{id} Posts UpdatePost
	//
	// Updates post, scores are recomputed.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Post
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req UpdatePostRequest
	if err := decode(r, &req); err != nil {
		writeServiceError(r.Context(), w, err, "", "")
		return
	}

	p, err := s.s.UpdatePost(r.Context(), chi.URLParam(r, "id"), toPostPatch(&req))
	if err != nil {
		writeServiceError(r.Context(), w, err, postNotFound, "update post")
		return
	}

	writeOK(w, http.StatusOK, Response{Data: toAPIPost(p)})
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{id} Posts DeletePost
	//
	// Deletes post.
	//
	// ---
	// responses:
	//   '200':
	//     description: Deleted
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := s.s.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(r.Context(), w, err, postNotFound, "delete post")
		return
	}

	writeOK(w, http.StatusOK, Response{Message: "Post deleted successfully"})
}

func (s server) deleteAllPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts Posts DeleteAllPosts
	//
	// Deletes all posts.
	//
	// ---
	// responses:
	//   '200':
	//     description: Deleted

	n, err := s.s.DeleteAllPosts(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err, "", "delete posts")
		return
	}

	writeOK(w, http.StatusOK, Response{Message: fmt.Sprintf("Deleted %d posts", n)})
}

func toEntityPosts(in []ImportPost) []*entities.Post {
	out := make([]*entities.Post, len(in))
	for i, p := range in {
		m := entities.Metrics{
			Likes:       p.Likes,
			Comments:    p.Comments,
			Shares:      p.Shares,
			Clicks:      p.Clicks,
			Impressions: p.Impressions,
		}
		if p.Metrics != nil {
			m = entities.Metrics{
				Likes:       p.Metrics.Likes,
				Comments:    p.Metrics.Comments,
				Shares:      p.Metrics.Shares,
				Clicks:      p.Metrics.Clicks,
				Impressions: p.Metrics.Impressions,
			}
		}

		out[i] = &entities.Post{
			Content:     p.Content,
			Headline:    p.Headline,
			Platform:    *optPlatform(p.Platform),
			PublishedAt: *optTime(p.PublishedAt),
			Metrics:     m,
			Tags:        p.Tags,
			Tone:        optTone(p.Tone),
		}
	}

	return out
}

func toPostPatch(req *UpdatePostRequest) *service.PostPatch {
	patch := service.PostPatch{
		Content:  req.Content,
		Headline: req.Headline,
		Tags:     req.Tags,
	}

	if req.Platform != nil {
		patch.Platform = optPlatform(*req.Platform)
	}
	if req.PublishedAt != nil {
		patch.PublishedAt = optTime(*req.PublishedAt)
	}
	if req.Tone != nil {
		t, _ := entities.ParseTone(*req.Tone) // err is nil after validation
		patch.Tone = &t
	}
	if m := req.Metrics; m != nil {
		patch.Likes, patch.Comments, patch.Shares, patch.Clicks = m.Likes, m.Comments, m.Shares, m.Clicks
		patch.Impressions = m.Impressions
	}

	return &patch
}
