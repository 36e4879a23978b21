package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/threadfeed/internal/api"
	"github.com/itchan-dev/threadfeed/internal/domain"
	"github.com/itchan-dev/threadfeed/internal/middleware/metrics"
	"github.com/itchan-dev/threadfeed/internal/utils"
)

const kindPost = "post"

func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.feed.Posts(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.NewPostsResponse(posts))
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIdParam(chi.URLParam(r, "post"), "post ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.feed.Post(r.Context(), postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.NewPostResponse(post))
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		recordWriteError(kindPost, err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	body := api.CreatePostRequest{
		ThreadId: r.PostForm.Get("thread_id"),
		Author:   r.PostForm.Get("author"),
		Content:  r.PostForm.Get("content"),
		Password: r.PostForm.Get("password"),
	}

	if err := h.gate.Authorize(body.Password); err != nil {
		recordWriteError(kindPost, err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := utils.Validate(&body); err != nil {
		recordWriteError(kindPost, err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	threadId, err := parseIdParam(body.ThreadId, "thread ID")
	if err != nil {
		recordWriteError(kindPost, err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	creation := domain.PostCreationData{
		ThreadId: threadId,
		Author:   body.Author,
		Content:  body.Content,
	}
	if _, err := h.post.Create(r.Context(), creation); err != nil {
		recordWriteError(kindPost, err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.RecordWrite(kindPost, metrics.OutcomeCreated)
	utils.WriteJSON(w, http.StatusOK, api.OK())
}
