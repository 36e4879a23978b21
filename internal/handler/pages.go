package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/threadfeed/internal/api"
	"github.com/itchan-dev/threadfeed/internal/domain"
	"github.com/itchan-dev/threadfeed/internal/errors"
	"github.com/itchan-dev/threadfeed/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{"threads", "thread"}

// parseTemplates builds one template per page, each with the shared layout.
func parseTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", fmt.Sprintf("templates/%s.html", name))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}

type ThreadsPageData struct {
	Threads []api.ThreadResponse
}

type PostView struct {
	api.FeedPostResponse
	HTML template.HTML
}

type ThreadPageData struct {
	Thread         api.ThreadResponse
	Posts          []PostView
	PollIntervalMs int64
}

func (h *Handler) renderTemplate(w http.ResponseWriter, name string, data any) {
	tmpl, ok := h.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "layout", data); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func writePageError(w http.ResponseWriter, err error) {
	status := errors.StatusCode(err)
	msg := "Internal server error"
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		msg = e.Message
	} else {
		logger.Log.Error("page error", "error", err)
	}
	http.Error(w, msg, status)
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/threads", http.StatusFound)
}

func (h *Handler) ThreadsPage(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List(r.Context())
	if err != nil {
		writePageError(w, err)
		return
	}
	h.renderTemplate(w, "threads", ThreadsPageData{Threads: api.NewThreadsResponse(threads)})
}

func (h *Handler) ThreadPage(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		writePageError(w, err)
		return
	}

	feed, err := h.feed.Build(r.Context(), threadId)
	if err != nil {
		writePageError(w, err)
		return
	}
	h.renderTemplate(w, "thread", newThreadPageData(feed, h.cfg.Public.FeedPollInterval.Milliseconds()))
}

// ContentHTML has already been sanitized by the renderer.
func newThreadPageData(feed domain.Feed, pollIntervalMs int64) ThreadPageData {
	resp := api.NewFeedResponse(feed)
	posts := make([]PostView, len(resp.Posts))
	for i, p := range resp.Posts {
		posts[i] = PostView{FeedPostResponse: p, HTML: template.HTML(p.ContentHTML)}
	}
	return ThreadPageData{
		Thread:         resp.Thread,
		Posts:          posts,
		PollIntervalMs: pollIntervalMs,
	}
}
