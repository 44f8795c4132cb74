// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes term-list review over HTTP so a browser front end
// can upload a term list, record decisions page by page, and download the
// thesaurus. Sessions live in memory for the life of the process.
package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/thesaurus-engine/internal/parse"
	"github.com/pdiddy/thesaurus-engine/internal/review"
	"github.com/pdiddy/thesaurus-engine/internal/thesaurus"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

const (
	defaultMaxUploadBytes = 10 << 20
	defaultSessionTTL     = 24 * time.Hour
)

// Handler serves the review API.
type Handler struct {
	logger    *zap.Logger
	batchSize int
	maxUpload int64
	ttl       time.Duration
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*review.Session
}

// NewHandler creates a handler with no open sessions.
func NewHandler(cfg types.Config, logger *zap.Logger) *Handler {
	maxUpload := cfg.Server.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	ttl := cfg.Server.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Handler{
		logger:    logger,
		batchSize: cfg.Review.BatchSize,
		maxUpload: maxUpload,
		ttl:       ttl,
		now:       time.Now,
		sessions:  make(map[string]*review.Session),
	}
}

// NewRouter returns a gin engine with the API routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.logRequests())
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/sessions", h.CreateSession)
		api.DELETE("/sessions/:id", h.CloseSession)
		api.GET("/sessions/:id/terms", h.ListTerms)
		api.GET("/sessions/:id/terms/:termID", h.GetTerm)
		api.POST("/sessions/:id/terms/:termID/decision", h.Decide)
		api.GET("/sessions/:id/terms/:termID/candidates", h.Candidates)
		api.GET("/sessions/:id/stats", h.Stats)
		api.GET("/sessions/:id/export", h.Export)
	}

	r.GET("/health", h.HealthCheck)
}

func (h *Handler) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		h.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()))
	}
}

// CreateSessionResponse is returned when a term list is uploaded.
type CreateSessionResponse struct {
	ID         string           `json:"id"`
	Warnings   []parse.Warning  `json:"warnings"`
	Statistics types.Statistics `json:"statistics"`
}

// CreateSession parses the uploaded term list (raw request body) and opens a
// review session for it.
func (h *Handler) CreateSession(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	raw, err := parse.ReadText(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "term list too large"})
			return
		}
		h.logger.Error("Failed to read upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read term list"})
		return
	}
	if strings.TrimSpace(raw) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "term list is empty"})
		return
	}

	records, warnings := parse.Parse(raw)
	for _, w := range warnings {
		h.logger.Warn("Skipping malformed line", zap.Int("line", w.Line), zap.String("reason", w.Reason))
	}

	id := uuid.NewString()
	s := review.NewSession(records, h.batchSize)

	h.mu.Lock()
	expired := h.expireLocked()
	h.sessions[id] = s
	h.mu.Unlock()

	if expired > 0 {
		h.logger.Info("Expired sessions dropped", zap.Int("count", expired))
	}
	h.logger.Info("Session opened", zap.String("session", id), zap.Int("terms", s.Len()), zap.Int("skipped", len(warnings)))

	if warnings == nil {
		warnings = []parse.Warning{}
	}
	c.JSON(http.StatusCreated, CreateSessionResponse{
		ID:         id,
		Warnings:   warnings,
		Statistics: s.Statistics(),
	})
}

// expireLocked drops sessions older than the TTL and returns how many were
// dropped. h.mu must be held for writing.
func (h *Handler) expireLocked() int {
	now := h.now()
	n := 0
	for id, s := range h.sessions {
		if now.Sub(s.Created()) > h.ttl {
			delete(h.sessions, id)
			n++
		}
	}
	return n
}

// CloseSession discards a session.
func (h *Handler) CloseSession(c *gin.Context) {
	id := c.Param("id")
	h.mu.Lock()
	_, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTerms returns one page of terms. The page query parameter is 1-based.
func (h *Handler) ListTerms(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	c.JSON(http.StatusOK, s.Page(page))
}

// GetTerm returns a single term.
func (h *Handler) GetTerm(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := termID(c)
	if !ok {
		return
	}
	rec, err := s.Record(id)
	if err != nil {
		h.decisionError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DecisionRequest is the body of a decision call.
type DecisionRequest struct {
	Action      types.Action `json:"action" binding:"required"`
	MergeTarget string       `json:"merge_target"`
}

// Decide records a human decision on a term.
func (h *Handler) Decide(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := termID(c)
	if !ok {
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := s.Decide(id, req.Action, req.MergeTarget)
	if err != nil {
		h.decisionError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Candidates suggests merge targets for a term.
func (h *Handler) Candidates(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := termID(c)
	if !ok {
		return
	}
	cands, err := s.Candidates(id)
	if err != nil {
		h.decisionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": cands, "total": len(cands)})
}

// Stats returns validation progress for a session.
func (h *Handler) Stats(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	st := s.Statistics()
	c.JSON(http.StatusOK, gin.H{"statistics": st, "progress": st.Progress()})
}

// Export downloads the thesaurus as a tab-delimited text file.
func (h *Handler) Export(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+thesaurus.DefaultFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(s.Export()))
}

// HealthCheck reports liveness and the number of open sessions.
func (h *Handler) HealthCheck(c *gin.Context) {
	h.mu.RLock()
	n := len(h.sessions)
	h.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": n})
}

func (h *Handler) session(c *gin.Context) (*review.Session, bool) {
	h.mu.RLock()
	s, ok := h.sessions[c.Param("id")]
	h.mu.RUnlock()
	if ok && h.now().Sub(s.Created()) > h.ttl {
		ok = false
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	}
	return s, ok
}

func termID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("termID"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid term id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) decisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, review.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, review.ErrUnknownAction),
		errors.Is(err, review.ErrMergeTargetRequired),
		errors.Is(err, review.ErrInvalidMergeTarget):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
