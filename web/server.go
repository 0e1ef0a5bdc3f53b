// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

// Package web serves the club map for local preview and builds the static
// site.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"slices"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/golfkarta/golfkarta/club"
	"github.com/golfkarta/golfkarta/config"
	"github.com/golfkarta/golfkarta/mapview"
	"github.com/google/uuid"
)

// SessionCookie holds the preview session ID.
const SessionCookie = "golfkarta_session"

// DefaultMaxSessions is how many preview sessions are kept before the oldest
// is dropped.
const DefaultMaxSessions = 64

// State is what the page needs to redraw itself after an event.
type State struct {
	Region     string              `json:"region"`
	Criteria   club.Criteria       `json:"criteria"`
	Count      int                 `json:"count"`
	Total      int                 `json:"total"`
	SelectedID int                 `json:"selectedId,omitempty"`
	Elements   map[string]string   `json:"elements"`
	Map        mapview.WidgetState `json:"map"`
}

// session is one browser's map. Events on it run one at a time.
type session struct {
	mu       sync.Mutex
	region   string
	recorder *mapview.Recorder
	view     *mapview.Session
}

func (s *session) state() State {
	return State{
		Region:     s.region,
		Criteria:   s.view.Criteria(),
		Count:      s.view.Current().Len(),
		Total:      s.view.Source().Len(),
		SelectedID: s.view.SelectedID(),
		Elements:   s.view.Page().Contents(),
		Map:        s.recorder.Snapshot(),
	}
}

// Server is the local preview server.
type Server struct {
	cfg    *config.Config
	loader *club.Loader
	tmpl   *template.Template

	mu          sync.Mutex
	sessions    map[string]*session
	order       []string
	maxSessions int
	sets        map[string]club.Set
}

// NewServer creates a preview server for the regions of cfg.
func NewServer(cfg *config.Config, loader *club.Loader) *Server {
	return &Server{
		cfg:      cfg,
		loader:   loader,
		tmpl:     parseTemplates(),
		sessions:    make(map[string]*session),
		maxSessions: DefaultMaxSessions,
		sets:        make(map[string]club.Set),
	}
}

// Handler returns the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(s.tmpl)

	r.GET("/", s.pageView)
	r.GET("/region/:slug", s.pageView)
	r.GET("/api/state", s.getState)
	r.POST("/api/filter", s.applyFilter)
	r.POST("/api/reset", s.reset)
	r.POST("/api/select/:id", s.selectClub)
	r.GET("/api/clubs.geojson", s.clubsGeoJSON)

	return r
}

// Run serves on addr until the server fails.
func (s *Server) Run(addr string) error {
	return s.Handler().Run(addr)
}

// Preload loads the data of every region, logging per-source failures.
func (s *Server) Preload(ctx context.Context) {
	for _, r := range s.cfg.Regions {
		set := s.regionSet(ctx, r)
		log.Printf("Region %s: %d clubs", r.Slug, set.Len())
	}
}

// regionSet returns the loaded clubs of region, loading them on first use.
func (s *Server) regionSet(ctx context.Context, region *config.Region) club.Set {
	s.mu.Lock()
	set, ok := s.sets[region.Slug]
	s.mu.Unlock()

	if ok {
		return set
	}

	set, _ = s.loader.Load(ctx, region.Sources)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.sets[region.Slug]; ok {
		return cached
	}

	s.sets[region.Slug] = set

	return set
}

func (s *Server) newSession(ctx context.Context, region *config.Region) *session {
	recorder := mapview.NewRecorder()
	view := mapview.NewSession(recorder, region.Home())
	view.SetSource(s.regionSet(ctx, region))

	return &session{region: region.Slug, recorder: recorder, view: view}
}

// store keeps sess under id, replacing the session a reused cookie pointed
// to, and drops the oldest sessions beyond maxSessions.
func (s *Server) store(id string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; ok {
		s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
	}

	s.sessions[id] = sess
	s.order = append(s.order, id)

	for len(s.order) > s.maxSessions {
		delete(s.sessions, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *Server) lookup(ctx *gin.Context) *session {
	id, err := ctx.Cookie(SessionCookie)
	if err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions[id]
}

func (s *Server) pageView(ctx *gin.Context) {
	region, err := s.cfg.Region(ctx.Param("slug"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

		return
	}

	id, err := ctx.Cookie(SessionCookie)
	if err != nil || uuid.Validate(id) != nil {
		id = uuid.NewString()
	}

	sess := s.newSession(ctx.Request.Context(), region)

	s.store(id, sess)

	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(SessionCookie, id, 0, "/", "", false, true)

	data := newPageData(ModeLive, s.cfg, region, func(r *config.Region) string {
		if r.Slug == s.cfg.DefaultRegion {
			return "/"
		}

		return "/region/" + r.Slug
	})
	data.DataURL = "/api/state"

	ctx.HTML(http.StatusOK, pageTemplate, data)
}

// withSession runs fn on the caller's session while holding its lock.
func (s *Server) withSession(ctx *gin.Context, fn func(*session) error) {
	sess := s.lookup(ctx)
	if sess == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": mapview.ErrNotLoaded.Error()})

		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, sess.state())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, club.ErrInvalidCriteria):
		return http.StatusBadRequest
	case errors.Is(err, mapview.ErrUnknownMarker):
		return http.StatusNotFound
	case errors.Is(err, mapview.ErrNotLoaded):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) getState(ctx *gin.Context) {
	s.withSession(ctx, func(*session) error { return nil })
}

type filterRequest struct {
	Query    string `form:"q"        json:"q"`
	MaxPrice string `form:"maxPrice" json:"maxPrice"`
	Holes    string `form:"holes"    json:"holes"`
}

func (s *Server) applyFilter(ctx *gin.Context) {
	var req filterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid filter: %v", err)})

		return
	}

	criteria, err := club.ParseCriteria(req.Query, req.MaxPrice, req.Holes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	s.withSession(ctx, func(sess *session) error {
		_, err := sess.view.Apply(criteria)

		return err
	})
}

func (s *Server) reset(ctx *gin.Context) {
	s.withSession(ctx, func(sess *session) error {
		return sess.view.Reset()
	})
}

func (s *Server) selectClub(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid club id"})

		return
	}

	s.withSession(ctx, func(sess *session) error {
		return sess.view.Select(id)
	})
}

func (s *Server) clubsGeoJSON(ctx *gin.Context) {
	sess := s.lookup(ctx)
	if sess == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": mapview.ErrNotLoaded.Error()})

		return
	}

	sess.mu.Lock()
	fc := sess.view.Current().FeatureCollection()
	sess.mu.Unlock()

	ctx.Header("Content-Type", "application/geo+json")
	ctx.JSON(http.StatusOK, fc)
}
