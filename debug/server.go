// Package debug serves a read-only HTTP view of the running simulation
// Handlers only touch published snapshots, never the live grid.
package debug

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/chaser/core"
	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/navigation"
)

type pointDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func toDTO(p core.Point) pointDTO {
	return pointDTO{Row: p.Row, Col: p.Col}
}

type chaserDTO struct {
	ID   uuid.UUID `json:"id"`
	Cell pointDTO  `json:"cell"`
}

// StateResponse is the body of GET /debug/state
type StateResponse struct {
	Tick       uint64       `json:"tick"`
	State      engine.State `json:"state"`
	ChaserTurn bool         `json:"chaser_turn"`
	Rows       int          `json:"rows"`
	Cols       int          `json:"cols"`
	Player     *pointDTO    `json:"player"`
	Chasers    []chaserDTO  `json:"chasers"`
	Walls      int          `json:"walls"`
}

// PathResponse is the body of GET /debug/path/:id
type PathResponse struct {
	ID     uuid.UUID        `json:"id"`
	From   pointDTO         `json:"from"`
	To     pointDTO         `json:"to"`
	Length int              `json:"length"`
	Path   []core.Direction `json:"path"`
}

// Server exposes the latest snapshot over HTTP
type Server struct {
	addr   string
	latest atomic.Pointer[engine.Snapshot]
	router *gin.Engine
	srv    *http.Server
}

func NewServer(addr string) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{addr: addr}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	dbg := router.Group("/debug")
	{
		dbg.GET("/state", s.state)
		dbg.GET("/maze", s.maze)
		dbg.GET("/path/:id", s.path)
	}
	s.router = router
	return s
}

// Observe stores snap as the latest view; register with Simulation.Observe
func (s *Server) Observe(snap engine.Snapshot) {
	s.latest.Store(&snap)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and serves in the background
// Returns the bound address, useful with port 0.
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", err
	}
	s.srv = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	bound := ln.Addr().String()
	core.Go(func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Debug server stopped")
		}
	})
	log.Info().Str("addr", bound).Msg("Debug server listening")
	return bound, nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) snapshot(c *gin.Context) (*engine.Snapshot, bool) {
	snap := s.latest.Load()
	if snap == nil || snap.Grid == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return nil, false
	}
	return snap, true
}

func (s *Server) state(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	g := snap.Grid

	resp := StateResponse{
		Tick:       snap.Tick,
		State:      snap.State,
		ChaserTurn: snap.ChaserTurn,
		Rows:       g.Rows(),
		Cols:       g.Cols(),
		Chasers:    make([]chaserDTO, 0, g.ChaserCount()),
		Walls:      g.WallCount(),
	}
	if p, ok := g.Player(); ok {
		dto := toDTO(p)
		resp.Player = &dto
	}
	for _, id := range g.ChaserIDs() {
		p, _ := g.Chaser(id)
		resp.Chasers = append(resp.Chasers, chaserDTO{ID: id, Cell: toDTO(p)})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) maze(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, snap.Grid.String())
}

func (s *Server) path(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chaser id"})
		return
	}
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	g := snap.Grid

	from, ok := g.Chaser(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown chaser"})
		return
	}
	to, ok := g.Player()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "player not placed"})
		return
	}

	path, err := navigation.ShortestPath(g, from, to)
	if err != nil {
		if errors.Is(err, navigation.ErrUnreachable) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, PathResponse{
		ID:     id,
		From:   toDTO(from),
		To:     toDTO(to),
		Length: len(path),
		Path:   path,
	})
}

// requestLogger writes one debug line per request through zerolog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Debug request")
	}
}
