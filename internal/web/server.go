package web

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"storymap-cli/internal/model"
	"storymap-cli/internal/store"
)

// Server exposes the story as a read-mostly JSON API for browser previews,
// plus a websocket that broadcasts reload events when the story file changes.
type Server struct {
	router *gin.Engine
	store  store.Store

	mu      sync.Mutex
	story   *model.Story
	clients map[*websocket.Conn]bool

	upgrader websocket.Upgrader
}

type Config struct {
	Store      store.Store
	EnableCORS bool
	Debug      bool
}

func NewServer(cfg Config) (*Server, error) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	story, err := cfg.Store.Load()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.EnableCORS {
		router.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		}))
	}

	s := &Server{
		router:  router,
		store:   cfg.Store,
		story:   story,
		clients: map[*websocket.Conn]bool{},
		upgrader: websocket.Upgrader{
			// Local preview only; the browser page is served from another origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/story", s.getStory)
		api.GET("/chapters", s.getChapters)
		api.GET("/chapters/:title", s.getChapter)
		api.POST("/chapters/reorder", s.reorderChapters)
	}
	s.router.GET("/ws", s.handleWebSocket)
}

// Handler exposes the router (used by tests and embedders).
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Run(addr string) error {
	log.Printf("storymap preview on http://localhost%s (ws on /ws)", addr)
	return s.router.Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getStory(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"story":    s.story,
		"overview": s.story.Overview(),
	})
}

func (s *Server) getChapters(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"count":    len(s.story.Chapters),
		"chapters": s.story.Chapters,
	})
}

func (s *Server) getChapter(c *gin.Context) {
	title := c.Param("title")
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.story.ChapterIndex(title)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown chapter", "title": title})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"index":   idx,
		"chapter": s.story.Chapters[idx],
	})
}

type reorderRequest struct {
	Titles []string `json:"titles" binding:"required"`
}

func (s *Server) reorderChapters(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.story.Reorder(req.Titles)
	if changed {
		if err := s.store.Save(s.story); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"changed":  changed,
		"chapters": s.story.Chapters,
	})
}

func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	// Reader loop only exists to observe the close.
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Reload re-reads the story from disk and tells connected previews to
// refresh. Used by the serve command's file watcher.
func (s *Server) Reload() error {
	story, err := s.store.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.story = story
	for conn := range s.clients {
		if err := conn.WriteJSON(gin.H{"type": "reload"}); err != nil {
			delete(s.clients, conn)
			_ = conn.Close()
		}
	}
	return nil
}
