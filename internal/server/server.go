package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/tenderdoc/internal/inspect"
	"github.com/rezonia/tenderdoc/internal/llm"
	pdfparser "github.com/rezonia/tenderdoc/internal/parser/pdf"
	"github.com/rezonia/tenderdoc/internal/pipeline"
	"github.com/rezonia/tenderdoc/internal/steps"
)

// Config holds server configuration
type Config struct {
	Address      string
	APIKey       string
	LLMBaseURL   string
	LLMModel     string
	ContentDir   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config       *Config
	router       *gin.Engine
	pdfExtractor *pdfparser.Extractor
	llmExtractor *llm.Extractor
	detector     *steps.Detector
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	pdfExtractor := pdfparser.NewExtractor()

	// Create LLM extractor if API key provided
	var llmExtractor *llm.Extractor
	var detector *steps.Detector
	if config.APIKey != "" {
		var clientOpts []llm.ClientOption
		if config.LLMBaseURL != "" {
			clientOpts = append(clientOpts, llm.WithBaseURL(config.LLMBaseURL))
		}
		client := llm.NewClient(config.APIKey, clientOpts...)

		var extractorOpts []llm.ExtractorOption
		if config.LLMModel != "" {
			extractorOpts = append(extractorOpts, llm.WithModel(config.LLMModel))
		}
		llmExtractor = llm.NewExtractor(client, extractorOpts...)
		detector = steps.NewDetector(pdfExtractor, llmExtractor)
	}

	s := &Server{
		config:       config,
		router:       router,
		pdfExtractor: pdfExtractor,
		llmExtractor: llmExtractor,
		detector:     detector,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/generate", s.handleGenerate)
		v1.POST("/inspect", s.handleInspect)
		v1.POST("/steps/detect", s.handleDetect)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleGenerate runs a full pipeline described by the request body. Paths in
// the configuration are resolved on the server host.
func (s *Server) handleGenerate(c *gin.Context) {
	var cfg pipeline.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pipeline configuration", Details: err.Error()})
		return
	}
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = s.config.ContentDir
	}

	built, err := cfg.BuildSteps(s.pdfExtractor, s.llmExtractor)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Minute)
	defer cancel()

	report, err := pipeline.New(built...).Run(ctx, cfg.Template, cfg.Output)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, GenerateResponse{
			Report: report,
			Error:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Report: report})
}

// handleInspect reports the placeholders and structure of an uploaded document
func (s *Server) handleInspect(c *gin.Context) {
	path, cleanup, ok := s.spool(c, "inspect-*.docx")
	if !ok {
		return
	}
	defer cleanup()

	report, err := inspect.File(path)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	report.Path = "" // server-side temp path is meaningless to the caller
	c.JSON(http.StatusOK, report)
}

// handleDetect classifies an uploaded process PDF as a 21-step or 23-step
// procedure
func (s *Server) handleDetect(c *gin.Context) {
	if s.detector == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "step detection unavailable",
			Details: "server started without an LLM API key",
		})
		return
	}

	path, cleanup, ok := s.spool(c, "detect-*.pdf")
	if !ok {
		return
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
	defer cancel()

	count, err := s.detector.Detect(ctx, path)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, DetectResponse{Steps: count})
}

// spool writes the raw request body to a temporary file; the readers further
// down the stack work on paths, not streams
func (s *Server) spool(c *gin.Context, pattern string) (string, func(), bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return "", nil, false
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return "", nil, false
	}

	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to store upload"})
		return "", nil, false
	}
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to store upload"})
		return "", nil, false
	}
	tmp.Close()

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, true
}
