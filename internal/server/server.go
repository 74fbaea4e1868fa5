// Package server exposes workbook profiling over HTTP.
package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ukaji3/exprofile-go/internal/logging"
	"github.com/ukaji3/exprofile-go/pkg/exprofile"
	"github.com/ukaji3/exprofile-go/pkg/exprofile/output"
	"github.com/ukaji3/exprofile-go/pkg/exprofile/reader"
)

// DefaultMaxUploadBytes limits uploaded workbook size.
const DefaultMaxUploadBytes = 50 << 20

// Server profiles uploaded workbooks.
type Server struct {
	router         *gin.Engine
	opts           exprofile.Options
	log            *logging.Logger
	maxUploadBytes int64
	tempDir        string
}

// Config configures a Server.
type Config struct {
	Options        exprofile.Options
	MaxUploadBytes int64
	// TempDir holds uploads while they are profiled. Empty uses os.TempDir().
	TempDir string
}

// New creates a server with its routes registered.
func New(cfg Config, logger *logging.Logger) *Server {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if logger == nil {
		logger = logging.NewDefault()
	}

	s := &Server{
		router:         gin.New(),
		opts:           cfg.Options,
		log:            logger.With("server"),
		maxUploadBytes: cfg.MaxUploadBytes,
		tempDir:        cfg.TempDir,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(requestID())
	if s.log.Level() >= logging.LevelDebug {
		s.router.Use(gin.Logger())
	}
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.POST("/api/v1/profile", s.handleProfile)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Infof("listening on %s", addr)
	return srv.ListenAndServe()
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleProfile profiles the workbook uploaded in the "file" form field.
func (s *Server) handleProfile(c *gin.Context) {
	reqID := c.GetString("request_id")

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes)
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.log.Warnf("%s: upload exceeds %d bytes", reqID, s.maxUploadBytes)
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("file exceeds the %d MB limit", s.maxUploadBytes>>20)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	defer file.Close()

	if !reader.IsSupported(header.Filename) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{
			"error": fmt.Sprintf("unsupported file type; expected one of %s", strings.Join(reader.SupportedExtensions(), ", ")),
		})
		return
	}

	// CSV sheets are named after the file, so the upload keeps its base name
	// inside a per-request directory.
	uploadDir := filepath.Join(s.tempDir, "exprofile-"+uuid.NewString())
	if err := os.Mkdir(uploadDir, 0700); err != nil {
		s.log.Errorf("%s: failed to create upload dir: %v", reqID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	defer os.RemoveAll(uploadDir)

	tmp := filepath.Join(uploadDir, uploadName(header.Filename))
	if err := saveUpload(file, tmp); err != nil {
		s.log.Errorf("%s: failed to store upload: %v", reqID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}

	opts := s.opts
	opts.Debugf = s.log.Debugf

	start := time.Now()
	report, err := exprofile.Profile(tmp, opts)
	if err != nil {
		s.log.Warnf("%s: profiling %s failed: %v", reqID, header.Filename, err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	report.FilePath = header.Filename
	s.log.Infof("%s: profiled %s (%d sheets) in %s", reqID, header.Filename, report.TotalSheets, time.Since(start))

	data, err := output.ToJSON(report, c.Query("pretty") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "serialization failed"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, exprofile.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, exprofile.ErrInvalidFormat), errors.Is(err, exprofile.ErrDuplicateSheet):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// uploadName reduces a client-supplied file name to a safe base name.
// Both slash styles are treated as separators.
func uploadName(filename string) string {
	name := filename
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(`:*?"<>|`, r) {
			return '_'
		}
		return r
	}, name)
	if strings.Trim(name, ".") == "" || strings.HasPrefix(name, ".") {
		name = "upload" + strings.ToLower(filepath.Ext(filename))
	}
	return name
}

func saveUpload(src io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return err
	}
	return dst.Close()
}
