package rest

import (
	"compress/gzip"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const headerRequestID = "X-Request-ID"

func (s *Server) Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := s.checkAuth(c)
		if err != nil {
			s.log.Debug("unauthorized request", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

func (s *Server) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func (s *Server) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info(
			"Request",
			zap.String("request_id", c.GetString(headerRequestID)),
			zap.String("uri", c.Request.RequestURI),
			zap.Duration("duration", time.Since(start)),
			zap.String("method", c.Request.Method),
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
		)
	}
}

func (s *Server) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.metrics == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		s.metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
	used   bool
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	g.used = true
	return g.writer.Write(data)
}

func (g *gzipWriter) WriteString(data string) (int, error) {
	return g.Write([]byte(data))
}

// GzipCompress compresses responses for clients that accept gzip.
func (s *Server) GzipCompress() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		gz := gzip.NewWriter(c.Writer)
		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")
		gw := &gzipWriter{ResponseWriter: c.Writer, writer: gz}
		c.Writer = gw
		defer func() {
			// bodyless responses (204) must stay empty
			if !gw.used {
				return
			}
			if err := gz.Close(); err != nil {
				s.log.Error("failed close gzip writer", zap.Error(err))
			}
		}()

		c.Next()
	}
}

// GzipDecompress unpacks gzip encoded request bodies.
func (s *Server) GzipDecompress() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Content-Encoding") != "gzip" {
			c.Next()
			return
		}

		gz, err := gzip.NewReader(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid gzip body"})
			return
		}
		defer func() {
			if err := gz.Close(); err != nil {
				s.log.Error(msgErrorCloseBody, zap.Error(err))
			}
		}()
		c.Request.Body = gz
		c.Request.Header.Del("Content-Encoding")

		c.Next()
	}
}
