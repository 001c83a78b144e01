package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}

// AnalyzeRequest is the JSON analyze body.
type AnalyzeRequest struct {
	Text string `json:"text" form:"text"`
}

// statusFor maps an analysis error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, common.ErrModelUnavailable), errors.Is(err, common.ErrClassificationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", newPageData(c.Query("tab"), s.analyzer.ModelInfo()))
}

func (s *Server) handleModelTab(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", newPageData("model", s.analyzer.ModelInfo()))
}

func (s *Server) handleAnalyzeForm(c *gin.Context) {
	data := newPageData("detect", s.analyzer.ModelInfo())
	data.Text = c.PostForm("text")

	// Nothing to classify: keep the placeholder and skip the model.
	if strings.TrimSpace(data.Text) == "" {
		c.HTML(http.StatusOK, "index.tmpl", data)
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	report, err := s.analyzer.Analyze(ctx, data.Text)
	if err != nil {
		data.Error = common.UserMessage(err)
		c.HTML(statusFor(err), "index.tmpl", data)
		return
	}

	data.setReport(report)
	c.HTML(http.StatusOK, "index.tmpl", data)
}

func (s *Server) handleAPIAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	report, err := s.analyzer.Analyze(ctx, req.Text)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, ErrorResponse{
			Status:  status,
			Message: common.UserMessage(err),
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) handleAPIModel(c *gin.Context) {
	c.JSON(http.StatusOK, s.analyzer.ModelInfo())
}

func (s *Server) handleHealth(c *gin.Context) {
	info := s.analyzer.ModelInfo()
	c.JSON(http.StatusOK, gin.H{
		"status":   "OK",
		"service":  "newslens",
		"provider": info.Provider,
		"model":    info.ModelID,
	})
}

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if s.opts.RequestTimeout > 0 {
		return context.WithTimeout(c.Request.Context(), s.opts.RequestTimeout)
	}
	return context.WithCancel(c.Request.Context())
}
