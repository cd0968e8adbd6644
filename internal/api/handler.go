package api

import (
	"bytes"
	"net/http"

	"github.com/AlexandreDecan/pcorr/adapters/report"
	"github.com/AlexandreDecan/pcorr/app"
	"github.com/AlexandreDecan/pcorr/domain/correction"
	"github.com/AlexandreDecan/pcorr/internal"
	"github.com/AlexandreDecan/pcorr/internal/config"
	"github.com/AlexandreDecan/pcorr/internal/errors"

	"github.com/gin-gonic/gin"
)

// Handler serves correction reports over HTTP
type Handler struct {
	reports  *app.ReportService
	defaults config.ReportConfig
	logger   *internal.Logger
}

// FamilyRequest is the body accepted by every correction endpoint.
// Omitted alpha and sort fall back to the configured defaults.
type FamilyRequest struct {
	PValues []float64 `json:"p_values"`
	Alpha   *float64  `json:"alpha,omitempty"`
	Sort    *bool     `json:"sort,omitempty"`
}

// ThresholdResponse reports one method's outcome
type ThresholdResponse struct {
	Method      string               `json:"method"`
	Threshold   correction.Threshold `json:"threshold"`
	Significant int                  `json:"significant"`
}

// AdjustResponse carries adjusted p-values in request order
type AdjustResponse struct {
	Method   string    `json:"method"`
	Adjusted []float64 `json:"adjusted"`
}

// NewHandler creates a new HTTP handler
func NewHandler(reports *app.ReportService, defaults config.ReportConfig, logger *internal.Logger) *Handler {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Handler{
		reports:  reports,
		defaults: defaults,
		logger:   logger,
	}
}

// Register mounts the routes on r
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", h.Health)

	v1 := r.Group("/api/v1")
	v1.POST("/report", h.Report)
	v1.POST("/threshold/:method", h.Threshold)
	v1.POST("/adjust/:method", h.Adjust)
}

// NewRouter builds a gin engine with logging and recovery middleware
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	h.Register(router)
	return router
}

// Health reports liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Report evaluates all methods; ?format=text|markdown|html renders instead of JSON
func (h *Handler) Report(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	alpha, sortInput := h.resolve(req)

	result, err := h.reports.Evaluate(req.PValues, alpha, sortInput)
	if err != nil {
		h.fail(c, err)
		return
	}

	format := c.DefaultQuery("format", "json")
	if format == "json" {
		c.JSON(http.StatusOK, result)
		return
	}

	renderer, err := report.ForFormat(format)
	if err != nil {
		h.fail(c, err)
		return
	}
	var buf bytes.Buffer
	if err := renderer.Render(&buf, result); err != nil {
		h.fail(c, errors.Wrap(err, "failed to render report"))
		return
	}
	c.Data(http.StatusOK, renderer.ContentType(), buf.Bytes())
}

// Threshold evaluates one method named in the path
func (h *Handler) Threshold(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	alpha, sortInput := h.resolve(req)

	row, err := h.reports.Threshold(c.Param("method"), req.PValues, alpha, sortInput)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ThresholdResponse(row))
}

// Adjust returns adjusted p-values for the method named in the path
func (h *Handler) Adjust(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	name, adjusted, err := h.reports.Adjust(c.Param("method"), req.PValues)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, AdjustResponse{Method: name, Adjusted: adjusted})
}

func (h *Handler) bind(c *gin.Context) (FamilyRequest, bool) {
	var req FamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, errors.InvalidInput("malformed request body", err))
		return req, false
	}
	return req, true
}

func (h *Handler) resolve(req FamilyRequest) (float64, bool) {
	alpha := h.defaults.Alpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}
	sortInput := h.defaults.Sort
	if req.Sort != nil {
		sortInput = *req.Sort
	}
	return alpha, sortInput
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	} else {
		h.logger.Debug("request %s %s rejected: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
