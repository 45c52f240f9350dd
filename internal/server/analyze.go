package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thisiskushal31/TrendSignal/internal/apperr"
	"github.com/thisiskushal31/TrendSignal/internal/llm"
	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

// Runner is the pipeline from this handler's point of view.
type Runner interface {
	Run(ctx context.Context, image *llm.ImagePayload) (*types.InsightReport, error)
}

// AnalyzeHandler serves POST /analyze: accept a screenshot, run the full
// pipeline, return the report. On failure it returns a tagged error body,
// never a report with placeholder fields.
type AnalyzeHandler struct {
	pipeline Runner
	timeout  time.Duration
	log      *zap.SugaredLogger
}

// NewAnalyzeHandler creates the handler. timeout bounds one whole analysis.
func NewAnalyzeHandler(pipeline Runner, timeout time.Duration, log *zap.SugaredLogger) *AnalyzeHandler {
	return &AnalyzeHandler{pipeline: pipeline, timeout: timeout, log: log}
}

type analyzeJSONBody struct {
	Image string `json:"image"`
}

// Analyze accepts either a multipart image file (field "file") or a JSON body
// with a base64/data-URL "image" field.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	image, err := h.readImage(c)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	report, err := h.pipeline.Run(ctx, image)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AnalyzeHandler) readImage(c *gin.Context) (*llm.ImagePayload, error) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return nil, apperr.New(apperr.InvalidInput, "multipart field \"file\" is required")
		}
		if ct := fileHeader.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
			return nil, apperr.New(apperr.InvalidInput, "upload an image file (e.g. PNG, JPEG), got %s", ct)
		}
		file, err := fileHeader.Open()
		if err != nil {
			return nil, apperr.Wrap(apperr.InvalidInput, err, "failed to open uploaded file")
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, apperr.Wrap(apperr.InvalidInput, err, "failed to read uploaded file")
		}
		image, err := llm.ImageFromBytes(data)
		if err != nil {
			return nil, apperr.Wrap(apperr.InvalidInput, err, "uploaded file is not a decodable image")
		}
		return image, nil
	}

	var body analyzeJSONBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, err, "request must be a multipart upload or a JSON body with an \"image\" field")
	}
	image, err := llm.DecodeImage(body.Image)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, err, "\"image\" is not a decodable image")
	}
	return image, nil
}

// writeError maps the error taxonomy onto HTTP statuses. The mapping is the
// whole boundary contract: kind plus human-readable message, no partials.
func writeError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	kind := apperr.KindOf(err)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		status, kind = http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, context.Canceled):
		status, kind = 499, "canceled" // client closed request
	case kind == apperr.InvalidInput:
		status = http.StatusBadRequest
	case kind == apperr.NoTopicDetected:
		status = http.StatusUnprocessableEntity
	case kind == apperr.UpstreamUnavailable:
		status = http.StatusServiceUnavailable
	case kind == apperr.MalformedOutput:
		status = http.StatusBadGateway
	default:
		kind = "internal"
	}

	c.AbortWithStatusJSON(status, gin.H{
		"error":   string(kind),
		"message": err.Error(),
	})
}
