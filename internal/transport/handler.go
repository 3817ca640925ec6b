package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-image-quality/internal/config"
	apperrors "go-image-quality/internal/errors"
	"go-image-quality/internal/factory"
	"go-image-quality/internal/logger"
	"go-image-quality/internal/observer"
	"go-image-quality/internal/service"
	"go-image-quality/pkg/models"
	"go-image-quality/pkg/quality"
)

// NewHandler wires the HTTP routes around the quality service.
func NewHandler(svc service.QualityService, validators factory.ValidatorFactory, metrics *observer.MetricsObserver, cfg *config.Config) http.Handler {
	r := gin.Default()

	r.Use(
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	r.GET("/health", healthCheck)
	r.GET("/metrics", metricsSnapshot(metrics))
	r.POST("/validate", validateImage(svc, validators, cfg))
	r.POST("/validate/upload", validateUpload(svc, validators, cfg))
	r.POST("/validate/batch", validateBatch(svc, validators, cfg))
	r.POST("/check", checkMetric(svc, validators, cfg))

	return r
}

func validateImage(svc service.QualityService, validators factory.ValidatorFactory, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		var req models.ValidationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		qcfg, err := resolveConfig(validators, req.Preset, req.Thresholds, cfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid configuration", err)
			return
		}

		logger.WithFields(logrus.Fields{
			"url":    req.URL,
			"preset": req.Preset,
			"ip":     c.ClientIP(),
		}).Info("Processing quality validation request")

		response, err := svc.ValidateURL(ctx, req.URL, qcfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "validation failed", err)
			return
		}

		c.JSON(http.StatusOK, response)
	}
}

func validateUpload(svc service.QualityService, validators factory.ValidatorFactory, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		data, err := io.ReadAll(c.Request.Body)
		if err != nil || len(data) == 0 {
			respondError(c, http.StatusBadRequest, "request body must contain encoded image data", err)
			return
		}

		qcfg, err := resolveConfig(validators, c.Query("preset"), nil, cfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid configuration", err)
			return
		}

		response, err := svc.ValidateBytes(ctx, data, qcfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "validation failed", err)
			return
		}

		c.JSON(http.StatusOK, response)
	}
}

func validateBatch(svc service.QualityService, validators factory.ValidatorFactory, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		var req models.BatchValidationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		qcfg, err := resolveConfig(validators, req.Preset, req.Thresholds, cfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid configuration", err)
			return
		}

		entries, err := svc.ValidateBatch(ctx, req.URLs, qcfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "batch validation failed", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"results": entries})
	}
}

func checkMetric(svc service.QualityService, validators factory.ValidatorFactory, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		var req models.CheckRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		qcfg, err := resolveConfig(validators, req.Preset, req.Thresholds, cfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid configuration", err)
			return
		}

		report, err := svc.CheckMetric(ctx, req.URL, req.Metric, qcfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "metric check failed", err)
			return
		}

		c.JSON(http.StatusOK, report)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func metricsSnapshot(metrics *observer.MetricsObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, metrics.Snapshot())
	}
}

// resolveConfig falls back to the server's configured preset when the
// request names none.
func resolveConfig(validators factory.ValidatorFactory, preset string, overrides *models.ThresholdOverrides, cfg *config.Config) (quality.Config, error) {
	if preset == "" {
		preset = cfg.QualityPreset
	}
	return validators.ConfigFor(preset, overrides)
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			respondError(c, determineStatusCode(err), "request processing failed", err)
		}
	}
}

func determineStatusCode(err error) int {
	// errors.As sees through the gin.Error wrapper.
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
