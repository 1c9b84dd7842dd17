package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/rentdesk/pkg/environment"
	"github.com/dmitrymomot/rentdesk/pkg/logger"
	"github.com/dmitrymomot/rentdesk/pkg/requestid"
	"github.com/dmitrymomot/rentdesk/pkg/validator"
)

// ErrorPage is the data given to a full page error view.
type ErrorPage struct {
	Status    int
	Message   string
	RequestID string
	RetryURL  string
}

// ErrorToast is the data given to a toast shown on datastar requests.
type ErrorToast struct {
	Level     string // "warning" or "error"
	Message   string
	RequestID string
}

type ErrorHandlerConfig struct {
	Page  func(ErrorPage) templ.Component
	Toast func(ErrorToast) templ.Component

	// ToastTarget defaults to "#toasts".
	ToastTarget string
	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

type errorInfo struct {
	status  int
	message string
	level   slog.Level
}

func classifyError(err error) errorInfo {
	info := errorInfo{status: http.StatusInternalServerError, message: ErrInternalServerError.Key}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.status = httpErr.Code
		info.message = httpErr.Key
	}
	// Validation failures win over a joined HTTPError and name the fields.
	if ve := validator.ExtractValidationErrors(err); ve != nil {
		info.status = http.StatusBadRequest
		info.message = formatValidationErrors(ve)
	}
	info.level = slog.LevelError
	if info.status < http.StatusInternalServerError {
		info.level = slog.LevelWarn
	}
	return info
}

func formatValidationErrors(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// NewErrorHandler logs the failure and answers with a toast patch for
// datastar requests or an error page otherwise. Without a configured view it
// falls back to http.Error. In development, server errors show the raw error
// text.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toasts"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)
		if info.status >= http.StatusInternalServerError && environment.IsDevelopment(r.Context()) {
			info.message = err.Error()
		}

		log.LogAttrs(r.Context(), info.level, "request failed",
			logger.Error(err),
			logger.Component("http"),
			slog.Int("status", info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			if cfg.Toast == nil {
				http.Error(w, info.message, info.status)
				return
			}
			level := "error"
			if info.level == slog.LevelWarn {
				level = "warning"
			}
			toast := cfg.Toast(ErrorToast{Level: level, Message: info.message, RequestID: reqID})
			// SSE responses are always 200; the toast carries the failure.
			if rerr := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode)).Render(w, r); rerr != nil {
				log.ErrorContext(r.Context(), "render error toast", logger.Error(rerr))
			}
			return
		}

		if cfg.Page == nil {
			http.Error(w, info.message, info.status)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(info.status)
		page := cfg.Page(ErrorPage{Status: info.status, Message: info.message, RequestID: reqID, RetryURL: r.URL.Path})
		if rerr := page.Render(r.Context(), w); rerr != nil {
			log.ErrorContext(r.Context(), "render error page", logger.Error(rerr))
		}
	}
}
