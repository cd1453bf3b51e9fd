package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/platemenu/platemenu/internal/admission"
	"github.com/platemenu/platemenu/internal/audit"
	"github.com/platemenu/platemenu/internal/messaging"
	"go.uber.org/zap"
)

// MetadataKey is the huma operation metadata key carrying an
// EndpointConfig.
const MetadataKey = "admission"

// Response headers projected from every admission decision. Reset is an
// absolute Unix timestamp in seconds.
const (
	HeaderLimit     = "X-RateLimit-Limit"
	HeaderRemaining = "X-RateLimit-Remaining"
	HeaderReset     = "X-RateLimit-Reset"
)

// EndpointConfig declares how an operation is gated. It is attached to
// huma operations via Metadata[MetadataKey].
type EndpointConfig struct {
	// Config is the per-action limit, window, and fail mode.
	Config admission.Config

	// Action names the protected operation. When empty, the operation's
	// route template and method are used (e.g. "/menus/{menuID}:GET").
	Action string

	// Disabled skips admission entirely for this endpoint.
	Disabled bool
}

// Admission returns a huma middleware gating requests through the
// admission gate. Operations without an EndpointConfig pass through
// ungated.
//
// On denial the middleware short-circuits with 429 and a Retry-After
// header; the protected handler never runs. Rate-limit headers are
// attached to allowed responses too, so well-behaved clients can
// self-throttle before hitting the ceiling.
func Admission(
	api huma.API,
	gate *admission.Gate,
	publishDenied messaging.Publish[audit.DeniedEvent],
	logger *zap.Logger,
) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		cfg := endpointConfig(ctx)
		if cfg == nil {
			next(ctx)

			return
		}

		if cfg.Disabled {
			logger.Debug("admission disabled for endpoint",
				zap.String("path", operationPath(ctx)), zap.String("method", ctx.Method()))
			next(ctx)

			return
		}

		action := cfg.Action
		if action == "" {
			action = operationPath(ctx) + ":" + ctx.Method()
		}

		identity := identityFor(ctx)

		decision, err := gate.Check(ctx.Context(), identity, action, cfg.Config)
		if err != nil {
			handleGateError(api, ctx, cfg, action, err, logger, next)

			return
		}

		projectHeaders(ctx, decision)

		if !decision.Allowed {
			handleDenied(api, ctx, decision, identity, action, publishDenied, logger)

			return
		}

		next(ctx)
	}
}

// projectHeaders attaches the standard rate-limit headers.
func projectHeaders(ctx huma.Context, decision admission.Decision) {
	ctx.SetHeader(HeaderLimit, strconv.FormatInt(decision.Limit, 10))
	ctx.SetHeader(HeaderRemaining, strconv.FormatInt(decision.Remaining, 10))
	ctx.SetHeader(HeaderReset, strconv.FormatInt(decision.ResetTime.Unix(), 10))
}

// handleDenied rejects the request with 429 and records the denial.
func handleDenied(
	api huma.API,
	ctx huma.Context,
	decision admission.Decision,
	identity, action string,
	publishDenied messaging.Publish[audit.DeniedEvent],
	logger *zap.Logger,
) {
	retrySecs := int64(decision.RetryAfter.Seconds())
	if decision.RetryAfter > time.Duration(retrySecs)*time.Second {
		retrySecs++
	}

	ctx.SetHeader("Retry-After", strconv.FormatInt(retrySecs, 10))

	meta := MetaFromContext(ctx.Context())

	logger.Warn("request denied by admission gate",
		zap.String("action", action),
		zap.String("method", ctx.Method()),
		zap.Int64("limit", decision.Limit),
		zap.Time("reset", decision.ResetTime),
		zap.String("client_ip", meta.ClientIP),
		zap.String("request_id", meta.RequestID),
	)

	if publishDenied != nil {
		event := audit.NewDeniedEvent(identity, action, decision, meta.ClientIP, meta.UserAgent, meta.RequestID)
		if err := publishDenied(event); err != nil {
			logger.Error("failed to publish denial event",
				zap.String("action", action),
				zap.Error(err),
			)
		}
	}

	_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests,
		"rate limit exceeded, retry after "+strconv.FormatInt(retrySecs, 10)+"s")
}

// handleGateError applies the action's fail mode when the admission
// check itself cannot run. Config errors always fail the request: they
// are programmer mistakes, not backend outages, so fail-open must not
// admit a request its route never gated correctly.
func handleGateError(
	api huma.API,
	ctx huma.Context,
	cfg *EndpointConfig,
	action string,
	err error,
	logger *zap.Logger,
	next func(huma.Context),
) {
	if errors.Is(err, admission.ErrInvalidConfig) {
		logger.Error("invalid admission config",
			zap.String("action", action),
			zap.Error(err),
		)

		_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "invalid admission configuration")

		return
	}

	if cfg.Config.FailMode == admission.FailOpen {
		logger.Warn("admission check failed, failing open",
			zap.String("action", action),
			zap.Error(err),
		)
		next(ctx)

		return
	}

	logger.Error("admission check failed, failing closed",
		zap.String("action", action),
		zap.String("fail_mode", cfg.Config.FailMode.String()),
		zap.Error(err),
	)

	// 503, not 429: clients must be able to tell an admission backend
	// outage apart from an exhausted quota.
	_ = huma.WriteErr(api, ctx, http.StatusServiceUnavailable, "admission check unavailable")
}

// identityFor resolves the caller's identity: the authenticated
// principal when present, otherwise a hash of client IP and User-Agent.
func identityFor(ctx huma.Context) string {
	if principal := PrincipalFromContext(ctx.Context()); principal != "" {
		return principal
	}

	meta := MetaFromContext(ctx.Context())

	ip := meta.ClientIP
	if ip == "" {
		ip = extractClientIP(ctx)
	}

	hash := sha256.Sum256([]byte(ip + "|" + ctx.Header("User-Agent")))

	return hex.EncodeToString(hash[:])
}

// endpointConfig extracts the EndpointConfig from operation metadata.
func endpointConfig(ctx huma.Context) *EndpointConfig {
	op := ctx.Operation()
	if op == nil || op.Metadata == nil {
		return nil
	}

	cfg, ok := op.Metadata[MetadataKey].(EndpointConfig)
	if !ok {
		return nil
	}

	return &cfg
}

func operationPath(ctx huma.Context) string {
	if op := ctx.Operation(); op != nil {
		return op.Path
	}

	return ""
}
