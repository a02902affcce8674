// Package log provides structured action logging on zerolog. Handlers
// pass their fiber context so entries carry request id, ip, method and
// path; code outside a request passes nil.
package log

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var base = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Setup points the logger at w (stdout plus a file, typically) and
// applies the configured level. Unknown levels fall back to info.
func Setup(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	base = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func event(e *zerolog.Event, c *fiber.Ctx, action string, err error, fields map[string]any) {
	e.Str("action", action)
	if c != nil {
		e.Str("ip", c.IP()).Str("method", c.Method()).Str("path", c.Path())
		e.Int("status", c.Response().StatusCode())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e.Str("req_id", rid)
		}
	}
	if err != nil {
		e.Err(err)
	}
	if len(fields) > 0 {
		e.Fields(fields)
	}
	e.Send()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	event(base.Info(), c, action, nil, fields)
}

// Audit records admin and order actions that matter after the fact.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	event(base.Info().Str("kind", "audit"), c, action, nil, fields)
}

// Security records denied access, failed validation and rate-limit hits.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	event(base.Warn().Str("kind", "security"), c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	event(base.Error(), c, action, err, fields)
}
