package confirmation

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/storekit/pkg/gateway"
	"github.com/dmitrymomot/storekit/pkg/l10n"
	"github.com/dmitrymomot/storekit/pkg/sessioncache"
)

// Config holds the tunable pipeline settings, loadable from the environment
// via pkg/config.
type Config struct {
	MaxAttempts          int           `env:"CONFIRMATION_MAX_ATTEMPTS" envDefault:"5"`
	RetryDelay           time.Duration `env:"CONFIRMATION_RETRY_DELAY" envDefault:"2s"`
	Language             string        `env:"CONFIRMATION_LANGUAGE" envDefault:"en"`
	DateFormat           string        `env:"CONFIRMATION_DATE_FORMAT" envDefault:"02.01.2006"`
	GatewayMethodIDs     []string      `env:"CONFIRMATION_GATEWAY_METHODS" envSeparator:"," envDefault:"stripe,stripe_sepa"`
	PaymentFallbackLabel string        `env:"CONFIRMATION_PAYMENT_FALLBACK" envDefault:"Card payment"`
}

// Option configures a Service instance.
type Option func(*settings)

type settings struct {
	session       sessioncache.Cache
	client        gateway.Client
	renderer      TemplateRenderer
	translator    *l10n.Translator
	lang          language.Tag
	logger        *slog.Logger
	maxAttempts   int
	delay         time.Duration
	dateFormat    string
	methodIDs     []string
	fallbackLabel string
}

// WithSessionCache wires the checkout session cache as an address source.
// Without it the session source is skipped.
func WithSessionCache(cache sessioncache.Cache) Option {
	return func(s *settings) {
		if cache != nil {
			s.session = cache
		}
	}
}

// WithGatewayClient wires the payment gateway used for payment method
// enrichment. Without it gateway-paid orders get the fallback label.
func WithGatewayClient(client gateway.Client) Option {
	return func(s *settings) {
		if client != nil {
			s.client = client
		}
	}
}

// WithRenderer replaces the default HTML renderer.
func WithRenderer(r TemplateRenderer) Option {
	return func(s *settings) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithTranslator replaces the embedded translation catalogs.
func WithTranslator(t *l10n.Translator) Option {
	return func(s *settings) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithLanguage sets the customer-facing language.
func WithLanguage(lang language.Tag) Option {
	return func(s *settings) {
		s.lang = lang
	}
}

// WithLogger sets the structured logger, defaulting to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRetryPolicy overrides the poll loop bounds. Non-positive values keep
// the defaults.
func WithRetryPolicy(maxAttempts int, delay time.Duration) Option {
	return func(s *settings) {
		if maxAttempts > 0 {
			s.maxAttempts = maxAttempts
		}
		if delay > 0 {
			s.delay = delay
		}
	}
}

// WithGatewayMethodIDs sets the payment method identifiers that route through
// the gateway.
func WithGatewayMethodIDs(ids ...string) Option {
	return func(s *settings) {
		if len(ids) > 0 {
			s.methodIDs = ids
		}
	}
}

// WithPaymentFallbackLabel sets the generic label used when gateway
// enrichment is unavailable.
func WithPaymentFallbackLabel(label string) Option {
	return func(s *settings) {
		if label != "" {
			s.fallbackLabel = label
		}
	}
}

// WithDateFormat sets the order date layout in customer-facing output.
func WithDateFormat(layout string) Option {
	return func(s *settings) {
		if layout != "" {
			s.dateFormat = layout
		}
	}
}

// WithConfig applies an environment-driven Config. An unparseable language
// tag keeps the current setting.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		if cfg.MaxAttempts > 0 {
			s.maxAttempts = cfg.MaxAttempts
		}
		if cfg.RetryDelay > 0 {
			s.delay = cfg.RetryDelay
		}
		if cfg.DateFormat != "" {
			s.dateFormat = cfg.DateFormat
		}
		if len(cfg.GatewayMethodIDs) > 0 {
			s.methodIDs = cfg.GatewayMethodIDs
		}
		if cfg.PaymentFallbackLabel != "" {
			s.fallbackLabel = cfg.PaymentFallbackLabel
		}
		if cfg.Language != "" {
			if tag, err := language.Parse(cfg.Language); err == nil {
				s.lang = tag
			}
		}
	}
}
