package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/kmq-gateway/internal/repository"
	"github.com/noah-isme/kmq-gateway/pkg/daterange"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
)

// DefaultQueryLimit applies when a caller does not supply a positive limit.
const DefaultQueryLimit = 500

// sessionRunner opens one short transactional session per call.
type sessionRunner interface {
	Session(ctx context.Context, fn func(q repository.Queryer) error) error
}

// QueryConfig carries settings shared by the record query services.
type QueryConfig struct {
	DefaultLimit int
	// MaxLimit caps caller-supplied limits. Zero trusts the caller.
	MaxLimit int
	// Location defines "today" for date windows. Nil means time.Local.
	Location *time.Location
}

func (c QueryConfig) limit(requested int) int {
	if requested <= 0 {
		if c.DefaultLimit > 0 {
			return c.DefaultLimit
		}
		return DefaultQueryLimit
	}
	if c.MaxLimit > 0 && requested > c.MaxLimit {
		return c.MaxLimit
	}
	return requested
}

func (c QueryConfig) today(now time.Time) time.Time {
	if c.Location != nil {
		return now.In(c.Location)
	}
	return now
}

// queryBase holds the collaborators every record query service shares.
type queryBase struct {
	store     sessionRunner
	validator *validator.Validate
	cfg       QueryConfig
	now       func() time.Time
}

func newQueryBase(store sessionRunner, validate *validator.Validate, cfg QueryConfig) queryBase {
	if validate == nil {
		validate = validator.New()
	}
	return queryBase{store: store, validator: validate, cfg: cfg, now: time.Now}
}

func (b queryBase) validate(req interface{}) error {
	if err := b.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters")
	}
	return nil
}

func (b queryBase) window(start, end *string, policy daterange.Policy) (daterange.Window, error) {
	return daterange.Resolve(start, end, b.cfg.today(b.now()), policy)
}
