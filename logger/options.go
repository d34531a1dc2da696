package logger

import (
	"github.com/go-playground/validator/v10"

	"vsnlog/codes"
)

// Options are the explicit initialization parameters. They are defaults: the
// configuration store overrides them during Initialize.
type Options struct {
	AppName string `validate:"required"`
	LogDir  string `validate:"required"`
	Level   Level  `validate:"min=0,max=6"`
}

// validate is shared; the validator is safe for concurrent use.
var validate = validator.New()

// check rejects structurally invalid options.
func (o Options) check() error {
	if err := validate.Struct(o); err != nil {
		return codes.Wrap(codes.InvalidParameter, err, "invalid initialization options")
	}
	return nil
}
