package ports

import "github.com/observeinc/obship/pkg/log"

// Logger re-exports the pkg/log abstraction so internal layers depend only
// on ports.
type Logger = log.Logger

// Field re-exports the structured log field type.
type Field = log.Field

// Field constructors re-exported for convenience.
var (
	String   = log.String
	Int      = log.Int
	Int64    = log.Int64
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
