package logging

import (
	"io"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

// New returns a logger writing logfmt records of at least the given level
// ("debug", "info", "warn", "error" or "crit") to w.
func New(w io.Writer, level string, ctx ...interface{}) (log15.Logger, error) {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	logger := log15.New(ctx...)
	logger.SetHandler(log15.LvlFilterHandler(lvl, log15.StreamHandler(w, log15.LogfmtFormat())))
	return logger, nil
}

// Discard returns a logger that drops every record.
func Discard() log15.Logger {
	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())
	return logger
}
