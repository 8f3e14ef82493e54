package scheduler

import (
	"fmt"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/robfig/cron/v3"
)

// cronLogger routes cron's internal logging into the core logger.
// Cron's Info output is chatty (every wake and run), so it goes to Debug.
type cronLogger struct {
	logger core.Logger
}

var _ cron.Logger = (*cronLogger)(nil)

func newCronLogger(logger core.Logger) *cronLogger {
	return &cronLogger{logger: logger}
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, toFields(keysAndValues))
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := toFields(keysAndValues)
	fields["error"] = err
	l.logger.Error("cron: "+msg, fields)
}

func toFields(keysAndValues []interface{}) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	if len(keysAndValues)%2 == 1 {
		fields["extra"] = keysAndValues[len(keysAndValues)-1]
	}
	return fields
}
