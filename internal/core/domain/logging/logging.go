package logging

import "context"

type LogEntry struct {
	Key   string
	Value interface{}
}

func Entry(k string, v interface{}) LogEntry {
	return LogEntry{Key: k, Value: v}
}

type Logger interface {
	Debug(ctx context.Context, msg string, entries ...LogEntry)
	Info(ctx context.Context, msg string, entries ...LogEntry)
	Warning(ctx context.Context, msg string, entries ...LogEntry)
	Error(ctx context.Context, msg string, entries ...LogEntry)
}

// Err logs err unless it is a context cancellation, which callers return as is.
func Err(ctx context.Context, log Logger, msg string, err error, entries ...LogEntry) {
	if ctx.Err() != nil {
		return
	}
	log.Error(ctx, msg, append(entries, Entry("err", err))...)
}
