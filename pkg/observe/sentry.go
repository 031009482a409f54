package observe

import (
	"encoding/json"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// SentryHook is an io.Writer for NewZapLogger. It decodes each JSON log line
// and forwards error and fatal entries to Sentry when running in a
// forwarding environment (see forwardsEnv).
type SentryHook struct {
	appEnv  string
	appName string
	capture func(*sentry.Event)
	l       *Logger
}

type sentryLogLine struct {
	Level      string `json:"level"`
	AppName    string `json:"app_name"`
	AppEnv     string `json:"app_env"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}

func NewSentryHook(appEnv, appName string, isDebug bool, dsn string) (*SentryHook, error) {
	if dsn == "" {
		return nil, errors.New("sentry: no DSN configured")
	}

	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout

	if err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Debug:            isDebug,
		Dsn:              dsn,
		Environment:      appEnv,
		MaxErrorDepth:    _sentryMaxErrorDepth,
		ServerName:       appName,
		Transport:        sentryTransport,
	}); err != nil {
		return nil, errors.Wrap(err, "sentry: init")
	}

	return &SentryHook{
		appEnv:  appEnv,
		appName: appName,
		capture: func(e *sentry.Event) { sentry.CaptureEvent(e) },
	}, nil
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {

	switch zl {

	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal

	}

	return sentry.LevelDebug
}

// forwardsEnv reports whether entries logged in appEnv reach Sentry.
func forwardsEnv(appEnv string) bool {
	switch appEnv {
	case "prod", "production", "dev":
		return true
	}
	return false
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	if !forwardsEnv(h.appEnv) {
		return len(p), nil
	}

	var t sentryLogLine
	if err := json.Unmarshal(p, &t); err != nil {
		h.report(errors.Wrap(err, "[SentryHook] json.Unmarshal data"))
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(t.Level)
	if err != nil {
		h.report(errors.Wrap(err, "[SentryHook] parse zap level"))
		return len(p), nil
	}

	if level < zapcore.ErrorLevel || t.Message == "" {
		return len(p), nil
	}

	h.capture(h.buildEvent(level, t))

	return len(p), nil
}

func (h *SentryHook) buildEvent(level zapcore.Level, t sentryLogLine) *sentry.Event {
	timestamp, err := time.Parse(timestampLayout, t.Timestamp)
	if err != nil {
		timestamp = time.Now().UTC()
	}

	event := sentry.NewEvent()
	event.Extra["AppName"] = h.appName
	event.Environment = h.appEnv
	event.Level = h.mapLevel(level)
	event.Timestamp = timestamp
	event.Message = t.Message
	event.Extra["Error"] = t.Error
	event.Extra["CallerFile"] = t.CallerFile
	event.Extra["CallerLine"] = t.CallerLine
	event.Extra["CallerFunc"] = t.CallerFunc
	event.Extra["Stack"] = t.Stack
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       t.Message,
		Value:      t.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event
}

// report must not log at error level, the entry would come back through Write.
func (h *SentryHook) report(err error) {
	if h.l != nil {
		h.l.Warning(err.Error())
	}
}

func (h *SentryHook) SetLogger(logger *Logger) {
	if logger != nil {
		h.l = logger
	}
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	return sentry.Flush(_sentryFlushTimeout)
}
