package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// locFormatter renders entries as single-line JSON with the timestamp
// converted to the configured location.
type locFormatter struct {
	logrus.JSONFormatter
	loc *time.Location
}

func (f *locFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.In(f.loc)
	return f.JSONFormatter.Format(e)
}

// New builds a JSON logger writing to w. Keys follow the access/migration log
// vocabulary: ts, level, msg plus whatever fields callers attach.
func New(w io.Writer, loc *time.Location, level string) *logrus.Logger {
	if w == nil {
		w = os.Stdout
	}
	if loc == nil {
		loc = time.UTC
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&locFormatter{
		JSONFormatter: logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
				logrus.FieldKeyMsg:  "msg",
			},
		},
		loc: loc,
	})
	return l
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
