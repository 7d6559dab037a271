package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

const (
	INFO = iota
	DEBUG
)

// Logger writes prefixed lines to stdout and, optionally, to a log file.
// One instance is created by the command and handed to every component.
type Logger struct {
	InfoLog  *log.Logger
	ErrorLog *log.Logger
	WarnLog  *log.Logger
	DebugLog *log.Logger

	level   int
	logFile *os.File
}

// New builds a logger writing to w.
func New(w io.Writer, level int) *Logger {
	flags := log.Ldate | log.Ltime
	return &Logger{
		InfoLog:  log.New(w, "INFO: ", flags),
		ErrorLog: log.New(w, "ERROR: ", flags),
		WarnLog:  log.New(w, "WARN: ", flags),
		DebugLog: log.New(w, "DEBUG: ", flags),
		level:    level,
	}
}

// InitLogger initializes the logger with a file output and console output.
// An empty filename logs to stdout only.
func InitLogger(filename string, level int) (*Logger, error) {
	if filename == "" {
		return New(os.Stdout, level), nil
	}

	logFile, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	l := New(io.MultiWriter(os.Stdout, logFile), level)
	l.logFile = logFile
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, INFO)
}

// ParseLevel maps "debug" to DEBUG and anything else to INFO.
func ParseLevel(s string) int {
	if strings.EqualFold(strings.TrimSpace(s), "debug") {
		return DEBUG
	}
	return INFO
}

func (l *Logger) Close() {
	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
	}
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.InfoLog.Printf(format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.ErrorLog.Printf(format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.WarnLog.Printf(format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.level < DEBUG {
		return
	}
	l.DebugLog.Printf(format, v...)
}
