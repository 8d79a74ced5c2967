/*
   Copyright 2026 The Apifault Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package logx

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"apifault.dev/faults"
)

// Config describes where fault logs go and how verbose they are.
//
// The zero value is a valid "silent" configuration: no console, no file —
// New returns a no-op logger for it.
type Config struct {
	// Level is the minimum level as text: "debug", "info", "warn", "error".
	// Case-insensitive. Empty means "info".
	Level string

	// Console enables a colored console core on stderr.
	Console bool

	// FilePath, when non-empty, enables a plain (uncolored) core appending
	// to the given file.
	FilePath string
}

// ParseLevel converts a textual level into a zap level. Unknown levels are
// an error, not a silent default.
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InvalidLevel, fmt.Errorf("logx: invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// New builds a logger from the config: a colored console core, an optional
// plain file core, or both joined with a tee. With neither enabled the
// returned logger is a no-op.
func New(cfg Config) (*zap.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core

	if cfg.Console {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			lvl,
		))
	}

	if cfg.FilePath != "" {
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logx: open log file: %w", err)
		}
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(f),
			lvl,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...)), nil
}

// Fault logs an error at Error level with its full server-side detail.
//
// For a fault this includes the wire code, category, resolved status,
// structured fields, cause, and — for technical faults — the diagnostic
// snapshot. This is the only place the snapshot is meant to surface; it
// must never be written to a response body. Non-fault errors are logged
// with their message alone.
func Fault(l *zap.Logger, err error) {
	if l == nil || err == nil {
		return
	}

	var fe *faults.Error
	if !errors.As(err, &fe) {
		l.Error(err.Error())
		return
	}

	fields := []zap.Field{
		zap.String("code", string(fe.Code)),
		zap.String("category", string(fe.Category)),
		zap.Int("status", fe.Status),
	}
	if len(fe.Fields) > 0 {
		fields = append(fields, zap.Any("fields", fe.Fields))
	}
	if fe.Cause != nil {
		fields = append(fields, zap.NamedError("cause", fe.Cause))
	}
	if fe.Snapshot != "" {
		fields = append(fields, zap.String("snapshot", fe.Snapshot))
	}
	l.Error(fe.Message, fields...)
}
