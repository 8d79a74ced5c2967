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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"apifault.dev/faults"
	"apifault.dev/faults/detail"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{" warn ", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InvalidLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_SilentConfig(t *testing.T) {
	l, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Must not panic; a no-op logger swallows everything.
	l.Error("nobody hears this")
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(Config{Level: "verbose", Console: true}); err == nil {
		t.Fatal("want error for invalid level")
	}
}

func TestNew_FileCore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faults.log")
	l, err := New(Config{FilePath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Error("db exploded")
	if err := l.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "db exploded") || !strings.Contains(out, "ERROR") {
		t.Fatalf("log file content: %q", out)
	}
}

func TestNew_BadFilePath(t *testing.T) {
	if _, err := New(Config{FilePath: filepath.Join(t.TempDir(), "no", "such", "dir.log")}); err == nil {
		t.Fatal("want error for unwritable path")
	}
}

func TestFault_FaultFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	cause := errors.New("pq: connection refused")
	fe := faults.DatabaseError(detail.Text("select failed")).
		WithField("table", "employees").
		WithCause(cause)

	Fault(l, fe)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Message != "database operation failed: select failed" {
		t.Fatalf("message = %q", e.Message)
	}

	ctx := e.ContextMap()
	if ctx["code"] != "DATABASE_ERROR" {
		t.Fatalf("code field = %v", ctx["code"])
	}
	if ctx["category"] != "technical" {
		t.Fatalf("category field = %v", ctx["category"])
	}
	if ctx["status"] != int64(500) {
		t.Fatalf("status field = %v", ctx["status"])
	}
	if ctx["cause"] != "pq: connection refused" {
		t.Fatalf("cause field = %v", ctx["cause"])
	}
	snap, _ := ctx["snapshot"].(string)
	if snap == "" {
		t.Fatal("technical fault log must carry the snapshot")
	}
}

func TestFault_FunctionalHasNoSnapshot(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Fault(zap.New(core), faults.MissingToken())

	ctx := logs.All()[0].ContextMap()
	if _, ok := ctx["snapshot"]; ok {
		t.Fatal("functional fault must not log a snapshot")
	}
	if _, ok := ctx["cause"]; ok {
		t.Fatal("no cause attached, none must be logged")
	}
}

func TestFault_NonFault(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Fault(zap.New(core), errors.New("plain failure"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Message != "plain failure" {
		t.Fatalf("message = %q", entries[0].Message)
	}
	if len(entries[0].Context) != 0 {
		t.Fatalf("non-fault log must carry no fields, got %v", entries[0].Context)
	}
}

func TestFault_NilInputs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Fault(nil, errors.New("x"))
	Fault(zap.New(core), nil)
	if logs.Len() != 0 {
		t.Fatalf("nil inputs must log nothing, got %d entries", logs.Len())
	}
}
