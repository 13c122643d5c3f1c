// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addrlog is the logging subsystem for cmd/btcaddr. The codec
// packages (chaincfg, txscript, btcutil) are pure functions and never
// log, matching the teacher's own split between silent library code and
// a logging main binary (pktlog/log is only ever touched from
// cmd-adjacent code, never from btcutil/txscript themselves).
//
// Unlike pktlog/log (which hand-rolls its own backend, formatter and
// level filter), this wraps github.com/btcsuite/btclog directly: a
// CLI this small has no need to reimplement what the dependency already
// provides.
package addrlog

import (
	"os"

	"github.com/btcsuite/btclog"

	"github.com/btcaddr/codec/btcutil/er"
)

// backend is the single process-wide log backend, writing to stderr so
// stdout stays free for the CLI's address/script output.
var backend = btclog.NewBackend(os.Stderr)

// Log is the subsystem logger cmd/btcaddr uses for its own diagnostics.
// Named "BADR" to match the teacher's convention of a short, fixed-width
// subsystem tag (pktlog/log's LevelFromString/SetLogLevels machinery
// assumes one).
var Log = backend.Logger("BADR")

func init() {
	Log.SetLevel(btclog.LevelInfo)
}

// SetLevel parses a level name (trace/debug/info/warn/error/critical/off)
// and applies it to Log, the same subsystem=level surface SetLogLevels
// offers in the teacher, trimmed to the single subsystem this CLI has.
func SetLevel(levelName string) er.R {
	lvl, ok := btclog.LevelFromString(levelName)
	if !ok {
		return er.Errorf("invalid log level %q", levelName)
	}
	Log.SetLevel(lvl)
	return nil
}

// Disable silences Log entirely, for callers that want the library
// behavior of producing no output (e.g. piping address output through
// a script).
func Disable() {
	Log.SetLevel(btclog.LevelOff)
}
