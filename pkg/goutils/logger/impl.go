/*
 * Copyright (c) 2020-present unTill Pro, Ltd. and Contributors
 * @author Maxim Geraskin
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 *
 * Modifications copyright (c) 2026-present unTill Software Development Group B.V.
 */

package logger

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type logPrinter struct {
	logLevel TLogLevel
}

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

type ctxKey struct{}

func isEnabled(level TLogLevel) bool {
	return TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel))) >= level
}

func getLevelPrefix(level TLogLevel) string {
	switch level {
	case LogLevelError:
		return errorPrefix
	case LogLevelWarning:
		return warningPrefix
	case LogLevelInfo:
		return infoPrefix
	case LogLevelVerbose:
		return verbosePrefix
	case LogLevelTrace:
		return tracePrefix
	}
	return ""
}

func getFuncName(skipStackFrames int) (funcName string, line int) {
	return globalLogPrinter.getFuncName(skipStackFrames + 1)
}

// getFuncName returns short `package.func` name of the caller and its line
func (p *logPrinter) getFuncName(skipStackFrames int) (funcName string, line int) {
	var fn string
	pc, _, line, ok := runtime.Caller(skipStackFrames)
	if ok {
		fn = runtime.FuncForPC(pc).Name()
		if slash := strings.LastIndex(fn, "/"); slash >= 0 {
			fn = fn[slash+1:]
		}
	}
	return fn, line
}

func (p *logPrinter) getFormattedMsg(msgType string, funcName string, line int, args ...interface{}) string {
	t := time.Now()
	out := fmt.Sprint(t.Format("01/02 15:04:05.000"))
	out += fmt.Sprint(": " + msgType)
	out += fmt.Sprintf(": [%v:%v]:", funcName, line)
	if len(args) > 0 {
		out += " " + joinArgs(args...)
	}
	return out
}

// Returns args separated by single space
func joinArgs(args ...interface{}) string {
	b := strings.Builder{}
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, arg)
	}
	return b.String()
}

func printIfLevel(skipStackFrames int, level TLogLevel, args ...interface{}) {
	if !isEnabled(level) {
		return
	}
	funcName, line := globalLogPrinter.getFuncName(skipStackFrames + logSkipFrames - 1)
	PrintLine(level, globalLogPrinter.getFormattedMsg(getLevelPrefix(level), funcName, line, args...))
}
