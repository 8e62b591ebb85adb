//go:build tools
// +build tools

// This file tracks gogio, which packages the giocalc host for Android, iOS
// and the browser:
//
//	go run gioui.org/cmd/gogio -target android ./giocalc
package tools

import (
	_ "gioui.org/cmd/gogio"
)
