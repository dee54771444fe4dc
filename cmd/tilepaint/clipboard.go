package main

import (
	"log"

	"golang.design/x/clipboard"
)

// initClipboard reports whether the system clipboard is usable. On
// headless systems init fails and the copy/paste bindings are disabled
// rather than crashing the editor.
func initClipboard() bool {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return false
	}
	return true
}

func clipboardWrite(data []byte) {
	clipboard.Write(clipboard.FmtText, data)
}

func clipboardRead() []byte {
	return clipboard.Read(clipboard.FmtText)
}
