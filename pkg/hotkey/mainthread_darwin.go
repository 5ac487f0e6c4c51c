package hotkey

import "golang.design/x/hotkey/mainthread"

// RunOnMainThread runs fn while the main thread serves the Cocoa event loop
// hotkeys are delivered through. It must be called from main.
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}
