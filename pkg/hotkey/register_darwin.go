package hotkey

import "golang.design/x/hotkey"

// hotkey events are delivered on the main thread, see RunOnMainThread.
const modAlt = hotkey.ModOption
