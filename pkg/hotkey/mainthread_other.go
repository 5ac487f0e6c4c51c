//go:build !darwin

package hotkey

func RunOnMainThread(fn func()) {
	fn()
}
