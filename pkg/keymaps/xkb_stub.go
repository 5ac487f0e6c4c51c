//go:build !linux || !cgo

package keymaps

// SystemCompiler is unset where no xkb description can be compiled.
var SystemCompiler Compiler
