package win32

import (
	"fmt"
	"golang.org/x/sys/windows"
	"unicode/utf16"
	"unsafe"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetKeyboardLayoutList      = user32.NewProc("GetKeyboardLayoutList")
	procMapVirtualKeyExW           = user32.NewProc("MapVirtualKeyExW")
	procToUnicodeEx                = user32.NewProc("ToUnicodeEx")
	procGetForegroundWindow        = user32.NewProc("GetForegroundWindow")
	procPostMessageW               = user32.NewProc("PostMessageW")
	procSendInput                  = user32.NewProc("SendInput")
	procGetClipboardSequenceNumber = user32.NewProc("GetClipboardSequenceNumber")
	procLCIDToLocaleName           = kernel32.NewProc("LCIDToLocaleName")
)

const (
	mapvkVKToVSCEx           = 4
	toUnicodeKeepState       = 4
	wmInputLangChangeRequest = 0x0050
	localeNameMaxLength      = 85

	inputKeyboard    = 1
	keyeventfKeyUp   = 0x0002
	keyeventfUnicode = 0x0004
)

type keybdInput struct {
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	extraInfo uintptr
}

// keyboardInput mirrors INPUT. The union is as large as MOUSEINPUT, which is
// 8 bytes larger than KEYBDINPUT on both 386 and amd64.
type keyboardInput struct {
	typ uint32
	ki  keybdInput
	_   [8]byte
}

func keyboardLayouts() ([]windows.Handle, error) {
	n, _, err := procGetKeyboardLayoutList.Call(0, 0)
	if n == 0 {
		return nil, fmt.Errorf("GetKeyboardLayoutList: %w", err)
	}

	hkls := make([]windows.Handle, n)
	n, _, err = procGetKeyboardLayoutList.Call(n, uintptr(unsafe.Pointer(&hkls[0])))
	if n == 0 {
		return nil, fmt.Errorf("GetKeyboardLayoutList: %w", err)
	}

	return hkls[:n], nil
}

func langID(hkl windows.Handle) uint16 {
	return uint16(uintptr(hkl) & 0xFFFF)
}

func localeName(langID uint16) string {
	buf := make([]uint16, localeNameMaxLength)
	n, _, _ := procLCIDToLocaleName.Call(uintptr(langID), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), 0)
	if n == 0 {
		return fmt.Sprintf("%04x", langID)
	}
	return windows.UTF16ToString(buf)
}

// keyGlyph is what vk produces under hkl with the given keyboard state, without
// touching the dead key buffer.
func keyGlyph(hkl windows.Handle, vk uint16, state *[256]byte) (string, bool) {
	sc, _, _ := procMapVirtualKeyExW.Call(uintptr(vk), mapvkVKToVSCEx, uintptr(hkl))
	if sc == 0 {
		return "", false
	}

	var buf [8]uint16
	n, _, _ := procToUnicodeEx.Call(
		uintptr(vk), sc,
		uintptr(unsafe.Pointer(&state[0])),
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)),
		toUnicodeKeepState, uintptr(hkl),
	)
	written := int32(n)
	if written <= 0 {
		return "", false
	}

	return string(utf16.Decode(buf[:written])), true
}

func foregroundWindow() uintptr {
	hwnd, _, _ := procGetForegroundWindow.Call()
	return hwnd
}

func requestLayout(hwnd uintptr, hkl windows.Handle) error {
	r, _, err := procPostMessageW.Call(hwnd, wmInputLangChangeRequest, 0, uintptr(hkl))
	if r == 0 {
		return fmt.Errorf("PostMessage: %w", err)
	}
	return nil
}

func clipboardSequence() uint32 {
	n, _, _ := procGetClipboardSequenceNumber.Call()
	return uint32(n)
}

func sendInput(events []keyEvent) error {
	if len(events) == 0 {
		return nil
	}

	inputs := make([]keyboardInput, len(events))
	for i, e := range events {
		in := keyboardInput{typ: inputKeyboard, ki: keybdInput{vk: e.vk}}
		if e.unicode {
			in.ki.scan = e.unit
			in.ki.flags |= keyeventfUnicode
		}
		if e.up {
			in.ki.flags |= keyeventfKeyUp
		}
		inputs[i] = in
	}

	n, _, err := procSendInput.Call(uintptr(len(inputs)), uintptr(unsafe.Pointer(&inputs[0])), unsafe.Sizeof(inputs[0]))
	if int(n) != len(inputs) {
		return fmt.Errorf("SendInput: sent %d of %d: %w", n, len(inputs), err)
	}
	return nil
}
