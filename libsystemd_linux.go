//go:build linux && (amd64 || arm64)

package id128

import (
	"encoding/binary"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"unsafe"

	"github.com/ebitengine/purego"
)

// sdID128 has the memory layout of sd_id128_t. The union's uint64 member
// makes it 8-byte aligned, so libsystemd may store through it word-wise.
type sdID128 [2]uint64

func toSD(id ID) sdID128 {
	return sdID128{
		binary.NativeEndian.Uint64(id[:8]),
		binary.NativeEndian.Uint64(id[8:]),
	}
}

func (s *sdID128) id() ID {
	var id ID
	binary.NativeEndian.PutUint64(id[:8], s[0])
	binary.NativeEndian.PutUint64(id[8:], s[1])

	return id
}

// Signatures of the bound functions. A sd_id128_t argument is a 16-byte
// aggregate of integers, which the amd64 and arm64 C ABIs pass by value in
// two consecutive integer registers, so it is declared as two uint64 words.
type (
	getFunc    func(ret unsafe.Pointer) int32
	deriveFunc func(appLo, appHi uint64, ret unsafe.Pointer) int32
	hashFunc   func(baseLo, baseHi, appLo, appHi uint64, ret unsafe.Pointer) int32
	parseFunc  func(s unsafe.Pointer, ret unsafe.Pointer) int32
	formatFunc func(lo, hi uint64, s unsafe.Pointer) uintptr
)

// Libsystemd calls the sd-id128 API of a dynamically loaded libsystemd.
// Functions missing from older libsystemd releases fail with
// [ErrNotSupported]. Libsystemd is safe for concurrent use.
type Libsystemd struct {
	path   string
	handle uintptr

	mu     sync.RWMutex
	closed bool

	getBoot                  getFunc
	getMachine               getFunc
	getInvocation            getFunc
	randomize                getFunc
	getBootAppSpecific       deriveFunc
	getMachineAppSpecific    deriveFunc
	getInvocationAppSpecific deriveFunc
	getAppSpecific           hashFunc
	fromString               parseFunc
	toString                 formatFunc
}

// OpenLibsystemd loads libsystemd from path and binds the sd-id128 functions.
// An empty path means [DefaultLibrary]. Load failures are [*LibraryError].
func OpenLibsystemd(path string) (*Libsystemd, error) {
	if path == "" {
		path = DefaultLibrary
	}

	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, &LibraryError{Path: path, Err: err}
	}

	l := &Libsystemd{path: path, handle: handle}

	required := []struct {
		fptr any
		name string
	}{
		{&l.getBoot, symGetBoot},
		{&l.getMachine, symGetMachine},
		{&l.randomize, symRandomize},
		{&l.fromString, symFromString},
		{&l.toString, symToString},
	}
	for _, r := range required {
		if err := l.bind(r.fptr, r.name); err != nil {
			_ = purego.Dlclose(handle)

			return nil, &LibraryError{Path: path, Err: err}
		}
	}

	// Optional: added in later systemd releases.
	_ = l.bind(&l.getInvocation, symGetInvocation)
	_ = l.bind(&l.getMachineAppSpecific, symGetMachineAppSpecific)
	_ = l.bind(&l.getBootAppSpecific, symGetBootAppSpecific)
	_ = l.bind(&l.getInvocationAppSpecific, symGetInvocationAppSpecific)
	_ = l.bind(&l.getAppSpecific, symGetAppSpecific)

	return l, nil
}

// bind resolves name and registers it into the function pointed to by fptr.
// On failure *fptr stays nil.
func (l *Libsystemd) bind(fptr any, name string) error {
	sym, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return err
	}

	purego.RegisterFunc(fptr, sym)

	return nil
}

// Path returns the library name or path that was loaded.
func (l *Libsystemd) Path() string {
	return l.path
}

// Close unloads the library. Calls made after Close fail with [ErrUnavailable].
func (l *Libsystemd) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	return purego.Dlclose(l.handle)
}

// BootID calls sd_id128_get_boot.
func (l *Libsystemd) BootID() (ID, error) {
	return l.get(symGetBoot, l.getBoot)
}

// MachineID calls sd_id128_get_machine.
func (l *Libsystemd) MachineID() (ID, error) {
	return l.get(symGetMachine, l.getMachine)
}

// InvocationID calls sd_id128_get_invocation.
func (l *Libsystemd) InvocationID() (ID, error) {
	return l.get(symGetInvocation, l.getInvocation)
}

// RandomID calls sd_id128_randomize.
func (l *Libsystemd) RandomID() (ID, error) {
	return l.get(symRandomize, l.randomize)
}

// BootIDAppSpecific calls sd_id128_get_boot_app_specific.
func (l *Libsystemd) BootIDAppSpecific(app ID) (ID, error) {
	return l.derive(symGetBootAppSpecific, l.getBootAppSpecific, app)
}

// MachineIDAppSpecific calls sd_id128_get_machine_app_specific.
func (l *Libsystemd) MachineIDAppSpecific(app ID) (ID, error) {
	return l.derive(symGetMachineAppSpecific, l.getMachineAppSpecific, app)
}

// InvocationIDAppSpecific calls sd_id128_get_invocation_app_specific.
func (l *Libsystemd) InvocationIDAppSpecific(app ID) (ID, error) {
	return l.derive(symGetInvocationAppSpecific, l.getInvocationAppSpecific, app)
}

// AppSpecific calls sd_id128_get_app_specific.
func (l *Libsystemd) AppSpecific(base, app ID) (ID, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := l.check(symGetAppSpecific, l.getAppSpecific == nil); err != nil {
		return Null, err
	}

	b, a := toSD(base), toSD(app)

	var ret sdID128
	if rc := l.getAppSpecific(b[0], b[1], a[0], a[1], unsafe.Pointer(&ret)); rc < 0 {
		return Null, newNativeError(symGetAppSpecific, rc)
	}

	return ret.id(), nil
}

// FromString calls sd_id128_from_string. Text containing a NUL byte is
// rejected before the call.
func (l *Libsystemd) FromString(s string) (ID, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return Null, &ParseError{Input: s, Offset: i, Err: ErrInvalidCharacter}
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := l.check(symFromString, l.fromString == nil); err != nil {
		return Null, err
	}

	cstr := make([]byte, len(s)+1)
	copy(cstr, s)

	var ret sdID128
	rc := l.fromString(unsafe.Pointer(&cstr[0]), unsafe.Pointer(&ret))
	runtime.KeepAlive(cstr)
	if rc < 0 {
		return Null, newNativeError(symFromString, rc)
	}

	return ret.id(), nil
}

// ToString calls sd_id128_to_string.
func (l *Libsystemd) ToString(id ID) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := l.check(symToString, l.toString == nil); err != nil {
		return "", err
	}

	// SD_ID128_STRING_MAX: 32 digits and the terminating NUL.
	var buf [33]byte

	w := toSD(id)
	p := l.toString(w[0], w[1], unsafe.Pointer(&buf[0]))
	runtime.KeepAlive(&buf)
	if p == 0 {
		return "", &NativeError{Func: symToString, Errno: syscall.EIO}
	}

	if buf[32] != 0 {
		return "", &NativeError{Func: symToString, Errno: syscall.EBADMSG}
	}
	for _, c := range buf[:32] {
		if _, ok := unhex(c); !ok {
			return "", &NativeError{Func: symToString, Errno: syscall.EBADMSG}
		}
	}

	return string(buf[:32]), nil
}

func (l *Libsystemd) get(name string, fn getFunc) (ID, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := l.check(name, fn == nil); err != nil {
		return Null, err
	}

	var ret sdID128
	if rc := fn(unsafe.Pointer(&ret)); rc < 0 {
		return Null, newNativeError(name, rc)
	}

	return ret.id(), nil
}

func (l *Libsystemd) derive(name string, fn deriveFunc, app ID) (ID, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := l.check(name, fn == nil); err != nil {
		return Null, err
	}

	a := toSD(app)

	var ret sdID128
	if rc := fn(a[0], a[1], unsafe.Pointer(&ret)); rc < 0 {
		return Null, newNativeError(name, rc)
	}

	return ret.id(), nil
}

// check must be called with l.mu held.
func (l *Libsystemd) check(name string, missing bool) error {
	if l.closed {
		return &NativeError{Func: name, Errno: syscall.EBADF}
	}
	if missing {
		return &NativeError{Func: name, Errno: syscall.ENOSYS}
	}

	return nil
}
