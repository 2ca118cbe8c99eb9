package id128

import (
	"sync"
	"syscall"
)

// mockNative is a test double that implements Native.
type mockNative struct {
	mu sync.Mutex
	// ids maps a libsystemd symbol to the ID it returns
	ids map[string]ID
	// errors maps a libsystemd symbol to the error it returns
	errors map[string]error
	// callCount tracks how many times each symbol was called
	callCount map[string]int
}

// newMockNative creates a mock with fixed boot, machine and invocation IDs.
func newMockNative() *mockNative {
	return &mockNative{
		ids: map[string]ID{
			symGetBoot:       MustParse("b00db00db00db00db00db00db00db00d"),
			symGetMachine:    MustParse("3ac41e0f9e7c4b5a8d2f1e0c9b8a7f6e"),
			symGetInvocation: MustParse("1a2b3c4d5e6f47089a0b1c2d3e4f5061"),
			symRandomize:     MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
		},
		errors:    make(map[string]error),
		callCount: make(map[string]int),
	}
}

// setError configures the mock to fail a symbol with a native errno.
func (m *mockNative) setError(sym string, errno syscall.Errno) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errors[sym] = &NativeError{Func: sym, Errno: errno}
}

// setID configures the ID returned for a symbol.
func (m *mockNative) setID(sym string, id ID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ids[sym] = id
}

func (m *mockNative) calls(sym string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.callCount[sym]
}

func (m *mockNative) result(sym string) (ID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callCount[sym]++

	if err, ok := m.errors[sym]; ok {
		return Null, err
	}

	return m.ids[sym], nil
}

// mix stands in for libsystemd's HMAC derivation.
func mix(base, app ID) ID {
	var out ID
	for i := range out {
		out[i] = base[i] ^ app[i]
	}

	return out
}

func (m *mockNative) derived(sym, baseSym string, app ID) (ID, error) {
	if _, err := m.result(sym); err != nil {
		return Null, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return mix(m.ids[baseSym], app), nil
}

func (m *mockNative) BootID() (ID, error)       { return m.result(symGetBoot) }
func (m *mockNative) MachineID() (ID, error)    { return m.result(symGetMachine) }
func (m *mockNative) InvocationID() (ID, error) { return m.result(symGetInvocation) }
func (m *mockNative) RandomID() (ID, error)     { return m.result(symRandomize) }

func (m *mockNative) BootIDAppSpecific(app ID) (ID, error) {
	return m.derived(symGetBootAppSpecific, symGetBoot, app)
}

func (m *mockNative) MachineIDAppSpecific(app ID) (ID, error) {
	return m.derived(symGetMachineAppSpecific, symGetMachine, app)
}

func (m *mockNative) InvocationIDAppSpecific(app ID) (ID, error) {
	return m.derived(symGetInvocationAppSpecific, symGetInvocation, app)
}

func (m *mockNative) AppSpecific(base, app ID) (ID, error) {
	if _, err := m.result(symGetAppSpecific); err != nil {
		return Null, err
	}

	return mix(base, app), nil
}

func (m *mockNative) FromString(s string) (ID, error) {
	if _, err := m.result(symFromString); err != nil {
		return Null, err
	}

	id, err := Parse(s)
	if err != nil {
		return Null, &NativeError{Func: symFromString, Errno: syscall.EINVAL}
	}

	return id, nil
}

func (m *mockNative) ToString(id ID) (string, error) {
	if _, err := m.result(symToString); err != nil {
		return "", err
	}

	return id.Text(FormatHex, Lower), nil
}
