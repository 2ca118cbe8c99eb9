package id128

import "sync"

var defaultProvider = sync.OnceValue(New)

// Default returns the process-wide Provider used by the package-level
// functions. It opens [DefaultLibrary] on first use.
func Default() *Provider {
	return defaultProvider()
}

// BootID returns the boot ID of the running kernel, see [Provider.BootID].
func BootID() (ID, error) {
	return Default().BootID()
}

// MachineID returns the machine ID of the local system, see [Provider.MachineID].
func MachineID() (ID, error) {
	return Default().MachineID()
}

// InvocationID returns the invocation ID of the current service, see [Provider.InvocationID].
func InvocationID() (ID, error) {
	return Default().InvocationID()
}

// RandomID returns a new random ID, see [Provider.RandomID].
func RandomID() (ID, error) {
	return Default().RandomID()
}

// BootIDAppSpecific returns the boot ID hashed with app, see [Provider.BootIDAppSpecific].
func BootIDAppSpecific(app ID) (ID, error) {
	return Default().BootIDAppSpecific(app)
}

// MachineIDAppSpecific returns the machine ID hashed with app, see [Provider.MachineIDAppSpecific].
func MachineIDAppSpecific(app ID) (ID, error) {
	return Default().MachineIDAppSpecific(app)
}

// InvocationIDAppSpecific returns the invocation ID hashed with app.
func InvocationIDAppSpecific(app ID) (ID, error) {
	return Default().InvocationIDAppSpecific(app)
}

// AppSpecific returns base hashed with app.
func AppSpecific(base, app ID) (ID, error) {
	return Default().AppSpecific(base, app)
}

// ParseNative parses s with libsystemd, see [Provider.ParseNative].
func ParseNative(s string) (ID, error) {
	return Default().ParseNative(s)
}

// NativeString formats id with libsystemd, see [Provider.NativeString].
func NativeString(id ID) (string, error) {
	return Default().NativeString(id)
}
