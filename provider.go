package id128

import (
	"log/slog"
	"sync"
)

// Provider retrieves IDs from a [Native] backend.
// The boot and machine IDs are constant for the lifetime of the process, so
// the first successful result of [Provider.BootID] and [Provider.MachineID]
// is cached. Provider methods are safe for concurrent use after
// configuration is complete.
// The first BootID or MachineID call holds the provider lock across the
// native call, so concurrent callers wait until it returns.
type Provider struct {
	native    Native
	nativeErr error
	library   string
	logger    *slog.Logger
	bootID    *ID
	machineID *ID
	mu        sync.Mutex
	opened    bool
}

// New creates a new Provider with default settings.
// The provider opens [DefaultLibrary] on first use.
func New() *Provider {
	return &Provider{
		library: DefaultLibrary,
	}
}

// WithLibrary sets the libsystemd name or path to open on first use.
func (p *Provider) WithLibrary(path string) *Provider {
	p.library = path

	return p
}

// WithNative sets a custom [Native] backend, enabling deterministic testing
// without libsystemd.
func (p *Provider) WithNative(native Native) *Provider {
	p.native = native
	p.opened = native != nil

	return p
}

// WithLogger sets an optional [*slog.Logger] for observability.
// When set, the provider logs library loading, native calls and their
// failures. A nil logger (the default) disables all logging.
func (p *Provider) WithLogger(logger *slog.Logger) *Provider {
	p.logger = logger

	return p
}

// backend returns the native backend, opening the library on first use.
// The open error is remembered; later calls fail the same way.
func (p *Provider) backend() (Native, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.backendLocked()
}

func (p *Provider) backendLocked() (Native, error) {
	if p.opened {
		return p.native, p.nativeErr
	}
	p.opened = true

	p.logDebug("opening native library", "library", p.library)

	lib, err := OpenLibsystemd(p.library)
	if err != nil {
		p.nativeErr = err
		p.logWarn("native library unavailable", "library", p.library, "error", err)

		return nil, err
	}

	p.native = lib
	p.logInfo("native library loaded", "library", lib.Path())

	return p.native, nil
}

// BootID returns the ID of the running kernel instance.
// The result is cached after the first success.
func (p *Provider) BootID() (ID, error) {
	return p.cached(&p.bootID, "boot", Native.BootID)
}

// MachineID returns the ID of the local system.
// The result is cached after the first success.
func (p *Provider) MachineID() (ID, error) {
	return p.cached(&p.machineID, "machine", Native.MachineID)
}

// InvocationID returns the ID of the current systemd service invocation.
// Outside a service it fails with [ErrUnavailable].
func (p *Provider) InvocationID() (ID, error) {
	return p.call("invocation", Native.InvocationID)
}

// RandomID returns a new random ID. It is UUID v4 compatible.
func (p *Provider) RandomID() (ID, error) {
	return p.call("random", Native.RandomID)
}

// BootIDAppSpecific returns the boot ID hashed with app. Prefer it over
// [Provider.BootID] when handing the ID to untrusted parties: it is stable
// for one boot and app but cannot be correlated across applications.
func (p *Provider) BootIDAppSpecific(app ID) (ID, error) {
	return p.call("boot app-specific", func(n Native) (ID, error) {
		return n.BootIDAppSpecific(app)
	}, "app", app)
}

// MachineIDAppSpecific returns the machine ID hashed with app. Prefer it
// over [Provider.MachineID] when handing the ID to untrusted parties.
func (p *Provider) MachineIDAppSpecific(app ID) (ID, error) {
	return p.call("machine app-specific", func(n Native) (ID, error) {
		return n.MachineIDAppSpecific(app)
	}, "app", app)
}

// InvocationIDAppSpecific returns the invocation ID hashed with app.
func (p *Provider) InvocationIDAppSpecific(app ID) (ID, error) {
	return p.call("invocation app-specific", func(n Native) (ID, error) {
		return n.InvocationIDAppSpecific(app)
	}, "app", app)
}

// AppSpecific returns base hashed with app.
func (p *Provider) AppSpecific(base, app ID) (ID, error) {
	return p.call("app-specific", func(n Native) (ID, error) {
		return n.AppSpecific(base, app)
	}, "base", base, "app", app)
}

// ParseNative parses s with libsystemd's parser. Unlike [Parse] it accepts
// only what the running libsystemd accepts.
func (p *Provider) ParseNative(s string) (ID, error) {
	return p.call("parse", func(n Native) (ID, error) {
		return n.FromString(s)
	}, "input", s)
}

// NativeString formats id with libsystemd as 32 lower case hex digits.
func (p *Provider) NativeString(id ID) (string, error) {
	n, err := p.backend()
	if err != nil {
		return "", err
	}

	s, err := n.ToString(id)
	if err != nil {
		p.logWarn("native format failed", "id", id, "error", err)

		return "", err
	}

	return s, nil
}

func (p *Provider) cached(slot **ID, kind string, get func(Native) (ID, error)) (ID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if *slot != nil {
		p.logDebug("returning cached ID", "kind", kind)

		return **slot, nil
	}

	n, err := p.backendLocked()
	if err != nil {
		return Null, err
	}

	id, err := get(n)
	if err != nil {
		p.logWarn("native call failed", "kind", kind, "error", err)

		return Null, err
	}

	*slot = &id
	p.logDebug("ID retrieved", "kind", kind)

	return id, nil
}

func (p *Provider) call(kind string, get func(Native) (ID, error), attrs ...any) (ID, error) {
	n, err := p.backend()
	if err != nil {
		return Null, err
	}

	id, err := get(n)
	if err != nil {
		p.logWarn("native call failed", append([]any{"kind", kind, "error", err}, attrs...)...)

		return Null, err
	}

	p.logDebug("ID retrieved", append([]any{"kind", kind}, attrs...)...)

	return id, nil
}

// logDebug logs at debug level if a logger is configured.
func (p *Provider) logDebug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

// logInfo logs at info level if a logger is configured.
func (p *Provider) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

// logWarn logs at warn level if a logger is configured.
func (p *Provider) logWarn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
