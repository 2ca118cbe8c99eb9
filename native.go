package id128

// DefaultLibrary is the shared object opened when no other library path is configured.
const DefaultLibrary = "libsystemd.so.0"

// libsystemd entry points.
const (
	symGetBoot                  = "sd_id128_get_boot"
	symGetMachine               = "sd_id128_get_machine"
	symGetInvocation            = "sd_id128_get_invocation"
	symRandomize                = "sd_id128_randomize"
	symGetBootAppSpecific       = "sd_id128_get_boot_app_specific"
	symGetMachineAppSpecific    = "sd_id128_get_machine_app_specific"
	symGetInvocationAppSpecific = "sd_id128_get_invocation_app_specific"
	symGetAppSpecific           = "sd_id128_get_app_specific"
	symFromString               = "sd_id128_from_string"
	symToString                 = "sd_id128_to_string"
)

// Native is the boundary to the system identifier library. [Libsystemd] is
// the production implementation; tests inject their own via
// [Provider.WithNative].
type Native interface {
	// BootID returns the ID of the running kernel instance.
	BootID() (ID, error)
	// MachineID returns the ID of the local system (/etc/machine-id).
	MachineID() (ID, error)
	// InvocationID returns the ID of the current service invocation.
	InvocationID() (ID, error)
	// RandomID returns a new random, UUID v4 compatible ID.
	RandomID() (ID, error)
	// BootIDAppSpecific returns the boot ID hashed with app.
	BootIDAppSpecific(app ID) (ID, error)
	// MachineIDAppSpecific returns the machine ID hashed with app.
	MachineIDAppSpecific(app ID) (ID, error)
	// InvocationIDAppSpecific returns the invocation ID hashed with app.
	InvocationIDAppSpecific(app ID) (ID, error)
	// AppSpecific returns base hashed with app.
	AppSpecific(base, app ID) (ID, error)
	// FromString parses text with the library's own parser.
	FromString(s string) (ID, error)
	// ToString formats id with the library's own formatter (32 lower case hex digits).
	ToString(id ID) (string, error)
}

var _ Native = (*Libsystemd)(nil)
