package ormdoc

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Annotation run completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or disabled project
	ExitApprovalDenied = 12 // User denied write approval
	ExitManifestError  = 14 // Class manifest not found or unreadable
)

const (
	// StartMarker delimits the beginning of a generated annotation block.
	// The first occurrence in a file is authoritative; the token must never
	// collide with content a human author would write by hand.
	StartMarker = "StartGeneratedWithOrmdoc"

	// EndMarker delimits the end of a generated annotation block.
	EndMarker = "EndGeneratedWithOrmdoc"

	// DocBlockOpen and DocBlockClose wrap a freshly inserted block in a
	// single docblock comment immediately preceding the class declaration.
	DocBlockOpen  = "/**"
	DocBlockClose = " */"

	// CommentContinuation prefixes every interior line of a generated
	// block, including the blank lines around the tag payload.
	CommentContinuation = " * "
)

const (
	// ConfigFileName is the per-project configuration file.
	ConfigFileName = "ormdoc.yaml"

	// DefaultManifestName is the default class manifest file, relative to
	// the project root. Overridable via configuration.
	DefaultManifestName = "ormdoc-classes.yaml"
)
