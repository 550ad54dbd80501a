package config

const (
	// BankName is the simulated institution the bot speaks for.
	BankName = "SecureBank"
	// SupportLine appears in every reply that hands the user off to a human.
	SupportLine = "1-800-SECURE"
	// SupportSite is the self-service portal referenced by the support reply.
	SupportSite = "www.securebank.com/support"
)

// Config holds application configuration
type Config struct {
	UserID string // Chat user identifier; generated by the CLI when empty
	Debug  bool
	DBPath string // SQLite transcript database path; empty disables the transcript
	Seed   int64  // Seed for canned reply selection; 0 means seed from the clock
}
