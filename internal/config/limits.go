package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (names should be short and descriptive).
	MaxFolderNameLength = 255

	// MinUsernameLength and MaxUsernameLength bound account usernames.
	MinUsernameLength = 3
	MaxUsernameLength = 20

	// MinPasswordLength and MaxPasswordLength bound account passwords.
	MinPasswordLength = 8
	MaxPasswordLength = 100
)
