package models

// Every response body carries an "ok" flag. Failures add a stable,
// machine-readable "error" code and nothing else.

// StatusResponse is the bare {"ok": ...} envelope.
type StatusResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// ServiceInfoResponse answers GET /.
type ServiceInfoResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}

// IdentityResponse answers GET /auth/me.
type IdentityResponse struct {
	OK   bool     `json:"ok"`
	User Identity `json:"user"`
}

// EntryResponse wraps a single clothes entry.
type EntryResponse struct {
	OK    bool         `json:"ok"`
	Entry ClothesEntry `json:"entry"`
}

// EntriesResponse wraps the caller's clothes entries, newest first.
type EntriesResponse struct {
	OK      bool           `json:"ok"`
	Entries []ClothesEntry `json:"entries"`
}

// VersionResponse answers GET /version.
type VersionResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
}
