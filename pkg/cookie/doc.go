// Package cookie reads, writes and deletes HTTP cookies with a fixed set of
// default attributes.
//
// Every cookie written by a Manager starts from these defaults, which callers
// may override per call:
//
//   - Max-Age: 30 days (DefaultMaxAge)
//   - HttpOnly: true
//   - Secure: true in production, false otherwise
//   - Path: "/"
//   - SameSite: Lax
//
// Serialization and parsing are delegated to net/http. Values are
// percent-encoded on write and decoded on read so any string survives a round
// trip.
//
// # Usage
//
//	import "github.com/dmitrymomot/cookies/pkg/cookie"
//
//	m := cookie.New(cookie.WithEnvironment(environment.Production))
//
//	func login(w http.ResponseWriter, r *http.Request) {
//	    _ = m.SetOnResponse(w, "theme", "dark", cookie.WithMaxAge(3600))
//	}
//
//	func page(w http.ResponseWriter, r *http.Request) {
//	    theme := m.Get(r, "theme") // "" when absent
//	    _ = theme
//	}
//
//	func logout(w http.ResponseWriter, r *http.Request) {
//	    _ = m.DeleteOnResponse(w, "theme")
//	}
//
// Set and Delete replace the Set-Cookie header. Use Add to emit several
// cookies on the same response.
//
// # Package-level functions
//
// Get, Set, SetOnResponse, Delete, Add and Parse use the Manager returned by
// Default. It is built once from Config, loaded through pkg/config from
// APP_ENV and the COOKIE_* variables. SetDefault replaces it.
//
// # Error Handling
//
// Reading never fails: a missing header or cookie yields "". Writing returns
// ErrInvalidName for an empty name, ErrNilHeader for a nil header or writer, and
// ErrInvalidCookie (wrapping the net/http validation error) for anything
// net/http refuses to serialize.
package cookie
