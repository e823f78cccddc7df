// Package cookieapi serves the cookie manager over a small JSON HTTP API,
// mainly to inspect how browsers and proxies treat the default attributes.
package cookieapi
