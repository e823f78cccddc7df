package environment

import "strings"

// Environment is the mode the application runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalizes s to one of the known environments. Short aliases
// ("dev", "stage", "prod") are accepted, case and surrounding spaces are
// ignored. Unknown values are returned lower-cased as is.
func Parse(s string) Environment {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "dev", string(Development):
		return Development
	case "stage", string(Staging):
		return Staging
	case "prod", string(Production):
		return Production
	default:
		return Environment(s)
	}
}

func (e Environment) String() string { return string(e) }

// IsProduction reports whether e is production or its alias.
func (e Environment) IsProduction() bool { return Parse(string(e)) == Production }

func (e Environment) IsDevelopment() bool { return Parse(string(e)) == Development }

func (e Environment) IsStaging() bool { return Parse(string(e)) == Staging }
