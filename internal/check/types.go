package check

import "github.com/amfschedule/targetcheck/internal/membership"

// CommandOptions captures the resolved parameters for one audit run.
type CommandOptions struct {
	ProjectRoot  string
	ProjectName  string
	Expectations membership.Expectations
}
