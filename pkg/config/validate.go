package config

import (
	"fmt"

	"github.com/arthur-debert/ddbg/pkg/breakpoint"
	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/arthur-debert/ddbg/pkg/target"
	"github.com/arthur-debert/ddbg/pkg/uiout"
	"github.com/hashicorp/go-multierror"
)

// ABIAuto selects the exception ABI of the loaded program.
const ABIAuto = "auto"

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := uiout.ParseFormat(c.UI.Format); err != nil {
		result = multierror.Append(result, fmt.Errorf("ui.format: %w", err))
	}
	if c.UI.Annotate < 0 || c.UI.Annotate > 3 {
		result = multierror.Append(result, fmt.Errorf("ui.annotate: level %d out of range 0-3", c.UI.Annotate))
	}
	if c.Target.ABI != ABIAuto {
		if _, err := target.ParseExceptionABI(c.Target.ABI); err != nil {
			result = multierror.Append(result, fmt.Errorf("target.abi: %w", err))
		}
	}
	if _, err := breakpoint.ParsePendingPolicy(c.Breakpoints.Pending); err != nil {
		result = multierror.Append(result, fmt.Errorf("breakpoints.pending: %s", errors.UserMessage(err)))
	}
	if c.Logging.Verbosity < 0 || c.Logging.Verbosity > 3 {
		result = multierror.Append(result, fmt.Errorf("logging.verbosity: level %d out of range 0-3", c.Logging.Verbosity))
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}
	return nil
}

// Format returns the parsed output format.
func (c *Config) Format() uiout.Format {
	f, _ := uiout.ParseFormat(c.UI.Format)
	return f
}

// PendingPolicy returns the parsed pending-breakpoint policy.
func (c *Config) PendingPolicy() breakpoint.PendingPolicy {
	p, _ := breakpoint.ParsePendingPolicy(c.Breakpoints.Pending)
	return p
}
