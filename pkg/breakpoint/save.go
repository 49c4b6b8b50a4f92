package breakpoint

import (
	"fmt"
	"io"

	"github.com/arthur-debert/ddbg/pkg/errors"
)

// Save writes commands that recreate every user breakpoint, including
// conditions and enablement, to w.
func (m *Manager) Save(w io.Writer) error {
	bps := m.User()
	if len(bps) == 0 {
		return errors.New(errors.ErrNotFound, "Nothing to save.")
	}

	for _, b := range bps {
		if err := b.Ops.PrintRecreate(w, b); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot save breakpoint %d", b.Number)
		}
		if b.Condition != "" {
			if _, err := fmt.Fprintf(w, "  condition $bpnum %s\n", b.Condition); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot save breakpoint %d", b.Number)
			}
		}
		if !b.Enabled {
			if _, err := fmt.Fprintf(w, "disable $bpnum\n"); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot save breakpoint %d", b.Number)
			}
		}
	}
	m.logger.Debug().Int("count", len(bps)).Msg("Breakpoints saved")
	return nil
}
