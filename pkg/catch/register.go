package catch

import "github.com/arthur-debert/ddbg/pkg/command"

// NewOps builds the operations table shared by all exception catchpoints.
// It is created once at start-up and never modified.
func NewOps() *ExceptionOps {
	return &ExceptionOps{}
}

// Register adds the catch, throw and rethrow sub-commands to the catch
// and tcatch lists of interp.
func Register(interp *command.Interpreter, ops *ExceptionOps) error {
	for _, c := range []struct {
		name string
		doc  string
		fn   command.CatchFunc
	}{
		{"catch", "Catch an exception, when caught.", ops.CatchCommand},
		{"throw", "Catch an exception, when thrown.", ops.ThrowCommand},
		{"rethrow", "Catch an exception, when rethrown.", ops.RethrowCommand},
	} {
		if err := interp.AddCatchCommand(c.name, c.doc, c.fn); err != nil {
			return err
		}
	}
	return nil
}
