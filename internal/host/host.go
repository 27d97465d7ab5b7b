// Package host defines the boundary between the core pipeline and whatever
// surrounds it. Today the host is a terminal session; an editor or IDE
// integration would implement the same two interfaces. The pipeline only
// ever sees these interfaces, which keeps it host-agnostic and testable
// against mocks.
package host

import "github.com/backmassage/migforge/internal/naming"

// Source supplies the SQL content of one migration, the equivalent of the
// IDE's "currently selected text".
type Source interface {
	// SelectedText returns the SQL content. Empty content is legal here;
	// refusing it is the pipeline's call.
	SelectedText() (string, error)

	// Label suggests a migration description derived from the source
	// (e.g. a file basename), or "" when nothing sensible exists.
	Label() string
}

// UI is the interactive surface of the host: prompts in, results out.
// Implementations must treat a user cancellation as ok=false with a nil
// error: cancellation is a clean no-op, never a failure.
type UI interface {
	// PromptDescription asks for the migration description.
	PromptDescription() (desc string, ok bool, err error)

	// PromptTarget asks for the target migrations directory.
	PromptTarget(kind naming.Kind) (dir string, ok bool, err error)

	// ConfirmOverwrite asks whether an existing repeatable migration may
	// be replaced.
	ConfirmOverwrite(filename string) (bool, error)

	// ReportSuccess shows the path of a created migration.
	ReportSuccess(path string)

	// ReportError renders a failure. It must not terminate the process.
	ReportError(err error)
}
