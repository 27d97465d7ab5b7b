package host

import "github.com/backmassage/migforge/internal/naming"

// MockUI is a scripted UI for tests. Prompt answers are consumed in order;
// reported results are recorded for assertions.
type MockUI struct {
	Description   string
	DescriptionOK bool
	TargetDir     string
	TargetOK      bool
	Overwrite     bool

	PromptErr error

	Successes []string
	Errors    []error

	DescriptionPrompts int
	TargetPrompts      int
	OverwritePrompts   int
}

var _ UI = (*MockUI)(nil)

func (m *MockUI) PromptDescription() (string, bool, error) {
	m.DescriptionPrompts++
	if m.PromptErr != nil {
		return "", false, m.PromptErr
	}
	return m.Description, m.DescriptionOK, nil
}

func (m *MockUI) PromptTarget(naming.Kind) (string, bool, error) {
	m.TargetPrompts++
	if m.PromptErr != nil {
		return "", false, m.PromptErr
	}
	return m.TargetDir, m.TargetOK, nil
}

func (m *MockUI) ConfirmOverwrite(string) (bool, error) {
	m.OverwritePrompts++
	if m.PromptErr != nil {
		return false, m.PromptErr
	}
	return m.Overwrite, nil
}

func (m *MockUI) ReportSuccess(path string) { m.Successes = append(m.Successes, path) }
func (m *MockUI) ReportError(err error)     { m.Errors = append(m.Errors, err) }
