package domain

// WorkspaceSpec describes where a starfield workspace should be initialized.
type WorkspaceSpec struct {
	Root string
}
