package vcs

import "context"

// MockVCS is a deterministic VersionControl implementation for testing.
// It records every call and returns configurable results.
type MockVCS struct {
	// InitErr, CommitErr and RemoteErr are returned by the matching calls.
	InitErr   error
	CommitErr error
	RemoteErr error

	// PushErrs maps branch name to the error its push returns.
	PushErrs map[string]error

	// CommitHash is returned by CommitAll on success.
	CommitHash string

	// Recorded state.
	InitPath      string
	InitBranch    string
	Identity      Signature
	CommitMessage string
	CommitAuthor  Signature
	RemoteName    string
	RemoteURL     string
	PushedTo      []string
}

// Init records the path and default branch.
func (m *MockVCS) Init(path, defaultBranch string) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.InitPath = path
	m.InitBranch = defaultBranch
	return nil
}

// SetIdentityIfUnset records the signature.
func (m *MockVCS) SetIdentityIfUnset(sig Signature) error {
	m.Identity = sig
	return nil
}

// CommitAll records the message and author.
func (m *MockVCS) CommitAll(message string, author Signature) (string, error) {
	if m.CommitErr != nil {
		return "", m.CommitErr
	}
	m.CommitMessage = message
	m.CommitAuthor = author
	if m.CommitHash == "" {
		return "0000000000000000000000000000000000000000", nil
	}
	return m.CommitHash, nil
}

// EnsureRemote records the remote name and URL.
func (m *MockVCS) EnsureRemote(name, url string) error {
	if m.RemoteErr != nil {
		return m.RemoteErr
	}
	m.RemoteName = name
	m.RemoteURL = url
	return nil
}

// Push records the branch and returns any configured error for it.
func (m *MockVCS) Push(ctx context.Context, remote, branch string) error {
	m.PushedTo = append(m.PushedTo, branch)
	if err, ok := m.PushErrs[branch]; ok {
		return err
	}
	return nil
}
