package host

import "context"

// MockHost is a deterministic RemoteHost implementation for testing.
type MockHost struct {
	// Identity is returned by EnsureAuthenticated on success.
	Identity *Identity

	// AuthErr, if set, is returned by EnsureAuthenticated.
	AuthErr error

	// CreateErr, if set, is returned by CreateRepository. Setting it to
	// ErrRepoExists exercises the fallback push path.
	CreateErr error

	// Existing is returned by GetRepository.
	Existing *Repository

	// GetErr, if set, is returned by GetRepository.
	GetErr error

	// Recorded state.
	CreatedName        string
	CreatedDescription string
	CreatedPrivate     bool
}

// EnsureAuthenticated returns the configured identity or error.
func (m *MockHost) EnsureAuthenticated(ctx context.Context) (*Identity, error) {
	if m.AuthErr != nil {
		return nil, m.AuthErr
	}
	if m.Identity == nil {
		return &Identity{Login: "mockuser", Name: "Mock User", Email: "mockuser@users.noreply.github.com"}, nil
	}
	return m.Identity, nil
}

// CreateRepository records the request and returns a repository derived
// from it, unless CreateErr is set.
func (m *MockHost) CreateRepository(ctx context.Context, name, description string, private bool) (*Repository, error) {
	m.CreatedName = name
	m.CreatedDescription = description
	m.CreatedPrivate = private

	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	identity, err := m.EnsureAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	return &Repository{
		Owner:    identity.Login,
		Name:     name,
		CloneURL: "https://github.com/" + identity.Login + "/" + name + ".git",
		HTMLURL:  "https://github.com/" + identity.Login + "/" + name,
	}, nil
}

// GetRepository returns the configured existing repository.
func (m *MockHost) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Existing != nil {
		return m.Existing, nil
	}
	return &Repository{
		Owner:    owner,
		Name:     name,
		CloneURL: "https://github.com/" + owner + "/" + name + ".git",
		HTMLURL:  "https://github.com/" + owner + "/" + name,
	}, nil
}
