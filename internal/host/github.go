package host

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v77/github"
)

// GitHub implements RemoteHost against the GitHub API.
type GitHub struct {
	client *github.Client
	token  string
}

// NewGitHub creates a GitHub host backed by the given personal access token.
func NewGitHub(token string) *GitHub {
	return &GitHub{
		client: github.NewClient(nil).WithAuthToken(token),
		token:  token,
	}
}

// EnsureAuthenticated checks that the token resolves to a user.
// This is the API-client equivalent of "is there a CLI session": an
// absent or rejected token means authentication has not completed.
func (g *GitHub) EnsureAuthenticated(ctx context.Context) (*Identity, error) {
	if g.token == "" {
		return nil, fmt.Errorf("%w: set GITHUB_TOKEN (a personal access token with repo scope)", ErrNoToken)
	}

	user, _, err := g.client.Users.Get(ctx, "")
	if err != nil {
		return nil, handleAPIError(err, "failed to verify authentication")
	}

	identity := &Identity{
		Login: user.GetLogin(),
		Name:  user.GetName(),
		Email: user.GetEmail(),
	}
	if identity.Name == "" {
		identity.Name = identity.Login
	}
	if identity.Email == "" {
		identity.Email = fmt.Sprintf("%s@users.noreply.github.com", identity.Login)
	}

	return identity, nil
}

// CreateRepository creates a repository under the authenticated user.
// A name collision surfaces as ErrRepoExists so the caller can fall
// back to pushing into the existing repository.
func (g *GitHub) CreateRepository(ctx context.Context, name, description string, private bool) (*Repository, error) {
	repo, _, err := g.client.Repositories.Create(ctx, "", &github.Repository{
		Name:        github.Ptr(name),
		Description: github.Ptr(description),
		Private:     github.Ptr(private),
	})
	if err != nil {
		if isNameTaken(err) {
			return nil, fmt.Errorf("%w: %s", ErrRepoExists, name)
		}
		return nil, handleAPIError(err, "failed to create repository")
	}

	return parseRepository(repo), nil
}

// GetRepository fetches an existing repository by owner and name.
func (g *GitHub) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	repo, _, err := g.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, handleAPIError(err, fmt.Sprintf("failed to get repository %s/%s", owner, name))
	}
	return parseRepository(repo), nil
}

// parseRepository converts a go-github Repository to our Repository struct.
func parseRepository(repo *github.Repository) *Repository {
	r := &Repository{
		Name:     repo.GetName(),
		CloneURL: repo.GetCloneURL(),
		HTMLURL:  repo.GetHTMLURL(),
	}
	if owner := repo.GetOwner(); owner != nil {
		r.Owner = owner.GetLogin()
	}
	return r
}

// isNameTaken reports whether the error is the 422 GitHub returns when
// a repository of that name already exists for the account.
func isNameTaken(err error) bool {
	var errResp *github.ErrorResponse
	if !errors.As(err, &errResp) {
		return false
	}
	if errResp.Response == nil || errResp.Response.StatusCode != http.StatusUnprocessableEntity {
		return false
	}
	for _, e := range errResp.Errors {
		if e.Field == "name" {
			return true
		}
	}
	// 422 with no field detail still almost always means a name
	// collision for this endpoint.
	return len(errResp.Errors) == 0
}

// handleAPIError wraps API errors with context and detects rate limiting.
func handleAPIError(err error, msg string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return fmt.Errorf("%s: hit primary rate limit (used %d of %d, resets at %v): %w",
			msg, rateLimitErr.Rate.Used, rateLimitErr.Rate.Limit, rateLimitErr.Rate.Reset.Time, err)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%s: hit secondary rate limit (retry after %v): %w",
			msg, abuseErr.GetRetryAfter(), err)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
