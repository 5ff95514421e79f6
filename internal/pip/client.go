package pip

import (
	"context"

	"github.com/pipdeck/pipdeck/internal/model"
)

// commandRunner abstracts the pip subprocess so tests can script output.
type commandRunner interface {
	Run(ctx context.Context, capture bool, args ...string) (string, error)
}

// Detail is the fully-resolved metadata for one package.
type Detail struct {
	Name         string
	Version      string
	SizeBytes    int64
	Dependencies []string
	Location     string
}

// Client wraps a Runner with the pip subcommands the dashboard needs.
// Every method performs exactly one external operation and is safe to
// call from any goroutine; the Client itself holds no mutable state.
type Client struct {
	runner commandRunner
}

// NewClient returns a Client over the given runner.
func NewClient(r *Runner) *Client {
	return &Client{runner: r}
}

// List returns the installed packages. A *ParseWarning error carries an
// empty result rather than failing the refresh.
func (c *Client) List(ctx context.Context) ([]ListedPackage, error) {
	out, err := c.runner.Run(ctx, true, "list", "--format=json")
	if err != nil {
		return nil, err
	}
	return ParseList(out)
}

// Outdated returns the packages with a newer version on the index.
func (c *Client) Outdated(ctx context.Context) ([]model.OutdatedEntry, error) {
	out, err := c.runner.Run(ctx, true, "list", "--outdated", "--format=json")
	if err != nil {
		return nil, err
	}
	return ParseOutdated(out)
}

// Detail fetches `pip show` metadata and resolves the package's on-disk
// size. Size failures never fail the fetch; they resolve to SizeUnknown.
func (c *Client) Detail(ctx context.Context, name string) (Detail, error) {
	out, err := c.runner.Run(ctx, true, "show", name)
	if err != nil {
		return Detail{}, err
	}
	info := ParseShow(out)

	size := model.SizeUnknown
	if dir, ok := LocateDir(info.Location, name); ok {
		if n, err := DirSize(dir); err == nil {
			size = n
		}
	}

	return Detail{
		Name:         name,
		Version:      info.Version,
		SizeBytes:    size,
		Dependencies: info.Requires,
		Location:     info.Location,
	}, nil
}

// Install installs one package.
func (c *Client) Install(ctx context.Context, name string) error {
	_, err := c.runner.Run(ctx, false, "install", name)
	return err
}

// Upgrade upgrades the named packages in a single pip invocation.
func (c *Client) Upgrade(ctx context.Context, names ...string) error {
	args := append([]string{"install", "--upgrade"}, names...)
	_, err := c.runner.Run(ctx, false, args...)
	return err
}

// Uninstall removes one package without prompting.
func (c *Client) Uninstall(ctx context.Context, name string) error {
	_, err := c.runner.Run(ctx, false, "uninstall", name, "-y")
	return err
}
