package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	domain "github.com/oshokin/landing-motion/internal/domain/landing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const minimalContent = `
company: Test Builders
stats:
  - value: "10+"
    label: Cranes
  - value: "Award-winning"
    label: Reputation
projects:
  - title: Tower
    category: Commercial
testimonials:
  - name: Ann
    rating: 4
`

// TestDefault decodes the embedded page content.
func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	require.Equal(t, "Mr Adam Construction", c.Company)
	require.Len(t, c.Stats, 4)
	require.Len(t, c.Projects, 6)
	require.Len(t, c.Testimonials, 5)
	require.Len(t, c.Services, 6)
	require.Len(t, c.Highlights, 3)
	require.Equal(t, "1,200+", c.Stats[0].Value)
	require.Equal(t, "98%", c.Stats[3].Value)
	require.Empty(t, InertStats(c))
}

// TestLoad reads a file from disk and reports inert statistics.
func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalContent), 0o600))

	c, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "Test Builders", c.Company)
	require.Equal(t, []string{"Reputation"}, InertStats(c))

	c, err = Load(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "Mr Adam Construction", c.Company)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestValidate rejects empty carousels and impossible ratings.
func TestValidate(t *testing.T) {
	t.Parallel()

	c := &domain.Content{}
	require.ErrorIs(t, Validate(c), errNoProjects)

	c.Projects = []domain.Project{{Title: "Tower"}}
	require.ErrorIs(t, Validate(c), errNoTestimonials)

	c.Testimonials = []domain.Testimonial{{Name: "Ann", Rating: 6}}
	require.ErrorIs(t, Validate(c), errBadRating)

	c.Testimonials[0].Rating = 5
	require.NoError(t, Validate(c))

	_, err := Decode([]byte("projects: [unclosed"))
	require.Error(t, err)
}

// TestWatch delivers a rewritten file and skips invalid revisions.
func TestWatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalContent), 0o600))

	var (
		ctx, cancel = context.WithCancel(context.Background())
		changes     = make(chan *domain.Content, 4)
		done        = make(chan error, 1)
	)

	go func() {
		done <- watch(ctx, path, 10*time.Millisecond, func(c *domain.Content) {
			changes <- c
		})
	}()

	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("projects: []\n"), 0o600))
	time.Sleep(100 * time.Millisecond)

	updated := minimalContent + "\nhero:\n  headline: Reloaded\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	select {
	case c := <-changes:
		require.Equal(t, "Reloaded", c.Hero.Headline)
	case <-time.After(5 * time.Second):
		require.Fail(t, "content change was not delivered")
	}
}

// TestWatch_RequiresPath refuses to watch nothing.
func TestWatch_RequiresPath(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Watch(context.Background(), "", nil), errNoPath)
}
