package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Hilal Sinem Sayar", p.Profile.Name)
	assert.Equal(t, 2019, p.Profile.CareerStart)
	assert.False(t, p.Profile.CV.Present())
	assert.True(t, p.Profile.GitHub.Present())
	require.Len(t, p.Projects, 3)
	assert.Equal(t, []string{"Python", "ML", "Flutter", "Firebase"}, p.Projects[0].Tags)
	assert.Equal(t, Link("#"), p.Projects[0].Links[LinkDemo])
	assert.Len(t, p.Profile.Stats, 3)
	assert.Equal(t, "cpu", p.Profile.Stats[0].Icon)
	assert.Len(t, p.Education, 1)
	assert.Len(t, p.Skills, 13)
	assert.Len(t, p.Interests, 3)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Hilal Sinem Sayar", p.Profile.Name)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	body := `
profile:
  name: Ada
  email: ada@example.com
  github: https://github.com/ada
projects:
  - title: Engine
    tags: [Math, Hardware]
    links:
      repo: https://example.com/engine
      demo: "#"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Profile.Name)
	require.Len(t, p.Projects, 1)

	url, ok := p.Projects[0].Link(LinkRepo)
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/engine", url)
	_, ok = p.Projects[0].Link(LinkDemo)
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_RequiresName(t *testing.T) {
	_, err := Parse([]byte("profile:\n  headline: nobody\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile.name is required")
}

func TestParse_RejectsDuplicateTitles(t *testing.T) {
	body := `
profile:
  name: Ada
projects:
  - title: Same
  - title: Same
`
	_, err := Parse([]byte(body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projects must not repeat title")
}

func TestParse_RejectsUnknownLinkKind(t *testing.T) {
	body := `
profile:
  name: Ada
projects:
  - title: Engine
    links:
      video: https://example.com
`
	_, err := Parse([]byte(body))
	assert.Error(t, err)
}

func TestParse_RejectsUnknownIcon(t *testing.T) {
	body := `
profile:
  name: Ada
  stats:
    - icon: rocketship
      label: Speed
`
	_, err := Parse([]byte(body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("profile: [unterminated"))
	assert.Error(t, err)
}
