package bootstrap

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectProjectType(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  ProjectType
	}{
		{"node", []string{"package.json"}, ProjectTypeNode},
		{"pip requirements", []string{"requirements.txt"}, ProjectTypePythonPip},
		{"uv lock", []string{"uv.lock", "pyproject.toml"}, ProjectTypePythonUV},
		{"poetry lock", []string{"poetry.lock", "pyproject.toml"}, ProjectTypePythonPip},
		{"node beats python", []string{"package.json", "requirements.txt"}, ProjectTypeNode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := fstest.MapFS{}
			for _, f := range tc.files {
				dir[f] = &fstest.MapFile{Data: []byte("")}
			}
			got, err := DetectProjectType(dir)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetectProjectTypePyprojectTool(t *testing.T) {
	uvDir := fstest.MapFS{
		"pyproject.toml": &fstest.MapFile{Data: []byte("[tool.uv]\ndev-dependencies = []\n")},
	}
	got, err := DetectProjectType(uvDir)
	require.NoError(t, err)
	assert.Equal(t, ProjectTypePythonUV, got)

	poetryDir := fstest.MapFS{
		"pyproject.toml": &fstest.MapFile{Data: []byte("[tool.poetry]\nname = \"api\"\n")},
	}
	got, err = DetectProjectType(poetryDir)
	require.NoError(t, err)
	assert.Equal(t, ProjectTypePythonPip, got)

	bareDir := fstest.MapFS{
		"pyproject.toml": &fstest.MapFile{Data: []byte("[project]\nname = \"api\"\n")},
	}
	got, err = DetectProjectType(bareDir)
	require.NoError(t, err)
	assert.Equal(t, ProjectTypePythonPip, got)
}

func TestDetectProjectTypeUnknown(t *testing.T) {
	dir := fstest.MapFS{
		"README.md": &fstest.MapFile{Data: []byte("# not a project\n")},
	}
	got, err := DetectProjectType(dir)
	assert.Error(t, err)
	assert.Equal(t, ProjectTypeUnknown, got)
}

func TestProjectTypeLang(t *testing.T) {
	assert.Equal(t, "Python", ProjectTypePythonPip.Lang())
	assert.Equal(t, "Python", ProjectTypePythonUV.Lang())
	assert.Equal(t, "Node.js", ProjectTypeNode.Lang())
	assert.Equal(t, "", ProjectTypeUnknown.Lang())
}
