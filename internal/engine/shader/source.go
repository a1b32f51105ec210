package shader

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pkg/errors"
)

//go:embed glsl/robot.vert
var defaultVertex string

//go:embed glsl/robot.frag
var defaultFragment string

// Sources holds the GLSL text of a vertex/fragment pair.
type Sources struct {
	Vertex   string
	Fragment string
}

// Default returns the built-in shader pair.
func Default() Sources {
	return Sources{Vertex: defaultVertex, Fragment: defaultFragment}
}

// LoadSources reads a shader pair from disk. An empty path falls back to the
// matching built-in shader.
func LoadSources(vertexPath, fragmentPath string) (Sources, error) {
	src := Default()

	if vertexPath != "" {
		text, err := readSource(vertexPath)
		if err != nil {
			return Sources{}, errors.Wrapf(err, "vertex shader %s", vertexPath)
		}
		src.Vertex = text
	}
	if fragmentPath != "" {
		text, err := readSource(fragmentPath)
		if err != nil {
			return Sources{}, errors.Wrapf(err, "fragment shader %s", fragmentPath)
		}
		src.Fragment = text
	}
	return src, nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty shader source")
	}
	return text, nil
}
