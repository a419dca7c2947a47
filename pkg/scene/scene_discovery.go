package scene

import (
	"sort"

	"golang.org/x/xerrors"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by ByName
	Description string
}

var builtinScenes = map[string]struct {
	description string
	create      func(seed int64) *Scene
}{
	"random-spheres": {
		description: "Field of random moving, metal and glass spheres around three large spheres",
		create:      NewRandomSpheresScene,
	},
	"default": {
		description: "Ground sphere with one diffuse, one metal and one hollow glass sphere",
		create:      func(int64) *Scene { return NewDefaultScene() },
	},
	"ground": {
		description: "A single diffuse ground sphere seen from above",
		create:      func(int64) *Scene { return NewGroundScene() },
	},
}

// ErrUnknownScene is returned by ByName for names that are not built in
var ErrUnknownScene = xerrors.New("unknown scene")

// ByName creates the built-in scene called name. The seed drives any random scene layout.
func ByName(name string, seed int64) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, xerrors.Errorf("scene %q: %w", name, ErrUnknownScene)
	}
	return entry.create(seed), nil
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id, entry := range builtinScenes {
		scenes = append(scenes, SceneInfo{ID: id, Description: entry.description})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the IDs of the built-in scenes in sorted order
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.ID
	}
	return names
}
