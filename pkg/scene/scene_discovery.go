package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned when a scene ID matches no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id" toml:"id"`                   // Unique identifier
	DisplayName string `json:"displayName" toml:"display_name"` // UI display name
	Description string `json:"description" toml:"description"` // Optional description
	Group       string `json:"group" toml:"group"`             // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// builtin pairs a scene description with its constructor
type builtin struct {
	info   SceneInfo
	create func(camera renderer.CameraConfig) *Scene
}

const defaultSphereGridSize = 10

var builtins = []builtin{
	{
		info: SceneInfo{
			ID:          "default",
			Description: "Phong, mirror and glass spheres with a rotated box over a checkered ground",
			Group:       "Built-in Scenes",
		},
		create: func(camera renderer.CameraConfig) *Scene { return NewDefaultScene(camera) },
	},
	{
		info: SceneInfo{
			ID:          "cornell-box",
			Description: "Cornell box with two rotated blocks and a mirror sphere",
			Group:       "Built-in Scenes",
		},
		create: func(camera renderer.CameraConfig) *Scene {
			s := NewCornellScene()
			s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, camera)
			s.Camera = renderer.NewPerspectiveCamera(s.CameraConfig)
			return s
		},
	},
	{
		info: SceneInfo{
			ID:          "sphere-grid",
			Description: "10x10 grid of rainbow-colored spheres",
			Group:       "Stress Tests",
		},
		create: func(camera renderer.CameraConfig) *Scene { return NewSphereGridScene(defaultSphereGridSize, camera) },
	},
	{
		info: SceneInfo{
			ID:          "triangle-mesh",
			Description: "Transformed instances of a triangle mesh pyramid",
			Group:       "Built-in Scenes",
		},
		create: func(camera renderer.CameraConfig) *Scene { return NewTriangleMeshScene(camera) },
	},
}

// Create builds the built-in scene with the given ID. Non-zero fields of
// the optional camera override replace the scene's defaults.
func Create(id string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	var override renderer.CameraConfig
	if len(cameraOverrides) > 0 {
		override = cameraOverrides[0]
	}
	for _, b := range builtins {
		if b.info.ID == id {
			return b.create(override), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// ListScenes returns every built-in scene sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		info := b.info
		info.DisplayName = titleCase(info.ID)
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// ListSceneGroups returns the built-in scenes grouped by category,
// "Built-in Scenes" first and the rest alphabetically
func ListSceneGroups() []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	for _, scene := range ListScenes() {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	var groupNames []string
	for groupName := range groupMap {
		if groupName != "Built-in Scenes" {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	var groups []SceneGroup
	if builtInGroup, exists := groupMap["Built-in Scenes"]; exists {
		groups = append(groups, SceneGroup{Name: "Built-in Scenes", Scenes: builtInGroup})
	}
	for _, groupName := range groupNames {
		groups = append(groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}
	return groups
}

// titleCase converts an ID-style string to title case
// e.g., "cornell-box" -> "Cornell Box"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
