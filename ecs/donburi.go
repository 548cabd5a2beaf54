package ecs

import (
	"github.com/phanxgames/atlasmap"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// MapData is the component payload holding a loaded map. The entity does not
// own the map; dispose it through whoever loaded it.
type MapData struct {
	Map *atlasmap.Map
}

// TransformData places a map entity in world space.
type TransformData struct {
	Transform atlasmap.Transform
}

// MapComponent is the Donburi component type for map entities.
var MapComponent = donburi.NewComponentType[MapData]()

// TransformComponent is the Donburi component type for map placement.
var TransformComponent = donburi.NewComponentType[TransformData](TransformData{Transform: atlasmap.IdentityTransform})

var mapQuery = donburi.NewQuery(filter.Contains(MapComponent, TransformComponent))

// NewMapEntity creates an entity that renders m under world.
func NewMapEntity(w donburi.World, m *atlasmap.Map, world atlasmap.Transform) donburi.Entity {
	entity := w.Create(MapComponent, TransformComponent)
	entry := w.Entry(entity)
	MapComponent.SetValue(entry, MapData{Map: m})
	TransformComponent.SetValue(entry, TransformData{Transform: world})
	return entity
}

// DrawMaps renders every map entity once under view * entity transform.
// Entities whose map is nil or disposed are skipped.
func DrawMaps(w donburi.World, view atlasmap.Transform, sink atlasmap.Sink) {
	mapQuery.Each(w, func(entry *donburi.Entry) {
		m := MapComponent.Get(entry).Map
		if m == nil || m.IsDisposed() {
			return
		}
		m.Render(view.Multiply(TransformComponent.Get(entry).Transform), sink)
	})
}
