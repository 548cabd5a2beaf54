// Package ecs provides ECS adapters for atlasmap.
//
// [MapComponent] attaches a loaded map to a [Donburi] entity and
// [TransformComponent] places it in the world. [DrawMaps] is the render
// system: it draws every map entity once per frame under the camera view.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.NewMapEntity(world, m, atlasmap.IdentityTransform)
//	// in Draw:
//	ecs.DrawMaps(world, cam.ViewTransform(), sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
