// Package atlasmap loads tile maps for [Ebitengine] games and draws them
// through a small scene graph.
//
// A map asset is two sibling files sharing one stem: a metadata document
// (tile size plus an ordered list of tile rectangles) and the atlas image the
// rectangles address. Load takes the logical path, with or without an
// extension, and derives both names from it:
//
//	m, err := atlasmap.Load("assets/level1") // level1.json + level1.png
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Loading is all-or-nothing. Failures wrap [ErrAssetNotFound],
// [ErrMalformedAsset] or [ErrDecode] and no partial Map is returned:
//
//	if errors.Is(err, atlasmap.ErrAssetNotFound) { ... }
//
// Atlas textures are always sampled with nearest-neighbor filtering so
// adjacent tiles never bleed into each other.
//
// # Rendering
//
// [Map.Render] draws the whole atlas once under a caller-supplied affine
// [Transform] into a [Sink]. For the usual case, put the map in a [Scene]
// and let a [Camera] compose the view:
//
//	scene := atlasmap.NewScene()
//	scene.Root().AddChild(atlasmap.NewMapNode("level", m))
//	cam := scene.NewCamera(atlasmap.Rect{Width: 640, Height: 480})
//	cam.SetBounds(m.Bounds())
//	atlasmap.Run(scene, atlasmap.RunConfig{Title: "Level 1", Width: 640, Height: 480})
//
// The tile list is addressing data ([Map.TileRegion]); rendering does not
// consult it.
//
// # Formats
//
// The default metadata format is JSON:
//
//	{"meta": {"tileWidth": 16, "tileHeight": 16},
//	 "tiles": [{"x": 0, "y": 0, "w": 16, "h": 16}]}
//
// Set [Loader.Meta] to [YAMLCodec] (or any [MetaDecoder]) to read another
// format without changing the load logic.
//
// [Ebitengine]: https://ebitengine.org
package atlasmap
