package atlasmap

import (
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// DefaultImageExt is the atlas image extension used when Loader.ImageExt is empty.
const DefaultImageExt = ".png"

// Loader resolves a logical map path into its metadata and atlas files and
// builds a Map. The zero value reads JSON metadata and PNG atlases from the
// OS filesystem and uploads textures with Ebitengine.
type Loader struct {
	// FS, when set, is used instead of the OS filesystem. Paths are converted
	// to slash form before opening.
	FS fs.FS
	// Meta decodes the metadata file. Its Ext selects the file. Default JSONCodec.
	Meta MetaDecoder
	// Textures uploads the atlas. Default EbitenTextureDecoder.
	Textures TextureDecoder
	// ImageExt is the atlas file extension. Default DefaultImageExt.
	ImageExt string
}

// Load reads the map at the logical path using the default Loader.
//
// For path "maps/level1" (any extension on it is ignored) this reads
// "maps/level1.json" and "maps/level1.png".
func Load(path string) (*Map, error) {
	var l Loader
	return l.Load(path)
}

// Load reads and decodes the metadata file, then decodes the atlas into a
// texture sampled with FilterNearest. Either a complete Map or an error is
// returned; the texture is only created after the metadata has decoded.
func (l *Loader) Load(path string) (*Map, error) {
	meta := l.metaDecoder()
	metaPath := DeriveSiblingPath(path, meta.Ext())
	imagePath := DeriveSiblingPath(path, l.imageExt())

	f, err := l.open(metaPath)
	if err != nil {
		return nil, &LoadError{Op: "open meta", Path: metaPath, Kind: ErrAssetNotFound, Err: err}
	}
	data, err := meta.Decode(f)
	_ = f.Close()
	if err != nil {
		return nil, &LoadError{Op: "decode meta", Path: metaPath, Kind: ErrMalformedAsset, Err: err}
	}

	raw, err := l.readFile(imagePath)
	if err != nil {
		return nil, &LoadError{Op: "read image", Path: imagePath, Kind: ErrAssetNotFound, Err: err}
	}
	tex, err := l.textureDecoder().DecodeTexture(raw, FilterNearest)
	if err != nil {
		return nil, &LoadError{Op: "decode image", Path: imagePath, Kind: ErrDecode, Err: err}
	}

	m := newMap(data, tex)
	if globalDebug {
		w, h := tex.Size()
		log.Printf("atlasmap: loaded %q: %d tiles, texture %d (%dx%d, %s)",
			path, len(data.Tiles), tex.ID(), w, h, tex.Filter())
	}
	return m, nil
}

func (l *Loader) metaDecoder() MetaDecoder {
	if l.Meta == nil {
		return JSONCodec{}
	}
	return l.Meta
}

func (l *Loader) textureDecoder() TextureDecoder {
	if l.Textures == nil {
		return EbitenTextureDecoder{}
	}
	return l.Textures
}

func (l *Loader) imageExt() string {
	if l.ImageExt == "" {
		return DefaultImageExt
	}
	return l.ImageExt
}

func (l *Loader) open(name string) (io.ReadCloser, error) {
	if l.FS == nil {
		return os.Open(name)
	}
	return l.FS.Open(filepath.ToSlash(name))
}

func (l *Loader) readFile(name string) ([]byte, error) {
	if l.FS == nil {
		return os.ReadFile(name)
	}
	return fs.ReadFile(l.FS, filepath.ToSlash(name))
}
