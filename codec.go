package atlasmap

import (
	"encoding/json"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// MetaDecoder turns a metadata document into MapData. The loader derives the
// metadata file name from Ext, so swapping decoders swaps the on-disk format
// without touching the loader.
//
// Decode must return an error matching ErrMalformedAsset when the document
// does not have the MapData shape or a required field is missing.
type MetaDecoder interface {
	Ext() string
	Decode(r io.Reader) (MapData, error)
}

// JSONCodec reads and writes metadata as JSON. It is the default format.
type JSONCodec struct{}

// Ext returns ".json".
func (JSONCodec) Ext() string { return ".json" }

// Decode parses a JSON metadata document. Keys are case-sensitive and the
// document must hold exactly one value.
func (JSONCodec) Decode(r io.Reader) (MapData, error) {
	dec := json.NewDecoder(r)
	var w wireMapData
	if err := dec.Decode(&w); err != nil {
		return MapData{}, malformed("parse json", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return MapData{}, malformed("trailing data", err)
	}
	return w.mapData()
}

// Encode writes d as an indented JSON document.
func (JSONCodec) Encode(out io.Writer, d MapData) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// YAMLCodec reads and writes metadata as YAML using the same field names as
// the JSON format.
type YAMLCodec struct{}

// Ext returns ".yaml".
func (YAMLCodec) Ext() string { return ".yaml" }

// Decode parses a YAML metadata document.
func (YAMLCodec) Decode(r io.Reader) (MapData, error) {
	var w wireMapData
	if err := yaml.NewDecoder(r).Decode(&w); err != nil {
		if errors.Is(err, io.EOF) {
			return MapData{}, malformed("empty document", nil)
		}
		return MapData{}, malformed("parse yaml", err)
	}
	return w.mapData()
}

// Encode writes d as a YAML document.
func (YAMLCodec) Encode(out io.Writer, d MapData) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
