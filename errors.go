package atlasmap

import "errors"

// Load failures carry exactly one of these kinds. Match with errors.Is.
var (
	// ErrAssetNotFound means the metadata or image file does not exist.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrMalformedAsset means the metadata document does not have the
	// required shape or is missing a required field.
	ErrMalformedAsset = errors.New("malformed asset")
	// ErrDecode means the image bytes could not be decoded or uploaded.
	ErrDecode = errors.New("image decode failed")
)

// LoadError records the step and file that failed while loading a map.
type LoadError struct {
	Op   string // "open meta", "decode meta", "read image", "decode image"
	Path string
	Kind error // ErrAssetNotFound, ErrMalformedAsset or ErrDecode
	Err  error // underlying cause, may be nil
}

func (e *LoadError) Error() string {
	msg := "atlasmap: " + e.Op + " " + e.Path + ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// malformedError is a decoder failure that matches ErrMalformedAsset without
// repeating its text.
type malformedError struct {
	msg string
	err error
}

func malformed(msg string, err error) error {
	return &malformedError{msg: msg, err: err}
}

func (e *malformedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *malformedError) Is(target error) bool {
	return target == ErrMalformedAsset
}

func (e *malformedError) Unwrap() error {
	return e.err
}
