// Package sharecode encodes builds into short URL-safe strings.
//
// Format: base64url(zstd(yaml(build))), without padding.
package sharecode

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/mhwbuild/internal/model"
)

// ErrInvalidCode is returned for codes that cannot be decoded into a build.
var ErrInvalidCode = errors.New("invalid share code")

// maxDecodedSize bounds decompression of untrusted codes.
const maxDecodedSize = 64 << 10

var encoding = base64.RawURLEncoding

// Encoder/decoder are safe for concurrent EncodeAll/DecodeAll calls.
var (
	encoder *zstd.Encoder
	decoder *zstd.Decoder
)

func init() {
	var err error
	encoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		panic(fmt.Sprintf("sharecode: creating zstd encoder: %v", err))
	}
	decoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecodedSize))
	if err != nil {
		panic(fmt.Sprintf("sharecode: creating zstd decoder: %v", err))
	}
}

// Encode returns the share code of b.
func Encode(b model.Build) (string, error) {
	raw, err := yaml.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("marshaling build %q: %w", b.Name, err)
	}
	return encoding.EncodeToString(encoder.EncodeAll(raw, nil)), nil
}

// Decode parses a share code produced by Encode.
func Decode(code string) (model.Build, error) {
	compressed, err := encoding.DecodeString(code)
	if err != nil {
		return model.Build{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	raw, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return model.Build{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}

	var b model.Build
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return model.Build{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	return b, nil
}
