// Package content loads, seeds and validates the résumé content file.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"github.com/nikogura/cvgen/pkg/fileutil"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the content file looked up in the working directory.
const DefaultPath = "content.json"

// Load reads the content file at path. A missing file is replaced by the
// seed document, which is persisted and returned with Created set.
func Load(path string) (result LoadResult, err error) {
	result, err = LoadContext(context.Background(), path)
	return result, err
}

// LoadContext is Load with a context for remote sources. An http(s) URL is
// downloaded and parsed but never seeded.
func LoadContext(ctx context.Context, path string) (result LoadResult, err error) {
	result.Path = path

	if IsRemote(path) {
		var remoteData []byte
		remoteData, err = Fetch(ctx, path)
		if err != nil {
			return result, err
		}
		result.Document, err = Parse(path, remoteData)
		return result, err
	}

	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		result.Document = Seed()
		err = Save(path, result.Document)
		if err != nil {
			err = errors.Wrapf(err, "failed to create content file: %s", path)
			return result, err
		}
		result.Created = true
		return result, err
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to stat content file: %s", path)
		return result, err
	}

	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return result, err
	}

	result.Document, err = Parse(path, fileData)
	return result, err
}

// Parse decodes and validates content bytes. The path selects the format
// (YAML for .yaml/.yml, JSON otherwise) and is used in error messages.
func Parse(path string, data []byte) (doc Document, err error) {
	var raw interface{}
	raw, err = decodeRaw(path, data)
	if err != nil {
		return doc, err
	}

	err = Validate(raw)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = path
		}
		return doc, err
	}

	// The tree is schema-valid, so re-encoding it into the typed document cannot fail on shape.
	var normalized []byte
	normalized, err = json.Marshal(raw)
	if err != nil {
		err = &MalformedInputError{Path: path, Cause: err}
		return doc, err
	}

	err = json.Unmarshal(normalized, &doc)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode content file: %s", path)
		return doc, err
	}

	return doc, err
}

// Save writes doc to path as indented JSON with a stable key order.
func Save(path string, doc Document) (err error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	err = enc.Encode(doc)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal content document")
		return err
	}

	err = fileutil.WriteAtomic(path, buf.Bytes(), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write content file: %s", path)
		return err
	}

	return err
}

func decodeRaw(path string, data []byte) (raw interface{}, err error) {
	ext := formatExt(path)
	if ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(data, &raw)
		if err != nil {
			err = &MalformedInputError{Path: path, Cause: err}
			return raw, err
		}
		return raw, err
	}

	err = json.Unmarshal(data, &raw)
	if err != nil {
		malformed := &MalformedInputError{Path: path, Cause: err}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			malformed.Line, malformed.Column = position(data, syntaxErr.Offset)
		}
		err = malformed
		return raw, err
	}

	return raw, err
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line = bytes.Count(before, []byte("\n")) + 1
	column = int(offset) - bytes.LastIndexByte(before, '\n')
	return line, column
}
