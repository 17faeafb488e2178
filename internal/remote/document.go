// Package remote stores each user's data as a single JSON document keyed by
// user id. The document is opaque to the backend: writes are field-merge
// upserts that preserve top-level fields this build does not know about, and
// reads return the whole document or ErrNotFound.
package remote

import (
	"context"
	"encoding/json"
	"errors"

	"skatetrack/internal/domain"
)

// SchemaVersion is the document version stamped on every save. Loaders
// migrate documents tagged below it; see internal/syncgw.
const SchemaVersion = "v2.0.0"

// ErrNotFound is returned by Load when the user has no document yet.
var ErrNotFound = errors.New("remote: document not found")

// UserDocument is the per-user remote document. Extra carries top-level
// fields written by other builds; Save implementations must write them back
// untouched.
type UserDocument struct {
	SchemaVersion string                     `json:"schemaVersion,omitempty"`
	Skills        []domain.Sport             `json:"skills,omitempty"`
	Trainings     []domain.TrainingSession   `json:"trainings,omitempty"`
	Extra         map[string]json.RawMessage `json:"-"`
}

// DocumentStore is the remote document boundary.
type DocumentStore interface {
	// Load returns the user's full document, or ErrNotFound.
	Load(ctx context.Context, uid string) (*UserDocument, error)

	// Save upserts the document's skills, trainings and schemaVersion
	// fields, merging over whatever is already stored for the user.
	Save(ctx context.Context, uid string, doc *UserDocument) error

	// Close releases backend resources.
	Close() error
}

// knownFields are the top-level document fields owned by this app.
var knownFields = map[string]bool{
	"schemaVersion": true,
	"skills":        true,
	"trainings":     true,
}

// MarshalDocument renders doc with its extra fields merged back in.
func MarshalDocument(doc *UserDocument) ([]byte, error) {
	merged := make(map[string]json.RawMessage, len(doc.Extra)+3)
	for k, v := range doc.Extra {
		if !knownFields[k] {
			merged[k] = v
		}
	}

	put := func(key string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		merged[key] = raw
		return nil
	}
	if doc.SchemaVersion != "" {
		if err := put("schemaVersion", doc.SchemaVersion); err != nil {
			return nil, err
		}
	}
	if doc.Skills != nil {
		if err := put("skills", doc.Skills); err != nil {
			return nil, err
		}
	}
	if doc.Trainings != nil {
		if err := put("trainings", doc.Trainings); err != nil {
			return nil, err
		}
	}
	return json.Marshal(merged)
}

// UnmarshalDocument parses raw into a UserDocument, keeping unknown
// top-level fields in Extra.
func UnmarshalDocument(raw []byte) (*UserDocument, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	doc := &UserDocument{Extra: make(map[string]json.RawMessage)}
	for k, v := range fields {
		switch k {
		case "schemaVersion":
			if err := json.Unmarshal(v, &doc.SchemaVersion); err != nil {
				return nil, err
			}
		case "skills":
			if err := json.Unmarshal(v, &doc.Skills); err != nil {
				return nil, err
			}
		case "trainings":
			if err := json.Unmarshal(v, &doc.Trainings); err != nil {
				return nil, err
			}
		default:
			doc.Extra[k] = v
		}
	}
	return doc, nil
}

// mergeInto overlays doc's owned fields on top of an existing raw document.
// Used by backends to implement the field-merge upsert contract.
func mergeInto(existing []byte, doc *UserDocument) ([]byte, error) {
	if len(existing) == 0 {
		return MarshalDocument(doc)
	}
	prev, err := UnmarshalDocument(existing)
	if err != nil {
		// A corrupt document is replaced rather than kept forever broken.
		return MarshalDocument(doc)
	}
	merged := *doc
	merged.Extra = prev.Extra
	return MarshalDocument(&merged)
}
