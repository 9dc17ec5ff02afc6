package manifest

import (
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ClaimKind is the only kind the estimator prices.
const ClaimKind = "PersistentVolumeClaim"

// Field paths reported in MissingFieldError.
const (
	NameField    = "metadata.name"
	StorageField = "spec.resources.requests.storage"
)

// Document is one decoded YAML document of a manifest.
// Only the fields needed to price a claim are modeled, and all of them are optional
// until Validate has been called.
type Document struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        *Metadata `json:"metadata,omitempty"`
	Spec            *Spec     `json:"spec,omitempty"`

	// Index is the 1-based position of the document in its file.
	Index int `json:"-"`
}

// Metadata is the subset of object metadata read from a claim.
type Metadata struct {
	Name *string `json:"name,omitempty"`
}

// Spec is the subset of a claim spec read from a claim.
type Spec struct {
	Resources *Resources `json:"resources,omitempty"`
}

// Resources holds the requests of a claim. Only storage is read, and only
// storage has to be a string.
type Resources struct {
	Requests map[corev1.ResourceName]interface{} `json:"requests,omitempty"`
}

// IsClaim reports whether the document declares a PersistentVolumeClaim.
// The comparison is exact; empty documents never match.
func (d *Document) IsClaim() bool {
	return d != nil && d.Kind == ClaimKind
}

// Validate checks that the fields required to price the claim are present.
func (d *Document) Validate() error {
	if d.Metadata == nil || d.Metadata.Name == nil {
		return d.missing(NameField)
	}
	storage := d.storage()
	if storage == nil {
		return d.missing(StorageField)
	}
	if _, ok := storage.(string); !ok {
		return &Error{
			Kind:     ParseError,
			Document: d.Index,
			Field:    StorageField,
			Err:      errors.Errorf("storage request %v is not a string", storage),
		}
	}
	return nil
}

// Name returns metadata.name, or "" when absent.
func (d *Document) Name() string {
	if d.Metadata == nil || d.Metadata.Name == nil {
		return ""
	}
	return *d.Metadata.Name
}

// StorageRequest returns the raw spec.resources.requests.storage quantity, or "" when absent.
func (d *Document) StorageRequest() string {
	s, _ := d.storage().(string)
	return s
}

func (d *Document) storage() interface{} {
	if d.Spec == nil || d.Spec.Resources == nil {
		return nil
	}
	return d.Spec.Resources.Requests[corev1.ResourceStorage]
}

func (d *Document) missing(field string) error {
	return &Error{Kind: MissingFieldError, Document: d.Index, Field: field}
}
