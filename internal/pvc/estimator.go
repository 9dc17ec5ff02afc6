package pvc

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/joseEnrique/pvccost/internal/manifest"
)

// PricePerGBMonth is the AWS EBS gp3 price in us-east-1, in USD per GB-month.
const PricePerGBMonth = 0.08

// Config is the pricing basis of an estimate.
type Config struct {
	Currency        string
	PricePerGBMonth float64
	Provider        string
	Region          string
	VolumeType      string
}

// DefaultConfig returns the only pricing the tool supports.
func DefaultConfig() *Config {
	return &Config{
		Currency:        "$",
		PricePerGBMonth: PricePerGBMonth,
		Provider:        "AWS",
		Region:          "us-east-1",
		VolumeType:      "gp3",
	}
}

// Source yields manifest documents in order and io.EOF at the end.
type Source interface {
	Next() (*manifest.Document, error)
}

// Estimator prices the claims of a manifest.
type Estimator struct {
	config *Config
}

// NewEstimator creates an estimator. If config is nil, DefaultConfig is used.
func NewEstimator(config *Config) *Estimator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Estimator{config: config}
}

// NewClaim validates a claim document and extracts the fields needed to price it.
func NewClaim(doc *manifest.Document) (Claim, error) {
	if err := doc.Validate(); err != nil {
		return Claim{}, err
	}
	return Claim{
		Kind:           doc.Kind,
		Name:           doc.Name(),
		StorageRequest: doc.StorageRequest(),
	}, nil
}

// Row prices a single claim.
func (e *Estimator) Row(c Claim) (Row, error) {
	size, err := ParseStorageSize(c.StorageRequest)
	if err != nil {
		return Row{}, err
	}
	return Row{
		Kind:           c.Kind,
		Name:           c.Name,
		StorageRequest: c.StorageRequest,
		SizeGB:         size,
		Cost:           size * e.config.PricePerGBMonth,
	}, nil
}

// Estimate reads every document from src and prices the claims among them,
// keeping document order. Other kinds and empty documents are skipped.
// The first error stops the pass and no report is returned.
func (e *Estimator) Estimate(src Source) (*Report, error) {
	report := &Report{Config: e.config}
	for {
		doc, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if doc == nil {
			continue
		}
		if !doc.IsClaim() {
			log.Debugf("skipping document %d of kind %q", doc.Index, doc.Kind)
			continue
		}

		claim, err := NewClaim(doc)
		if err != nil {
			return nil, err
		}
		row, err := e.Row(claim)
		if err != nil {
			return nil, &manifest.Error{
				Kind:     manifest.ParseError,
				Document: doc.Index,
				Field:    manifest.StorageField,
				Err:      err,
			}
		}
		log.Debugf("claim %s requests %s: %.4f GB, %.4f per month", row.Name, row.StorageRequest, row.SizeGB, row.Cost)
		report.Add(row)
	}
	return report, nil
}
