package emeta

import (
	"fmt"

	"github.com/materials-io/emeta/tree"
)

// Dataset is one decoded instrument file, as produced by an external
// decoding library. Both views are read-only for the whole extraction.
type Dataset interface {
	// StructuredMetadata returns the fixed-vocabulary tree the decoder
	// normalized (Acquisition_instrument, Sample, General, ...).
	StructuredMetadata() tree.Tree
	// RawMetadata returns the file's native vendor tag tree, verbatim.
	// May be empty.
	RawMetadata() tree.Tree
}

// DecodeFunc is the decode boundary: it loads a vendor file into one
// or more decoded datasets. Decoding is the only call in the package
// that may fail as a whole.
type DecodeFunc func(path string) ([]Dataset, error)

// DatasetOf wraps two already-decoded trees as a Dataset.
func DatasetOf(structured, raw tree.Tree) Dataset {
	return staticDataset{meta: structured, raw: raw}
}

type staticDataset struct {
	meta tree.Tree
	raw  tree.Tree
}

func (d staticDataset) StructuredMetadata() tree.Tree { return d.meta }
func (d staticDataset) RawMetadata() tree.Tree        { return d.raw }

// ExtractFile decodes path and extracts its metadata record. A decode
// failure propagates unmodified; no partial record is produced. When
// the decoder yields several datasets (an image stack, say), only the
// first feeds metadata extraction; sibling datasets are discarded.
func ExtractFile(decode DecodeFunc, path string, opts ...Options) (Record, error) {
	dss, err := decode(path)
	if err != nil {
		return nil, err
	}
	if len(dss) == 0 {
		return nil, fmt.Errorf("emeta: decode of %s produced no datasets", path)
	}
	return Extract(dss[0], opts...), nil
}
