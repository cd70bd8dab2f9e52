package cryptodash

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultCatalogPath locates the asset list in a catalog document.
const DefaultCatalogPath = "$.assets"

// DecodeCatalog reads a JSON document from r and builds a catalog from the
// list of asset records selected by the JSONPath expression path. Records
// without a sparkline get one generated from their price using rng.
func DecodeCatalog(r io.Reader, path string, rng *rand.Rand) (*Catalog, error) {
	if path == "" {
		path = DefaultCatalogPath
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("error decoding catalog document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q does not select a list of assets but a %T", path, jval)
	}

	assets := make([]Asset, 0, len(jlist))
	for i, jitem := range jlist {
		// records are decoded through their JSON form to reuse the decimal decoders.
		raw, err := json.Marshal(jitem)
		if err != nil {
			return nil, fmt.Errorf("error reading asset #%d: %w", i, err)
		}
		var rec AssetRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("error reading asset #%d: %w", i, err)
		}
		if len(rec.Sparkline) == 0 {
			rec.Sparkline = GenerateSparkline(rec.Price.InexactFloat64(), rng)
		}
		a, err := NewAsset(rec)
		if err != nil {
			return nil, fmt.Errorf("asset #%d: %w", i, err)
		}
		assets = append(assets, a)
	}
	return NewCatalog(assets...)
}

// LoadCatalog decodes the catalog document stored in file.
func LoadCatalog(file, path string, rng *rand.Rand) (*Catalog, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := DecodeCatalog(f, path, rng)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog %q: %w", file, err)
	}
	return c, nil
}
