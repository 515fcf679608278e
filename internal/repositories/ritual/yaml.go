package ritual

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
)

//go:embed rituals.yaml
var defaultCatalog []byte

// catalogFile is the top-level structure of a ritual catalog YAML file.
//
// Example:
//
//	rituals:
//	  - id: decadencia
//	    name: Decadência
//	    circle: 1
//	    element: DEATH
//	    cost: {base_pe: 1, disciple_extra_pe: 2, true_extra_pe: 5}
type catalogFile struct {
	Rituals []*ordem.Ritual `yaml:"rituals"`
}

// Catalog is an immutable, in-memory ritual catalog
type Catalog struct {
	byID   map[string]*ordem.Ritual
	sorted []*ordem.Ritual
}

// Config configures where the catalog is read from
type Config struct {
	// Path of a YAML catalog. Empty uses the embedded default catalog.
	Path string
}

// New loads the catalog named by the config
func New(cfg *Config) (Repository, error) {
	var (
		c   *Catalog
		err error
	)
	if cfg == nil || cfg.Path == "" {
		c, err = Default()
	} else {
		c, err = LoadFile(cfg.Path)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	return NewCatalog(defaultCatalog)
}

// LoadFile reads and parses a catalog YAML file from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("ritual catalog %q not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read ritual catalog %q", path)
	}

	c, err := NewCatalog(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse ritual catalog %q", path)
	}
	return c, nil
}

// NewCatalog parses and validates catalog YAML. Unknown keys are rejected.
func NewCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.InvalidArgumentf("invalid ritual catalog yaml: %v", err)
	}

	if err := validate(file.Rituals); err != nil {
		return nil, err
	}

	c := &Catalog{
		byID:   make(map[string]*ordem.Ritual, len(file.Rituals)),
		sorted: file.Rituals,
	}
	for _, r := range file.Rituals {
		c.byID[r.ID] = r
	}
	sort.SliceStable(c.sorted, func(i, j int) bool {
		if c.sorted[i].Circle != c.sorted[j].Circle {
			return c.sorted[i].Circle < c.sorted[j].Circle
		}
		return c.sorted[i].Name < c.sorted[j].Name
	})

	return c, nil
}

func validate(rituals []*ordem.Ritual) error {
	vb := errors.NewValidationBuilder()
	if len(rituals) == 0 {
		vb.Field("rituals", "catalog is empty")
	}

	seen := make(map[string]bool, len(rituals))
	for i, r := range rituals {
		field := fmt.Sprintf("rituals[%d]", i)
		if r == nil {
			vb.Field(field, "is empty")
			continue
		}

		errors.ValidateRequired(field+".id", r.ID, vb)
		errors.ValidateRequired(field+".name", r.Name, vb)
		errors.ValidateRange(field+".circle", r.Circle, 1, 4, vb)

		if seen[r.ID] {
			vb.Fieldf(field+".id", "duplicate id %q", r.ID)
		}
		seen[r.ID] = true

		if !r.Element.IsValid() {
			vb.Fieldf(field+".element", "unknown element %q", r.Element)
		}
		for _, a := range r.AllowedAffinities {
			if !a.IsValid() {
				vb.Fieldf(field+".allowed_affinities", "unknown element %q", a)
			}
		}
		if r.Cost.BasePE <= 0 {
			vb.Field(field+".cost.base_pe", "must be positive")
		}
		if r.Cost.DiscipleExtraPE < 0 || r.Cost.TrueExtraPE < 0 {
			vb.Field(field+".cost", "extra costs must not be negative")
		}
	}

	return vb.Build()
}

// Get returns a copy of the ritual with the given ID
func (c *Catalog) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("ritual ID cannot be empty")
	}

	r, ok := c.byID[input.ID]
	if !ok {
		return nil, errors.NotFoundf("ritual %s not found", input.ID)
	}

	return &GetOutput{Ritual: clone(r)}, nil
}

// List returns copies of the rituals matching the filters
func (c *Catalog) List(_ context.Context, input ListInput) (*ListOutput, error) {
	out := make([]*ordem.Ritual, 0, len(c.sorted))
	for _, r := range c.sorted {
		if input.Circle != 0 && r.Circle != input.Circle {
			continue
		}
		if input.Element != "" && r.Element != input.Element {
			continue
		}
		out = append(out, clone(r))
	}
	return &ListOutput{Rituals: out}, nil
}

func clone(r *ordem.Ritual) *ordem.Ritual {
	cp := *r
	cp.AllowedAffinities = append([]ordem.Element(nil), r.AllowedAffinities...)
	return &cp
}
