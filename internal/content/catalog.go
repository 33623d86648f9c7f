// Package content holds the copy shown on the site. The default catalog is
// compiled in; a YAML file can replace it at runtime.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultCatalog []byte

// Solution is one service offering.
type Solution struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
}

// Activity is one enrichment class.
type Activity struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Alt         string `yaml:"alt"`
	Color       string `yaml:"color"`
}

// InfoItem is a labelled contact detail.
type InfoItem struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Hero is the headline block above the solutions.
type Hero struct {
	Badge       string `yaml:"badge"`
	Title       string `yaml:"title"`
	Highlight   string `yaml:"highlight"`
	Description string `yaml:"description"`
	Primary     string `yaml:"primary"`
	Secondary   string `yaml:"secondary"`
}

// Catalog is everything the pages render.
type Catalog struct {
	Brand     string `yaml:"brand"`
	Copyright string `yaml:"copyright"`
	Hero      Hero   `yaml:"hero"`
	Solutions struct {
		Title    string     `yaml:"title"`
		Subtitle string     `yaml:"subtitle"`
		Items    []Solution `yaml:"items"`
	} `yaml:"solutions"`
	Enrichment struct {
		Title    string     `yaml:"title"`
		Subtitle string     `yaml:"subtitle"`
		Items    []Activity `yaml:"items"`
	} `yaml:"enrichment"`
	Contact struct {
		Title    string     `yaml:"title"`
		Subtitle string     `yaml:"subtitle"`
		Info     []InfoItem `yaml:"info"`
	} `yaml:"contact"`
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("content: embedded catalog: %v", err))
	}
	return c
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Validate checks the fields every page depends on.
func (c *Catalog) Validate() error {
	var errs []error
	if c.Brand == "" {
		errs = append(errs, errors.New("brand is empty"))
	}
	for i, s := range c.Solutions.Items {
		if s.Title == "" {
			errs = append(errs, fmt.Errorf("solutions[%d]: title is empty", i))
		}
	}
	for i, a := range c.Enrichment.Items {
		if a.Title == "" {
			errs = append(errs, fmt.Errorf("enrichment[%d]: title is empty", i))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}
