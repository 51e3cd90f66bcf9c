package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhamidi/ormxml/config"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
	"github.com/dhamidi/ormxml/xmlproc"
)

var configPath string

// run is one pass of the overlay engine over a persistence unit.
type run struct {
	result   *xmlproc.XmlProcessingResult
	registry *java.ClassDetailsRegistry
}

// processUnit parses the mapping documents named on the command line, or
// configured when files is empty, then processes and applies them.
func processUnit(ctx context.Context, files []string) (*run, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		files = cfg.MappingFiles
	}
	if len(files) == 0 && len(cfg.MappingResources) == 0 {
		return nil, errors.New("no mapping files given or configured")
	}

	locator := cfg.Locator()
	defer locator.Close()

	bindings, err := mapping.ParseFiles(ctx, files)
	if err != nil {
		return nil, err
	}
	for _, name := range cfg.MappingResources {
		b, err := mapping.ParseResource(locator, name)
		if err != nil {
			return nil, fmt.Errorf("mapping resource %s: %w", name, err)
		}
		bindings = append(bindings, b)
	}

	pre := xmlproc.NewXmlPreProcessingResult(cfg.PersistenceUnitMetadata())
	for _, b := range bindings {
		pre.AddDocument(b)
	}

	registry := java.NewClassDetailsRegistry(java.NewClassPath(locator))
	result, err := xmlproc.ProcessXml(pre, xmlproc.NewModelBuildingContext(registry), xmlproc.NewBootstrapContext(cfg.TypeRegistry()))
	if err != nil {
		return nil, err
	}
	if err := result.Apply(); err != nil {
		return nil, err
	}
	return &run{result: result, registry: registry}, nil
}
