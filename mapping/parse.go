package mapping

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/ormxml/resource"
)

// Binding is one parsed mapping document together with where it came from.
type Binding struct {
	Origin string
	Root   *EntityMappings
}

// Parse decodes an <entity-mappings> document.
func Parse(r io.Reader) (*EntityMappings, error) {
	var root EntityMappings
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

func ParseBytes(data []byte) (*EntityMappings, error) {
	var root EntityMappings
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

func ParseFile(path string) (*Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mapping file: %w", err)
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse mapping file %s: %w", path, err)
	}
	return &Binding{Origin: path, Root: root}, nil
}

// ParseResource reads a mapping document from the classpath roots of the
// locator.
func ParseResource(locator resource.StreamLocator, name string) (*Binding, error) {
	rc, err := locator.LocateResourceStream(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	root, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("parse mapping resource %s: %w", name, err)
	}
	return &Binding{Origin: name, Root: root}, nil
}

// ParseFiles parses the files concurrently and returns the bindings in the
// order of paths. The first error cancels the remaining work.
func ParseFiles(ctx context.Context, paths []string) ([]*Binding, error) {
	bindings := make([]*Binding, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := ParseFile(path)
			if err != nil {
				return err
			}
			bindings[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bindings, nil
}
