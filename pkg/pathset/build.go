package pathset

import (
	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/fspath"
	"github.com/arthur-debert/fsimage/pkg/logging"
)

// Build creates a set holding the union of paths.
// Each terminal path is classified through classifier unless an ancestor
// directory terminal already covers it. Any invalid input aborts the whole
// build and no partial set is returned.
func Build(classifier Classifier, paths []fspath.Path) (*Set, error) {
	log := logging.GetLogger("pathset.build")

	b := &builder{classifier: classifier, root: newBranch()}
	for _, p := range paths {
		if err := b.insert(p); err != nil {
			log.Debug().Err(err).Str("path", p.String()).Msg("Build aborted")
			return nil, err
		}
	}

	log.Debug().
		Int("inputs", len(paths)).
		Int("queries", b.queries).
		Int("absorbed", b.absorbed).
		Msg("Path set built")
	return &Set{root: b.root}, nil
}

// BuildStrings parses every text as an absolute path and builds a set from them
func BuildStrings(classifier Classifier, texts []string) (*Set, error) {
	paths := make([]fspath.Path, 0, len(texts))
	for _, text := range texts {
		p, err := fspath.Parse(text)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return Build(classifier, paths)
}

type builder struct {
	classifier Classifier
	root       *node

	queries  int
	absorbed int
}

func (b *builder) insert(p fspath.Path) error {
	if p.IsRoot() {
		b.root = directoryTerminal
		return nil
	}

	components := p.Components()
	cur := b.root
	for i, name := range components {
		switch cur.tag {
		case tagDirectory:
			b.absorbed++
			return nil
		case tagFile:
			return errors.Newf(errors.ErrPathConflict, "cannot add %s: %s is a file", p, render(components[:i])).
				WithDetail(errors.DetailPath, render(components[:i]))
		}

		child := cur.children[name]
		if i < len(components)-1 {
			if child == nil {
				child = newBranch()
				cur.children[name] = child
			}
			cur = child
			continue
		}

		if child != nil && child.tag == tagDirectory {
			b.absorbed++
			return nil
		}

		kind, err := b.classify(p)
		if err != nil {
			return err
		}

		switch {
		case child == nil:
			cur.children[name] = newTerminal(kind)
		case child.tag == tagFile && kind != File:
			return errors.Newf(errors.ErrPathConflict, "%s was added as a file but is now a %s", p, kind).
				WithDetail(errors.DetailPath, p.String())
		case child.isBranch() && kind == Directory:
			// The directory absorbs whatever was added below it.
			cur.children[name] = directoryTerminal
		case child.isBranch():
			return errors.Newf(errors.ErrPathConflict, "%s is a file but paths below it were added", p).
				WithDetail(errors.DetailPath, p.String())
		}
	}
	return nil
}

func (b *builder) classify(p fspath.Path) (Kind, error) {
	b.queries++
	kind, err := b.classifier.Classify(p)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrMetadataQueryFailed, "cannot query metadata for %s", p).
			WithDetail(errors.DetailPath, p.String())
	}
	log := logging.GetLogger("pathset.build")
	log.Trace().Str("path", p.String()).Stringer("kind", kind).Msg("Classified path")
	return kind, nil
}
