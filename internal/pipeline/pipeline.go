package pipeline

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"swagger-typings/internal/common"
	"swagger-typings/internal/diagnostic"
	"swagger-typings/internal/document"
)

var (
	// ErrNilDocument is returned when Run is called without a document.
	ErrNilDocument = errors.New("document is required")
	// ErrStrict is returned when strict mode finds error diagnostics.
	ErrStrict = errors.New("strict mode: post-processing failed with errors")
)

// Pipeline runs the post-processing phases with one Strategy.
type Pipeline struct {
	strategy Strategy
	config   Config
	log      *zap.SugaredLogger
}

// New creates a Pipeline. A nil logger disables logging.
func New(strategy Strategy, config Config, log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Pipeline{
		strategy: strategy,
		config:   config,
		log:      log,
	}
}

// Run post-processes doc in place and returns the render context.
// The context is checked between phases only; each phase runs to completion.
//
// In strict mode a Result carrying the diagnostics is returned together
// with ErrStrict. A serialization failure returns no Result.
func (p *Pipeline) Run(ctx context.Context, doc *document.Document) (*Result, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	res := &Result{
		Document:    doc,
		Diagnostics: diagnostic.Diagnostics{},
	}

	phases := []struct {
		name string
		run  func(*Result) error
	}{
		{"operations", p.processOperations},
		{"models", p.processModels},
		{"supporting", p.injectSupportingData},
	}

	for _, phase := range phases {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "before %s phase", phase.name)
		}

		p.log.Debugw("running phase", "phase", phase.name)

		if err := phase.run(res); err != nil {
			return nil, errors.Wrapf(err, "%s phase", phase.name)
		}
	}

	for _, d := range res.Diagnostics.Warnings {
		p.log.Warnw(d.Message, "code", d.Code, "subject", d.Subject, "suggestions", d.Suggestions)
	}

	if p.config.Strict && res.Diagnostics.HasErrors() {
		return res, errors.WithSecondaryError(ErrStrict, res.Diagnostics.Err())
	}

	return res, nil
}

// processOperations is phase 1.
func (p *Pipeline) processOperations(res *Result) error {
	res.Groups = make([]GroupContext, 0, len(res.Document.Groups))

	for _, g := range res.Document.Groups {
		gc := GroupContext{Group: g}

		for _, op := range g.Operations {
			for _, param := range op.AllParams {
				param.DataType = p.strategy.MapType(param.DataType)
			}

			if op.ReturnType != "" {
				op.ReturnType = p.strategy.MapType(op.ReturnType)
			}

			p.strategy.ClassifyParameters(op)

			// A later matching operation overwrites an earlier one.
			if tag, ok := p.strategy.GroupTag(g.Classname, op.Tags); ok {
				gc.TagName = tag
				gc.HasTagName = true
			}
		}

		if !gc.HasTagName {
			res.Diagnostics.AddInfo(diagnostic.CodeTagNotMatched,
				"no declared tag produces this group name", g.Classname)
		}

		res.Groups = append(res.Groups, gc)
	}

	p.log.Debugw("operations processed",
		"groups", len(res.Groups), "operations", res.Document.OperationCount())

	return nil
}

// processModels is phase 2.
func (p *Pipeline) processModels(res *Result) error {
	for _, m := range res.Document.Models {
		p.strategy.PatchModel(m)

		for i := range m.Vars {
			m.Vars[i].DataType = p.strategy.MapType(m.Vars[i].DataType)
		}

		m.TSImports = p.strategy.ResolveImports(m)
	}

	p.auditCollisions(res)
	p.auditImports(res)

	p.log.Debugw("models processed", "models", len(res.Document.Models))

	return nil
}

// auditCollisions reports distinct model names that derive to one module
// path. Only one of them can own the generated file.
func (p *Pipeline) auditCollisions(res *Result) {
	for _, c := range Collisions(p.strategy, res.Document.ModelNames()) {
		msg := fmt.Sprintf("module path %s is derived from %d models: %v", c.Path, len(c.Names), c.Names)
		subject, _ := common.First(c.Names)

		if p.config.Strict {
			res.Diagnostics.AddError(diagnostic.CodeFilenameCollision, msg, subject)
		} else {
			res.Diagnostics.AddWarning(diagnostic.CodeFilenameCollision, msg, subject)
		}
	}
}

// auditImports warns about import records that name no known model.
func (p *Pipeline) auditImports(res *Result) {
	known := res.Document.ModelNames()
	catalog := make(map[string]bool, len(known))

	for _, n := range known {
		catalog[n] = true
	}

	for _, m := range res.Document.Models {
		for _, imp := range m.TSImports {
			if catalog[imp.Classname] || isOverridden(p.strategy, imp.Classname) {
				continue
			}

			res.Diagnostics.AddWarning(diagnostic.CodeUnknownImport,
				fmt.Sprintf("import %q does not name a model in the document", imp.Classname),
				m.Classname,
				suggest(imp.Classname, known)...)
		}
	}
}

func isOverridden(s Strategy, name string) bool {
	o, ok := s.(Overrider)
	if !ok {
		return false
	}

	_, hit := o.Override(name)

	return hit
}
