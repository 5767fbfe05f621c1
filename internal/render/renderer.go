package render

import (
	"bytes"
	"regexp"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"swagger-typings/internal/common"
	"swagger-typings/internal/document"
	"swagger-typings/internal/naming"
	"swagger-typings/internal/pipeline"
	"swagger-typings/internal/typescript"
)

// ErrUnknownSupportingFile is returned for supporting file names with no template.
var ErrUnknownSupportingFile = errors.New("unknown supporting file")

const declarationExt = ".d.ts"

var typeRefRe = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$]*`)

// GeneratedFile is one emitted file.
type GeneratedFile struct {
	// Filename is relative to the output directory, slash separated.
	Filename string
	Content  []byte
}

// Renderer turns a pipeline Result into files.
type Renderer struct {
	deriver   *typescript.Deriver
	generator string
	log       *zap.SugaredLogger
}

// New creates a Renderer. Paths are derived with d; generator is stamped
// into file headers. A nil logger disables logging.
func New(d *typescript.Deriver, generator string, log *zap.SugaredLogger) *Renderer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Renderer{
		deriver:   d,
		generator: generator,
		log:       log,
	}
}

type modelData struct {
	Generator string
	Model     *document.Model
	Array     bool
	Scalar    bool
}

type operationView struct {
	Op              *document.Operation
	Name            string
	Summary         string
	ReturnType      string
	RequestBodyType string
	ParamsRequired  bool
}

type apiData struct {
	Generator  string
	Tag        string
	Interface  string
	Imports    []document.TSImport
	Operations []operationView
}

type groupView struct {
	Interface string
	Path      string
	Tag       string
}

type apiIndexData struct {
	Generator string
	Groups    []groupView
}

type indexData struct {
	Generator string
	Models    []string
}

type supportingData struct {
	pipeline.SupportingData
	Generator   string
	Description string
}

// Render emits model files, API files and the supporting files, in that order.
func (r *Renderer) Render(res *pipeline.Result) ([]GeneratedFile, error) {
	var files []GeneratedFile

	seen := make(map[string]string)

	var modelPaths []string

	for _, m := range res.Document.Models {
		path, ok := r.modelPath(m.Classname)
		if !ok {
			r.log.Debugw("model resolved through import mapping, skipping", "model", m.Classname)
			continue
		}

		if owner, dup := seen[path]; dup {
			r.log.Warnw("model file already emitted, skipping", "model", m.Classname, "path", path, "owner", owner)
			continue
		}

		seen[path] = m.Classname

		content, err := execute(modelTemplate, modelData{
			Generator: r.generator,
			Model:     m,
			Array:     m.Kind == document.KindArray,
			Scalar:    m.Kind == document.KindScalar,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "rendering model %s", m.Classname)
		}

		files = append(files, GeneratedFile{Filename: path + declarationExt, Content: content})
		modelPaths = append(modelPaths, path)
	}

	var groups []groupView

	for _, gc := range res.Groups {
		g := gc.Group

		if _, ok := r.deriver.Override(g.Classname); ok {
			r.log.Debugw("group resolved through import mapping, skipping", "group", g.Classname)
			continue
		}

		path := r.deriver.APIClassImport(g.Classname)

		tag := g.Classname
		if gc.HasTagName {
			tag = gc.TagName
			path = r.deriver.APIImport(naming.SanitizeTag(tag))
		}

		iface := naming.SanitizeName(g.Classname)

		data := apiData{
			Generator:  r.generator,
			Tag:        tag,
			Interface:  iface,
			Imports:    r.apiImports(res.Document, g),
			Operations: operationViews(g),
		}

		content, err := execute(apiTemplate, data)
		if err != nil {
			return nil, errors.Wrapf(err, "rendering api %s", g.Classname)
		}

		files = append(files, GeneratedFile{Filename: path + declarationExt, Content: content})
		groups = append(groups, groupView{Interface: iface, Path: path, Tag: tag})
	}

	supporting, err := r.renderSupporting(res.Supporting, groups, modelPaths)
	if err != nil {
		return nil, err
	}

	files = append(files, supporting...)

	r.log.Debugw("rendered", "files", len(files), "models", len(modelPaths), "apis", len(groups))

	return files, nil
}

func (r *Renderer) renderSupporting(s pipeline.SupportingData, groups []groupView, models []string) ([]GeneratedFile, error) {
	sd := supportingData{
		SupportingData: s,
		Generator:      r.generator,
		Description:    s.AppDescription,
	}

	if sd.Description == "" {
		sd.Description = "TypeScript typings for " + common.FirstNonEmpty(s.AppName, "the API")
	}

	files := make([]GeneratedFile, 0, len(s.Files))

	for _, name := range s.Files {
		var (
			content []byte
			err     error
		)

		switch name {
		case pipeline.FileReadme:
			content, err = execute(readmeTemplate, sd)
		case pipeline.FilePackageJSON:
			content, err = execute(packageJSONTemplate, sd)
		case pipeline.FileAPIDTS:
			content, err = execute(apiIndexTemplate, apiIndexData{Generator: r.generator, Groups: groups})
		case pipeline.FileIndexDTS:
			content, err = execute(indexDTSTemplate, indexData{Generator: r.generator, Models: models})
		case pipeline.FileIndexJS:
			content, err = execute(indexJSTemplate, sd)
		case pipeline.FileAPIJSON:
			content = []byte(s.DocumentJSON)
		default:
			return nil, errors.Wrapf(ErrUnknownSupportingFile, "%s", name)
		}

		if err != nil {
			return nil, errors.Wrapf(err, "rendering %s", name)
		}

		files = append(files, GeneratedFile{Filename: name, Content: content})
	}

	return files, nil
}

// modelPath returns the package-qualified path of a model's declaration
// file without extension. Models resolved through the import mapping live
// elsewhere and report false.
func (r *Renderer) modelPath(name string) (string, bool) {
	if _, ok := r.deriver.External(name); ok {
		return "", false
	}

	return r.deriver.ModelImport(r.deriver.StripDecoration(name)), true
}

// apiImports collects the models referenced by a group's parameter and
// return types. Paths are relative to the API package directory.
func (r *Renderer) apiImports(doc *document.Document, g *document.OperationGroup) []document.TSImport {
	var refs []string

	for _, op := range g.Operations {
		refs = append(refs, typeRefRe.FindAllString(op.ReturnType, -1)...)

		for _, p := range op.AllParams {
			refs = append(refs, typeRefRe.FindAllString(p.DataType, -1)...)
		}
	}

	var imports []document.TSImport

	for _, name := range common.SortedUnique(refs) {
		if doc.Model(name) == nil {
			continue
		}

		filename, ok := r.deriver.Override(name)
		if !ok {
			filename = "../" + r.deriver.ModelImport(r.deriver.StripDecoration(name))
		}

		imports = append(imports, document.TSImport{Classname: name, Filename: filename})
	}

	return imports
}

func operationViews(g *document.OperationGroup) []operationView {
	views := make([]operationView, 0, len(g.Operations))

	for _, op := range g.Operations {
		v := operationView{
			Op:              op,
			Name:            operationName(op),
			Summary:         op.Summary,
			ReturnType:      common.FirstNonEmpty(op.ReturnType, "void"),
			RequestBodyType: requestBodyType(op),
		}

		for _, p := range op.XParams {
			v.ParamsRequired = v.ParamsRequired || p.Required
		}

		views = append(views, v)
	}

	return views
}

// operationName is the lower-camel operation id, or the method and path
// when the operation has no id.
func operationName(op *document.Operation) string {
	name := op.OperationID
	if name == "" {
		name = strings.ToLower(op.HTTPMethod) + "_" + op.Path
	}

	return naming.Camelize(naming.SanitizeName(name), true)
}

// requestBodyType is the payload type: a single body parameter's type as
// is, otherwise an object literal over the form fields.
func requestBodyType(op *document.Operation) string {
	body := op.XRequestBodyParams

	switch {
	case len(body) == 0:
		return ""
	case len(body) == 1 && body[0].IsBodyParam:
		return body[0].DataType
	}

	var sb strings.Builder

	sb.WriteString("{ ")

	for _, p := range body {
		sb.WriteString(propName(p.ParamName))
		sb.WriteString(optional(p.Required))
		sb.WriteString(": ")
		sb.WriteString(p.DataType)
		sb.WriteString("; ")
	}

	sb.WriteString("}")

	return sb.String()
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	return buf.Bytes(), nil
}
