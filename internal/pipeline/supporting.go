package pipeline

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"

	"swagger-typings/internal/naming"
)

// ErrUnserializableDocument marks a resolved document that cannot be
// encoded for the manifest. It aborts the run.
var ErrUnserializableDocument = errors.New("resolved document cannot be serialized")

// injectSupportingData is phase 3.
func (p *Pipeline) injectSupportingData(res *Result) error {
	encoded, err := json.Marshal(res.Document)
	if err != nil {
		return errors.WithHint(
			errors.Mark(errors.Wrap(err, "encoding resolved document"), ErrUnserializableDocument),
			"document extensions must hold JSON-representable values (no NaN, Inf or non-string map keys)")
	}

	info := res.Document.Info

	res.Supporting = SupportingData{
		AppName:        info.Title,
		AppDescription: info.Description,
		AppVersion:     info.Version,
		NpmName:        p.config.NpmName,
		NpmVersion:     p.config.NpmVersion,
		NpmRepository:  p.config.NpmRepository,
		DocumentJSON:   string(encoded),
		Files:          append([]string(nil), DefaultSupportingFiles...),
	}

	if res.Supporting.NpmName == "" {
		res.Supporting.NpmName = npmPackageName(info.Title)
	}

	if res.Supporting.NpmVersion == "" {
		res.Supporting.NpmVersion = DefaultNpmVersion
	}

	p.log.Debugw("supporting data injected", "bytes", len(encoded), "npmName", res.Supporting.NpmName)

	return nil
}

// npmPackageName derives a lower-case, dash-separated package name from
// the API title. Example: "Swagger Petstore" -> "swagger-petstore".
func npmPackageName(title string) string {
	parts := strings.Split(naming.SanitizeName(title), "_")

	words := parts[:0]

	for _, w := range parts {
		if w != "" {
			words = append(words, strings.ToLower(w))
		}
	}

	if len(words) == 0 {
		return "api-typings"
	}

	return strings.Join(words, "-")
}
