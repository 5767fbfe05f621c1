package render

import (
	"encoding/json"
	"regexp"
	"strings"
	"text/template"
)

const header = `// Generated by swagger-typings ({{.Generator}}). DO NOT EDIT.`

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var funcs = template.FuncMap{
	"json":     jsonString,
	"prop":     propName,
	"optional": optional,
	"comment":  commentText,
}

// commentText keeps s from closing the surrounding block comment.
func commentText(s string) string {
	return strings.ReplaceAll(s, "*/", `*\/`)
}

// jsonString encodes s as a JSON string literal.
func jsonString(s string) (string, error) {
	b, err := json.Marshal(s)
	return string(b), err
}

// propName quotes property names that are not valid identifiers.
func propName(name string) string {
	if identRe.MatchString(name) {
		return name
	}

	b, _ := json.Marshal(name)

	return string(b)
}

func optional(required bool) string {
	if required {
		return ""
	}

	return "?"
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

var modelTemplate = mustParse("model", header+`
{{range .Model.TSImports}}
import { {{.Classname}} } from '{{.Filename}}';{{end}}
{{with .Model}}
{{if .Description}}/**
 * {{comment .Description}}
 */
{{end}}{{if $.Array}}export type {{.Classname}} = Array<{{or .ElementType "any"}}>;
{{else if $.Scalar}}export type {{.Classname}} = {{or .Parent "any"}};
{{else}}export interface {{.Classname}}{{if .Parent}} extends {{.Parent}}{{end}} {
{{range .Vars}}{{if .Description}}    /**
     * {{comment .Description}}
     */
{{end}}    {{prop .Name}}{{optional .Required}}: {{.DataType}};
{{end}}{{if .AdditionalPropertiesType}}    [key: string]: {{.AdditionalPropertiesType}} | any;
{{end}}}
{{end}}{{end}}`)

var apiTemplate = mustParse("api", header+`

import { SwaggerResponse } from '../api';{{range .Imports}}
import { {{.Classname}} } from '{{.Filename}}';{{end}}

/**
 * Operations tagged {{json .Tag | comment}}.
 */
export interface {{.Interface}} {
{{range .Operations}}{{if .Summary}}    /**
     * {{comment .Summary}}
     */
{{end}}    {{.Name}}(parameters{{optional .ParamsRequired}}: {
{{range .Op.XParams}}        {{prop .ParamName}}{{optional .Required}}: {{.DataType}};
{{end}}    }{{if .RequestBodyType}}, options{{optional .Op.IsBodyParamsRequired}}: {
        requestBody{{optional .Op.IsBodyParamsRequired}}: {{.RequestBodyType}};
    }{{end}}): Promise<SwaggerResponse<{{.ReturnType}}>>;
{{end}}}
`)

var apiIndexTemplate = mustParse("api.d.ts", header+`
{{range .Groups}}
import { {{.Interface}} } from './{{.Path}}';{{end}}

export interface SwaggerResponse<T> {
    url: string;
    ok: boolean;
    status: number;
    statusText: string;
    headers: { [name: string]: string };
    body: T;
}

export interface Apis {
{{range .Groups}}    {{json .Tag}}: {{.Interface}};
{{end}}}
{{range .Groups}}
export * from './{{.Path}}';{{end}}
`)

var indexDTSTemplate = mustParse("index.d.ts", header+`

import { Apis } from './api';

export * from './api';
{{range .Models}}export * from './{{.}}';
{{end}}
export interface SwaggerClient {
    apis: Apis;
    spec: object;
}

export interface ClientOptions {
    url?: string;
    spec?: object;
    authorizations?: { [name: string]: unknown };
    requestInterceptor?: (request: object) => object;
    responseInterceptor?: (response: object) => object;
}

export declare const document: object;

export declare function createClient(options?: ClientOptions): Promise<SwaggerClient>;
`)

var indexJSTemplate = mustParse("index.js", header+`
'use strict';

const Swagger = require('swagger-client');
const document = require('./api.json');

module.exports.document = document;

module.exports.createClient = function createClient(options) {
    return Swagger(Object.assign({}, options));
};
`)

var packageJSONTemplate = mustParse("package.json", `{
  "name": {{json .NpmName}},
  "version": {{json .NpmVersion}},
  "description": {{json .Description}},
  "main": "index.js",
  "types": "index.d.ts",
  "files": [
    "api",
    "model",
    "api.d.ts",
    "api.json",
    "index.d.ts",
    "index.js"
  ],
  "dependencies": {
    "swagger-client": "^3.18.0"
  }{{if .NpmRepository}},
  "publishConfig": {
    "registry": {{json .NpmRepository}}
  }{{end}}
}
`)

var readmeTemplate = mustParse("README.md", `# {{.NpmName}}@{{.NpmVersion}}

{{if .AppDescription}}{{.AppDescription}}

{{end}}TypeScript typings for the {{or .AppName "API"}} swagger-js client{{if .AppVersion}}, API version {{.AppVersion}}{{end}}.
Generated by swagger-typings ({{.Generator}}).

## Installation
{{if .NpmRepository}}
The package is published to {{.NpmRepository}}.
{{end}}
` + "```" + `
npm install {{.NpmName}}@{{.NpmVersion}} --save
` + "```" + `

## Usage

` + "```" + `ts
import { createClient } from '{{.NpmName}}';

const client = await createClient({ url: 'https://example.com/openapi.json' });
` + "```" + `
`)
