package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/reoring/jsonschema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `jsonschema CLI

Usage:
  jsonschema validate -schema schema.{json,yaml} [-draft N] [-no-formats] instance.{json,yaml}...

Flags:
  -schema      schema document to compile
  -draft       default draft when $schema is absent: 4, 6, 7, 2019 or 2020
  -no-formats  disable format assertions`)
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	var draftFlag int
	var noFormats bool
	fs.StringVar(&schemaPath, "schema", "", "schema document to compile")
	fs.IntVar(&draftFlag, "draft", 0, "default draft when $schema is absent")
	fs.BoolVar(&noFormats, "no-formats", false, "disable format assertions")
	_ = fs.Parse(args)
	instances := fs.Args()
	if schemaPath == "" || len(instances) == 0 {
		fs.Usage()
		os.Exit(2)
	}

	schemaDoc, err := loadDocument(schemaPath)
	if err != nil {
		fatalf("loading schema: %v", err)
	}
	opts := []jsonschema.CompileOption{jsonschema.WithFormatAssertions(!noFormats)}
	if draftFlag != 0 {
		draft, err := draftFromFlag(draftFlag)
		if err != nil {
			fatalf("%v", err)
		}
		opts = append(opts, jsonschema.WithDefaultDraft(draft))
	}
	schema, err := jsonschema.Compile(schemaDoc, opts...)
	if err != nil {
		fatalf("schema is invalid: %v", err)
	}

	// A compiled schema is safe for concurrent use; validate the instance
	// files in parallel.
	var mu sync.Mutex
	failed := false
	var g errgroup.Group
	for _, path := range instances {
		g.Go(func() error {
			doc, err := loadDocument(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			err = schema.Validate(doc)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed = true
				fmt.Printf("%s: invalid\n", path)
				for _, m := range err.(jsonschema.Messages) {
					fmt.Printf("  %s: %s\n", m.InstanceLocation, m.Message)
				}
			} else {
				fmt.Printf("%s: ok\n", path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fatalf("%v", err)
	}
	if failed {
		os.Exit(1)
	}
}

func draftFromFlag(n int) (jsonschema.Draft, error) {
	switch n {
	case 4:
		return jsonschema.Draft4, nil
	case 6:
		return jsonschema.Draft6, nil
	case 7:
		return jsonschema.Draft7, nil
	case 2019:
		return jsonschema.Draft201909, nil
	case 2020:
		return jsonschema.Draft202012, nil
	}
	return 0, fmt.Errorf("unknown draft %d (want 4, 6, 7, 2019 or 2020)", n)
}

// loadDocument reads a JSON or YAML document into the decoded-JSON shapes
// the validator consumes.
func loadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return normalizeYAML(v)
	default:
		return jsonschema.UnmarshalInstance(data)
	}
}

// normalizeYAML rewrites yaml.v3 output into JSON value shapes.
func normalizeYAML(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for _, k := range sortedKeys(t) {
			nv, err := normalizeYAML(t[k])
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string object key %v", k)
			}
			nv, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			nv, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
