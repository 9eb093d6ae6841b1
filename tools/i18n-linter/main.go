// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the embedded locales against the Go sources: every key
// passed to i18n.T must exist in the primary locale, and every other locale
// must carry all keys of the primary one.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var keyCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

func main() {
	fmt.Println("Running i18n linter...")

	used, err := findUsedKeys(projectRoot)
	if err != nil {
		fmt.Printf("Error finding used keys: %v\n", err)
		os.Exit(1)
	}
	primary, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		fmt.Printf("Error loading primary locale %q: %v\n", primaryLocale, err)
		os.Exit(1)
	}
	fmt.Printf("%d keys used in code, %d keys in %s.\n", len(used), len(primary), primaryLocale)

	failed := false
	if undefined := difference(used, primary); len(undefined) > 0 {
		failed = true
		for _, k := range undefined {
			fmt.Printf("  - Undefined: %s\n", k)
		}
	}
	for _, k := range difference(primary, used) {
		fmt.Printf("  - Orphaned: %s\n", k)
	}

	files, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		fmt.Printf("Error finding locale files: %v\n", err)
		os.Exit(1)
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Printf("  - Error loading %s: %v\n", file, err)
			failed = true
			continue
		}
		for _, k := range difference(primary, keys) {
			fmt.Printf("  - Missing in %s: %s\n", filepath.Base(file), k)
			failed = true
		}
	}

	if failed {
		fmt.Println("Found issues that need to be addressed.")
		os.Exit(1)
	}
	fmt.Println("All translation files are consistent.")
}

// findUsedKeys scans the non-test Go files below root for i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (d.Name() == "tools" || strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCallRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot-separated keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flattenYAML(k, v, keys)
	}
}

// difference returns the sorted keys of a that are missing from b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
