// Command genruledocs generates markdown documentation for the lint rules
// from the rule registry. The output feeds the docs site that the rule
// doc URLs point at.
//
// Usage:
//
//	go run ./scripts/genruledocs -outdir docs/rules
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

func main() {
	outDir := flag.String("outdir", "docs/rules", "output directory for generated rule docs")
	flag.Parse()

	root, err := findProjectRoot()
	if err != nil {
		log.Fatalf("finding project root: %v", err)
	}

	target := *outDir
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}

	if err := generateRuleDocs(target); err != nil {
		log.Fatalf("generating rule docs: %v", err)
	}
	log.Printf("rule docs written to %s", target)
}

// findProjectRoot walks up from the working directory until it finds go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
