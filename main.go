package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lorenz/onestore/onestore"
)

var (
	flagInput              = flag.String("input", "", "Path to the .one or .onetoc2 file to parse (required).")
	flagOutputDir          = flag.String("output-dir", ".", "Directory embedded files are written into.")
	flagExtension          = flag.String("extension", "", "Extra suffix appended to every extracted file's name.")
	flagJSON               = flag.Bool("json", false, "Write the full JSON-shaped query output instead of the human-readable dump.")
	flagJSONOut            = flag.String("json-out", "", "With -json, write to this path instead of stdout.")
	flagJSONInclude        = flag.String("json-include", "", "Comma-separated subset of headers,properties,links,files (default: all).")
	flagJSONFilesNoContent = flag.Bool("json-files-no-content", false, "Omit files[*].content and add files[*].content_sha256 instead.")
)

func main() {
	flag.Parse()

	if *flagInput == "" {
		log.Fatalf("-input is required")
	}

	f, err := os.Open(*flagInput)
	if err != nil {
		log.Fatalf("could not open %s: %v", *flagInput, err)
	}
	defer f.Close()

	doc, err := onestore.Open(f)
	if err != nil {
		log.Fatalf("could not parse %s: %v", *flagInput, err)
	}

	for _, w := range doc.Warnings() {
		log.Printf("warning: %s", w)
	}

	if *flagJSON {
		if err := writeJSON(doc); err != nil {
			log.Fatalf("could not write JSON output: %v", err)
		}
		return
	}

	dumpHumanReadable(doc)

	if err := writeFiles(doc); err != nil {
		log.Fatalf("could not write embedded files: %v", err)
	}
}

func dumpHumanReadable(doc *onestore.Document) {
	fmt.Println("== header ==")
	for k, v := range doc.HeaderSummary() {
		fmt.Printf("%s: %s\n", k, v)
	}

	fmt.Println("== properties ==")
	for _, p := range doc.Properties() {
		fmt.Printf("%s (%s)\n", p.JCIDName, p.OIDString)
		for name, v := range p.Properties {
			switch raw := v.(type) {
			case []byte:
				preview := raw
				if len(preview) > 32 {
					preview = preview[:32]
				}
				fmt.Printf("  %s: %s...\n", name, hex.EncodeToString(preview))
			default:
				fmt.Printf("  %s: %v\n", name, raw)
			}
		}
	}

	fmt.Println("== links ==")
	for _, l := range doc.Links() {
		fmt.Printf("%s (%s) via %s: %s\n", l.JCIDName, l.OIDString, l.Source, l.URL)
	}

	fmt.Println("== files ==")
	for guid, file := range doc.Files() {
		fmt.Printf("%s: %s (%d bytes, oid %s)\n", guid, file.Extension, len(file.Content), file.OIDString)
	}
}

func writeFiles(doc *onestore.Document) error {
	if err := os.MkdirAll(*flagOutputDir, 0755); err != nil {
		return err
	}
	n := 0
	for _, file := range doc.Files() {
		if file.Content == nil {
			continue
		}
		name := fmt.Sprintf("file_%d%s%s", n, file.Extension, *flagExtension)
		if err := os.WriteFile(filepath.Join(*flagOutputDir, name), file.Content, 0644); err != nil {
			return err
		}
		n++
	}
	return nil
}

type jsonFile struct {
	Extension      string `json:"extension"`
	Content        []byte `json:"content,omitempty"`
	ContentSHA256  string `json:"content_sha256,omitempty"`
	Identity       string `json:"identity"`
}

func writeJSON(doc *onestore.Document) error {
	sections := map[string]bool{"headers": true, "properties": true, "links": true, "files": true}
	if *flagJSONInclude != "" {
		sections = map[string]bool{}
		for _, s := range strings.Split(*flagJSONInclude, ",") {
			sections[strings.TrimSpace(s)] = true
		}
	}

	out := map[string]any{}
	if sections["headers"] {
		out["headers"] = doc.HeaderSummary()
	}
	if sections["properties"] {
		out["properties"] = doc.Properties()
	}
	if sections["links"] {
		out["links"] = doc.Links()
	}
	if sections["files"] {
		files := make(map[string]jsonFile, len(doc.Files()))
		for guid, file := range doc.Files() {
			jf := jsonFile{Extension: file.Extension, Identity: file.OIDString}
			if *flagJSONFilesNoContent {
				if file.Content != nil {
					sum := sha256.Sum256(file.Content)
					jf.ContentSHA256 = hex.EncodeToString(sum[:])
				}
			} else {
				jf.Content = file.Content
			}
			files[guid] = jf
		}
		out["files"] = files
	}

	enc := json.NewEncoder(os.Stdout)
	if *flagJSONOut != "" {
		f, err := os.Create(*flagJSONOut)
		if err != nil {
			return err
		}
		defer f.Close()
		enc = json.NewEncoder(f)
	}
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
