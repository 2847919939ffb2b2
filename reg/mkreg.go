//go:build ignore

// mkreg generates a register descriptor for package reg.
//
//	go run mkreg.go [-cluster] <type> <target> <block> <field>
//
// <type> is the descriptor type to declare, <target> the register type the
// proxy dereferences to, <block> the accessor of the peripheral's base address
// and <field> the register's field in the peripheral struct. With -cluster the
// field must be an array and the descriptor implements reg.Cluster.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"regexp"
	"slices"
	"strings"
	"text/template"
)

var regTemplate = `
// {{ .Type }} describes the {{ .Field }} register of {{ .Block }}.
type {{ .Type }} struct{}

func ({{ .Type }}) Ptr() *{{ .Target }} { return &{{ .Block }}().{{ .Field }} }
`

var clusterTemplate = `
// {{ .Type }} describes the {{ .Field }} registers of {{ .Block }}.
type {{ .Type }} struct{}

func ({{ .Type }}) Slice() []{{ .Target }} { return {{ .Block }}().{{ .Field }}[:] }
`

var knownImports = map[string]string{
	"mmio": "embedded/mmio",
	"raw":  "github.com/lpc55go/hal/raw",
}

type regDecl struct {
	Type, Target, Block, Field string
}

var qualifier = regexp.MustCompile(`\b([a-z]\w*)\.`)

func imports(d regDecl) (paths []string) {
	for _, m := range qualifier.FindAllStringSubmatch(d.Target+" "+d.Block, -1) {
		path, ok := knownImports[m[1]]
		if !ok {
			log.Fatalln("unknown package:", m[1])
		}
		if !slices.Contains(paths, path) {
			paths = append(paths, path)
		}
	}
	return
}

func usage() {
	fmt.Printf("Usage: %v [-cluster] <type> <target> <block> <field>\n", os.Args[0])
}

func main() {
	log.Default().SetFlags(log.Lshortfile)
	cluster := flag.Bool("cluster", false, "generate a reg.Cluster descriptor")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 4 {
		usage()
		os.Exit(1)
	}
	decl := regDecl{flag.Arg(0), flag.Arg(1), flag.Arg(2), flag.Arg(3)}

	text := regTemplate
	if *cluster {
		text = clusterTemplate
	}
	tmpl, err := template.New("regTemplate").Parse(text)
	if err != nil {
		log.Fatalln(err)
	}

	source := bytes.NewBuffer(nil)
	fmt.Fprintln(source, "// Code generated by mkreg.go; DO NOT EDIT.")
	fmt.Fprintln(source)
	fmt.Fprintln(source, "package", os.Getenv("GOPACKAGE"))
	fmt.Fprintln(source, "import (")
	for _, path := range imports(decl) {
		fmt.Fprintf(source, "%q\n", path)
	}
	fmt.Fprintln(source, ")")

	err = tmpl.Execute(source, decl)
	if err != nil {
		log.Fatalln(err)
	}

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	err = os.WriteFile(strings.ToLower(decl.Type)+"_reg.go", formattedSource, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}
