package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdoc"
	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/loader"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasdoc v%s\n", oasdoc.Version())
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	case "paths":
		if err := handlePaths(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "canonical":
		if err := handleCanonical(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "oasdoc - order-preserving API document model")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  oasdoc <command> [flags] <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  paths      List the paths and operations of a document")
	fmt.Fprintln(w, "  canonical  Re-encode a document in canonical field order")
	fmt.Fprintln(w, "  version    Print the version")
	fmt.Fprintln(w, "  help       Print this help")
}

func handlePaths(args []string) error {
	fs := flag.NewFlagSet("paths", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("paths requires exactly one file argument")
	}

	result, err := loadFile(fs.Arg(0), *verbose)
	if err != nil {
		return err
	}

	for _, line := range pathSummaries(result.Document) {
		fmt.Println(line)
	}
	return nil
}

// pathSummaries renders one line per path: the populated methods in
// canonical order, or the reference target for unresolved path items.
func pathSummaries(doc *document.Document) []string {
	var lines []string
	for path, item := range doc.Paths.All() {
		if item.IsRef() {
			lines = append(lines, fmt.Sprintf("%s -> %s", path, item.Ref))
			continue
		}
		methods := ""
		for method := range item.Value.Operations() {
			if methods != "" {
				methods += " "
			}
			methods += method
		}
		lines = append(lines, fmt.Sprintf("%s [%s]", path, methods))
	}
	return lines
}

func handleCanonical(args []string) error {
	fs := flag.NewFlagSet("canonical", flag.ContinueOnError)
	format := fs.String("format", "yaml", "output format: yaml or json")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("canonical requires exactly one file argument")
	}

	result, err := loadFile(fs.Arg(0), *verbose)
	if err != nil {
		return err
	}

	obj := result.Document.EncodeObject()
	switch *format {
	case "json":
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(obj)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unsupported output format %q", *format)
	}
	return nil
}

func loadFile(path string, verbose bool) (*loader.Result, error) {
	opts := []loader.Option{loader.WithFilePath(path)}
	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, loader.WithLogger(loader.NewSlogAdapter(slog.New(handler))))
	}
	return loader.Load(opts...)
}
