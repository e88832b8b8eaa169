// Command imagenodes lists the registered image nodes and runs YAML
// pipelines against them.
//
// Usage:
//
//	imagenodes list
//	imagenodes run <pipeline.yaml>
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"imagenodes/logging"
	"imagenodes/node"
	"imagenodes/workflow"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()
	cfg := LoadConfig()

	if len(args) == 0 {
		usage()
		return 2
	}

	registry, err := node.Builtins()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build node registry: %v\n", err)
		return 1
	}

	switch args[0] {
	case "list":
		listNodes(registry)
		return 0

	case "run":
		if len(args) != 2 {
			usage()
			return 2
		}
		return runPipeline(cfg, registry, args[1])

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: imagenodes list | imagenodes run <pipeline.yaml>")
}

// listNodes prints the registry contents: identifier, display name,
// category, and whether the node is a terminal output.
func listNodes(registry *node.Registry) {
	header := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)
	outputTag := color.New(color.FgYellow)

	header.Printf("%-26s %-30s %-8s\n", "ID", "DISPLAY NAME", "CATEGORY")
	for _, id := range registry.IDs() {
		n, _ := registry.Get(id)
		name, _ := registry.DisplayName(id)
		spec := n.Spec()

		fmt.Printf("%-26s %-30s ", id, name)
		dim.Printf("%-8s", spec.Category)
		if spec.OutputNode {
			outputTag.Print("  output")
		}
		fmt.Println()
	}
	dim.Printf("(%d nodes)\n", registry.Len())
}

func runPipeline(cfg Config, registry *node.Registry, path string) int {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile, cfg.DevMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	pipeline, err := workflow.Load(path)
	if err != nil {
		logger.Error("failed to load pipeline", zap.String("path", path), zap.Error(err))
		return 1
	}

	result, err := workflow.NewRunner(registry, logger).Run(pipeline)
	if err != nil {
		logger.Error("pipeline failed", zap.Error(err))
		return 1
	}

	success := color.New(color.FgGreen, color.Bold)
	success.Printf("run %s: %d steps completed\n", result.RunID, len(result.Steps))
	return 0
}
