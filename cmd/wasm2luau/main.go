package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minz/wasm2luau/pkg/codegen"
	"github.com/minz/wasm2luau/pkg/luacheck"
	"github.com/minz/wasm2luau/pkg/version"
	"github.com/minz/wasm2luau/pkg/wasmjson"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// reportError writes msg to stderr, colorized red when stderr is a
// terminal (the same term.IsTerminal check cmd/repl uses to decide
// whether to drive raw-mode terminal control).
func reportError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "\x1b[31mError: %s\x1b[0m\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
}

var (
	outputFile   string
	runtimeOut   string
	debug        bool
	listBackends bool
	showVersion  bool
)

var rootCmd = &cobra.Command{
	Use:   "wasm2luau [module.json]",
	Short: "WebAssembly-to-Luau transpiler " + version.GetVersion(),
	Long: `wasm2luau turns a decoded wasm module into Luau source that runs under
a small embedded runtime library.

The input is a structured module description (module.json); binary .wasm
decoding and AST construction are the job of an external front end. Use
--runtime-out to also emit the runtime library the generated code requires
via require(script.Runtime).

EXAMPLES:
  wasm2luau module.json -o out.lua --runtime-out Runtime.lua
  wasm2luau --list-backends
  wasm2luau check out.lua`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println(version.GetVersion())
			return
		}

		if listBackends {
			fmt.Println("Available backends:")
			for _, b := range codegen.ListLuauBackends() {
				fmt.Printf("  - %s\n", b)
			}
			return
		}

		if len(args) == 0 {
			cmd.Help()
			os.Exit(0)
		}

		if err := transpile(args[0]); err != nil {
			reportError("%v", err)
			os.Exit(1)
		}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <file.lua>",
	Short: "sanity-check generated Luau source",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(args[0]); err != nil {
			reportError("%v", err)
			os.Exit(1)
		}
	},
}

var stubRuntime bool

func init() {
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show version")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: input.lua)")
	rootCmd.Flags().StringVar(&runtimeOut, "runtime-out", "", "also write the embedded runtime library to this file")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	rootCmd.Flags().BoolVar(&listBackends, "list-backends", false, "list available backends")

	checkCmd.Flags().BoolVar(&stubRuntime, "stub-runtime", false, "provide an empty table as script.Runtime instead of parsing a real one")
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError("%v", err)
		os.Exit(1)
	}
}

func transpile(inputFile string) error {
	if debug {
		fmt.Printf("Reading %s...\n", inputFile)
	}

	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	mod, err := wasmjson.Decode(f)
	if err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	backend := codegen.GetLuauBackend("luau", &codegen.BackendOptions{Debug: debug})
	if backend == nil {
		return fmt.Errorf("luau backend not registered")
	}

	generatedCode, err := backend.Generate(mod)
	if err != nil {
		return fmt.Errorf("code generation error: %w", err)
	}

	if outputFile == "" {
		base := filepath.Base(inputFile)
		ext := filepath.Ext(base)
		outputFile = base[:len(base)-len(ext)] + backend.GetFileExtension()
	}

	if err := os.WriteFile(outputFile, []byte(generatedCode), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if runtimeOut != "" {
		runtimeCode, err := backend.Runtime()
		if err != nil {
			return fmt.Errorf("runtime generation error: %w", err)
		}
		if err := os.WriteFile(runtimeOut, []byte(runtimeCode), 0644); err != nil {
			return fmt.Errorf("failed to write runtime file: %w", err)
		}
	}

	if debug {
		fmt.Printf("Successfully compiled to %s\n", outputFile)
	}
	return nil
}

func runCheck(luaFile string) error {
	src, err := os.ReadFile(luaFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", luaFile, err)
	}

	if !stubRuntime {
		if err := luacheck.Syntax(string(src)); err != nil {
			return err
		}
		fmt.Printf("%s: syntax ok\n", luaFile)
		return nil
	}

	if _, err := luacheck.Run(string(src), nil); err != nil {
		return err
	}
	fmt.Printf("%s: ran ok\n", luaFile)
	return nil
}
