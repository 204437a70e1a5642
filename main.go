/*
File    : return-to-monk/main.go

Package main is the entry point for the Monkey interpreter.
It provides several modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute Monkey source files from the command line
3. Debug Modes: Dump the token stream or the parsed AST of a program
4. Server Mode: Serve a REPL session per TCP connection

The interpreter uses a lexer-parser-evaluator pipeline to process Monkey code.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stijnVanHorenbeek/return-to-monk/eval"
	"github.com/stijnVanHorenbeek/return-to-monk/lexer"
	"github.com/stijnVanHorenbeek/return-to-monk/objects"
	"github.com/stijnVanHorenbeek/return-to-monk/parser"
	"github.com/stijnVanHorenbeek/return-to-monk/repl"
)

// VERSION represents the current version of the Monkey interpreter
var VERSION = "v1.0.0"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "monk >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
// It shows "MONK" in stylized ASCII characters
var BANNER = `
 ███    ███  ██████  ███    ██ ██   ██
 ████  ████ ██    ██ ████   ██ ██  ██
 ██ ████ ██ ██    ██ ██ ██  ██ █████
 ██  ██  ██ ██    ██ ██  ██ ██ ██  ██
 ██      ██  ██████  ██   ████ ██   ██
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output
// These colors are used to provide visual feedback during file execution:
// - redColor: Error messages and critical failures
// - yellowColor: Normal output and results
// - cyanColor: Informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// exprSource holds the value of the --eval flag shared by the tokens and ast
// commands; when set, the inline source is used instead of a file argument.
var exprSource string

// rootCmd is the base command of the interpreter.
// With no arguments it starts the interactive REPL; with a file argument it
// executes that file, mirroring `run`.
var rootCmd = &cobra.Command{
	Use:     "return-to-monk [file]",
	Short:   "An interpreter for the Monkey programming language",
	Long:    "return-to-monk is a tree-walking interpreter for the Monkey language:\na small C-family expression language with first-class functions and closures.",
	Version: VERSION,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			runFile(args[0])
			return
		}
		// REPL mode: Start interactive interpreter
		repler := repl.NewRepl(BANNER, VERSION, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	},
}

// runCmd executes a Monkey source file.
var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a Monkey source file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runFile(args[0])
	},
}

// tokensCmd dumps the token stream of a program, one token per line in
// "literal:type" form. Useful for debugging the lexer and for teaching.
var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a program",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := sourceFromArgs(args)
		lex := lexer.NewLexer(source)
		for _, token := range lex.ConsumeTokens() {
			token.Print()
		}
	},
}

// astCmd parses a program and pretty-prints the resulting tree using the
// printing visitor. Parse errors are reported but the partial tree is still
// printed.
var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the parsed AST of a program",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := sourceFromArgs(args)
		par := parser.NewParser(source)
		rootNode := par.Parse()
		for _, err := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", err)
		}
		visitor := &PrintingVisitor{}
		rootNode.Accept(visitor)
		fmt.Println(visitor)
	},
}

// serverCmd starts the REPL server on a TCP port.
var serverCmd = &cobra.Command{
	Use:   "server <port>",
	Short: "Serve a REPL session per TCP connection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startServer(args[0])
	},
}

// init wires the subcommands and flags into the root command.
func init() {
	tokensCmd.Flags().StringVarP(&exprSource, "eval", "e", "", "inline source instead of a file")
	astCmd.Flags().StringVarP(&exprSource, "eval", "e", "", "inline source instead of a file")
	rootCmd.AddCommand(runCmd, tokensCmd, astCmd, serverCmd)
}

// main is the entry point of the Monkey interpreter.
//
// Usage:
//
//	return-to-monk                 - Start in REPL (interactive) mode
//	return-to-monk <file>          - Execute the specified Monkey source file
//	return-to-monk run <file>      - Same, explicit form
//	return-to-monk tokens -e <src> - Dump the token stream
//	return-to-monk ast <file>      - Dump the parsed AST
//	return-to-monk server <port>   - Start the REPL server
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// sourceFromArgs resolves the program text for the tokens and ast commands:
// the --eval flag wins, otherwise the file argument is read.
func sourceFromArgs(args []string) string {
	if exprSource != "" {
		return exprSource
	}
	if len(args) == 0 {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] provide a file or -e <source>\n")
		os.Exit(1)
	}
	fileContent, err := os.ReadFile(args[0])
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", args[0], err)
		os.Exit(1)
	}
	return string(fileContent)
}

// runFile reads and executes a Monkey source file.
// It handles the complete file execution pipeline:
// 1. Read the file from disk
// 2. Convert contents to string
// 3. Execute the code with error recovery
//
// Parameters:
//
//	fileName - Path to the Monkey source file to execute
//
// Error Handling:
//   - File read errors: Displays error message and exits with code 1
//   - Parse/runtime errors: Handled by executeFileWithRecovery()
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		// Display file read error in red and exit
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	// Convert file contents from []byte to string for parsing
	source := string(fileContent)

	// Execute the source code with panic recovery to handle runtime errors gracefully
	executeFileWithRecovery(source)
}

// startServer initializes and runs the Monkey REPL server.
// It listens on the specified port for incoming TCP connections.
// Each connection is handled in a separate goroutine, providing a dedicated
// REPL session with its own global scope.
//
// Parameters:
//
//	port - The network port to listen on (e.g., "8080")
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Monkey REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

// handleClient manages a single client connection for the REPL server.
// It creates a new REPL instance and starts it, using the network connection
// as both the input reader and output writer.
func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn) // Use the network connection as stdin/stdout
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery handles parsing and evaluation with panic recovery.
// This function implements the file-mode error handling strategy:
// 1. Sets up panic recovery to catch runtime errors
// 2. Parses the source code into an AST
// 3. Checks for parsing errors
// 4. Evaluates the AST
// 5. Displays results or errors
//
// Parameters:
//
//	source - The Monkey source code as a string
//
// Error Handling:
//   - Panics: Caught by defer/recover, displayed as runtime errors
//   - Parse errors: Collected and displayed, then exit
//   - Evaluation errors: Displayed in red, then exit
//   - Success: Result displayed in yellow (null results are skipped)
func executeFileWithRecovery(source string) {
	// Recover from any panics that might occur during parsing or evaluation
	// This prevents the interpreter from crashing and provides user-friendly
	// error messages
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	// Parse the source code into an Abstract Syntax Tree (AST)
	par := parser.NewParser(source)
	rootNode := par.Parse()

	// Check for parser errors
	// The parser collects errors instead of panicking, allowing multiple
	// errors to be reported
	if par.HasErrors() {
		for _, err := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		}
		os.Exit(1)
	}

	// Create evaluator and execute the AST
	evaluator := eval.NewEvaluator()
	result := evaluator.Eval(rootNode)

	// Display result if any (and not null)
	if result != nil {
		if result.GetType() == objects.ErrorType {
			// Evaluation produced an error value - display and exit
			redColor.Fprintf(os.Stderr, "error: %s\n", result.ToString())
			os.Exit(1)
		} else if result.GetType() != objects.NullType {
			// Successful evaluation - display result in yellow
			yellowColor.Fprintf(os.Stdout, "%s\n", result.ToString())
		}
	}
}
