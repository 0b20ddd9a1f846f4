package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	log "github.com/schollz/logger"
	"github.com/spf13/cobra"

	"go.codycody31.dev/hexlit/gen"
)

// generatedMarker is the first line of every file hexgen writes; existing
// files without it are never overwritten unless --force is given.
var generatedMarker = []byte("// Code generated by hexgen. DO NOT EDIT.")

var (
	debugFlag    bool
	manifestPath string
	toStdout     bool
	force        bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "hexgen",
	Short:         "Generate Go byte-array constants from hex literals",
	SilenceErrors: true,
	SilenceUsage:  true,
	Long: `Expand hex literals into fixed-size Go byte arrays at build time.

Malformed hex fails the expansion, so a bad literal becomes a failed
"go generate" run instead of a runtime surprise.

Example usage:
  hexgen expr 010aff
  hexgen const AESKey 000102030405060708090a0b0c0d0e0f
  hexgen generate --manifest hexgen.toml

Put "//go:generate hexgen generate" in the consuming package to regenerate
its constants file from hexgen.toml.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			log.SetLevel("debug")
		} else {
			log.SetLevel("info")
		}
	},
}

var exprCmd = &cobra.Command{
	Use:   "expr <hex>",
	Short: "Print the array expression for a hex literal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := gen.Expr(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), expr)
		return nil
	},
}

var constCmd = &cobra.Command{
	Use:   "const <name> <hex>",
	Short: "Print a var declaration for a hex literal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		decl, err := gen.ConstDecl(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), decl)
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a hexgen.toml manifest to its output file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(manifestPath, toStdout, force, cmd.OutOrStdout())
	},
}

func runGenerate(path string, toStdout, force bool, stdout io.Writer) error {
	m, err := gen.LoadManifest(path)
	if err != nil {
		return err
	}
	log.Debugf("loaded manifest %s: package %s, %d constants", path, m.Package, len(m.Constants))

	src, err := m.Render()
	if err != nil {
		return err
	}

	if toStdout {
		_, err := stdout.Write(src)
		return err
	}

	if existing, err := os.ReadFile(m.Output); err == nil && !force {
		if !bytes.HasPrefix(existing, generatedMarker) {
			return fmt.Errorf("%s exists and was not written by hexgen, use --force to overwrite", m.Output)
		}
	}

	if err := os.WriteFile(m.Output, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.Output, err)
	}
	log.Infof("wrote %d constants to %s", len(m.Constants), m.Output)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	generateCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "hexgen.toml", "Path to the manifest file")
	generateCmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the generated source instead of writing the output file")
	generateCmd.Flags().BoolVar(&force, "force", false, "Overwrite the output file even if it was not written by hexgen")

	rootCmd.AddCommand(exprCmd)
	rootCmd.AddCommand(constCmd)
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
