package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"unikit/internal/ast"
	"unikit/internal/codegen"
	"unikit/internal/diag"
	"unikit/internal/printer"
	"unikit/internal/source"
	"unikit/internal/trace"
)

const cliFile = "<cli>"

var errCompile = errors.New("compilation failed")

var exprCmd = &cobra.Command{
	Use:   "expr <code>",
	Short: "Parse an expression, print it normalized and its static truthiness",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpr,
}

var vforCmd = &cobra.Command{
	Use:   "vfor <exp> [--prop key=expr]...",
	Short: "Lower a v-for expression and its body bindings",
	Args:  cobra.ExactArgs(1),
	RunE:  runVFor,
}

var vifCmd = &cobra.Command{
	Use:   "vif --branch cond [--branch cond]... [--else]",
	Short: "Lower a v-if / v-else-if / v-else chain",
	Args:  cobra.NoArgs,
	RunE:  runVIf,
}

func init() {
	vforCmd.Flags().StringArray("prop", nil, "body binding key=expr (repeatable)")
	vifCmd.Flags().StringArray("branch", nil, "condition of v-if, then v-else-if (repeatable)")
	vifCmd.Flags().Bool("else", false, "close the chain with v-else")
}

// unit is one codegen run: its builder, context and collected diagnostics.
type unit struct {
	b   *ast.Builder
	bag *diag.Bag
	ctx *codegen.Context
}

func newUnit(cmd *cobra.Command) *unit {
	bag := diag.NewBag(100)
	return &unit{
		b:   ast.NewBuilder(ast.Hints{}),
		bag: bag,
		ctx: codegen.NewContext(codegen.Options{
			Reporter:     diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
			HelperPrefix: app.cfg.Codegen.HelperPrefix,
			Tracer:       trace.FromContext(cmd.Context()),
		}),
	}
}

// node places code on line 1 of the virtual <cli> file.
func (u *unit) node(code string) *ast.SimpleExpression {
	start := source.Position{Line: 1, Column: 1}
	return ast.NewSimpleExpression(code, false, source.Location{
		File:   cliFile,
		Start:  start,
		End:    start.Advance(code),
		Source: code,
	})
}

// finish prints diagnostics to errOut and fails when there are errors.
func (u *unit) finish(errOut io.Writer) error {
	if u.bag.Len() == 0 {
		return nil
	}
	u.bag.Sort()
	fmt.Fprint(errOut, diag.FormatBag(u.bag))
	if u.bag.HasErrors() {
		return errCompile
	}
	return nil
}

func runExpr(cmd *cobra.Command, args []string) error {
	u := newUnit(cmd)
	id, ok := codegen.ParseExpr(u.ctx, u.b, args[0], u.node(args[0]))
	if !ok {
		return u.finish(cmd.ErrOrStderr())
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, printer.Expr(u.b, id))

	_, literal := u.b.Exprs.Literal(u.b.Exprs.Unparen(id))
	switch {
	case codegen.IsUndefined(u.b, id):
		fmt.Fprintln(out, "truthiness: false (undefined)")
	case literal:
		fmt.Fprintf(out, "truthiness: %t (static)\n", codegen.IsTrueExpr(u.b, id))
	default:
		fmt.Fprintln(out, "truthiness: dynamic")
	}
	return u.finish(cmd.ErrOrStderr())
}

func runVFor(cmd *cobra.Command, args []string) error {
	props, err := cmd.Flags().GetStringArray("prop")
	if err != nil {
		return fmt.Errorf("failed to get prop flag: %w", err)
	}
	u := newUnit(cmd)
	root := codegen.NewRootScope()
	vfor, ok := codegen.NewVForScope(u.ctx, u.b, root, u.node(args[0]))
	if !ok {
		return u.finish(cmd.ErrOrStderr())
	}
	for _, p := range props {
		key, code, found := strings.Cut(p, "=")
		if !found || strings.TrimSpace(key) == "" {
			return fmt.Errorf("invalid --prop %q (expected key=expr)", p)
		}
		if id, ok := codegen.ParseExpr(u.ctx, u.b, code, u.node(code)); ok {
			vfor.AddProperty(codegen.CreateObjectProperty(u.b, strings.TrimSpace(key), id))
		}
	}
	vfor.Close(u.ctx, u.b)
	printScope(cmd.OutOrStdout(), u, root)
	return u.finish(cmd.ErrOrStderr())
}

func runVIf(cmd *cobra.Command, _ []string) error {
	branches, err := cmd.Flags().GetStringArray("branch")
	if err != nil {
		return fmt.Errorf("failed to get branch flag: %w", err)
	}
	withElse, err := cmd.Flags().GetBool("else")
	if err != nil {
		return fmt.Errorf("failed to get else flag: %w", err)
	}
	if len(branches) == 0 && !withElse {
		return fmt.Errorf("vif: at least one --branch is required")
	}

	u := newUnit(cmd)
	root := codegen.NewRootScope()
	chain := codegen.NewVIfChain(u.ctx, u.b, root)
	for i, cond := range branches {
		if i == 0 {
			chain.If(u.node(cond))
		} else {
			chain.ElseIf(u.node(cond))
		}
	}
	if withElse {
		chain.Else(u.node("").Loc)
	}
	chain.Close()
	printScope(cmd.OutOrStdout(), u, root)
	return u.finish(cmd.ErrOrStderr())
}

func printScope(w io.Writer, u *unit, root *codegen.CodegenScope) {
	fmt.Fprintln(w, printer.Expr(u.b, root.Object(u.b)))
	if helpers := u.ctx.Helpers(); len(helpers) > 0 {
		names := make([]string, len(helpers))
		for i, h := range helpers {
			names[i] = u.ctx.HelperString(h)
		}
		fmt.Fprintf(w, "helpers: %s\n", strings.Join(names, ", "))
	}
}
