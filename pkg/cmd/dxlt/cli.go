// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/config"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/gpdb/gpopt/pkg/md/mdcatalog"
	"github.com/gpdb/gpopt/pkg/operators"
	"github.com/gpdb/gpopt/pkg/pgquery"
	"github.com/gpdb/gpopt/pkg/translate"
	"github.com/gpdb/gpopt/pkg/util/log"
	"github.com/lib/pq/oid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	exitError       = 1
	exitUnsupported = 3
)

// env is the state shared by the subcommands of one invocation.
type env struct {
	out         io.Writer
	catalogPath string
	configPath  string
	cfg         config.Translator

	acc md.Accessor
	tr  *translate.Translator
}

// run executes the command line args and returns the exit status.
func run(args []string, out, errOut io.Writer) int {
	e := &env{out: out, cfg: config.Default()}
	root := e.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	err := root.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}
	if feature := gperr.UnsupportedFeatureName(err); feature != "" {
		fmt.Fprintf(errOut, "unsupported feature: %s\n", feature)
		return exitUnsupported
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitError
}

func (e *env) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dxlt",
		Short:         "Translate catalog objects and query fragments to DXL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd.Flags())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&e.catalogPath, "catalog", "", "YAML catalog file; builtin objects only if empty")
	pf.StringVar(&e.configPath, "config", "", "YAML translator configuration file")
	e.cfg.AddFlags(pf)

	root.AddCommand(
		e.describeTableCmd(),
		e.describeIndexCmd(),
		e.tvfCmd(),
		e.groupingSetsCmd(),
		e.funcCmd(),
	)
	return root
}

// init loads the configuration and the catalog. Flags given on the
// command line take precedence over the configuration file.
func (e *env) init(fs *pflag.FlagSet) error {
	if e.configPath != "" {
		changed := make(map[string]string)
		fs.Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })
		cfg, err := config.Load(e.configPath)
		if err != nil {
			return err
		}
		e.cfg = cfg
		for name, val := range changed {
			if err := fs.Set(name, val); err != nil {
				return err
			}
		}
	}
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	log.SetVerbosity(log.Level(e.cfg.Verbosity))

	if e.catalogPath == "" {
		e.acc = mdcatalog.New()
	} else {
		c, err := mdcatalog.LoadYAML(e.catalogPath)
		if err != nil {
			return err
		}
		e.acc = c
	}
	e.tr = translate.NewTranslator(e.acc, e.cfg)
	return nil
}

func parseOid(s string) (oid.Oid, error) {
	v, err := translate.ParseInt64(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 || v > int64(^uint32(0)) {
		return 0, errors.Newf("object id %d out of range", v)
	}
	return oid.Oid(v), nil
}

func (e *env) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(e.out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)
	return table
}

func (e *env) describeTableCmd() *cobra.Command {
	var alias string
	cmd := &cobra.Command{
		Use:   "describe-table <relid>",
		Short: "Print the table descriptor of a relation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			relID, err := parseOid(args[0])
			if err != nil {
				return err
			}
			rte := &pgquery.RangeTblEntry{Kind: pgquery.RTERelation, RelID: relID, RequiredPerms: pgquery.ACLSelect}
			if alias != "" {
				rte.Alias = &pgquery.Alias{AliasName: alias}
			}
			td, isDistributed, err := e.tr.TableDescr(cmd.Context(), rte, 0)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "table %s distributed=%t\n", td, isDistributed)
			table := e.newTable("column", "id", "attno", "type", "typmod", "width")
			for _, c := range td.Columns() {
				table.Append([]string{
					c.Name,
					strconv.FormatUint(uint64(c.ID), 10),
					strconv.Itoa(int(c.AttrNum)),
					c.TypeID.String(),
					strconv.Itoa(int(c.TypeModifier)),
					strconv.FormatUint(uint64(c.Width), 10),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&alias, "alias", "", "alias given to the relation")
	return cmd
}

func (e *env) describeIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe-index <indexid>",
		Short: "Print the descriptor of an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOid(args[0])
			if err != nil {
				return err
			}
			idx, err := e.tr.IndexDescr(cmd.Context(), md.GeneralID(id))
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "index %s [%s]\n", idx.Name, idx.ID)
			return nil
		},
	}
}

func (e *env) tvfCmd() *cobra.Command {
	var argTypes, names []string
	var alias string
	cmd := &cobra.Command{
		Use:   "tvf <funcid>",
		Short: "Translate a call to a table function in the FROM clause",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			funcID, err := parseOid(args[0])
			if err != nil {
				return err
			}
			fn, err := e.acc.RetrieveFunc(md.GeneralID(funcID))
			if err != nil {
				return err
			}
			call := &pgquery.FuncExpr{FuncID: funcID, FuncResultType: fn.ReturnTypeID.OID, FuncRetSet: fn.ReturnsSet}
			for i, s := range argTypes {
				t, err := parseOid(s)
				if err != nil {
					return err
				}
				call.Args = append(call.Args, &pgquery.Var{VarNo: 1, VarAttNo: int32(i + 1), VarType: t, VarTypMod: -1})
			}
			if alias == "" {
				alias = fn.Name
			}
			if names == nil {
				names = []string{alias}
			}
			rte := &pgquery.RangeTblEntry{
				Kind:      pgquery.RTEFunction,
				ERef:      &pgquery.Alias{AliasName: alias, ColNames: names},
				Functions: []*pgquery.RangeTblFunction{{FuncExpr: call}},
			}
			tvf, err := e.tr.LogicalTVF(cmd.Context(), rte)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "function %s [%s] returns %s\n", tvf.Name, tvf.FuncID, tvf.ReturnTypeID)
			table := e.newTable("column", "id", "attno", "type", "typmod")
			for _, c := range tvf.Columns {
				table.Append([]string{
					c.Name,
					strconv.FormatUint(uint64(c.ID), 10),
					strconv.Itoa(int(c.AttrNum)),
					c.TypeID.String(),
					strconv.Itoa(int(c.TypeModifier)),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&argTypes, "arg-types", nil, "type ids of the call arguments")
	cmd.Flags().StringSliceVar(&names, "names", nil, "output column names")
	cmd.Flags().StringVar(&alias, "alias", "", "alias of the range table entry; defaults to the function name")
	return cmd
}

func (e *env) groupingSetsCmd() *cobra.Command {
	var distinct bool
	cmd := &cobra.Command{
		Use:   "grouping-sets <spec>",
		Short: `Expand grouping sets such as "rollup(1,2), cube(3)"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := pgquery.ParseGroupingSets(strings.Join(args, " "))
			if err != nil {
				return err
			}
			q := &pgquery.Query{GroupingSets: sets, GroupDistinct: distinct}
			groupCols := translate.NewGroupColumns()
			res, err := e.tr.GroupingSets(cmd.Context(), q, 64, groupCols)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "%s\n", pgquery.FormatGroupingSets(sets))
			table := e.newTable("set", "refs")
			for i, s := range res {
				table.Append([]string{strconv.Itoa(i), translate.FormatGroupingSet(s)})
			}
			table.Render()
			table = e.newTable("position", "ref")
			for pos, ref := range groupCols.OrderedRefs() {
				table.Append([]string{strconv.Itoa(pos), strconv.FormatUint(uint64(ref), 10)})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&distinct, "distinct", false, "remove duplicate grouping sets")
	return cmd
}

func (e *env) funcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "func <funcid>",
		Short: "Print the properties the optimizer caches for a scalar function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			funcID, err := parseOid(args[0])
			if err != nil {
				return err
			}
			fn, err := e.acc.RetrieveFunc(md.GeneralID(funcID))
			if err != nil {
				return err
			}
			op, err := operators.NewScalarFunc(e.acc, fn.ID, fn.ReturnTypeID, md.DefaultTypeModifier,
				fn.Name, pgquery.CoerceExplicitCall, false)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "%s\n", op)
			table := e.newTable("property", "value")
			table.AppendBulk([][]string{
				{"stability", op.Stability().String()},
				{"strict", strconv.FormatBool(op.IsStrict())},
				{"returns set", strconv.FormatBool(op.ReturnsSet())},
				{"returns bool", strconv.FormatBool(op.ReturnsBool())},
				{"hash", strconv.FormatUint(op.HashValue(), 16)},
			})
			table.Render()
			return nil
		},
	}
}
