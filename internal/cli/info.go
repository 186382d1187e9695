package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/iop"
	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/pool/transform"
)

// infoCommand summarizes a pool: object counts per type, mask size and the
// current selection.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize an object pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}
			p := doc.Pool()

			fmt.Println(StyleTitle.Render(args[0]))
			printKeyValue("Format", formatName(args[0]))
			printKeyValue("Objects", strconv.Itoa(p.Len()))
			printKeyValue("Encoded size", fmt.Sprintf("%d bytes", iop.TotalSize(p)))
			printKeyValue("Mask size", fmt.Sprintf("%d px", doc.MaskSize()))
			if id, ok := doc.Selected().Get(); ok {
				printKeyValue("Selected", describe(doc, id))
			}

			var rows [][]string
			for _, t := range pool.Types() {
				objs := p.ByType(t)
				if len(objs) == 0 {
					continue
				}
				first, last := pool.Range(t)
				rows = append(rows, []string{
					t.String(),
					strconv.Itoa(len(objs)),
					fmt.Sprintf("%d-%d", first, last),
				})
			}
			if len(rows) > 0 {
				fmt.Println(renderTable([]string{"Type", "Count", "Range"}, rows, 1))
			}
			return nil
		},
	}
}

// checkCommand reports consistency problems and optionally repairs them.
func (c *CLI) checkCommand() *cobra.Command {
	var fix bool
	var output string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Find dangling references, cycles and out-of-range IDs",
		Long: `Check a pool for problems the VT would reject: references to objects that
do not exist, structural cycles, IDs outside their type's range and a missing
working set. With --fix, dangling references are removed and cycles broken.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}

			problems := transform.Check(doc.Pool())
			if len(problems) == 0 {
				printSuccess("No problems found in %d objects", doc.Pool().Len())
				return nil
			}
			for _, p := range problems {
				printError("%s %s", StyleError.Render(fmt.Sprintf("[%s]", p.Kind)), p)
			}
			if !fix {
				printNextStep("Repair with", "vtdesigner check --fix "+args[0])
				return errors.New(errors.ErrCodeInvalidInput, "%d problems found", len(problems))
			}

			var fixed int
			doc.Stage(func(p *pool.Pool) { fixed = transform.Repair(p) })
			doc.Commit()
			printSuccess("Repaired %d references", fixed)

			remaining := transform.Check(doc.Pool())
			for _, p := range remaining {
				printWarning("%s", p)
			}
			if output == "" {
				output = args[0]
			}
			return saveDocument(doc, output)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "remove dangling references and break cycles")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the repaired pool here instead of in place")
	return cmd
}

// statsCommand lists the largest objects by encoded size.
func (c *CLI) statsCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show the largest objects in a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}
			p := doc.Pool()
			total := iop.TotalSize(p)

			var rows [][]string
			for _, s := range iop.Largest(p, top) {
				share := 0.0
				if total > 0 {
					share = 100 * float64(s.Bytes) / float64(total)
				}
				rows = append(rows, []string{
					strconv.Itoa(int(s.ID)),
					doc.Name(s.ID),
					s.Type.String(),
					strconv.Itoa(s.Bytes),
					fmt.Sprintf("%.1f%%", share),
				})
			}
			fmt.Println(renderTable([]string{"ID", "Name", "Type", "Bytes", "Share"}, rows, 0, 3, 4))
			fmt.Println(joinDim(fmt.Sprintf("%d objects", p.Len()), fmt.Sprintf("%d bytes", total)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 10, "number of objects to list (0 for all)")
	return cmd
}
