package cli

import (
	"fmt"
	"maps"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vtdesigner/pkg/document"
	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/pool/transform"
)

// importCommand merges objects from another pool into the target.
func (c *CLI) importCommand() *cobra.Command {
	var (
		selectIDs   []string
		interactive bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "import <target> <source>",
		Short: "Import objects and everything they reference from another pool",
		Long: `Import copies the chosen objects from the source pool together with every
object they reference. Objects are given fresh IDs in the target, references
between them are rewritten, and working sets are never imported.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := openDocument(args[0])
			if err != nil {
				return err
			}
			source, err := openDocument(args[1])
			if err != nil {
				return err
			}

			var chosen []pool.ObjectID
			switch {
			case interactive:
				chosen, err = pickObjects(source)
				if err != nil {
					return err
				}
				if len(chosen) == 0 {
					printInfo("Import cancelled")
					return nil
				}
			case len(selectIDs) > 0:
				if chosen, err = parseIDs(selectIDs); err != nil {
					return err
				}
			default:
				return errors.New(errors.ErrCodeInvalidInput, "choose objects with --select or --interactive")
			}

			cfg, _, err := c.loadConfig()
			if err != nil {
				return err
			}
			var names map[pool.ObjectID]string
			if cfg.Naming.ApplyOnImport {
				names = source.AllNames()
			}

			prog := newProgress(c.Logger)
			res, err := target.Import(source.Pool(), chosen, names)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Imported %d objects", len(res.Added)))

			for _, src := range slices.Sorted(maps.Keys(res.Mapping)) {
				dst := res.Mapping[src]
				if src == dst {
					printDetail("%d %s", dst, target.Name(dst))
				} else {
					printDetail("%d %s %d %s", src, iconArrow, dst, target.Name(dst))
				}
			}
			printSuccess("Imported %d objects into %s", len(res.Added), args[0])

			if output == "" {
				output = args[0]
			}
			return saveDocument(target, output)
		},
	}

	cmd.Flags().StringSliceVarP(&selectIDs, "select", "s", nil, "IDs of the objects to import (comma-separated)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "choose objects in a picker")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result here instead of in place")
	return cmd
}

// pickItems lists every object of the source for the picker, roots first.
func pickItems(doc *document.Document) []PickerItem {
	p := doc.Pool()
	roots := make(map[pool.ObjectID]bool)
	for _, id := range transform.Roots(p) {
		roots[id] = true
	}

	items := make([]PickerItem, 0, p.Len())
	for _, o := range p.Objects() {
		items = append(items, PickerItem{
			ID:       o.ObjectID(),
			Name:     doc.Name(o.ObjectID()),
			Type:     o.Type(),
			Children: len(pool.Children(o)),
			Root:     roots[o.ObjectID()],
		})
	}
	slices.SortStableFunc(items, func(a, b PickerItem) int {
		if a.Root != b.Root {
			if a.Root {
				return -1
			}
			return 1
		}
		return int(a.ID) - int(b.ID)
	})
	return items
}

// pickObjects runs the picker and returns the chosen IDs, or nil when the
// user cancelled.
func pickObjects(doc *document.Document) ([]pool.ObjectID, error) {
	final, err := tea.NewProgram(NewPickerModel(pickItems(doc))).Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}
	m, ok := final.(PickerModel)
	if !ok || !m.Confirmed {
		return nil, nil
	}
	return m.Selection(), nil
}
