package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// copyCommand puts an object on the clipboard.
func (c *CLI) copyCommand() *cobra.Command {
	var asNew bool

	cmd := &cobra.Command{
		Use:   "copy <file> <id>",
		Short: "Copy an object to the clipboard",
		Long: `Copy an object to the clipboard. By default the copy keeps its ID, so
pasting it replaces the original. With --as-new the copy gets a free ID of
the same type; references it holds are kept as they are.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}
			doc.Select(pool.Some(id))
			doc.CommitSelection()

			var objs []pool.Object
			if asNew {
				if objs, err = doc.CopyAsNew(); err != nil {
					return err
				}
			} else if objs = doc.CopyExact(); objs == nil {
				return errors.New(errors.ErrCodeNotFound, "object %d not found", id)
			}

			cb, err := c.newClipboard(cmd.Context())
			if err != nil {
				return err
			}
			entry, err := cb.Put(cmd.Context(), objs)
			if err != nil {
				return err
			}
			printSuccess("Copied %s as %d", describe(doc, id), objs[0].ObjectID())
			printDetail("Entry: %s", entry)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asNew, "as-new", false, "give the copy a new ID")
	return cmd
}

// pasteCommand adds the clipboard contents to a pool.
func (c *CLI) pasteCommand() *cobra.Command {
	var entry string

	cmd := &cobra.Command{
		Use:   "paste <file>",
		Short: "Paste the clipboard into a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}
			cb, err := c.newClipboard(cmd.Context())
			if err != nil {
				return err
			}

			var objs []pool.Object
			if entry != "" {
				objs, err = cb.Get(cmd.Context(), entry)
			} else {
				objs, entry, err = cb.Latest(cmd.Context())
			}
			if err != nil {
				return err
			}

			if !doc.Paste(objs) {
				printInfo("Nothing changed")
				return nil
			}
			for _, o := range objs {
				printSuccess("Pasted %s", describe(doc, o.ObjectID()))
			}
			c.Logger.Debug("pasted clipboard entry", "entry", entry)
			return saveDocument(doc, args[0])
		},
	}

	cmd.Flags().StringVar(&entry, "entry", "", "paste this clipboard entry instead of the latest")
	return cmd
}
