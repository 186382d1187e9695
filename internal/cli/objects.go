package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vtdesigner/pkg/config"
	"github.com/matzehuels/vtdesigner/pkg/document"
	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// newCommand creates an empty project with a working set and one data mask.
func (c *CLI) newCommand() *cobra.Command {
	var maskSize uint16
	var force bool

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create a project with a working set and a data mask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
			}

			doc, err := newProject(maskSize)
			if err != nil {
				return err
			}
			printSuccess("Created %d objects", doc.Pool().Len())
			if err := saveDocument(doc, path); err != nil {
				return err
			}
			printNextStep("Add objects with", "vtdesigner add "+path+" Button --parent 1000")
			return nil
		},
	}

	cmd.Flags().Uint16Var(&maskSize, "mask-size", document.DefaultMaskSize, "data mask size in pixels")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func newProject(maskSize uint16) (*document.Document, error) {
	doc := document.New(nil)
	ws, err := doc.NewObject(pool.TypeWorkingSet, "")
	if err != nil {
		return nil, err
	}
	dm, err := doc.NewObject(pool.TypeDataMask, "")
	if err != nil {
		return nil, err
	}
	ws.(*pool.WorkingSet).ActiveMask = pool.Some(dm.ObjectID())
	doc.SetMaskSize(maskSize)
	doc.Commit()
	doc.Select(pool.Some(dm.ObjectID()))
	doc.CommitSelection()
	return doc, nil
}

// addCommand stages one default object, optionally under a parent.
func (c *CLI) addCommand() *cobra.Command {
	var (
		name   string
		parent string
		x, y   int16
	)

	cmd := &cobra.Command{
		Use:               "add <file> <type>",
		Short:             "Add a default object of the given type",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeObjectTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(args[1])
			if err != nil {
				return err
			}
			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}
			cfg, _, err := c.loadConfig()
			if err != nil {
				return err
			}

			o, err := doc.NewObject(t, name)
			if err != nil {
				return err
			}
			applyDesignerDefaults(o, cfg.Designer)
			if parent != "" {
				pid, err := parseID(parent)
				if err != nil {
					return err
				}
				if err := doc.AddChild(pid, o.ObjectID(), x, y); err != nil {
					return err
				}
			}
			doc.Commit()
			doc.Select(pool.Some(o.ObjectID()))
			doc.CommitSelection()

			printSuccess("Added %s", describe(doc, o.ObjectID()))
			return saveDocument(doc, args[0])
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "object name (generated when empty)")
	cmd.Flags().StringVar(&parent, "parent", "", "ID of the object to place it in")
	cmd.Flags().Int16Var(&x, "x", 0, "x position inside the parent")
	cmd.Flags().Int16Var(&y, "y", 0, "y position inside the parent")
	return cmd
}

// applyDesignerDefaults sizes new buttons like soft keys.
func applyDesignerDefaults(o pool.Object, d config.Designer) {
	if b, ok := o.(*pool.Button); ok {
		b.Width, b.Height = d.KeyWidth, d.KeyHeight
	}
}

// rmCommand removes objects and detaches every reference to them.
func (c *CLI) rmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file> <id>...",
		Short: "Remove objects and references to them",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args[1:])
			if err != nil {
				return err
			}
			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}
			for _, id := range ids {
				label := describe(doc, id)
				if !doc.Remove(id) {
					return errors.New(errors.ErrCodeNotFound, "object %d not found", id)
				}
				printSuccess("Removed %s", label)
			}
			doc.Commit()
			return saveDocument(doc, args[0])
		},
	}
}

// renameCommand sets an object's name. Names are only stored in projects.
func (c *CLI) renameCommand() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "rename <file> <id> <name>",
		Short: "Rename an object",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}
			if err := doc.SetName(id, args[2]); err != nil {
				return err
			}
			if cmd.Flags().Changed("notes") {
				if err := doc.SetNotes(id, notes); err != nil {
					return err
				}
			}
			printSuccess("Renamed %d to %s", id, StyleHighlight.Render(args[2]))
			if formatName(args[0]) != "project" {
				printWarning("raw pools do not store names; save as a project to keep them")
				return nil
			}
			return saveDocument(doc, args[0])
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "set the object's notes as well")
	return cmd
}

// linkCommand places an existing object inside a parent.
func (c *CLI) linkCommand() *cobra.Command {
	var x, y int16

	cmd := &cobra.Command{
		Use:   "link <file> <parent> <child>",
		Short: "Place an object inside a mask, container, key or button",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args[1:])
			if err != nil {
				return err
			}
			if len(ids) != 2 {
				return errors.New(errors.ErrCodeInvalidInput, "expected one parent and one child ID")
			}
			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}
			if !doc.Pool().Has(ids[1]) {
				printWarning("object %d does not exist yet", ids[1])
			}
			if err := doc.AddChild(ids[0], ids[1], x, y); err != nil {
				return err
			}
			doc.Commit()
			printSuccess("Linked %s into %s", describe(doc, ids[1]), describe(doc, ids[0]))
			return saveDocument(doc, args[0])
		},
	}

	cmd.Flags().Int16Var(&x, "x", 0, "x position inside the parent")
	cmd.Flags().Int16Var(&y, "y", 0, "y position inside the parent")
	return cmd
}
