package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/vtdesigner/pkg/document"
	"github.com/matzehuels/vtdesigner/pkg/editor"
	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/export"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// editCommand starts an interactive editing session on stdin.
func (c *CLI) editCommand() *cobra.Command {
	var noAutosave bool

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a pool interactively with undo, redo and autosave",
		Long: `Edit reads commands from stdin, one per line. Type "help" for the list.
The committed pool is autosaved to the configured path while the session
runs; "save" writes it back to the opened file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := c.loadConfig()
			if err != nil {
				return err
			}
			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}

			opts := editor.Options{
				Path:             args[0],
				AutosavePath:     cfg.Autosave.Path,
				AutosaveInterval: cfg.Autosave.Interval.Duration,
				Logger:           loggerFromContext(cmd.Context()),
			}
			if noAutosave {
				opts.AutosavePath = ""
			}
			printInfo("Editing %s (%d objects)", args[0], doc.Pool().Len())
			return runSession(cmd.Context(), editor.NewSession(doc, opts), cmd.InOrStdin(), cmd.OutOrStdout(), isTerminal(os.Stdin))
		},
	}

	cmd.Flags().BoolVar(&noAutosave, "no-autosave", false, "disable autosave for this session")
	return cmd
}

// runSession runs the session loop and the command reader until the input
// ends, the user quits or ctx is cancelled. Cancelling ctx returns ctx's
// error even while the reader is waiting for a line.
func runSession(ctx context.Context, s *editor.Session, in io.Reader, out io.Writer, prompt bool) error {
	sessCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(sessCtx)
	g.Go(func() error {
		if err := s.Run(gctx); !stderrors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	// The scanner blocks in Read and cannot be interrupted, so it runs
	// outside the group. It exits at the next line or EOF.
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-gctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	g.Go(func() error {
		defer cancel()
		r := &repl{session: s, out: out}
		for {
			if prompt {
				fmt.Fprint(out, StyleHighlight.Render("vt> "))
			}
			var line string
			select {
			case <-gctx.Done():
				return nil
			case l, ok := <-lines:
				if !ok {
					select {
					case err := <-readErr:
						return err
					default:
						return nil
					}
				}
				line = l
			}
			quit, err := r.exec(gctx, line)
			if err != nil {
				fmt.Fprintln(out, StyleError.Render(errors.UserMessage(err)))
			}
			if quit {
				return nil
			}
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// repl executes edit session command lines.
type repl struct {
	session *editor.Session
	out     io.Writer
	copied  []pool.Object
}

const replHelp = `Commands:
  ls [type]                 list objects
  show <id>                 print an object
  add <type> [name]         add a default object
  rm <id>                   remove an object and references to it
  rename <id> <name>        rename an object
  notes <id> <text>         set an object's notes
  link <parent> <child> [x y]
                            place an object inside another
  select <id> | back | fwd  change or walk the selection
  copy [new] | paste        copy the selection, paste it back
  import <file> <id>...     import objects from another pool
  undo | redo | revert      history
  open <file> | save [file] files
  quit`

func (r *repl) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// exec runs one command line and reports whether the session should end.
func (r *repl) exec(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		r.printf("%s", replHelp)
		return false, nil
	case "open":
		if len(args) != 1 {
			return false, usage("open <file>")
		}
		if err := <-r.session.Open(ctx, args[0]); err != nil {
			return false, err
		}
		r.printf("opened %s", args[0])
		return false, nil
	}

	return false, r.session.Do(ctx, func(d *document.Document) error {
		return r.apply(d, name, args)
	})
}

func (r *repl) apply(d *document.Document, name string, args []string) error {
	switch name {
	case "ls":
		return r.list(d, args)
	case "show":
		return r.show(d, args)
	case "add":
		if len(args) < 1 {
			return usage("add <type> [name]")
		}
		t, err := parseType(args[0])
		if err != nil {
			return err
		}
		o, err := d.NewObject(t, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		d.Commit()
		d.Select(pool.Some(o.ObjectID()))
		d.CommitSelection()
		r.printf("added %s", describe(d, o.ObjectID()))
	case "rm":
		id, err := oneID(args, "rm <id>")
		if err != nil {
			return err
		}
		if !d.Remove(id) {
			return errors.New(errors.ErrCodeNotFound, "object %d not found", id)
		}
		d.Commit()
		r.printf("removed %d", id)
	case "rename", "notes":
		if len(args) < 2 {
			return usage(name + " <id> <text>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		text := strings.Join(args[1:], " ")
		if name == "rename" {
			return d.SetName(id, text)
		}
		return d.SetNotes(id, text)
	case "link":
		return r.link(d, args)
	case "select":
		id, err := oneID(args, "select <id>")
		if err != nil {
			return err
		}
		if !d.Pool().Has(id) {
			return errors.New(errors.ErrCodeNotFound, "object %d not found", id)
		}
		d.Select(pool.Some(id))
		d.CommitSelection()
		r.printf("selected %s", describe(d, id))
	case "back", "fwd":
		moved := d.SelectPrevious()
		if name == "fwd" {
			moved = d.SelectNext()
		}
		if !moved {
			return errors.New(errors.ErrCodeNotFound, "no selection to go to")
		}
		if id, ok := d.Selected().Get(); ok {
			r.printf("selected %s", describe(d, id))
		}
	case "copy":
		return r.copy(d, args)
	case "paste":
		if len(r.copied) == 0 {
			return errors.New(errors.ErrCodeNotFound, "nothing copied")
		}
		if d.Paste(r.copied) {
			r.printf("pasted %s", describe(d, r.copied[0].ObjectID()))
		}
	case "import":
		if len(args) < 2 {
			return usage("import <file> <id>...")
		}
		src, err := editor.ReadFile(args[0])
		if err != nil {
			return err
		}
		ids, err := parseIDs(args[1:])
		if err != nil {
			return err
		}
		res, err := d.Import(src.Pool(), ids, src.AllNames())
		if err != nil {
			return err
		}
		r.printf("imported %d objects", len(res.Added))
	case "undo":
		if !d.Undo() {
			return errors.New(errors.ErrCodeNotFound, "nothing to undo")
		}
		r.printf("undone (%d left)", d.UndoDepth())
	case "redo":
		if !d.Redo() {
			return errors.New(errors.ErrCodeNotFound, "nothing to redo")
		}
		r.printf("redone")
	case "revert":
		d.Revert()
	case "save":
		path := r.session.Path()
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return usage("save <file>")
		}
		if err := editor.WriteFile(d, path); err != nil {
			return err
		}
		r.printf("saved %s", path)
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown command %q (try help)", name)
	}
	return nil
}

func (r *repl) list(d *document.Document, args []string) error {
	objs := d.Pool().Objects()
	if len(args) == 1 {
		t, err := parseType(args[0])
		if err != nil {
			return err
		}
		objs = d.Pool().ByType(t)
	}
	for _, o := range objs {
		mark := " "
		if id, ok := d.Selected().Get(); ok && id == o.ObjectID() {
			mark = "*"
		}
		r.printf("%s %5d  %-24s %s", mark, o.ObjectID(), d.Name(o.ObjectID()), StyleDim.Render(o.Type().String()))
	}
	return nil
}

func (r *repl) show(d *document.Document, args []string) error {
	id, err := oneID(args, "show <id>")
	if err != nil {
		return err
	}
	if !d.Pool().Has(id) {
		return errors.New(errors.ErrCodeNotFound, "object %d not found", id)
	}
	for _, e := range export.Dump(d.Pool(), d.Name, nil) {
		if e.ID == id {
			return export.YAML(r.out, []export.Entry{e})
		}
	}
	return nil
}

func (r *repl) link(d *document.Document, args []string) error {
	if len(args) != 2 && len(args) != 4 {
		return usage("link <parent> <child> [x y]")
	}
	ids, err := parseIDs(args[:2])
	if err != nil {
		return err
	}
	var x, y int64
	if len(args) == 4 {
		if x, err = strconv.ParseInt(args[2], 10, 16); err != nil {
			return usage("link <parent> <child> [x y]")
		}
		if y, err = strconv.ParseInt(args[3], 10, 16); err != nil {
			return usage("link <parent> <child> [x y]")
		}
	}
	if err := d.AddChild(ids[0], ids[1], int16(x), int16(y)); err != nil {
		return err
	}
	d.Commit()
	r.printf("linked %d into %d", ids[1], ids[0])
	return nil
}

func (r *repl) copy(d *document.Document, args []string) error {
	if len(args) == 1 && args[0] == "new" {
		objs, err := d.CopyAsNew()
		if err != nil {
			return err
		}
		r.copied = objs
	} else {
		objs := d.CopyExact()
		if objs == nil {
			return errors.New(errors.ErrCodeNotFound, "no object selected")
		}
		r.copied = objs
	}
	r.printf("copied as %d", r.copied[0].ObjectID())
	return nil
}

func oneID(args []string, syntax string) (pool.ObjectID, error) {
	if len(args) != 1 {
		return 0, usage(syntax)
	}
	return parseID(args[0])
}

func usage(syntax string) error {
	return errors.New(errors.ErrCodeInvalidInput, "usage: %s", syntax)
}
