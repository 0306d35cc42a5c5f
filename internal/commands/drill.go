package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/statementlab/internal/attemptlog"
	"github.com/cleared-dev/statementlab/internal/model"
	"github.com/cleared-dev/statementlab/internal/placement"
	"github.com/cleared-dev/statementlab/internal/session"
)

const drillHelp = `Commands:
  zones                      list zones and how many accounts each holds
  pool [search]              list unplaced accounts
  place <zone-id> <account>  place an account in a zone
  drag <account>             pick up an account
  drop <zone-id>             drop the dragged account on a zone
  cancel                     drop the dragged account outside every zone
  remove <zone-id> <account> take an account out of a zone
  show                       list placements by zone
  check                      report progress
  solutions                  show the correct placements
  reset                      clear every zone
  switch <statement>         start over on another statement
  quit                       leave the drill`

func newDrillCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "drill [statement]",
		Short: "Place accounts into zones, one command per line on stdin",
		Long:  "Start a placement drill. Commands are read line by line from stdin.\n\n" + drillHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stmt, err := st.statementArg(args)
			if err != nil {
				return err
			}

			sess, err := session.New(st.catalog, st.registry, stmt, session.WithLogger(st.logger))
			if err != nil {
				return err
			}

			d := &drill{sess: sess, out: cmd.OutOrStdout(), attempts: attemptlog.NewRecorder(sess.ID(), time.Now)}
			if err := d.run(cmd.InOrStdin()); err != nil {
				return err
			}

			if st.cfg.AttemptLog.Enabled {
				if err := d.attempts.Flush(st.cfg.AttemptLog.Path); err != nil {
					st.logger.Warn("failed to write attempt log", "err", err)
				}
			}
			return nil
		},
	}
}

// drill drives one session from text commands.
type drill struct {
	sess     *session.Session
	out      io.Writer
	dragged  []byte
	attempts *attemptlog.Recorder
}

func (d *drill) run(in io.Reader) error {
	d.printf("%s: %d accounts, %d zones. Type help for commands.\n",
		d.sess.Statement().Label(), len(d.sess.Universe()), len(d.sess.Zones()))

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if quit := d.exec(line); quit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

// exec runs one command line and reports whether the drill should end.
func (d *drill) exec(line string) bool {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "quit", "exit":
		return true
	case "help":
		d.printf("%s\n", drillHelp)
	case "zones":
		snap := d.sess.Snapshot()
		for _, z := range d.sess.Zones() {
			d.printf("%-26s %-26s %d placed\n", z.ID, z.Label, len(snap[z.ID]))
		}
	case "pool":
		pool := d.sess.Pool(rest)
		if len(pool) == 0 {
			d.printf("%s\n", session.PoolMessage(rest))
		}
		for _, a := range pool {
			d.printf("  %s (%s)\n", a.Title, a.NormalBalance)
		}
	case "place":
		zoneID, title := splitZoneTitle(rest)
		a, ok := d.account(title)
		if !ok {
			return false
		}
		d.report(d.sess.Place(a, zoneID))
	case "drag":
		a, ok := d.account(rest)
		if !ok {
			return false
		}
		data, err := d.sess.BeginDrag(a)
		if err != nil {
			d.printf("Could not pick up %s: %v\n", a.Title, err)
			return false
		}
		d.dragged = data
		d.printf("Dragging %s\n", a.Title)
	case "drop":
		out := d.sess.Drop(d.dragged, rest)
		d.dragged = nil
		d.report(out)
	case "cancel":
		d.sess.CancelDrag()
		d.dragged = nil
		d.printf("Drag cancelled\n")
	case "remove":
		zoneID, title := splitZoneTitle(rest)
		a, ok := d.account(title)
		if !ok {
			return false
		}
		if d.sess.Remove(a, zoneID) {
			d.printf("Removed %s from %s\n", a.Title, zoneID)
		} else {
			d.printf("%s is not in %s\n", a.Title, zoneID)
		}
	case "show":
		snap := d.sess.Snapshot()
		for _, z := range d.sess.Zones() {
			d.printf("%s:\n", z.Label)
			if len(snap[z.ID]) == 0 {
				d.printf("  (empty)\n")
			}
			for _, a := range snap[z.ID] {
				d.printf("  %s\n", a.Title)
			}
		}
	case "check":
		r := d.sess.Progress()
		d.printf("%s (%s%%)\n", r.Message(), r.Percent().StringFixed(0))
	case "solutions":
		for _, sol := range d.sess.Solutions() {
			d.printf("%s:\n", sol.Zone.Label)
			for _, a := range sol.Accounts {
				d.printf("  %s [%s, %s]\n", a.Title, a.Classification, a.NormalBalance)
			}
		}
	case "reset":
		d.dragged = nil
		d.printf("%s\n", d.sess.Reset())
	case "switch":
		stmt, err := model.ParseStatementType(rest)
		if err != nil {
			d.printf("%v\n", err)
			return false
		}
		if err := d.sess.Switch(stmt); err != nil {
			d.printf("%v\n", err)
			return false
		}
		d.dragged = nil
		d.printf("Switched to %s: %d accounts\n", stmt.Label(), len(d.sess.Universe()))
	default:
		d.printf("Unknown command %q (try help)\n", verb)
	}
	return false
}

func (d *drill) account(title string) (model.Account, bool) {
	if title == "" {
		d.printf("Missing account title\n")
		return model.Account{}, false
	}
	a, ok := d.sess.Account(title)
	if !ok {
		d.printf("No account %q on the %s\n", title, d.sess.Statement().Label())
	}
	return a, ok
}

func (d *drill) report(out placement.Outcome) {
	d.printf("%s\n", out.Message())
	d.attempts.Record(string(d.sess.Statement()), out)
}

func (d *drill) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

// splitZoneTitle splits "current-assets Cash Equivalents" into the zone ID and
// the account title.
func splitZoneTitle(s string) (string, string) {
	zoneID, title, _ := strings.Cut(s, " ")
	return zoneID, strings.TrimSpace(title)
}
